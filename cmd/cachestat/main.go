// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cachestat extracts metrics from filesystem benchmark reports and
// compares caching strategies against an uncached baseline.
//
// Usage:
//
//	cachestat [options] resultdir
//
// Resultdir must contain one subdirectory per caching strategy
// (no_cache, lru, lfu), each holding the captured terminal output of
// the benchmark workloads as <workload>.ansi files. Missing
// directories and missing files are reported to standard error and
// skipped; only a resultdir yielding no reports at all is an error.
//
// By default cachestat prints fixed-width comparison tables: one
// table per metric with improvement deltas against the no_cache
// baseline, a throughput ranking per workload, a winner summary, and
// per-workload detail tables.
//
// The -csv option instead emits the extracted metrics as one flat CSV
// row per workload and strategy. The -html option emits the
// comparison tables as an HTML document. The -o option redirects the
// report to a file; for table reports a CSV export is written next to
// it under the same name with a .csv extension.
//
// The -sql option records the extracted metrics in a SQL database so
// runs can be compared later; -sql-driver selects the driver
// (sqlite3 or mysql). The -charts option writes one phase throughput
// chart per workload into the named directory. The -upload option
// copies the report to a gs://bucket/prefix location, using the
// service account key named by -creds if given.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fsbench/cachestat/archive"
	"github.com/fsbench/cachestat/cachetab"
	"github.com/fsbench/cachestat/reportfmt"
	"github.com/fsbench/cachestat/store"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cachestat [options] resultdir\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagCSV       = flag.Bool("csv", false, "export extracted metrics in CSV form")
	flagHTML      = flag.Bool("html", false, "print comparison tables as HTML")
	flagOut       = flag.String("o", "", "write the report to `file` instead of standard output")
	flagSQL       = flag.String("sql", "", "record extracted metrics in the database at `dsn`")
	flagSQLDriver = flag.String("sql-driver", "sqlite3", "database `driver` for -sql: sqlite3 or mysql")
	flagCharts    = flag.String("charts", "", "write per-workload phase charts into `dir`")
	flagUpload    = flag.String("upload", "", "copy the report to a gs://bucket/prefix `url`")
	flagCreds     = flag.String("creds", "", "service account key `file` for -upload")
)

func main() {
	log.SetPrefix("cachestat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	if err := run(flag.Arg(0), os.Stdout); err != nil {
		log.Print(err)
		exit(1)
	}
}

// run performs one analysis of the reports under root and writes the
// selected output format to w unless -o names a file.
func run(root string, w io.Writer) error {
	collector := &reportfmt.Collector{Root: root}
	set, err := collector.Collect()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	var reportName string
	if *flagCSV {
		reportName = "results.csv"
		if err := cachetab.WriteCSV(&buf, cachetab.ExportRows(set)); err != nil {
			return err
		}
	} else {
		tables := cachetab.NewBuilder().Tables(set)
		if *flagHTML {
			reportName = "results.html"
			if err := tables.ToHTML(&buf); err != nil {
				return err
			}
		} else {
			reportName = "results.txt"
			if err := tables.ToText(&buf); err != nil {
				return err
			}
		}
	}

	if *flagSQL != "" {
		db, err := store.OpenSQL(*flagSQLDriver, *flagSQL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		id, err := db.SaveRun(root, cachetab.ExportRows(set))
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		log.Printf("recorded run %s", id)
	}

	if *flagCharts != "" {
		written, err := cachetab.ChartPhases(set, *flagCharts)
		if err != nil {
			return fmt.Errorf("write charts: %w", err)
		}
		for _, path := range written {
			log.Printf("wrote %s", path)
		}
	}

	if *flagUpload != "" {
		if err := upload(*flagUpload, *flagCreds, reportName, buf.Bytes()); err != nil {
			return err
		}
	}

	if *flagOut != "" {
		if err := os.WriteFile(*flagOut, buf.Bytes(), 0666); err != nil {
			return err
		}
		if *flagCSV {
			return nil
		}
		// Pair the report with its flat export records.
		csvPath := strings.TrimSuffix(*flagOut, filepath.Ext(*flagOut)) + ".csv"
		var csvBuf bytes.Buffer
		if err := cachetab.WriteCSV(&csvBuf, cachetab.ExportRows(set)); err != nil {
			return err
		}
		return os.WriteFile(csvPath, csvBuf.Bytes(), 0666)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func upload(url, credsFile, name string, data []byte) error {
	bucket, prefix, err := archive.ParseBucket(url)
	if err != nil {
		return err
	}
	ctx := context.Background()
	up, err := archive.NewUploader(ctx, bucket, prefix, credsFile)
	if err != nil {
		return err
	}
	defer up.Close()
	if err := up.Put(ctx, name, data); err != nil {
		return err
	}
	log.Printf("uploaded %s/%s", strings.TrimSuffix(url, "/"), name)
	return nil
}
