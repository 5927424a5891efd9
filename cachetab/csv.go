// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fsbench/cachestat/reportfmt"
)

// ExportHeader is the column order of the flat export record set.
var ExportHeader = []string{
	"Benchmark Type", "Cache Type", "Total Operations", "Successful Ops",
	"Failed Ops", "Total Bytes (MB)", "Total Time (s)", "Throughput (MB/s)",
	"Ops/sec", "Avg Latency (ms)", "Min Latency (ms)", "P50 Latency (ms)",
	"P99 Latency (ms)", "Max Latency (ms)",
}

// A Row is one flat export record for a present (workload, strategy)
// pair.
type Row struct {
	Bench  reportfmt.BenchType
	Cache  reportfmt.CacheType
	Result *reportfmt.Result
}

// ExportRows flattens set into export records, ordered by workload
// then by strategy enumeration order. Absent pairs yield no row.
func ExportRows(set reportfmt.ResultSet) []Row {
	var rows []Row
	for _, bench := range reportfmt.BenchTypes() {
		for _, cache := range reportfmt.CacheTypes() {
			if r, ok := set.Lookup(bench, cache); ok {
				rows = append(rows, Row{bench, cache, r})
			}
		}
	}
	return rows
}

// Strings renders the record's columns in ExportHeader order. Unset
// optional latencies render as empty strings, never as a numeric zero.
func (r Row) Strings() []string {
	f2 := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	opt := func(o reportfmt.OptFloat) string {
		if v, ok := o.Get(); ok {
			return f2(v)
		}
		return ""
	}
	res := r.Result
	return []string{
		r.Bench.Display(),
		r.Cache.Display(),
		strconv.Itoa(res.TotalOps),
		strconv.Itoa(res.SuccessfulOps),
		strconv.Itoa(res.FailedOps),
		f2(res.TotalBytesMB),
		f2(res.TotalTimeSec),
		f2(res.ThroughputMBps),
		strconv.Itoa(res.OpsPerSec),
		f2(res.AvgLatencyMS),
		opt(res.MinLatencyMS),
		opt(res.P50LatencyMS),
		opt(res.P99LatencyMS),
		opt(res.MaxLatencyMS),
	}
}

// WriteCSV writes the header and every row in CSV form.
func WriteCSV(w io.Writer, rows []Row) error {
	o := csv.NewWriter(w)
	if err := o.Write(ExportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := o.Write(r.Strings()); err != nil {
			return err
		}
	}
	o.Flush()
	return o.Error()
}
