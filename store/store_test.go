// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fsbench/cachestat/cachetab"
	"github.com/fsbench/cachestat/reportfmt"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "results.db")
	db, err := OpenSQL("sqlite3", dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db, dsn
}

func TestSaveRun(t *testing.T) {
	db, dsn := openTestDB(t)

	rows := []cachetab.Row{
		{
			Bench: reportfmt.SequentialRead,
			Cache: reportfmt.LRU,
			Result: &reportfmt.Result{
				CacheType:      reportfmt.LRU,
				BenchType:      reportfmt.SequentialRead,
				TotalOps:       1000,
				SuccessfulOps:  990,
				FailedOps:      10,
				TotalBytes:     104857600,
				TotalBytesMB:   100,
				ThroughputMBps: 125.5,
				AvgLatencyMS:   3.2,
				P99LatencyMS:   reportfmt.SomeFloat(9.1),
			},
		},
		{
			Bench: reportfmt.SequentialRead,
			Cache: reportfmt.NoCache,
			Result: &reportfmt.Result{
				CacheType: reportfmt.NoCache,
				BenchType: reportfmt.SequentialRead,
			},
		},
	}
	id, err := db.SaveRun("/results", rows)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("SaveRun returned an empty run ID")
	}

	raw, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer raw.Close()

	var root string
	if err := raw.QueryRow("SELECT Root FROM Runs WHERE RunID = ?", id).Scan(&root); err != nil {
		t.Fatal(err)
	}
	if root != "/results" {
		t.Errorf("Root = %q, want /results", root)
	}

	var n int
	if err := raw.QueryRow("SELECT COUNT(*) FROM Results WHERE RunID = ?", id).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("got %d result rows, want 2", n)
	}

	// The set optional latency round-trips, the unset one is NULL.
	var p99, min sql.NullFloat64
	err = raw.QueryRow(
		"SELECT P99LatencyMS, MinLatencyMS FROM Results WHERE RunID = ? AND Strategy = ?",
		id, "lru").Scan(&p99, &min)
	if err != nil {
		t.Fatal(err)
	}
	if !p99.Valid || p99.Float64 != 9.1 {
		t.Errorf("P99LatencyMS = %+v, want valid 9.1", p99)
	}
	if min.Valid {
		t.Errorf("MinLatencyMS = %+v, want NULL", min)
	}
}

func TestSaveRunDistinctIDs(t *testing.T) {
	db, _ := openTestDB(t)
	id1, err := db.SaveRun("/a", nil)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := db.SaveRun("/b", nil)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Errorf("two runs share ID %q", id1)
	}
}
