// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reportfmt reads the textual report format produced by the
// distributed file system benchmark harness.
//
// Each report is the captured terminal output of one benchmark run for
// a single (cache strategy, workload) pair. The output is free-form
// prose decorated with ANSI escape sequences, with labeled metric lines
// such as "Total Operations: 1000" and "Throughput: 125.50 MB/s"
// interspersed. This package strips the decoration, extracts the
// labeled metrics into Result records, and collects the records for a
// whole results tree.
//
// This package is designed to be used with the higher-level packages
// cachecmp and cachetab.
package reportfmt

import "strings"

// A CacheType identifies one of the benchmarked cache strategies.
type CacheType string

const (
	NoCache CacheType = "no_cache"
	LRU     CacheType = "lru"
	LFU     CacheType = "lfu"
)

// CacheTypes returns the recognized cache strategies in display order.
// The no-cache baseline comes first. This order is also the tie-break
// precedence used when two strategies measure identically: the earlier
// strategy wins.
func CacheTypes() []CacheType {
	return []CacheType{NoCache, LRU, LFU}
}

// Display returns the human-readable name of the cache strategy.
func (c CacheType) Display() string {
	if c == NoCache {
		return "No Cache"
	}
	return strings.ToUpper(string(c))
}

// A BenchType identifies the I/O access pattern of a benchmark run.
type BenchType string

const (
	SequentialRead  BenchType = "sequential_read"
	SequentialWrite BenchType = "sequential_write"
	RandomRead      BenchType = "random_read"
	RandomWrite     BenchType = "random_write"
)

// BenchTypes returns the workload types in display order.
func BenchTypes() []BenchType {
	return []BenchType{SequentialRead, SequentialWrite, RandomRead, RandomWrite}
}

// Display returns the human-readable name of the workload,
// e.g. "Sequential Read" for sequential_read.
func (b BenchType) Display() string {
	words := strings.Split(string(b), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// An OptFloat is a float64 that distinguishes "not reported" from zero.
// The zero OptFloat is unset.
type OptFloat struct {
	val float64
	set bool
}

// SomeFloat returns an OptFloat holding v.
func SomeFloat(v float64) OptFloat {
	return OptFloat{v, true}
}

// Get returns the value and whether it was ever set.
func (o OptFloat) Get() (float64, bool) {
	return o.val, o.set
}

// A Result holds the metrics extracted from a single report.
//
// Numeric fields that did not appear in the report keep their zero
// defaults, except the optional latency percentiles, which stay unset
// so that "not reported" never reads as a zero-millisecond latency.
// A Result is built once by Extract and never modified afterwards.
type Result struct {
	CacheType CacheType
	BenchType BenchType

	TotalOps      int
	SuccessfulOps int
	FailedOps     int

	TotalBytes   int64
	TotalBytesMB float64

	TotalTimeSec   float64
	ThroughputMBps float64
	OpsPerSec      int

	AvgLatencyMS float64
	MinLatencyMS OptFloat
	P50LatencyMS OptFloat
	P99LatencyMS OptFloat
	MaxLatencyMS OptFloat

	// PhaseThroughputs holds the per-phase throughput samples in
	// their order of appearance in the report. Empty when the run
	// reported no phase or iteration markers.
	PhaseThroughputs []float64
}

// A ResultSet maps workload type to cache strategy to the extracted
// Result. A pair has an entry only if its report file existed and was
// read; absence means "unknown", never "zero".
type ResultSet map[BenchType]map[CacheType]*Result

// Lookup returns the result for the (bench, cache) pair, if present.
func (s ResultSet) Lookup(bench BenchType, cache CacheType) (*Result, bool) {
	r, ok := s[bench][cache]
	return r, ok
}
