// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reportfmt

import (
	"regexp"
	"strconv"
)

// A numKind is the numeric shape a field pattern captures.
type numKind int

const (
	integer numKind = iota
	decimal
)

// A fieldPattern associates one labeled metric line with the Result
// field it populates. Matching is anchored on the label, not on line
// position, so the order of fields in a report does not matter and
// unrelated prose around them is ignored. An empty unit means the
// value stands alone.
//
// Adding a recognized field is a catalog change, not a code change.
type fieldPattern struct {
	label  string
	kind   numKind
	unit   string
	assign func(*Result, float64)
}

var catalog = []fieldPattern{
	{"Total Operations", integer, "", func(r *Result, v float64) { r.TotalOps = int(v) }},
	{"Successful Ops", integer, "", func(r *Result, v float64) { r.SuccessfulOps = int(v) }},
	{"Failed Ops", integer, "", func(r *Result, v float64) { r.FailedOps = int(v) }},
	{"Total Time", decimal, "seconds", func(r *Result, v float64) { r.TotalTimeSec = v }},
	{"Throughput", decimal, "MB/s", func(r *Result, v float64) { r.ThroughputMBps = v }},
	{"Ops/sec", integer, "", func(r *Result, v float64) { r.OpsPerSec = int(v) }},
	{"Avg Latency", decimal, "ms", func(r *Result, v float64) { r.AvgLatencyMS = v }},
	{"Min Latency", decimal, "ms", func(r *Result, v float64) { r.MinLatencyMS = SomeFloat(v) }},
	{"P50 Latency", decimal, "ms", func(r *Result, v float64) { r.P50LatencyMS = SomeFloat(v) }},
	{"P99 Latency", decimal, "ms", func(r *Result, v float64) { r.P99LatencyMS = SomeFloat(v) }},
	{"Max Latency", decimal, "ms", func(r *Result, v float64) { r.MaxLatencyMS = SomeFloat(v) }},
}

// catalogRE holds one compiled expression per catalog entry, built
// from the label, the numeric shape, and the optional unit.
var catalogRE = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(catalog))
	for i, f := range catalog {
		num := `(\d+)`
		if f.kind == decimal {
			num = `([\d.]+)`
		}
		pat := regexp.QuoteMeta(f.label) + `:\s*` + num
		if f.unit != "" {
			pat += `\s*` + regexp.QuoteMeta(f.unit)
		}
		res[i] = regexp.MustCompile(pat)
	}
	return res
}()

// totalBytesRE captures both figures of the combined byte-count
// statement, e.g. "Total Bytes: 104857600 (100.00 MB)".
var totalBytesRE = regexp.MustCompile(`Total Bytes:\s*(\d+)\s*\(([\d.]+)\s*MB\)`)

// phaseRE matches one per-phase throughput sample, e.g.
// "Phase 3/10: 118.20 MB/s" or "Iteration 2 95.1 MB/s".
var phaseRE = regexp.MustCompile(`(?:Phase|Iteration)\s*\d+(?:/\d+)?[:\s]*([\d.]+)\s*MB/s`)

// Extract parses a normalized report and returns the Result for the
// declared (cache, bench) pair.
//
// For each catalog entry the first occurrence of its label decides the
// field. A field whose label never appears, or whose captured text
// fails to parse as the declared numeric shape, keeps its default or
// unset state; absence is valid input and Extract never fails.
func Extract(text string, cache CacheType, bench BenchType) *Result {
	r := &Result{CacheType: cache, BenchType: bench}

	for i, f := range catalog {
		m := catalogRE[i].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			// Malformed value, treated the same as missing.
			continue
		}
		f.assign(r, v)
	}

	if m := totalBytesRE.FindStringSubmatch(text); m != nil {
		raw, errRaw := strconv.ParseInt(m[1], 10, 64)
		mb, errMB := strconv.ParseFloat(m[2], 64)
		if errRaw == nil && errMB == nil {
			r.TotalBytes = raw
			r.TotalBytesMB = mb
		}
	}

	for _, m := range phaseRE.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		r.PhaseThroughputs = append(r.PhaseThroughputs, v)
	}

	return r
}
