// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachecmp

import (
	"strconv"

	"github.com/fsbench/cachestat/reportfmt"
)

// A Direction states which way a metric improves.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

// A Metric is one measured dimension of a benchmark result.
type Metric struct {
	// Name is the display heading, e.g. "Throughput (MB/s)".
	Name string

	Better Direction

	// Integer marks metrics whose values are whole counts and
	// should render without a fractional part.
	Integer bool

	// Value extracts the metric from a result. ok is false when
	// the result does not report this metric.
	Value func(*reportfmt.Result) (float64, bool)
}

var (
	Throughput = Metric{"Throughput (MB/s)", HigherIsBetter, false,
		func(r *reportfmt.Result) (float64, bool) { return r.ThroughputMBps, true }}
	AvgLatency = Metric{"Avg Latency (ms)", LowerIsBetter, false,
		func(r *reportfmt.Result) (float64, bool) { return r.AvgLatencyMS, true }}
	OpsPerSec = Metric{"Ops/sec", HigherIsBetter, true,
		func(r *reportfmt.Result) (float64, bool) { return float64(r.OpsPerSec), true }}
	P99Latency = Metric{"P99 Latency (ms)", LowerIsBetter, false,
		func(r *reportfmt.Result) (float64, bool) { return r.P99LatencyMS.Get() }}
)

// Metrics returns the compared dimensions in display order.
func Metrics() []Metric {
	return []Metric{Throughput, AvgLatency, OpsPerSec, P99Latency}
}

// Improvement returns the baseline-relative improvement for this
// metric, applying the inverted sign convention for metrics where
// lower is better.
func (m Metric) Improvement(value, baseline float64) (float64, bool) {
	if m.Better == LowerIsBetter {
		return LatencyImprovement(value, baseline)
	}
	return Improvement(value, baseline)
}

// BetterThan reports whether a is strictly better than b under m.
func (m Metric) BetterThan(a, b float64) bool {
	if m.Better == LowerIsBetter {
		return a < b
	}
	return a > b
}

// FormatValue renders a measured value of this metric for display.
func (m Metric) FormatValue(v float64) string {
	if m.Integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
