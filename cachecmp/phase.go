// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachecmp

import "github.com/aclements/go-moremath/stats"

// A PhaseSummary describes the per-phase throughput samples of one
// benchmark run with plain order statistics.
type PhaseSummary struct {
	N        int
	Min, Max float64
	Mean     float64
	Median   float64
}

// SummarizePhases summarizes a run's phase throughput samples.
// ok is false when there are no samples.
func SummarizePhases(xs []float64) (s PhaseSummary, ok bool) {
	if len(xs) == 0 {
		return PhaseSummary{}, false
	}
	s.N = len(xs)
	s.Min, s.Max = stats.Bounds(xs)
	s.Mean = stats.Mean(xs)
	s.Median = stats.Sample{Xs: xs}.Quantile(0.5)
	return s, true
}
