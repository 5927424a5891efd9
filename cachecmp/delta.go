// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cachecmp computes comparative statistics between cache
// strategies: percentage deltas against the no-cache baseline, speedup
// ratios, best/worst selection, and phase throughput summaries.
//
// Every ratio in this package is guarded. Whenever a baseline is
// missing, zero, or non-positive where it appears as a divisor, the
// computation reports ok == false instead of letting an infinity or
// NaN escape into output.
package cachecmp

import "fmt"

// NA is the sentinel rendered for values that cannot be computed.
const NA = "N/A"

// Improvement returns the percentage change of value over baseline for
// metrics where higher is better: (value-baseline)/baseline * 100.
// ok is false when baseline is zero.
func Improvement(value, baseline float64) (pct float64, ok bool) {
	if baseline == 0 {
		return 0, false
	}
	return (value - baseline) / baseline * 100, true
}

// LatencyImprovement is the latency counterpart of Improvement. Lower
// latency is better, so the sign is inverted: a drop relative to the
// baseline reports as a positive percentage. ok is false unless
// baseline is strictly positive.
func LatencyImprovement(value, baseline float64) (pct float64, ok bool) {
	if baseline <= 0 {
		return 0, false
	}
	return (baseline - value) / baseline * 100, true
}

// Speedup returns value/baseline. ok is false unless baseline is
// strictly positive.
func Speedup(value, baseline float64) (ratio float64, ok bool) {
	if baseline <= 0 {
		return 0, false
	}
	return value / baseline, true
}

// Margin returns how much better best is than worst, in percent:
// (best/worst - 1) * 100. ok is false unless worst is strictly
// positive.
func Margin(best, worst float64) (pct float64, ok bool) {
	if worst <= 0 {
		return 0, false
	}
	return (best/worst - 1) * 100, true
}

// FormatPct renders a percentage delta with an explicit plus sign for
// positive values, or the N/A sentinel when ok is false.
func FormatPct(pct float64, ok bool) string {
	if !ok {
		return NA
	}
	if pct > 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSpeedup renders a speedup ratio as e.g. "1.50x", or the N/A
// sentinel when ok is false.
func FormatSpeedup(ratio float64, ok bool) string {
	if !ok {
		return NA
	}
	return fmt.Sprintf("%.2fx", ratio)
}
