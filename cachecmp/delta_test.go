// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachecmp

import "testing"

func TestImprovement(t *testing.T) {
	tests := []struct {
		value, baseline float64
		want            string
	}{
		{150, 100, "+50.0%"},
		{80, 100, "-20.0%"},
		{100, 100, "0.0%"},
		{50, 0, "N/A"},
	}
	for _, test := range tests {
		got := FormatPct(Improvement(test.value, test.baseline))
		if got != test.want {
			t.Errorf("Improvement(%v, %v) formats as %q, want %q",
				test.value, test.baseline, got, test.want)
		}
	}
}

func TestLatencyImprovement(t *testing.T) {
	tests := []struct {
		value, baseline float64
		want            string
	}{
		// Lower latency is an improvement, so the sign flips.
		{2, 4, "+50.0%"},
		{5, 4, "-25.0%"},
		{4, 4, "0.0%"},
		{2, 0, "N/A"},
		{2, -1, "N/A"},
	}
	for _, test := range tests {
		got := FormatPct(LatencyImprovement(test.value, test.baseline))
		if got != test.want {
			t.Errorf("LatencyImprovement(%v, %v) formats as %q, want %q",
				test.value, test.baseline, got, test.want)
		}
	}
}

func TestSpeedup(t *testing.T) {
	if got := FormatSpeedup(Speedup(150, 100)); got != "1.50x" {
		t.Errorf("Speedup(150, 100) formats as %q, want 1.50x", got)
	}
	if got := FormatSpeedup(Speedup(150, 0)); got != "N/A" {
		t.Errorf("Speedup(150, 0) formats as %q, want N/A", got)
	}
}

func TestMargin(t *testing.T) {
	if pct, ok := Margin(150, 100); !ok || pct != 50 {
		t.Errorf("Margin(150, 100) = %v, %v, want 50, true", pct, ok)
	}
	if _, ok := Margin(150, 0); ok {
		t.Error("Margin(150, 0) ok, want guarded")
	}
}

func TestMetricImprovementDirection(t *testing.T) {
	// Throughput improves upward, latency improves downward.
	if pct, ok := Throughput.Improvement(150, 100); !ok || pct != 50 {
		t.Errorf("Throughput.Improvement(150, 100) = %v, %v, want 50, true", pct, ok)
	}
	if pct, ok := AvgLatency.Improvement(2, 4); !ok || pct != 50 {
		t.Errorf("AvgLatency.Improvement(2, 4) = %v, %v, want 50, true", pct, ok)
	}
	if _, ok := AvgLatency.Improvement(2, 0); ok {
		t.Error("AvgLatency.Improvement(2, 0) ok, want guarded")
	}
}

func TestMetricFormatValue(t *testing.T) {
	if got := OpsPerSec.FormatValue(80); got != "80" {
		t.Errorf("OpsPerSec.FormatValue(80) = %q, want 80", got)
	}
	if got := Throughput.FormatValue(125.5); got != "125.50" {
		t.Errorf("Throughput.FormatValue(125.5) = %q, want 125.50", got)
	}
}
