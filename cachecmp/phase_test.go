// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachecmp

import "testing"

func TestSummarizePhases(t *testing.T) {
	s, ok := SummarizePhases([]float64{100, 110, 90, 120})
	if !ok {
		t.Fatal("SummarizePhases of four samples not ok")
	}
	if s.N != 4 {
		t.Errorf("N = %d, want 4", s.N)
	}
	if s.Min != 90 || s.Max != 120 {
		t.Errorf("Min, Max = %v, %v, want 90, 120", s.Min, s.Max)
	}
	if s.Mean != 105 {
		t.Errorf("Mean = %v, want 105", s.Mean)
	}
	if s.Median != 105 {
		t.Errorf("Median = %v, want 105", s.Median)
	}
}

func TestSummarizePhasesSingle(t *testing.T) {
	s, ok := SummarizePhases([]float64{42})
	if !ok || s.N != 1 || s.Min != 42 || s.Max != 42 || s.Mean != 42 || s.Median != 42 {
		t.Errorf("got %+v, %v, want all fields 42", s, ok)
	}
}

func TestSummarizePhasesEmpty(t *testing.T) {
	if _, ok := SummarizePhases(nil); ok {
		t.Error("SummarizePhases(nil) ok, want false")
	}
}
