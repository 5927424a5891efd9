// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestChartPhases(t *testing.T) {
	dir := t.TempDir()
	written, err := ChartPhases(testSet(), dir)
	if err != nil {
		t.Fatal(err)
	}

	// Only sequential_read carries phase samples in testSet.
	want := filepath.Join(dir, "sequential_read_phases.png")
	if len(written) != 1 || written[0] != want {
		t.Fatalf("written = %v, want [%s]", written, want)
	}
	info, err := os.Stat(want)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestChartPhasesNone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	set := testSet()
	for _, byCache := range set {
		for _, r := range byCache {
			r.PhaseThroughputs = nil
		}
	}
	written, err := ChartPhases(set, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 0 {
		t.Errorf("written = %v, want none", written)
	}
	// The directory is only created when there is something to write.
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("chart directory created with nothing to chart: %v", err)
	}
}
