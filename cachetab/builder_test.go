// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"testing"

	"github.com/fsbench/cachestat/reportfmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSet builds a two-workload result set where lru is fastest and
// no_cache slowest on sequential_read, and only no_cache and lfu ran
// random_read.
func testSet() reportfmt.ResultSet {
	mk := func(cache reportfmt.CacheType, bench reportfmt.BenchType, mbps, lat float64, phases ...float64) *reportfmt.Result {
		return &reportfmt.Result{
			CacheType:        cache,
			BenchType:        bench,
			TotalOps:         1000,
			SuccessfulOps:    990,
			FailedOps:        10,
			ThroughputMBps:   mbps,
			OpsPerSec:        int(mbps),
			AvgLatencyMS:     lat,
			P99LatencyMS:     reportfmt.SomeFloat(lat * 3),
			PhaseThroughputs: phases,
		}
	}
	return reportfmt.ResultSet{
		reportfmt.SequentialRead: {
			reportfmt.NoCache: mk(reportfmt.NoCache, reportfmt.SequentialRead, 100, 4.0, 95, 100, 105),
			reportfmt.LRU:     mk(reportfmt.LRU, reportfmt.SequentialRead, 150, 2.0, 145, 150, 155),
			reportfmt.LFU:     mk(reportfmt.LFU, reportfmt.SequentialRead, 120, 3.0),
		},
		reportfmt.RandomRead: {
			reportfmt.NoCache: mk(reportfmt.NoCache, reportfmt.RandomRead, 50, 8.0),
			reportfmt.LFU:     mk(reportfmt.LFU, reportfmt.RandomRead, 75, 5.0),
		},
	}
}

func TestTablesBenches(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	// Only workloads with results appear, in enumeration order.
	assert.Equal(t, []reportfmt.BenchType{reportfmt.SequentialRead, reportfmt.RandomRead}, tables.Benches)
}

func TestTablesMetricRows(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	require.Len(t, tables.Metrics, 4)

	tput := tables.Metrics[0]
	assert.Equal(t, "Throughput (MB/s)", tput.Metric.Name)
	require.Len(t, tput.Rows, 2)

	seq := tput.Rows[0]
	assert.Equal(t, 150.0, seq.Values[reportfmt.LRU])
	require.True(t, seq.HasBest)
	assert.Equal(t, reportfmt.LRU, seq.Best)

	rnd := tput.Rows[1]
	_, hasLRU := rnd.Values[reportfmt.LRU]
	assert.False(t, hasLRU, "absent result must not appear as a value")
	require.True(t, rnd.HasBest)
	assert.Equal(t, reportfmt.LFU, rnd.Best)
}

func TestTablesLatencyBest(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	lat := tables.Metrics[1]
	require.Equal(t, "Avg Latency (ms)", lat.Metric.Name)
	// Lowest latency wins.
	require.True(t, lat.Rows[0].HasBest)
	assert.Equal(t, reportfmt.LRU, lat.Rows[0].Best)
}

func TestTablesRankings(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	require.Len(t, tables.Rankings, 2)

	seq := tables.Rankings[0]
	require.Len(t, seq.Entries, 3)
	assert.Equal(t, reportfmt.LRU, seq.Entries[0].Cache)
	assert.Equal(t, reportfmt.LFU, seq.Entries[1].Cache)
	assert.Equal(t, reportfmt.NoCache, seq.Entries[2].Cache)
	require.True(t, seq.Entries[0].HasSpeedup)
	assert.InDelta(t, 1.5, seq.Entries[0].Speedup, 1e-9)
	assert.False(t, seq.Entries[2].HasSpeedup, "baseline has no speedup")
}

func TestTablesWinners(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	require.Len(t, tables.Winners, 2)

	seq := tables.Winners[0]
	assert.Equal(t, reportfmt.LRU, seq.Best)
	assert.Equal(t, reportfmt.NoCache, seq.Worst)
	require.True(t, seq.HasMargin)
	assert.InDelta(t, 50.0, seq.MarginPct, 1e-9)
}

func TestTablesPhases(t *testing.T) {
	tables := NewBuilder().Tables(testSet())
	seq := tables.Details[0]
	ps, ok := seq.Phases[reportfmt.NoCache]
	require.True(t, ok)
	assert.Equal(t, 3, ps.N)
	assert.Equal(t, 100.0, ps.Mean)
	_, ok = seq.Phases[reportfmt.LFU]
	assert.False(t, ok, "run without phase samples has no summary")
}
