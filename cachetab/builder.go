// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cachetab presents collected benchmark results as comparison
// tables and as a flat export record set.
package cachetab

import (
	"github.com/fsbench/cachestat/cachecmp"
	"github.com/fsbench/cachestat/reportfmt"
)

// A Builder turns a result set into analysis Tables. The zero value is
// not useful; NewBuilder fills in the standard enumerations.
type Builder struct {
	// Caches is the strategy column order. The first entry whose
	// results exist in a row is also the tie-break winner.
	Caches []reportfmt.CacheType

	// Benches is the workload row order.
	Benches []reportfmt.BenchType

	// Baseline is the strategy every delta and speedup is computed
	// against.
	Baseline reportfmt.CacheType

	// Metrics is the compared dimensions, one table each.
	Metrics []cachecmp.Metric
}

// NewBuilder returns a Builder over the standard enumerations with the
// no-cache baseline.
func NewBuilder() *Builder {
	return &Builder{
		Caches:   reportfmt.CacheTypes(),
		Benches:  reportfmt.BenchTypes(),
		Baseline: reportfmt.NoCache,
		Metrics:  cachecmp.Metrics(),
	}
}

// Tables is the finished comparative analysis of one result set.
type Tables struct {
	// Caches and Baseline echo the Builder configuration.
	Caches   []reportfmt.CacheType
	Baseline reportfmt.CacheType

	// Benches is the workloads that actually had results, in row
	// order.
	Benches []reportfmt.BenchType

	// Metrics holds one comparison table per dimension.
	Metrics []*MetricTable

	// Details holds one per-workload table of every extracted
	// field.
	Details []*Detail

	// Rankings orders the strategies of each workload by
	// throughput, best first.
	Rankings []*WorkloadRanking

	// Winners names the best and worst strategy per workload with
	// the overall margin between them.
	Winners []Winner
}

// A MetricTable compares every strategy on one metric across all
// workloads present.
type MetricTable struct {
	Metric cachecmp.Metric
	Rows   []*MetricRow
}

// A MetricRow holds one workload's measurements for a metric. Values
// has entries only for strategies that reported the metric; a missing
// entry means unknown, not zero.
type MetricRow struct {
	Bench   reportfmt.BenchType
	Values  map[reportfmt.CacheType]float64
	Best    reportfmt.CacheType
	HasBest bool
}

// A Detail carries one workload's full result records and phase
// throughput summaries.
type Detail struct {
	Bench   reportfmt.BenchType
	Results map[reportfmt.CacheType]*reportfmt.Result
	Phases  map[reportfmt.CacheType]cachecmp.PhaseSummary
}

// A WorkloadRanking orders one workload's strategies by throughput.
type WorkloadRanking struct {
	Bench   reportfmt.BenchType
	Entries []cachecmp.Ranking
}

// A Winner summarizes one workload: its best and worst strategy by
// throughput and how far apart they are.
type Winner struct {
	Bench       reportfmt.BenchType
	Best, Worst reportfmt.CacheType
	MarginPct   float64
	HasMargin   bool
}

// Tables computes the full comparative analysis for set. The input is
// read but never modified.
func (b *Builder) Tables(set reportfmt.ResultSet) *Tables {
	t := &Tables{Caches: b.Caches, Baseline: b.Baseline}
	for _, bench := range b.Benches {
		if _, ok := set[bench]; ok {
			t.Benches = append(t.Benches, bench)
		}
	}

	for _, m := range b.Metrics {
		mt := &MetricTable{Metric: m}
		for _, bench := range t.Benches {
			row := &MetricRow{Bench: bench, Values: b.metricValues(set, bench, m)}
			row.Best, row.HasBest = cachecmp.Best(row.Values, b.Caches, m)
			mt.Rows = append(mt.Rows, row)
		}
		t.Metrics = append(t.Metrics, mt)
	}

	for _, bench := range t.Benches {
		d := &Detail{
			Bench:   bench,
			Results: set[bench],
			Phases:  make(map[reportfmt.CacheType]cachecmp.PhaseSummary),
		}
		for cache, r := range set[bench] {
			if ps, ok := cachecmp.SummarizePhases(r.PhaseThroughputs); ok {
				d.Phases[cache] = ps
			}
		}
		t.Details = append(t.Details, d)

		tputs := b.metricValues(set, bench, cachecmp.Throughput)
		t.Rankings = append(t.Rankings, &WorkloadRanking{
			Bench:   bench,
			Entries: cachecmp.Rank(tputs, b.Caches, cachecmp.Throughput, b.Baseline),
		})

		best, ok := cachecmp.Best(tputs, b.Caches, cachecmp.Throughput)
		if !ok {
			continue
		}
		worst, _ := cachecmp.Worst(tputs, b.Caches, cachecmp.Throughput)
		w := Winner{Bench: bench, Best: best, Worst: worst}
		w.MarginPct, w.HasMargin = cachecmp.Margin(tputs[best], tputs[worst])
		t.Winners = append(t.Winners, w)
	}

	return t
}

// metricValues collects one workload's measurements of m, keyed by
// strategy. Strategies with no result, or whose result does not report
// m, are absent.
func (b *Builder) metricValues(set reportfmt.ResultSet, bench reportfmt.BenchType, m cachecmp.Metric) map[reportfmt.CacheType]float64 {
	values := make(map[reportfmt.CacheType]float64)
	for _, cache := range b.Caches {
		r, ok := set.Lookup(bench, cache)
		if !ok {
			continue
		}
		if v, ok := m.Value(r); ok {
			values[cache] = v
		}
	}
	return values
}
