// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"fmt"
	"strconv"

	"github.com/fsbench/cachestat/cachecmp"
	"github.com/fsbench/cachestat/reportfmt"
)

// A Section is one rendered table: a title, a header row, and data
// rows of pre-formatted cells. Unknown values are already rendered as
// the N/A sentinel, so emitters never see a placeholder number.
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Sections renders the complete analysis as a sequence of tables:
// one comparison table per metric, the throughput rankings, the
// best-strategy summary, and one detail table per workload.
func (t *Tables) Sections() []Section {
	var out []Section
	for _, mt := range t.Metrics {
		out = append(out, t.metricSection(mt))
	}
	out = append(out, t.rankingSection(), t.winnerSection())
	for _, d := range t.Details {
		out = append(out, t.detailSection(d))
	}
	return out
}

func (t *Tables) metricSection(mt *MetricTable) Section {
	title := mt.Metric.Name + " comparison"
	if mt.Metric.Better == cachecmp.LowerIsBetter {
		title += " (lower is better)"
	}

	s := Section{Title: title, Header: []string{"Benchmark"}}
	for _, c := range t.Caches {
		s.Header = append(s.Header, c.Display())
	}
	for _, c := range t.Caches {
		if c != t.Baseline {
			s.Header = append(s.Header, c.Display()+" vs "+t.Baseline.Display())
		}
	}
	s.Header = append(s.Header, "Best")

	for _, row := range mt.Rows {
		cells := []string{row.Bench.Display()}
		for _, c := range t.Caches {
			v, ok := row.Values[c]
			if !ok {
				cells = append(cells, cachecmp.NA)
				continue
			}
			cells = append(cells, mt.Metric.FormatValue(v))
		}
		base, hasBase := row.Values[t.Baseline]
		for _, c := range t.Caches {
			if c == t.Baseline {
				continue
			}
			v, ok := row.Values[c]
			if !ok || !hasBase {
				cells = append(cells, cachecmp.NA)
				continue
			}
			cells = append(cells, cachecmp.FormatPct(mt.Metric.Improvement(v, base)))
		}
		if row.HasBest {
			cells = append(cells, row.Best.Display())
		} else {
			cells = append(cells, cachecmp.NA)
		}
		s.Rows = append(s.Rows, cells)
	}
	return s
}

func (t *Tables) rankingSection() Section {
	s := Section{
		Title:  "Throughput rankings",
		Header: []string{"Benchmark", "Rank", "Strategy", "Throughput (MB/s)", "vs " + t.Baseline.Display()},
	}
	for _, wr := range t.Rankings {
		for i, e := range wr.Entries {
			vs := cachecmp.FormatSpeedup(e.Speedup, e.HasSpeedup)
			if e.Cache == t.Baseline {
				vs = "baseline"
			}
			s.Rows = append(s.Rows, []string{
				wr.Bench.Display(),
				strconv.Itoa(i + 1),
				e.Cache.Display(),
				fmt.Sprintf("%.2f", e.Value),
				vs,
			})
		}
	}

	// One geomean summary row per non-baseline strategy, over its
	// per-workload speedups.
	for _, c := range t.Caches {
		if c == t.Baseline {
			continue
		}
		var ratios []float64
		for _, wr := range t.Rankings {
			for _, e := range wr.Entries {
				if e.Cache == c && e.HasSpeedup {
					ratios = append(ratios, e.Speedup)
				}
			}
		}
		gm, ok := cachecmp.GeoMeanRatio(ratios)
		s.Rows = append(s.Rows, []string{
			"Geomean", "", c.Display(), "", cachecmp.FormatSpeedup(gm, ok),
		})
	}
	return s
}

func (t *Tables) winnerSection() Section {
	s := Section{
		Title:  "Best strategy by benchmark",
		Header: []string{"Benchmark", "Best", "Worst", "Margin"},
	}
	for _, w := range t.Winners {
		s.Rows = append(s.Rows, []string{
			w.Bench.Display(),
			w.Best.Display(),
			w.Worst.Display(),
			cachecmp.FormatPct(w.MarginPct, w.HasMargin),
		})
	}
	return s
}

func (t *Tables) detailSection(d *Detail) Section {
	s := Section{Title: d.Bench.Display() + " details", Header: []string{"Metric"}}
	for _, c := range t.Caches {
		s.Header = append(s.Header, c.Display())
	}

	row := func(label string, cell func(*reportfmt.Result) string) {
		cells := []string{label}
		for _, c := range t.Caches {
			r, ok := d.Results[c]
			if !ok {
				cells = append(cells, cachecmp.NA)
				continue
			}
			cells = append(cells, cell(r))
		}
		s.Rows = append(s.Rows, cells)
	}
	count := func(v int) string { return strconv.Itoa(v) }
	f2 := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	opt := func(o reportfmt.OptFloat) string {
		if v, ok := o.Get(); ok {
			return f2(v)
		}
		return cachecmp.NA
	}

	row("Total Operations", func(r *reportfmt.Result) string { return count(r.TotalOps) })
	row("Successful Ops", func(r *reportfmt.Result) string { return count(r.SuccessfulOps) })
	row("Failed Ops", func(r *reportfmt.Result) string { return count(r.FailedOps) })
	row("Total Data (MB)", func(r *reportfmt.Result) string { return f2(r.TotalBytesMB) })
	row("Total Time (s)", func(r *reportfmt.Result) string { return f2(r.TotalTimeSec) })
	row("Throughput (MB/s)", func(r *reportfmt.Result) string { return f2(r.ThroughputMBps) })
	row("Ops/sec", func(r *reportfmt.Result) string { return count(r.OpsPerSec) })
	row("Avg Latency (ms)", func(r *reportfmt.Result) string { return f2(r.AvgLatencyMS) })
	row("Min Latency (ms)", func(r *reportfmt.Result) string { return opt(r.MinLatencyMS) })
	row("P50 Latency (ms)", func(r *reportfmt.Result) string { return opt(r.P50LatencyMS) })
	row("P99 Latency (ms)", func(r *reportfmt.Result) string { return opt(r.P99LatencyMS) })
	row("Max Latency (ms)", func(r *reportfmt.Result) string { return opt(r.MaxLatencyMS) })

	if len(d.Phases) > 0 {
		phase := func(label string, cell func(cachecmp.PhaseSummary) string) {
			cells := []string{label}
			for _, c := range t.Caches {
				ps, ok := d.Phases[c]
				if !ok {
					cells = append(cells, cachecmp.NA)
					continue
				}
				cells = append(cells, cell(ps))
			}
			s.Rows = append(s.Rows, cells)
		}
		phase("Phases", func(ps cachecmp.PhaseSummary) string { return count(ps.N) })
		phase("Phase Mean (MB/s)", func(ps cachecmp.PhaseSummary) string { return f2(ps.Mean) })
		phase("Phase Median (MB/s)", func(ps cachecmp.PhaseSummary) string { return f2(ps.Median) })
		phase("Phase Min (MB/s)", func(ps cachecmp.PhaseSummary) string { return f2(ps.Min) })
		phase("Phase Max (MB/s)", func(ps cachecmp.PhaseSummary) string { return f2(ps.Max) })
	}
	return s
}
