// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachecmp

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/fsbench/cachestat/reportfmt"
)

// Best returns the strategy with the best value under m among those
// present in values, walking order so that ties keep enumeration-order
// precedence: the first strategy encountered wins. ok is false when no
// strategy is present.
func Best(values map[reportfmt.CacheType]float64, order []reportfmt.CacheType, m Metric) (best reportfmt.CacheType, ok bool) {
	var bestVal float64
	for _, c := range order {
		v, present := values[c]
		if !present {
			continue
		}
		if !ok || m.BetterThan(v, bestVal) {
			best, bestVal, ok = c, v, true
		}
	}
	return best, ok
}

// Worst is the counterpart of Best, with the same tie-break.
func Worst(values map[reportfmt.CacheType]float64, order []reportfmt.CacheType, m Metric) (worst reportfmt.CacheType, ok bool) {
	var worstVal float64
	for _, c := range order {
		v, present := values[c]
		if !present {
			continue
		}
		if !ok || m.BetterThan(worstVal, v) {
			worst, worstVal, ok = c, v, true
		}
	}
	return worst, ok
}

// A Ranking places one strategy within a workload's ordering for a
// metric. Speedup compares against the no-cache baseline and is
// meaningless when HasSpeedup is false.
type Ranking struct {
	Cache      reportfmt.CacheType
	Value      float64
	Speedup    float64
	HasSpeedup bool
}

// Rank orders the strategies present in values from best to worst
// under m, attaching the speedup against the baseline strategy's value
// where one can be computed. The sort is stable over order, so tied
// strategies keep enumeration-order precedence.
func Rank(values map[reportfmt.CacheType]float64, order []reportfmt.CacheType, m Metric, baseline reportfmt.CacheType) []Ranking {
	var rs []Ranking
	for _, c := range order {
		if v, present := values[c]; present {
			rs = append(rs, Ranking{Cache: c, Value: v})
		}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return m.BetterThan(rs[i].Value, rs[j].Value)
	})

	base, hasBase := values[baseline]
	if !hasBase {
		return rs
	}
	for i := range rs {
		if rs[i].Cache == baseline {
			continue
		}
		rs[i].Speedup, rs[i].HasSpeedup = Speedup(rs[i].Value, base)
	}
	return rs
}

// GeoMeanRatio summarizes a set of per-workload speedup ratios into a
// single figure. ok is false for an empty set or when any ratio makes
// the geometric mean undefined.
func GeoMeanRatio(ratios []float64) (float64, bool) {
	if len(ratios) == 0 {
		return 0, false
	}
	gm := stats.GeoMean(ratios)
	if math.IsNaN(gm) {
		return 0, false
	}
	return gm, true
}
