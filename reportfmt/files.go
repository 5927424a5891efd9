// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reportfmt

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrNoResults indicates that a collection found no report at all:
// nothing was loaded for any (cache strategy, workload) combination.
var ErrNoResults = errors.New("no benchmark reports found")

// A Collector loads every available report under a results directory.
//
// The expected layout is one subdirectory per cache strategy, each
// holding one "<workload>.ansi" report per workload type. A missing
// directory or file is a diagnostic, not an error: the combination is
// simply absent from the returned set and collection continues.
type Collector struct {
	// Root is the results directory.
	Root string

	// CacheTypes and BenchTypes are the combinations to look for.
	// If nil, they default to CacheTypes() and BenchTypes().
	CacheTypes []CacheType
	BenchTypes []BenchType

	// Logf receives one diagnostic per missing report or strategy
	// directory. If nil, log.Printf is used.
	Logf func(format string, args ...interface{})
}

// Collect reads one report per (cache, workload) combination and
// returns the set of results that were found.
//
// A nonexistent Root is an error. If Root exists but no combination
// yields a report, Collect returns ErrNoResults.
func (c *Collector) Collect() (ResultSet, error) {
	caches := c.CacheTypes
	if caches == nil {
		caches = CacheTypes()
	}
	benches := c.BenchTypes
	if benches == nil {
		benches = BenchTypes()
	}
	logf := c.Logf
	if logf == nil {
		logf = log.Printf
	}

	if _, err := os.Stat(c.Root); err != nil {
		return nil, fmt.Errorf("results directory: %w", err)
	}

	set := make(ResultSet)
	for _, cache := range caches {
		dir := filepath.Join(c.Root, string(cache))
		if _, err := os.Stat(dir); err != nil {
			logf("warning: missing results directory %s", dir)
			continue
		}
		for _, bench := range benches {
			path := filepath.Join(dir, string(bench)+".ansi")
			data, err := os.ReadFile(path)
			if err != nil {
				logf("warning: missing report %s", path)
				continue
			}
			res := Extract(StripANSI(string(data)), cache, bench)
			byCache := set[bench]
			if byCache == nil {
				byCache = make(map[CacheType]*Result)
				set[bench] = byCache
			}
			byCache[cache] = res
		}
	}

	if len(set) == 0 {
		return nil, ErrNoResults
	}
	return set, nil
}
