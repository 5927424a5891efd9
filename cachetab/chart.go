// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fsbench/cachestat/reportfmt"
)

// linePalette is the per-strategy line colors, indexed by the
// strategy's position in the enumeration order.
var linePalette = []color.RGBA{
	{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// ChartPhases writes one PNG per workload, charting the per-phase
// throughput samples of every strategy that reported them. Workloads
// with no phase samples at all are skipped. It returns the paths of
// the files written.
func ChartPhases(set reportfmt.ResultSet, dir string) ([]string, error) {
	var written []string
	for _, bench := range reportfmt.BenchTypes() {
		byCache, ok := set[bench]
		if !ok {
			continue
		}

		p := plot.New()
		p.Title.Text = bench.Display() + " Phase Throughput"
		p.X.Label.Text = "Phase"
		p.Y.Label.Text = "MB/s"

		lines := 0
		for i, cache := range reportfmt.CacheTypes() {
			r, ok := byCache[cache]
			if !ok || len(r.PhaseThroughputs) == 0 {
				continue
			}
			pts := make(plotter.XYs, len(r.PhaseThroughputs))
			for j, v := range r.PhaseThroughputs {
				pts[j].X = float64(j + 1)
				pts[j].Y = v
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return written, err
			}
			line.Color = linePalette[i%len(linePalette)]
			line.Width = vg.Points(2)
			p.Add(line)
			p.Legend.Add(cache.Display(), line)
			lines++
		}
		if lines == 0 {
			continue
		}

		if err := os.MkdirAll(dir, 0777); err != nil {
			return written, err
		}
		path := filepath.Join(dir, string(bench)+"_phases.png")
		if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
