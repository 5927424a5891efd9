// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ToText renders the full analysis as fixed-width text tables,
// assuming a fixed-width font.
func (t *Tables) ToText(w io.Writer) error {
	for i, s := range t.Sections() {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", s.Title, strings.Repeat("-", utf8.RuneCountInString(s.Title))); err != nil {
			return err
		}
		if err := formatGrid(w, s.Header, s.Rows); err != nil {
			return err
		}
	}
	return nil
}

// formatGrid lays out one header row and its data rows as aligned
// fixed-width columns: a measuring pass over every cell, then an
// emission pass. The label column is left-aligned, all value columns
// right-aligned under their left-aligned headings.
func formatGrid(w io.Writer, header []string, rows [][]string) error {
	var max []int
	measure := func(cells []string) {
		for len(max) < len(cells) {
			max = append(max, 0)
		}
		for i, s := range cells {
			if n := utf8.RuneCountInString(s); n > max[i] {
				max[i] = n
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	for i, s := range header {
		var err error
		switch {
		case i == 0:
			_, err = fmt.Fprintf(w, "%-*s", max[i], s)
		case i == len(header)-1:
			_, err = fmt.Fprintf(w, "  %s", s)
		default:
			_, err = fmt.Fprintf(w, "  %-*s", max[i], s)
		}
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for _, row := range rows {
		for i, s := range row {
			var err error
			if i == 0 {
				_, err = fmt.Fprintf(w, "%-*s", max[i], s)
			} else {
				_, err = fmt.Fprintf(w, "  %*s", max[i], s)
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
