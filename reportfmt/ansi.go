// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reportfmt

import "regexp"

// ansiPattern matches the two control-sequence shapes the harness
// emits: a full escape sequence (ESC, a bracketed parameter list, a
// terminating letter) and a truncated one that lost its escape byte
// but kept the bracketed parameters and the "m" terminator.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]|\[[0-9;]*m`)

// StripANSI removes terminal color and formatting sequences from s.
// Every other byte, including whitespace, keeps its position and
// order. Removal is a single pass, so applying StripANSI to already
// clean text returns it unchanged; remnants of overlapping sequences
// that happen to reassemble into a new sequence are not re-stripped.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
