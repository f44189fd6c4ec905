// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineStats summarizes a line diff.
type LineStats struct {
	LinesAdded   int  `json:"linesAdded" yaml:"linesAdded"`
	LinesDeleted int  `json:"linesDeleted" yaml:"linesDeleted"`
	Identical    bool `json:"identical" yaml:"identical"`
}

// Stats counts added and deleted lines between a and b.
func Stats(a, b string) LineStats {
	if a == b {
		return LineStats{Identical: true}
	}
	return statsOf(lineDiffs(diffmatchpatch.New(), a, b))
}

func lineDiffs(dmp *diffmatchpatch.DiffMatchPatch, a, b string) []diffmatchpatch.Diff {
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func statsOf(diffs []diffmatchpatch.Diff) LineStats {
	st := LineStats{Identical: true}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			st.LinesAdded += countLines(d.Text)
			st.Identical = false
		case diffmatchpatch.DiffDelete:
			st.LinesDeleted += countLines(d.Text)
			st.Identical = false
		}
	}
	return st
}

func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
