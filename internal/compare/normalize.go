// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import "strings"

// SequenceNumberWidth is the width of the sequence number field in columns
// 73-80 of a fixed 80-byte record.
const SequenceNumberWidth = 8

// StripSequenceNumbers drops the last width characters of every line,
// including the final one. Lines no longer than width become empty; they are
// not checked for actually carrying a sequence number.
func StripSequenceNumbers(content string, width int) string {
	if width <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		r := []rune(line)
		if len(r) <= width {
			lines[i] = ""
			continue
		}
		lines[i] = string(r[:len(r)-width])
	}
	return strings.Join(lines, "\n")
}
