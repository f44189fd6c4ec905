// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/sidharthbh8/zowe-cli/internal/config"
)

// Mode selects how a diff is presented.
type Mode int

const (
	ModeTerminal Mode = iota
	ModeBrowser
	ModeJSON
	ModeInteractive
)

func (m Mode) String() string {
	switch m {
	case ModeTerminal:
		return "terminal"
	case ModeBrowser:
		return "browser"
	case ModeJSON:
		return "json"
	case ModeInteractive:
		return "interactive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Options controls Render.
type Options struct {
	Mode Mode
	// ContextLines is the number of unchanged lines around each hunk. A
	// negative value expands the whole file into a single hunk.
	ContextLines int
	Color        bool
	FromLabel    string
	ToLabel      string
}

// Render produces the diff of a against b. Identical inputs yield "" in every
// mode except browser, which always reports where the page went.
func Render(a, b string, opts Options) (string, error) {
	log.Debugf("render diff: mode=%s context=%d len=%d/%d", opts.Mode, opts.ContextLines, len(a), len(b))

	switch opts.Mode {
	case ModeTerminal:
		return Patch(a, b, opts)
	case ModeBrowser:
		return Browser(a, b, opts)
	case ModeJSON:
		return JSON(a, b, opts)
	case ModeInteractive:
		patch, err := Patch(a, b, opts)
		if err != nil || patch == "" {
			return patch, err
		}
		if err := runViewer(newViewer(opts.FromLabel+" → "+opts.ToLabel, patch)); err != nil {
			return "", fmt.Errorf("failed to run diff viewer: %w", err)
		}
		return patch, nil
	}
	return "", fmt.Errorf("unknown diff mode %d", int(opts.Mode))
}

// Patch returns a unified diff of a and b.
func Patch(a, b string, opts Options) (string, error) {
	if a == b {
		return "", nil
	}

	la, lb := splitLines(a), splitLines(b)
	context := opts.ContextLines
	if context < 0 {
		context = max(len(la), len(lb))
	}

	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        la,
		B:        lb,
		FromFile: labelOr(opts.FromLabel, "source"),
		ToFile:   labelOr(opts.ToLabel, "target"),
		Context:  context,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build patch: %w", err)
	}

	if opts.Color {
		patch = colorize(patch)
	}
	return patch, nil
}

// splitLines breaks s into newline-terminated lines. An empty string has no
// lines and a missing final newline is supplied.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}

// JSON returns a structural diff of two JSON objects.
func JSON(a, b string, opts Options) (string, error) {
	delta, err := gojsondiff.New().Compare([]byte(a), []byte(b))
	if err != nil {
		return "", fmt.Errorf("failed to compare JSON documents: %w", err)
	}

	if !delta.Modified() {
		return "", nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal([]byte(a), &jdoc); err != nil {
		return "", fmt.Errorf("failed to unmarshal JSON document: %w", err)
	}

	f := formatter.NewAsciiFormatter(jdoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	})
	return f.Format(delta)
}

// colorize styles each patch line by its marker.
func colorize(patch string) string {
	var (
		header  = lipgloss.NewStyle().Bold(true)
		hunk    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOr("diff.colors.hunk", "6")))
		added   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOr("diff.colors.added", "2")))
		deleted = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOr("diff.colors.deleted", "1")))
	)

	lines := strings.SplitAfter(patch, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		nl := line[len(text):]
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			text = header.Render(text)
		case strings.HasPrefix(text, "@@"):
			text = hunk.Render(text)
		case strings.HasPrefix(text, "+"):
			text = added.Render(text)
		case strings.HasPrefix(text, "-"):
			text = deleted.Render(text)
		}
		sb.WriteString(text + nl)
	}
	return sb.String()
}

func colorOr(key, fallback string) string {
	if c, err := config.GetString(key); err == nil && c != "" {
		return c
	}
	return fallback
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
