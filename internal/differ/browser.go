// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/apex/log"
	"github.com/pkg/browser"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sidharthbh8/zowe-cli/internal/cacheutil"
	"github.com/sidharthbh8/zowe-cli/internal/config"
)

// openFile launches the system browser. Replaced in tests.
var openFile = browser.OpenFile

var pageTemplate = template.Must(template.New("diff").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.From}} vs {{.To}}</title>
<style>
body { font-family: monospace; white-space: pre-wrap; }
ins { background: #e6ffed; text-decoration: none; }
del { background: #ffeef0; }
h1 { font-size: 1em; }
</style>
</head>
<body>
<h1>--- {{.From}}<br>+++ {{.To}}</h1>
<p>{{.Added}} line(s) added, {{.Deleted}} line(s) deleted</p>
<div>{{.Body}}</div>
</body>
</html>
`))

// HTML returns a standalone page showing the line diff of a and b.
func HTML(a, b string, opts Options) ([]byte, error) {
	dmp := diffmatchpatch.New()
	diffs := lineDiffs(dmp, a, b)
	st := statsOf(diffs)

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		From, To       string
		Added, Deleted int
		Body           template.HTML
	}{
		From:    labelOr(opts.FromLabel, "source"),
		To:      labelOr(opts.ToLabel, "target"),
		Added:   st.LinesAdded,
		Deleted: st.LinesDeleted,
		Body:    template.HTML(dmp.DiffPrettyHtml(diffs)), //nolint:gosec // DiffPrettyHtml escapes its text.
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render diff page: %w", err)
	}
	return buf.Bytes(), nil
}

// Browser writes the diff page to the cache directory and opens it. The same
// inputs reuse the page already on disk. The return value is a confirmation
// for the user; the browser itself is not waited on.
func Browser(a, b string, opts Options) (string, error) {
	hours, _ := config.GetInt("cache.clean", 24) //nolint:mnd
	if err := cacheutil.Purge(hours); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	key := opts.FromLabel + "\x00" + opts.ToLabel + "\x00" + a + "\x00" + b
	path, err := pagePath(key, a, b, opts)
	if err != nil {
		return "", err
	}

	if err := openFile(path); err != nil {
		return "", fmt.Errorf("failed to launch browser for %s: %w", path, err)
	}
	return fmt.Sprintf("Launching diff in browser: %s", path), nil
}

func pagePath(key, a, b string, opts Options) (string, error) {
	subdirs := []string{"diffs"}
	if entry, ok := cacheutil.Read(subdirs, key, ".html"); ok {
		return entry.Path, nil
	}

	page, err := HTML(a, b, opts)
	if err != nil {
		return "", err
	}

	path, err := cacheutil.Write(subdirs, key, page, ".html")
	if err != nil {
		log.WithError(err).Warn("failed to cache diff page")
	}
	if path != "" {
		return path, nil
	}

	// Caching is off; fall back to a temp file.
	f, err := os.CreateTemp("", "zowe-diff-*.html")
	if err != nil {
		return "", fmt.Errorf("failed to create diff page: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(page); err != nil {
		return "", fmt.Errorf("failed to write diff page: %w", err)
	}
	return f.Name(), nil
}
