// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func noop(context.Context, *cli.Command) error { return nil }

func testTree() *cli.Command {
	return &cli.Command{
		Name: "zowe",
		Commands: []*cli.Command{
			{
				Name: "auth",
				Commands: []*cli.Command{
					{
						Name: "logout",
						Commands: []*cli.Command{
							{
								Name:      "apiml",
								Usage:     "log out",
								UsageText: "zowe auth logout apiml",
								Flags: []cli.Flag{
									&cli.StringFlag{Name: "token-value", Aliases: []string{"tv"}, Usage: "token"},
									&cli.StringFlag{Name: "host", Aliases: []string{"H"}, Usage: "host name"},
								},
								Action: noop,
							},
						},
					},
				},
			},
			{Name: "completion", Usage: "generate shell completion script", Action: noop},
			{Name: "empty"},
		},
	}
}

func TestCollect(t *testing.T) {
	examples := map[string][]Example{
		"auth logout apiml": {{Command: "zowe auth logout apiml", Description: "Log out"}},
	}

	pages := collect(testTree(), nil, examples)
	require.Len(t, pages, 2)

	assert.Equal(t, "auth-logout-apiml", pages[0].ID)
	assert.Equal(t, "auth logout apiml", pages[0].Path)
	assert.Len(t, pages[0].Examples, 1)
	require.Len(t, pages[0].Flags, 2)
	assert.Equal(t, "--host, -H", pages[0].Flags[0].Names)
	assert.Equal(t, "host name", pages[0].Flags[0].Usage)
	assert.Equal(t, "--token-value, --tv", pages[0].Flags[1].Names)

	assert.Equal(t, "completion", pages[1].ID)
	assert.Empty(t, pages[1].Examples)
}

func TestRender(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(pageTemplate))
	page := collect(testTree(), nil, map[string][]Example{
		"auth logout apiml": {{Command: "zowe auth logout apiml --tv abc", Description: "Revoke a token"}},
	})[0]
	page.Date, page.Version = "January 1, 2026", "1.2.3"

	var buf bytes.Buffer
	require.NoError(t, render(tmpl, &buf, page))

	out := buf.String()
	assert.Contains(t, out, "# zowe auth logout apiml\n")
	assert.Contains(t, out, "| `--host, -H` | host name |")
	assert.Contains(t, out, "Revoke a token")
	assert.Contains(t, out, "zowe auth logout apiml --tv abc")
	assert.Contains(t, out, "version 1.2.3")
}

func TestLoadExamples(t *testing.T) {
	dir := t.TempDir()

	examples, err := loadExamples(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, examples)

	path := filepath.Join(dir, "examples.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
zos-files compare local-file-uss-file:
  - command: zowe zos-files compare lf-uss ./a.txt /u/ibmuser/a.txt
    description: Compare a local file with a USS file
`), 0o600))

	examples, err = loadExamples(path)
	require.NoError(t, err)
	require.Len(t, examples["zos-files compare local-file-uss-file"], 1)
	assert.Equal(t, "Compare a local file with a USS file", examples["zos-files compare local-file-uss-file"][0].Description)

	require.NoError(t, os.WriteFile(path, []byte("- not: a map\n"), 0o600))
	_, err = loadExamples(path)
	assert.Error(t, err)
}
