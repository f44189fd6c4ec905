// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen renders a markdown page for every leaf command of the zowe CLI.
// Examples come from <docs>/templates/examples.yaml, keyed by command path.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/sidharthbh8/zowe-cli/internal/command"
)

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Names   string
	Usage   string
	Default string
}

type Page struct {
	ID        string
	Path      string
	Usage     string
	UsageText string
	Aliases   []string
	Flags     []Flag
	Examples  []Example
	Date      string
	Version   string
}

const pageTemplate = `# zowe {{.Path}}

{{.Usage}}
{{- if .Aliases}}

Aliases: {{range $i, $a := .Aliases}}{{if $i}}, {{end}}` + "`{{$a}}`" + `{{end}}
{{- end}}
{{- if .UsageText}}

## Usage

` + "```" + `
{{.UsageText}}
` + "```" + `
{{- end}}
{{- if .Flags}}

## Options

| Flag | Description | Default |
|---|---|---|
{{- range .Flags}}
| ` + "`{{.Names}}`" + ` | {{.Usage}} | {{.Default}} |
{{- end}}
{{- end}}
{{- if .Examples}}

## Examples
{{range .Examples}}
{{.Description}}

` + "```" + `
{{.Command}}
` + "```" + `
{{end}}
{{- end}}

_Generated {{.Date}} for version {{.Version}}._
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(docs string) error {
	examples, err := loadExamples(filepath.Join(docs, "templates", "examples.yaml"))
	if err != nil {
		return err
	}

	app, err := command.InitApp(context.Background(), []string{"zowe"})
	if err != nil {
		return err
	}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return err
	}

	tmpl := template.Must(template.New("page").Parse(pageTemplate))
	date, version := time.Now().Format("January 2, 2006"), getVersion()
	for _, page := range collect(app, nil, examples) {
		page.Date, page.Version = date, version
		name := filepath.Join(folder, page.ID+".md")
		fmt.Println("Generating", name)
		if err := writePage(tmpl, name, page); err != nil {
			return err
		}
	}
	return nil
}

func writePage(tmpl *template.Template, name string, page Page) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return render(tmpl, file, page)
}

func render(tmpl *template.Template, w io.Writer, page Page) error {
	return tmpl.Execute(w, page)
}

// loadExamples reads the examples file. A missing file means no examples.
func loadExamples(path string) (map[string][]Example, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]Example{}, nil
	}
	if err != nil {
		return nil, err
	}

	examples := map[string][]Example{}
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return examples, nil
}

// collect walks the command tree depth first and returns a page per leaf.
func collect(cmd *cli.Command, parents []string, examples map[string][]Example) []Page {
	var path []string
	if len(parents) > 0 || cmd.Name != "zowe" {
		path = append(append([]string{}, parents...), cmd.Name)
	}

	if len(cmd.Commands) == 0 {
		if cmd.Action == nil || len(path) == 0 {
			return nil
		}
		key := strings.Join(path, " ")
		return []Page{{
			ID:        strings.Join(path, "-"),
			Path:      key,
			Usage:     cmd.Usage,
			UsageText: cmd.UsageText,
			Aliases:   cmd.Aliases,
			Flags:     flags(cmd.Flags),
			Examples:  examples[key],
		}}
	}

	var pages []Page
	for _, sub := range cmd.Commands {
		pages = append(pages, collect(sub, path, examples)...)
	}
	return pages
}

func flags(in []cli.Flag) []Flag {
	out := make([]Flag, 0, len(in))
	for _, f := range in {
		names := f.Names()
		for i, n := range names {
			if len(n) == 1 {
				names[i] = "-" + n
			} else {
				names[i] = "--" + n
			}
		}
		flag := Flag{Names: strings.Join(names, ", ")}
		if u, ok := f.(interface{ GetUsage() string }); ok {
			flag.Usage = u.GetUsage()
		}
		if d, ok := f.(interface{ GetDefaultText() string }); ok {
			flag.Default = d.GetDefaultText()
		}
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Names < out[j].Names
	})
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
