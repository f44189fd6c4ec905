// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/config"
	"github.com/sidharthbh8/zowe-cli/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the command
	// group and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = Namespace(args[1])
	}

	// A missing config file is fine; flags and env still resolve.
	cfg, _ := config.Load() //nolint
	config.Config.Namespace = ns
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Namespace:   ns,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "zowe",
		Usage: "z/OSMF command line client",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "zowe version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		authCommandBuilder(meta),
		filesCommandBuilder(meta),
		workflowsCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app.Commands)

	return app, nil
}

// groupAliases maps command group aliases to the group name used as the
// config namespace.
var groupAliases = map[string]string{
	"files": "zos-files",
	"wf":    "zos-workflows",
}

// Namespace returns the config namespace for a command group or its alias.
func Namespace(group string) string {
	if ns, ok := groupAliases[group]; ok {
		return ns
	}
	return group
}

func sortFlags(cmds []*cli.Command) {
	for _, cmd := range cmds {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
		sortFlags(cmd.Commands)
	}
}
