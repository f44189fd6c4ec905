// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/meta"
)

// CommandBuilder constructs a leaf cli.Command that talks to z/OSMF. The
// builder wires metadata, appends the connection and global output flags and
// installs the shared validators.
type CommandBuilder struct {
	Name      string
	Aliases   []string
	Usage     string
	UsageText string
	ArgsUsage string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, cb.Flags...)
	flags = append(flags, NewConnectionFlags(cb.Meta.Namespace, cb.Meta.Config.Source)...)
	flags = append(flags, NewGlobalFlags()...)

	return &cli.Command{
		Name:      cb.Name,
		Aliases:   cb.Aliases,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		ArgsUsage: cb.ArgsUsage,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: cb.Action,
	}
}
