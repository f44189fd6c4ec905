// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/meta"
	"github.com/sidharthbh8/zowe-cli/internal/output"
	"github.com/sidharthbh8/zowe-cli/internal/workflows"
)

func workflowsCommandBuilder(meta meta.Meta) *cli.Command {
	archive := &cli.Command{
		Name:    "archive",
		Aliases: []string{"arw"},
		Usage:   "archive a z/OSMF workflow",
		Commands: []*cli.Command{
			(&CommandBuilder{
				Name:      "active-workflow",
				Aliases:   []string{"aw"},
				Usage:     "archive an active workflow instance",
				UsageText: "zowe zos-workflows archive active-workflow --workflow-key <key> [options]",
				Flags:     workflowFlags(),
				Action:    archiveCommandAction,
				Meta:      meta,
			}).Build(),
		},
	}

	remove := &cli.Command{
		Name:    "delete",
		Aliases: []string{"del"},
		Usage:   "delete a z/OSMF workflow",
		Commands: []*cli.Command{
			(&CommandBuilder{
				Name:      "active-workflow",
				Aliases:   []string{"dw"},
				Usage:     "delete an active workflow instance",
				UsageText: "zowe zos-workflows delete active-workflow --workflow-key <key> [options]",
				Flags:     workflowFlags(),
				Action:    deleteCommandAction,
				Meta:      meta,
			}).Build(),
		},
	}

	return &cli.Command{
		Name:    "zos-workflows",
		Aliases: []string{"wf"},
		Usage:   "archive and delete z/OSMF workflows",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{archive, remove},
	}
}

func workflowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "workflow-key",
			Aliases: []string{"wk"},
			Usage:   "key of the workflow instance",
		},
		&cli.StringFlag{
			Name:    "zosmf-version",
			Aliases: []string{"zv"},
			Usage:   "z/OSMF workflow REST API version (default " + workflows.DefaultVersion + ")",
		},
	}
}

func archiveCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := SessionFromFlags(cmd)
	if err != nil {
		return err
	}

	key := cmd.String("workflow-key")
	archived, err := workflows.ArchiveWorkflowByKey(ctx, newDoer(cmd), s, key, cmd.String("zosmf-version"))
	if err != nil {
		return err
	}

	return Emit(cmd, output.Response{
		Success:         true,
		CommandResponse: "Workflow archived with workflow-key " + archived.WorkflowKey + ".",
		APIResponse:     archived,
	}, false)
}

func deleteCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := SessionFromFlags(cmd)
	if err != nil {
		return err
	}

	key := cmd.String("workflow-key")
	if err := workflows.DeleteWorkflow(ctx, newDoer(cmd), s, key, cmd.String("zosmf-version")); err != nil {
		return err
	}

	return Emit(cmd, output.Response{
		Success:         true,
		CommandResponse: "Workflow deleted.",
	}, false)
}
