// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/auth"
	"github.com/sidharthbh8/zowe-cli/internal/meta"
	"github.com/sidharthbh8/zowe-cli/internal/output"
)

// LogoutMessage is printed after the API ML token has been revoked.
const LogoutMessage = "Logout successful. The authentication token has been revoked."

func authCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "connect to the API Mediation Layer authentication service",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:    "logout",
				Aliases: []string{"lo"},
				Usage:   "log out of an authentication service",
				Commands: []*cli.Command{
					(&CommandBuilder{
						Name:      "apiml",
						Usage:     "log out of the API Mediation Layer and revoke the token",
						UsageText: "zowe auth logout apiml --token-type apimlAuthenticationToken --token-value <token> [options]",
						Action:    logoutCommandAction,
						Meta:      meta,
					}).Build(),
				},
			},
		},
	}
}

func logoutCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := SessionFromFlags(cmd)
	if err != nil {
		return err
	}

	// The logout resource lives on the gateway itself.
	s.BasePath = ""
	if err := auth.Logout(ctx, newDoer(cmd), s); err != nil {
		return err
	}

	return Emit(cmd, output.Response{
		Success:         true,
		CommandResponse: LogoutMessage,
	}, false)
}
