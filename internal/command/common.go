// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/config"
	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/meta"
	"github.com/sidharthbh8/zowe-cli/internal/output"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

// newDoer returns the transport used by command actions. Tests replace it.
var newDoer = func(cmd *cli.Command) zosmf.Doer {
	retries, err := config.GetInt("rest.retries", 0)
	if err != nil {
		log.WithError(err).Warnf("ignoring rest.retries")
	}
	return zosmf.NewClient(zosmf.WithRetries(retries))
}

// promptPassword is the interactive password hook. Tests replace it.
var promptPassword = session.PromptPassword

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SessionFromFlags builds a session from the resolved connection flags and
// prompts for a password when a user was given without one.
func SessionFromFlags(cmd *cli.Command) (*session.Session, error) {
	s := &session.Session{
		Hostname:           cmd.String("host"),
		Port:               cmd.Int("port"),
		Protocol:           cmd.String("protocol"),
		BasePath:           cmd.String("base-path"),
		User:               cmd.String("user"),
		Password:           cmd.String("password"),
		TokenType:          cmd.String("token-type"),
		TokenValue:         cmd.String("token-value"),
		RejectUnauthorized: cmd.Bool("reject-unauthorized"),
	}
	log.Debugf("session: %s", s)

	if err := promptPassword(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Emit renders a command response in the format chosen by --output.
func Emit(cmd *cli.Command, resp output.Response, table bool, hide ...string) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return output.Spit(resp, output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Table:  table,
		Hide:   hide,
	}, w)
}
