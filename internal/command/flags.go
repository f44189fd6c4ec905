// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/sidharthbh8/zowe-cli/internal/session"
)

// NewGlobalFlags returns the output flags every leaf command carries.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   term.IsTerminal(int(os.Stdout.Fd())),
			Sources: cli.EnvVars("ZOWE_COLOR"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml, raw)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}

	return
}

// NewConnectionFlags returns the z/OSMF connection flags. Each resolves from
// the flag, then ZOWE_OPT_<NAME>, then the namespaced key in the config file
// (zos-files.host), then the global key (host).
func NewConnectionFlags(ns string, path string) []cli.Flag {
	host := &cli.StringFlag{
		Name:    "host",
		Aliases: []string{"H"},
		Usage:   "z/OSMF or API ML gateway host name",
		Sources: cli.EnvVars("ZOWE_OPT_HOST"),
	}
	port := &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"P"},
		Usage:   "z/OSMF or API ML gateway port",
		Value:   session.DefaultPort,
		Sources: cli.EnvVars("ZOWE_OPT_PORT"),
	}
	user := &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "mainframe user name",
		Sources: cli.EnvVars("ZOWE_OPT_USER"),
	}
	password := &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"pass", "pw"},
		Usage:   "mainframe password; prompted for when a user is given and no token is",
		Sources: cli.EnvVars("ZOWE_OPT_PASSWORD"),
	}
	tokenType := &cli.StringFlag{
		Name:    "token-type",
		Aliases: []string{"tt"},
		Usage:   "type of the token cookie, e.g. apimlAuthenticationToken or LtpaToken2",
		Sources: cli.EnvVars("ZOWE_OPT_TOKEN_TYPE"),
	}
	tokenValue := &cli.StringFlag{
		Name:    "token-value",
		Aliases: []string{"tv"},
		Usage:   "value of the token cookie",
		Sources: cli.EnvVars("ZOWE_OPT_TOKEN_VALUE"),
	}
	basePath := &cli.StringFlag{
		Name:    "base-path",
		Aliases: []string{"bp"},
		Usage:   "path prefixed to every resource, e.g. /ibmzosmf/api/v1 behind API ML",
		Sources: cli.EnvVars("ZOWE_OPT_BASE_PATH"),
	}
	protocol := &cli.StringFlag{
		Name:    "protocol",
		Usage:   "protocol to use (http, https)",
		Value:   session.DefaultProtocol,
		Sources: cli.EnvVars("ZOWE_OPT_PROTOCOL"),
		Validator: func(value string) error {
			return FlagValidators(value, ProtocolValidator)
		},
	}
	rejectUnauthorized := &cli.BoolFlag{
		Name:    "reject-unauthorized",
		Aliases: []string{"ru"},
		Usage:   "reject self-signed certificates",
		Value:   true,
		Sources: cli.EnvVars("ZOWE_OPT_REJECT_UNAUTHORIZED"),
	}

	NameSpacedValueChainFromConfigFile(ns, path, host.Name, &host.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, port.Name, &port.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, user.Name, &user.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, password.Name, &password.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, tokenType.Name, &tokenType.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, tokenValue.Name, &tokenValue.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, basePath.Name, &basePath.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, protocol.Name, &protocol.Sources)
	NameSpacedValueChainFromConfigFile(ns, path, rejectUnauthorized.Name, &rejectUnauthorized.Sources)

	return []cli.Flag{host, port, user, password, tokenType, tokenValue, basePath, protocol, rejectUnauthorized}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources to a flag's Sources chain. Without a config file it does nothing.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, sources *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+name, altsrc.StringSourcer(path))
		sources.Chain = append(sources.Chain, src)
	}

	src := yaml.YAML(name, altsrc.StringSourcer(path))
	sources.Chain = append(sources.Chain, src)
}
