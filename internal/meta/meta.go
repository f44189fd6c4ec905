// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/sidharthbh8/zowe-cli/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the command group namespace used for config
// lookups, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Namespace   string
	StartingDir string
}
