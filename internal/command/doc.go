// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for zowe. It wires connection
// flags, validators, actions, and shell completion for the zos-files,
// zos-workflows and auth command groups.
package command
