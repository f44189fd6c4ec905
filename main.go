// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sidharthbh8/zowe-cli/internal/cacheutil"
	"github.com/sidharthbh8/zowe-cli/internal/command"
	"github.com/sidharthbh8/zowe-cli/internal/config"
	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/version"
)

var ctx = context.Background()

// flagAliases maps every short or alternate flag name to its long name.
var flagAliases = map[string]string{
	"H": "host", "P": "port", "u": "user", "pass": "password", "pw": "password",
	"tt": "token-type", "tv": "token-value", "bp": "base-path",
	"ru": "reject-unauthorized", "c": "color", "o": "output",
	"b": "binary", "ec": "encoding", "sn": "seqnum", "cl": "context-lines",
	"bv": "browser-view", "i": "interactive", "rto": "response-timeout",
	"vs": "volume-serial", "b2": "binary2", "ec2": "encoding2", "vs2": "volume-serial2",
	"wk": "workflow-key", "zv": "zosmf-version",
	"h": "help", "v": "version",
}

// boolFlags never take a separate value argument, so the token after them is
// positional.
var boolFlags = map[string]bool{
	"binary": true, "binary2": true, "browser-view": true, "color": true,
	"help": true, "interactive": true, "json": true,
	"reject-unauthorized": true, "seqnum": true, "stats": true, "version": true,
}

// canonicalFlag strips the dashes and any "=value" from a and resolves
// aliases, so "-ec=IBM-037" and "--encoding" both yield "encoding".
func canonicalFlag(a string) string {
	name, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
	if long, ok := flagAliases[name]; ok {
		return long
	}
	return name
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument in place with the entries of the
// <group>.<set> config list.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	for i, a := range args[idx:] {
		if len(a) > 1 && strings.HasPrefix(a, "@") {
			removeIdx := idx + i
			set := a[1:]
			args = append(args[:removeIdx:removeIdx], args[removeIdx+1:]...)

			key := command.Namespace(args[1]) + "." + set
			entries, err := config.GetStringSlice(key)
			if err != nil {
				log.Warnf("no argument set %s: %v", key, err)
			}
			return injectConfigSet(args, entries, removeIdx)
		}
	}
	return args
}

// injectConfigSet splits each entry on whitespace and inserts the fields at
// insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops every occurrence of a flag except the last, so a
// flag given on the command line overrides the same flag from an @set. A flag
// and its aliases count as one flag. Positional arguments keep their place.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		key    string
		tokens []string
	}

	var units []unit
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			units = append(units, unit{tokens: args[i:]})
			break
		}
		if !isFlag(a) {
			units = append(units, unit{tokens: []string{a}})
			continue
		}

		key := canonicalFlag(a)
		hasValue := strings.Contains(a, "=")
		u := unit{key: key, tokens: []string{a}}
		if !hasValue && !boolFlags[key] && i+1 < len(args) && !isFlag(args[i+1]) && args[i+1] != "--" {
			u.tokens = append(u.tokens, args[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.key == "" || last[u.key] == i {
			out = append(out, u.tokens...)
		}
	}
	return out
}

// isFlag reports whether a looks like a flag. Negative numbers are values.
func isFlag(a string) bool {
	if len(a) < 2 || !strings.HasPrefix(a, "-") {
		return false
	}
	if _, err := strconv.Atoi(a); err == nil {
		return false
	}
	return true
}
