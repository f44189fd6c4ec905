// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator runs before every leaf command.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return DisplayModeValidator(c)
}

func OutputValidator(value any) error {
	if s, ok := value.(string); ok && slices.Contains(output.Formats, s) {
		return nil
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}

func ProtocolValidator(value any) error {
	switch value {
	case "http", "https":
		return nil
	}
	return fmt.Errorf("must be one of [http https]")
}

// DisplayModeValidator rejects more than one of the diff display flags.
// Commands without them pass trivially.
func DisplayModeValidator(c *cli.Command) error {
	var set []string
	for _, name := range displayModeFlags {
		if hasFlag(c, name) && c.Bool(name) {
			set = append(set, "--"+name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("only one of %v may be given", set)
	}
	return nil
}

func hasFlag(c *cli.Command, name string) bool {
	for _, f := range c.Flags {
		if slices.Contains(f.Names(), name) {
			return true
		}
	}
	return false
}
