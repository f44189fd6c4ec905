// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sidharthbh8/zowe-cli/internal/compare"
	"github.com/sidharthbh8/zowe-cli/internal/differ"
	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/meta"
	"github.com/sidharthbh8/zowe-cli/internal/output"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosfiles"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

// IdenticalMessage is printed when the normalized contents do not differ.
const IdenticalMessage = "The contents are identical."

var displayModeFlags = []string{"browser-view", "interactive", "json"}

// sourceFunc turns a positional argument into a compare.Source.
type sourceFunc func(arg string, doer zosmf.Doer, s *session.Session, opts zosfiles.Options) compare.Source

func localSource(arg string, _ zosmf.Doer, _ *session.Session, _ zosfiles.Options) compare.Source {
	return compare.LocalFile{Path: arg}
}

func ussSource(arg string, doer zosmf.Doer, s *session.Session, opts zosfiles.Options) compare.Source {
	return compare.USSFile{Doer: doer, Session: s, Path: arg, Options: opts}
}

func dataSetSource(arg string, doer zosmf.Doer, s *session.Session, opts zosfiles.Options) compare.Source {
	return compare.DataSet{Doer: doer, Session: s, Name: arg, Options: opts}
}

// compareKind describes one compare subcommand.
type compareKind struct {
	name    string
	aliases []string
	usage   string
	args    [2]string
	source  sourceFunc
	target  sourceFunc
	// second is true when the target is the second remote and takes the
	// --binary2/--encoding2/--volume-serial2 flags.
	second bool
}

var compareKinds = []compareKind{
	{
		name:    "local-file-uss-file",
		aliases: []string{"lf-uss"},
		usage:   "compare the contents of a local file and a z/OS USS file",
		args:    [2]string{"localFilePath", "ussFilePath"},
		source:  localSource,
		target:  ussSource,
	},
	{
		name:    "local-file-data-set",
		aliases: []string{"lf-ds"},
		usage:   "compare the contents of a local file and a z/OS data set member",
		args:    [2]string{"localFilePath", "dataSetName"},
		source:  localSource,
		target:  dataSetSource,
	},
	{
		name:    "uss-file",
		aliases: []string{"uss"},
		usage:   "compare the contents of two z/OS USS files",
		args:    [2]string{"ussFilePath1", "ussFilePath2"},
		source:  ussSource,
		target:  ussSource,
		second:  true,
	},
	{
		name:    "data-set",
		aliases: []string{"ds"},
		usage:   "compare the contents of two z/OS data sets",
		args:    [2]string{"dataSetName1", "dataSetName2"},
		source:  dataSetSource,
		target:  dataSetSource,
		second:  true,
	},
}

func filesCommandBuilder(meta meta.Meta) *cli.Command {
	compareCmd := &cli.Command{
		Name:    "compare",
		Aliases: []string{"cmp"},
		Usage:   "compare the contents of local files, USS files and data sets",
		Metadata: map[string]any{
			"meta": meta,
		},
	}
	for _, kind := range compareKinds {
		compareCmd.Commands = append(compareCmd.Commands, compareCommandBuilder(meta, kind))
	}

	return &cli.Command{
		Name:    "zos-files",
		Aliases: []string{"files"},
		Usage:   "manage z/OS data sets and USS files",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{compareCmd},
	}
}

func compareCommandBuilder(meta meta.Meta, kind compareKind) *cli.Command {
	return (&CommandBuilder{
		Name:      kind.name,
		Aliases:   kind.aliases,
		Usage:     kind.usage,
		UsageText: fmt.Sprintf("zowe zos-files compare %s <%s> <%s> [options]", kind.name, kind.args[0], kind.args[1]),
		Flags:     compareFlags(kind.second),
		Action:    compareCommandAction(kind),
		Meta:      meta,
	}).Build()
}

func compareFlags(second bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "binary",
			Aliases: []string{"b"},
			Usage:   "transfer the remote content in binary mode (no EBCDIC to ASCII conversion)",
		},
		&cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"ec"},
			Usage:   "transfer the remote content with this code page, e.g. IBM-1047",
		},
		&cli.BoolFlag{
			Name:    "seqnum",
			Aliases: []string{"sn"},
			Usage:   "compare the sequence numbers in columns 73-80; use --seqnum=false to strip them",
			Value:   true,
		},
		&cli.IntFlag{
			Name:    "context-lines",
			Aliases: []string{"cl"},
			Usage:   "number of context lines around each change; negative shows the whole file",
			Value:   -1,
		},
		&cli.BoolFlag{
			Name:    "browser-view",
			Aliases: []string{"bv"},
			Usage:   "open the diff in the default browser",
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "page through the diff in the terminal",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "compare the contents as JSON documents",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "follow the diff with a table of line statistics",
		},
		&cli.IntFlag{
			Name:    "response-timeout",
			Aliases: []string{"rto"},
			Usage:   "seconds z/OSMF allows before returning status 408",
		},
		&cli.StringFlag{
			Name:    "volume-serial",
			Aliases: []string{"vs"},
			Usage:   "volume serial of an uncataloged data set",
		},
	}

	if second {
		flags = append(flags,
			&cli.BoolFlag{
				Name:    "binary2",
				Aliases: []string{"b2"},
				Usage:   "transfer the second file in binary mode; defaults to --binary",
			},
			&cli.StringFlag{
				Name:    "encoding2",
				Aliases: []string{"ec2"},
				Usage:   "code page of the second file; defaults to --encoding",
			},
			&cli.StringFlag{
				Name:    "volume-serial2",
				Aliases: []string{"vs2"},
				Usage:   "volume serial of the second data set; defaults to --volume-serial",
			},
		)
	}

	return flags
}

func compareCommandAction(kind compareKind) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args().Slice()
		if len(args) != 2 {
			return fmt.Errorf("expected <%s> and <%s>, got %d argument(s)", kind.args[0], kind.args[1], len(args))
		}

		s, err := SessionFromFlags(cmd)
		if err != nil {
			return err
		}
		doer := newDoer(cmd)

		first, second := transferOptions(cmd, kind.second)
		mode := displayMode(cmd)
		in := compare.Input{
			Source:               kind.source(args[0], doer, s, first),
			Target:               kind.target(args[1], doer, s, second),
			StripSequenceNumbers: !cmd.Bool("seqnum"),
			Render: differ.Options{
				Mode:         mode,
				ContextLines: cmd.Int("context-lines"),
				Color:        cmd.Bool("color") && textOutput(cmd),
			},
		}

		result, err := compare.Compare(ctx, in)
		if err != nil {
			return err
		}
		log.Debugf("compare result: mode=%s identical=%t", result.DisplayMode, result.Stats.Identical)

		msg := result.RenderedDiff
		switch {
		case mode == differ.ModeBrowser:
		case msg == "":
			msg = IdenticalMessage
		case mode == differ.ModeInteractive:
			// Already shown by the viewer.
			msg = ""
		}

		return Emit(cmd, output.Response{
			Success:         result.Success,
			CommandResponse: msg,
			APIResponse:     result,
		}, cmd.Bool("stats"), "renderedDiff")
	}
}

// transferOptions returns the zosfiles options for the source and target.
// The second side inherits any option not overridden by its *2 flag.
func transferOptions(cmd *cli.Command, second bool) (zosfiles.Options, zosfiles.Options) {
	first := zosfiles.Options{
		Binary:          cmd.Bool("binary"),
		Encoding:        cmd.String("encoding"),
		ResponseTimeout: time.Duration(cmd.Int("response-timeout")) * time.Second,
		VolumeSerial:    cmd.String("volume-serial"),
	}
	if !second {
		return first, first
	}

	other := first
	if cmd.IsSet("binary2") {
		other.Binary = cmd.Bool("binary2")
	}
	if cmd.IsSet("encoding2") {
		other.Encoding = cmd.String("encoding2")
	}
	if cmd.IsSet("volume-serial2") {
		other.VolumeSerial = cmd.String("volume-serial2")
	}
	return first, other
}

func displayMode(cmd *cli.Command) differ.Mode {
	switch {
	case cmd.Bool("browser-view"):
		return differ.ModeBrowser
	case cmd.Bool("interactive"):
		return differ.ModeInteractive
	case cmd.Bool("json"):
		return differ.ModeJSON
	}
	return differ.ModeTerminal
}

func textOutput(cmd *cli.Command) bool {
	o := cmd.String("output")
	return o == "" || o == "text"
}
