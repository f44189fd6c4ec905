// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"context"
	"errors"

	"github.com/sidharthbh8/zowe-cli/internal/differ"
	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosfiles"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

// Source is one side of a comparison.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
	Label() string
}

// LocalFile is a file on the workstation.
type LocalFile struct {
	Path string
}

func (l LocalFile) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadLocalFile(l.Path)
}

func (l LocalFile) Label() string { return l.Path }

// USSFile is a z/OS UNIX file read through z/OSMF.
type USSFile struct {
	Doer    zosmf.Doer
	Session *session.Session
	Path    string
	Options zosfiles.Options
}

func (u USSFile) Load(ctx context.Context) ([]byte, error) {
	b, err := zosfiles.GetUSSFile(ctx, u.Doer, u.Session, u.Path, u.Options)
	return b, zosmf.Friendly(err, errorContext(u.Session, "read USS file", u.Path))
}

func (u USSFile) Label() string { return u.Path }

// DataSet is a sequential data set or PDS member read through z/OSMF.
type DataSet struct {
	Doer    zosmf.Doer
	Session *session.Session
	Name    string
	Options zosfiles.Options
}

func (d DataSet) Load(ctx context.Context) ([]byte, error) {
	b, err := zosfiles.GetDataSet(ctx, d.Doer, d.Session, d.Name, d.Options)
	return b, zosmf.Friendly(err, errorContext(d.Session, "read data set", d.Name))
}

func (d DataSet) Label() string { return d.Name }

// Input describes one comparison.
type Input struct {
	Source Source
	Target Source
	// StripSequenceNumbers removes the trailing SequenceNumberWidth characters
	// of every line on both sides before diffing.
	StripSequenceNumbers bool
	Render               differ.Options
}

// Result is the outcome of Compare. RenderedDiff is empty when the normalized
// contents are identical, except in browser mode where it is the launch
// confirmation.
type Result struct {
	Success      bool             `json:"success" yaml:"success"`
	RenderedDiff string           `json:"renderedDiff" yaml:"renderedDiff"`
	DisplayMode  string           `json:"displayMode" yaml:"displayMode"`
	Stats        differ.LineStats `json:"stats" yaml:"stats"`
}

// Compare loads the source and then the target, normalizes both and renders
// their difference. A load failure stops the pipeline and is returned as is.
func Compare(ctx context.Context, in Input) (*Result, error) {
	if in.Source == nil || in.Target == nil {
		return nil, errors.New("both a source and a target are required")
	}

	a, err := in.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	b, err := in.Target.Load(ctx)
	if err != nil {
		return nil, err
	}

	sa, sb := string(a), string(b)
	if in.StripSequenceNumbers {
		sa = StripSequenceNumbers(sa, SequenceNumberWidth)
		sb = StripSequenceNumbers(sb, SequenceNumberWidth)
	}

	opts := in.Render
	if opts.FromLabel == "" {
		opts.FromLabel = in.Source.Label()
	}
	if opts.ToLabel == "" {
		opts.ToLabel = in.Target.Label()
	}

	rendered, err := differ.Render(sa, sb, opts)
	if err != nil {
		return nil, err
	}

	stats := differ.Stats(sa, sb)
	log.Debugf("compare %s with %s: +%d -%d", opts.FromLabel, opts.ToLabel, stats.LinesAdded, stats.LinesDeleted)

	return &Result{
		Success:      true,
		RenderedDiff: rendered,
		DisplayMode:  opts.Mode.String(),
		Stats:        stats,
	}, nil
}

func errorContext(s *session.Session, op, resource string) zosmf.ErrorContext {
	ctx := zosmf.ErrorContext{Operation: op, Resource: resource}
	if s != nil {
		ctx.Host = s.Hostname
	}
	return ctx
}
