// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/sidharthbh8/zowe-cli/internal/log"
)

// NotAFileError reports a local path that exists but is not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return "Path given is not of a file, do recheck your path again"
}

// PathNotFoundError reports a local path that could not be opened.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return "Path not found. Please check the path and try again"
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

// LoadLocalFile returns the content of the regular file at path. Relative paths
// resolve against the working directory.
func LoadLocalFile(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &PathNotFoundError{Path: path, Err: err}
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, &PathNotFoundError{Path: abs, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &PathNotFoundError{Path: abs, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &NotAFileError{Path: abs}
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}

	log.Debugf("loaded local file %s (%s)", abs, humanize.Bytes(uint64(len(b))))
	return b, nil
}
