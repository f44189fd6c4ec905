// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the password prompt is cancelled with ^C.
var ErrInterrupted = errors.New("interrupted")

// NeedsPassword is true when a user is known but neither a password nor a token
// is.
func (s *Session) NeedsPassword() bool {
	return s != nil && s.User != "" && s.Password == "" && !s.HasToken()
}

// PromptPassword fills in the password from the controlling terminal when
// NeedsPassword says one is missing. When stdin is not a terminal it does
// nothing and the request goes out with an empty password.
func PromptPassword(s *Session) error {
	if !s.NeedsPassword() {
		return nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to prepare terminal: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	fmt.Fprintf(os.Stderr, "Enter password for %s@%s: ", s.User, s.Hostname)
	pw, err := readMasked(os.Stdin, os.Stderr)
	fmt.Fprint(os.Stderr, "\r\n")
	if err != nil {
		return err
	}
	s.Password = pw
	return nil
}

// readMasked reads one line from r, echoing '*' per character to w. Backspace
// and DEL erase, ^C aborts.
func readMasked(r io.Reader, w io.Writer) (string, error) {
	var password []byte
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 0 || err != nil {
			break
		}
		switch c := buf[0]; c {
		case '\n', '\r':
			return string(password), nil
		case 3: // ^C
			return "", ErrInterrupted
		case 127, 8:
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Fprint(w, "\b \b")
			}
		default:
			password = append(password, c)
			fmt.Fprint(w, "*")
		}
	}
	return string(password), nil
}
