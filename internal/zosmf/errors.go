// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package zosmf

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// TransportError is a failed z/OSMF call: either the request never produced a
// response (Err set, StatusCode zero) or the status was not one the caller
// accepts.
type TransportError struct {
	Method     string
	Resource   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Resource, e.Err)
	}
	msg := fmt.Sprintf("REST API Failure with HTTP(S) status %d", e.StatusCode)
	if detail := Message(e.Body); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message extracts the human-readable part of a z/OSMF or API ML error body.
// Returns "" when nothing recognizable is present.
func Message(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	doc := gjson.ParseBytes(body)
	for _, path := range []string{
		"message",
		"messages.0.messageContent",
		"details.0",
		"error",
	} {
		if v := doc.Get(path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Host      string
	Operation string // e.g., "read USS file", "archive workflow"
	Resource  string // e.g., "/u/ibmuser/a.txt", "workflow key abc"
}

// Friendly wraps a transport error with a contextual, user-friendly message
// while preserving the original error for errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	var te *TransportError
	if !errors.As(err, &te) {
		return err
	}

	op := nonEmpty(ctx.Operation, "request")
	host := nonEmpty(ctx.Host, "<unknown>")

	switch te.StatusCode {
	case 0:
		return fmt.Errorf("%s on %s: unable to reach z/OSMF: %w", op, host, err)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s on %s: authentication failed (401). Set ZOWE_OPT_USER and ZOWE_OPT_PASSWORD, or a token: %w",
			op, host, err)
	case http.StatusForbidden:
		return fmt.Errorf("%s on %s: not authorized for %s (403): %w", op, host, nonEmpty(ctx.Resource, te.Resource), err)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %s not found on %s (404): %w", op, nonEmpty(ctx.Resource, te.Resource), host, err)
	}

	return fmt.Errorf("%s on %s for %s: %w", op, host, strings.TrimSpace(nonEmpty(ctx.Resource, te.Resource)), err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
