// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultProtocol = "https"
	DefaultPort     = 443
)

// Session is the connection description every z/OSMF operation receives. It is
// passed explicitly; there is no process-wide session.
type Session struct {
	Hostname           string
	Port               int
	Protocol           string
	BasePath           string
	User               string
	Password           string
	TokenType          string
	TokenValue         string
	RejectUnauthorized bool
}

// ValidationError reports a missing or malformed input detected before any I/O.
type ValidationError struct {
	Param string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// RequireSession fails when no session was supplied.
func RequireSession(s *Session) error {
	if s == nil {
		return &ValidationError{Param: "session", Msg: "No session was supplied."}
	}
	return nil
}

// RequireHostname fails when the session has no hostname.
func RequireHostname(s *Session) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if strings.TrimSpace(s.Hostname) == "" {
		return &ValidationError{Param: "hostname", Msg: "Required parameter 'hostname' must be defined"}
	}
	return nil
}

// RequireValue fails with msg when value is empty or blank.
func RequireValue(param, value, msg string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Param: param, Msg: msg}
	}
	return nil
}

// HasToken is true when both the token type and value are populated.
func (s *Session) HasToken() bool {
	return s.TokenType != "" && s.TokenValue != ""
}

// BaseURL returns scheme://host[:port][/basePath] without a trailing slash.
func (s *Session) BaseURL() string {
	protocol := s.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}
	host := s.Hostname
	if s.Port > 0 && !defaultPortFor(protocol, s.Port) {
		host += ":" + strconv.Itoa(s.Port)
	}
	base := fmt.Sprintf("%s://%s", protocol, host)
	if bp := strings.Trim(s.BasePath, "/"); bp != "" {
		base += "/" + bp
	}
	return base
}

// Authorize applies the session's credentials to req. A token wins over basic
// auth and travels as a cookie named after the token type.
func (s *Session) Authorize(req *http.Request) {
	switch {
	case s.HasToken():
		req.AddCookie(&http.Cookie{Name: s.TokenType, Value: s.TokenValue})
	case s.User != "":
		req.SetBasicAuth(s.User, s.Password)
	}
}

// String describes the session for logs; secrets are never included.
func (s *Session) String() string {
	auth := "none"
	switch {
	case s.HasToken():
		auth = "token:" + s.TokenType
	case s.User != "":
		auth = "basic:" + s.User
	}
	return fmt.Sprintf("%s auth=%s rejectUnauthorized=%t", s.BaseURL(), auth, s.RejectUnauthorized)
}

func defaultPortFor(protocol string, port int) bool {
	return (protocol == "https" && port == 443) || (protocol == "http" && port == 80)
}
