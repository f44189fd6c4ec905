// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package zosmftest

import (
	"context"
	"fmt"

	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

// Call is one scripted exchange. Empty Method or Resource match anything.
type Call struct {
	Method   string
	Resource string
	Response *zosmf.Response
	Error    error
}

// MockDoer replays Calls in order and records every request it receives.
type MockDoer struct {
	Calls    []Call
	Requests []*zosmf.Request
}

func (m *MockDoer) Do(_ context.Context, _ *session.Session, r *zosmf.Request) (*zosmf.Response, error) {
	m.Requests = append(m.Requests, r)
	i := len(m.Requests) - 1
	if i >= len(m.Calls) {
		return nil, fmt.Errorf("unexpected request %s %s", r.Method, r.Resource)
	}
	call := m.Calls[i]
	if call.Method != "" && call.Method != r.Method {
		return nil, fmt.Errorf("call %d: want method %s, got %s", i, call.Method, r.Method)
	}
	if call.Resource != "" && call.Resource != r.Resource {
		return nil, fmt.Errorf("call %d: want resource %s, got %s", i, call.Resource, r.Resource)
	}
	return call.Response, call.Error
}

// CallCount is the number of requests received so far.
func (m *MockDoer) CallCount() int {
	return len(m.Requests)
}

// Status builds a response with the given status and body.
func Status(code int, body string) *zosmf.Response {
	return &zosmf.Response{StatusCode: code, Body: []byte(body)}
}
