// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package zosmf

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "status only",
			err:  &TransportError{Method: "POST", Resource: "/r", StatusCode: 500},
			want: "REST API Failure with HTTP(S) status 500",
		},
		{
			name: "z/OSMF message",
			err:  &TransportError{StatusCode: 404, Body: []byte(`{"rc":4,"reason":8,"message":"File not found."}`)},
			want: "REST API Failure with HTTP(S) status 404: File not found.",
		},
		{
			name: "API ML messages",
			err: &TransportError{StatusCode: 401, Body: []byte(
				`{"messages":[{"messageKey":"org.zowe.apiml.security.expiredToken","messageContent":"The token has expired"}]}`)},
			want: "REST API Failure with HTTP(S) status 401: The token has expired",
		},
		{
			name: "non-json body ignored",
			err:  &TransportError{StatusCode: 502, Body: []byte("<html>bad gateway</html>")},
			want: "REST API Failure with HTTP(S) status 502",
		},
		{
			name: "connection error",
			err:  &TransportError{Method: "GET", Resource: "/zosmf/info", Err: errors.New("connection refused")},
			want: "GET /zosmf/info failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "", Message([]byte("not json")))
	assert.Equal(t, "", Message([]byte(`{"rc":0}`)))
	assert.Equal(t, "first", Message([]byte(`{"details":["first","second"]}`)))
	assert.Equal(t, "Unauthorized", Message([]byte(`{"error":"Unauthorized"}`)))
}

func TestStatusOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &TransportError{StatusCode: 403})
	assert.Equal(t, 403, StatusOf(err))
	assert.Equal(t, 0, StatusOf(errors.New("plain")))
}

func TestFriendly(t *testing.T) {
	ctx := ErrorContext{Host: "mf.example.com", Operation: "read USS file", Resource: "/u/a.txt"}

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"unauthorized", &TransportError{StatusCode: http.StatusUnauthorized}, "authentication failed (401)"},
		{"forbidden", &TransportError{StatusCode: http.StatusForbidden}, "not authorized for /u/a.txt (403)"},
		{"not found", &TransportError{StatusCode: http.StatusNotFound}, "read USS file: /u/a.txt not found on mf.example.com (404)"},
		{"unreachable", &TransportError{Err: errors.New("dial tcp")}, "unable to reach z/OSMF"},
		{"other status", &TransportError{StatusCode: http.StatusInternalServerError}, "read USS file on mf.example.com for /u/a.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Friendly(tt.err, ctx)
			require.Error(t, got)
			assert.Contains(t, got.Error(), tt.contains)

			var te *TransportError
			assert.True(t, errors.As(got, &te), "original error must stay reachable")
		})
	}
}

func TestFriendly_PassThrough(t *testing.T) {
	assert.NoError(t, Friendly(nil, ErrorContext{}))

	plain := errors.New("plain")
	assert.Same(t, plain, Friendly(plain, ErrorContext{}))
}

func TestFriendly_Defaults(t *testing.T) {
	got := Friendly(&TransportError{StatusCode: 418}, ErrorContext{})
	assert.Contains(t, got.Error(), "request on <unknown>")
}
