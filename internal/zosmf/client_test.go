// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package zosmf

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidharthbh8/zowe-cli/internal/session"
)

// sessionFor points a session at an httptest server.
func sessionFor(t *testing.T, srv *httptest.Server) *session.Session {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return &session.Session{
		Hostname:           u.Hostname(),
		Port:               port,
		Protocol:           u.Scheme,
		RejectUnauthorized: true,
	}
}

func TestClientDo_HeadersAndBody(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	s := sessionFor(t, srv)
	s.User, s.Password = "ibmuser", "pw"

	c := NewClient(WithUserAgent("zowe-test"))
	resp, err := c.Do(context.Background(), s, &Request{
		Method:   http.MethodPut,
		Resource: "/zosmf/restfiles/fs/u/a.txt",
		Header:   http.Header{HeaderDataType: []string{"binary"}},
		Body:     []byte("payload"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))

	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/zosmf/restfiles/fs/u/a.txt", got.URL.Path)
	assert.Equal(t, "true", got.Header.Get(CSRFHeader))
	assert.Equal(t, "binary", got.Header.Get(HeaderDataType))
	assert.Equal(t, "zowe-test", got.Header.Get("User-Agent"))
	assert.Equal(t, "payload", string(gotBody))

	u, p, ok := got.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "ibmuser", u)
	assert.Equal(t, "pw", p)
}

func TestClientDo_DefaultsToGET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewClient().Do(context.Background(), sessionFor(t, srv), &Request{Resource: "/zosmf/info"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestClientDo_BasePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ibmzosmf/api/v1/zosmf/info", r.URL.Path)
	}))
	defer srv.Close()

	s := sessionFor(t, srv)
	s.BasePath = "/ibmzosmf/api/v1"
	_, err := NewClient().Do(context.Background(), s, &Request{Resource: "/zosmf/info"})
	assert.NoError(t, err)
}

// A non-2xx status is not a Do error; the caller decides.
func TestClientDo_ErrorStatusReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(WithRetries(3)).Do(context.Background(), sessionFor(t, srv), &Request{Resource: "/x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestClientDo_TLSVerification(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := sessionFor(t, srv)

	_, err := NewClient().Do(context.Background(), s, &Request{Resource: "/x"})
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, te.StatusCode)

	s.RejectUnauthorized = false
	resp, err := NewClient().Do(context.Background(), s, &Request{Resource: "/x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientDo_RequiresHostname(t *testing.T) {
	_, err := NewClient().Do(context.Background(), &session.Session{}, &Request{Resource: "/x"})
	require.Error(t, err)
	var ve *session.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestClientDo_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Do(ctx, sessionFor(t, srv), &Request{Resource: "/x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Retries(t *testing.T) {
	c := NewClient(WithRetries(2))
	assert.Equal(t, 2, c.secure.RetryMax)
	assert.Equal(t, 2, c.insecure.RetryMax)

	c = NewClient(WithRetries(-1))
	assert.Equal(t, 0, c.secure.RetryMax)
}

func TestExpect(t *testing.T) {
	req := &Request{Method: http.MethodDelete, Resource: "/zosmf/workflow/rest/1.0/workflows/k"}

	resp, err := Expect(req, &Response{StatusCode: http.StatusNoContent}, http.StatusNoContent)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = Expect(req, &Response{StatusCode: http.StatusNotFound, Body: []byte(`{"message":"gone"}`)}, http.StatusNoContent)
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Equal(t, http.MethodDelete, te.Method)
	assert.Equal(t, "REST API Failure with HTTP(S) status 404: gone", err.Error())
}
