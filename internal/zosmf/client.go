// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package zosmf

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/version"
)

const (
	// CSRFHeader is required by z/OSMF on every REST request.
	CSRFHeader = "X-CSRF-ZOSMF-HEADER"

	HeaderDataType        = "X-IBM-Data-Type"
	HeaderResponseTimeout = "X-IBM-Response-Timeout"
)

// Doer sends one request to the host described by a session. *Client is the
// production implementation; tests point a Client at an httptest server.
type Doer interface {
	Do(ctx context.Context, s *session.Session, r *Request) (*Response, error)
}

// Request is a z/OSMF call relative to the session's base URL. Resource must
// already be path-escaped.
type Request struct {
	Method   string
	Resource string
	Header   http.Header
	Body     []byte
}

// Response is a fully read HTTP response. Do never fails on status; callers
// decide which statuses are acceptable.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client sends requests through go-retryablehttp. Retries only cover
// connection errors; a response of any status is returned as is.
type Client struct {
	secure    *retryablehttp.Client
	insecure  *retryablehttp.Client
	userAgent string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	retries   int
	userAgent string
}

// WithRetries sets how many times a request is retried after a connection
// error. Zero disables retries.
func WithRetries(n int) Option {
	return func(o *clientOptions) {
		if n >= 0 {
			o.retries = n
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// NewClient builds a Client. Both a verifying and a non-verifying transport are
// prepared so a single Client can serve sessions with either
// RejectUnauthorized setting.
func NewClient(opts ...Option) *Client {
	o := clientOptions{userAgent: "zowe-go/" + version.Version}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		secure:    newRetryable(o.retries, false),
		insecure:  newRetryable(o.retries, true),
		userAgent: o.userAgent,
	}
}

func newRetryable(retries int, insecure bool) *retryablehttp.Client {
	transport := cleanhttp.DefaultPooledTransport()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = retries
	rc.Logger = log.Leveled{}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err == nil {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return rc
}

// Do implements Doer.
func (c *Client) Do(ctx context.Context, s *session.Session, r *Request) (*Response, error) {
	if err := session.RequireHostname(s); err != nil {
		return nil, err
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	url := s.BaseURL() + r.Resource

	var body interface{}
	if r.Body != nil {
		body = r.Body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(CSRFHeader, "true")
	req.Header.Set("User-Agent", c.userAgent)
	s.Authorize(req.Request)

	log.Debugf("zosmf request: method=%s url=%s session=%s", method, url, s)

	hc := c.secure
	if !s.RejectUnauthorized {
		hc = c.insecure
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Resource: r.Resource, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Method:     method,
			Resource:   r.Resource,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response: %w", err),
		}
	}

	log.Debugf("zosmf response: status=%d bytes=%d", resp.StatusCode, len(b))
	log.Tracef("zosmf response body: %s", b)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

// Expect returns resp when its status is one of want and a *TransportError
// otherwise.
func Expect(r *Request, resp *Response, want ...int) (*Response, error) {
	for _, w := range want {
		if resp.StatusCode == w {
			return resp, nil
		}
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	return nil, &TransportError{
		Method:     method,
		Resource:   r.Resource,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}
