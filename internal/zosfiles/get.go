// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package zosfiles

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

const (
	ResourceUSSFiles = "/zosmf/restfiles/fs"
	ResourceDataSets = "/zosmf/restfiles/ds"
)

// Options shapes how z/OSMF returns file content.
type Options struct {
	// Binary asks for the raw bytes with no code page conversion.
	Binary bool
	// Encoding is the source code page, e.g. IBM-1047. Ignored when Binary.
	Encoding string
	// ResponseTimeout is the server-side limit for the request. Zero leaves the
	// z/OSMF default in place.
	ResponseTimeout time.Duration
	// VolumeSerial locates an uncataloged data set. Data sets only.
	VolumeSerial string
}

// GetUSSFile returns the content of a z/OS UNIX file.
func GetUSSFile(ctx context.Context, doer zosmf.Doer, s *session.Session, path string, opts Options) ([]byte, error) {
	if err := session.RequireValue("ussFilePath", path, "Specify the USS file path."); err != nil {
		return nil, err
	}
	return get(ctx, doer, s, ResourceUSSFiles+ussPath(path), opts)
}

// GetDataSet returns the content of a sequential data set or a PDS member
// ("HLQ.SRC(MEMBER)").
func GetDataSet(ctx context.Context, doer zosmf.Doer, s *session.Session, dsn string, opts Options) ([]byte, error) {
	if err := session.RequireValue("dataSetName", dsn, "Specify the data set name."); err != nil {
		return nil, err
	}
	resource := ResourceDataSets + "/"
	if opts.VolumeSerial != "" {
		resource += "-(" + escape(opts.VolumeSerial) + ")/"
	}
	resource += escape(strings.TrimSpace(dsn))
	return get(ctx, doer, s, resource, opts)
}

func get(ctx context.Context, doer zosmf.Doer, s *session.Session, resource string, opts Options) ([]byte, error) {
	req := &zosmf.Request{
		Method:   http.MethodGet,
		Resource: resource,
		Header:   Headers(opts),
	}
	resp, err := doer.Do(ctx, s, req)
	if err != nil {
		return nil, err
	}
	if _, err := zosmf.Expect(req, resp, http.StatusOK); err != nil {
		return nil, err
	}
	log.Debugf("fetched %s (%s)", resource, humanize.Bytes(uint64(len(resp.Body))))
	return resp.Body, nil
}

// Headers returns the z/OSMF request headers for opts.
func Headers(opts Options) http.Header {
	h := http.Header{}
	switch {
	case opts.Binary:
		h.Set(zosmf.HeaderDataType, "binary")
	case opts.Encoding != "":
		h.Set(zosmf.HeaderDataType, "text;fileEncoding="+opts.Encoding)
	}
	if secs := int(opts.ResponseTimeout / time.Second); secs > 0 {
		h.Set(zosmf.HeaderResponseTimeout, strconv.Itoa(secs))
	}
	return h
}

// ussPath escapes each segment of an absolute or relative USS path and
// returns it with a single leading slash.
func ussPath(p string) string {
	segs := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, seg := range segs {
		segs[i] = escape(seg)
	}
	return "/" + strings.Join(segs, "/")
}

// escape path-escapes one segment but leaves the parentheses z/OSMF uses for
// members and volumes readable.
func escape(seg string) string {
	e := url.PathEscape(seg)
	return strings.NewReplacer("%28", "(", "%29", ")").Replace(e)
}
