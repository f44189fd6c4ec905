// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

const (
	Resource         = "/zosmf/workflow/rest"
	WorkflowResource = "workflows"
	ArchiveOperation = "operations/archive"
	DefaultVersion   = "1.0"
)

// ArchivedWorkflow is the z/OSMF reply to an archive request.
type ArchivedWorkflow struct {
	WorkflowKey string `json:"workflowKey" yaml:"workflowKey"`
}

// ArchiveWorkflowByKey moves an active workflow instance to the archive.
func ArchiveWorkflowByKey(ctx context.Context, doer zosmf.Doer, s *session.Session, key, version string) (*ArchivedWorkflow, error) {
	if err := validate(s, key); err != nil {
		return nil, err
	}

	req := &zosmf.Request{
		Method:   http.MethodPost,
		Resource: workflowPath(key, version) + "/" + ArchiveOperation,
	}
	resp, err := doer.Do(ctx, s, req)
	if err != nil {
		return nil, err
	}
	if _, err := zosmf.Expect(req, resp, http.StatusOK); err != nil {
		return nil, err
	}

	var archived ArchivedWorkflow
	if err := json.Unmarshal(resp.Body, &archived); err != nil {
		return nil, fmt.Errorf("failed to parse archive response: %w", err)
	}
	log.Debugf("archived workflow %s", archived.WorkflowKey)
	return &archived, nil
}

// DeleteWorkflow removes an active workflow instance.
func DeleteWorkflow(ctx context.Context, doer zosmf.Doer, s *session.Session, key, version string) error {
	if err := validate(s, key); err != nil {
		return err
	}

	req := &zosmf.Request{
		Method:   http.MethodDelete,
		Resource: workflowPath(key, version),
	}
	resp, err := doer.Do(ctx, s, req)
	if err != nil {
		return err
	}
	if _, err := zosmf.Expect(req, resp, http.StatusNoContent); err != nil {
		return err
	}
	log.Debugf("deleted workflow %s", key)
	return nil
}

// validate checks key, session and hostname, in that order. A missing key
// reports the same error whatever the session holds.
func validate(s *session.Session, key string) error {
	if err := session.RequireValue("workflowKey", key, "No workflow key parameter was supplied."); err != nil {
		return err
	}
	return session.RequireHostname(s)
}

func workflowPath(key, version string) string {
	if version == "" {
		version = DefaultVersion
	}
	return fmt.Sprintf("%s/%s/%s/%s", Resource, url.PathEscape(version), WorkflowResource, url.PathEscape(key))
}
