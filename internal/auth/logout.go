// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/sidharthbh8/zowe-cli/internal/log"
	"github.com/sidharthbh8/zowe-cli/internal/session"
	"github.com/sidharthbh8/zowe-cli/internal/zosmf"
)

// APIMLV1Resource is the API ML gateway logout endpoint.
const APIMLV1Resource = "/gateway/api/v1/auth/logout"

var apimlTokenType = regexp.MustCompile(`^apimlAuthenticationToken.*`)

// Logout invalidates the session's API ML token. A token the gateway already
// considers invalid or expired counts as logged out.
func Logout(ctx context.Context, doer zosmf.Doer, s *session.Session) error {
	if s == nil {
		return &session.ValidationError{Param: "session", Msg: "Required session must be defined"}
	}
	if !apimlTokenType.MatchString(s.TokenType) {
		return &session.ValidationError{
			Param: "tokenType",
			Msg:   fmt.Sprintf("Token type (%s) for API ML logout must start with 'apimlAuthenticationToken'.", s.TokenType),
		}
	}
	if s.TokenValue == "" {
		return &session.ValidationError{Param: "tokenValue", Msg: "Session token not populated. Unable to log out."}
	}

	req := &zosmf.Request{Method: http.MethodPost, Resource: APIMLV1Resource}
	resp, err := doer.Do(ctx, s, req)
	if err != nil {
		if ClassifyText(err.Error()) == TokenInvalid {
			log.Debugf("logout: token already invalid: %v", err)
			return nil
		}
		return err
	}

	switch {
	case resp.StatusCode == http.StatusNoContent, resp.StatusCode == http.StatusUnauthorized:
		return nil
	case resp.StatusCode >= http.StatusBadRequest && Classify(resp.Body) == TokenInvalid:
		log.Debugf("logout: token already invalid (status %d)", resp.StatusCode)
		return nil
	case resp.StatusCode == http.StatusInternalServerError && Classify(resp.Body) == TokenExpired:
		log.Debug("logout: token already expired")
		return nil
	}

	_, err = zosmf.Expect(req, resp, http.StatusNoContent)
	return err
}
