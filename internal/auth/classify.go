// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// TokenClass is what a logout failure says about the token.
type TokenClass int

const (
	// TokenUnclassified means the failure says nothing about the token.
	TokenUnclassified TokenClass = iota
	// TokenInvalid is an API ML v2 report that the token is already unusable.
	TokenInvalid
	// TokenExpired is the API ML v1 expired-token exception.
	TokenExpired
)

func (c TokenClass) String() string {
	switch c {
	case TokenInvalid:
		return "invalid"
	case TokenExpired:
		return "expired"
	}
	return "unclassified"
}

const (
	MessageKeyInvalidToken     = "org.zowe.apiml.security.query.invalidToken"
	MessageKeyTokenNotProvided = "org.zowe.apiml.security.query.tokenNotProvided"
	MessageKeyExpiredToken     = "org.zowe.apiml.security.expiredToken"
	TokenExpireException       = "TokenExpireException"
)

// classifications maps a marker to its class. A marker matches only when it
// equals a token extracted from the failure, never as a substring.
var classifications = map[string]TokenClass{
	MessageKeyInvalidToken:     TokenInvalid,
	MessageKeyTokenNotProvided: TokenInvalid,
	MessageKeyExpiredToken:     TokenInvalid,
	TokenExpireException:       TokenExpired,
}

// Classify inspects a response body.
func Classify(body []byte) TokenClass {
	if gjson.ValidBytes(body) {
		return classifyMarkers(jsonMarkers(gjson.ParseBytes(body)))
	}
	return ClassifyText(string(body))
}

// ClassifyText inspects free text such as an error message.
func ClassifyText(s string) TokenClass {
	return classifyMarkers(identifiers(s))
}

func classifyMarkers(markers []string) TokenClass {
	class := TokenUnclassified
	for _, m := range markers {
		// Invalid outranks expired when a body carries both.
		if c := classifications[m]; c != TokenUnclassified && (class == TokenUnclassified || c == TokenInvalid) {
			class = c
		}
	}
	return class
}

// jsonMarkers collects message keys and exception names from an API ML or
// z/OSMF error document.
func jsonMarkers(doc gjson.Result) []string {
	if doc.Type == gjson.String {
		return identifiers(doc.String())
	}

	var out []string
	add := func(v gjson.Result) {
		if v.Type != gjson.String {
			return
		}
		out = append(out, withSuffix(v.String())...)
	}

	doc.Get("messages.#.messageKey").ForEach(func(_, v gjson.Result) bool {
		add(v)
		return true
	})
	for _, path := range []string{"messageKey", "exception", "error"} {
		add(doc.Get(path))
	}
	// A message may name the exception in prose.
	for _, path := range []string{"message", "messages.#.messageContent"} {
		v := doc.Get(path)
		if v.IsArray() {
			v.ForEach(func(_, m gjson.Result) bool {
				out = append(out, identifiers(m.String())...)
				return true
			})
		} else if v.Type == gjson.String {
			out = append(out, identifiers(v.String())...)
		}
	}
	return out
}

// identifiers splits s into dotted identifier tokens.
func identifiers(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '$')
	})
	var out []string
	for _, f := range fields {
		out = append(out, withSuffix(strings.Trim(f, "."))...)
	}
	return out
}

// withSuffix returns s and, for a dotted name, its last segment so that
// "com.ibm.TokenExpireException" also yields "TokenExpireException".
func withSuffix(s string) []string {
	if s == "" {
		return nil
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 && i < len(s)-1 {
		return []string{s, s[i+1:]}
	}
	return []string{s}
}
