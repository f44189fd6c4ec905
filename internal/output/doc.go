// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits command responses as text, JSON, YAML or raw API
// payloads.
package output
