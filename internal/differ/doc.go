// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders the difference between two texts. The terminal mode
// is a unified patch; the browser mode writes a side-by-side HTML page and hands
// it to the system browser; the JSON mode is a structural diff of two JSON
// objects; the interactive mode pages the patch in a full-screen viewer.
package differ
