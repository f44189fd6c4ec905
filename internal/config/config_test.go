// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points ZOWE_CFG_FILE at testdata/file, loads it under namespace
// and runs fn.
func withConfig(t *testing.T, file, namespace string, fn func(t *testing.T)) {
	t.Helper()

	abs, err := filepath.Abs(filepath.Join("testdata", file))
	require.NoError(t, err)
	t.Setenv("ZOWE_CFG_FILE", abs)
	t.Cleanup(func() { Config = Type{} })

	Config = Type{}
	_, err = Load()
	require.NoError(t, err)
	Config.Namespace = namespace
	fn(t)
}

func TestLoad(t *testing.T) {
	withConfig(t, "profile.yaml", "", func(t *testing.T) {
		assert.True(t, filepath.IsAbs(Config.Source))
		assert.Equal(t, "mf.example.com", Config.Data["host"])
		assert.Equal(t, 443, Config.Data["port"])
		assert.Equal(t, false, Config.Data["reject-unauthorized"])
	})

	withConfig(t, "empty.yaml", "", func(t *testing.T) {
		assert.Empty(t, Config.Data)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", "/nonexistent/path/zowe.yaml", "config file not found"},
		{"directory", "testdata", "points to a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ZOWE_CFG_FILE", tt.path)
			Config = Type{}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		defaults []int
		want     int
		wantErr  bool
	}{
		{name: "retries", key: "rest.retries", want: 2},
		{name: "cache clean hours", key: "cache.clean", defaults: []int{48}, want: 24},
		{name: "float truncates", key: "rest.timeout", want: 7},
		{name: "missing with default", key: "rest.backoff", defaults: []int{60}, want: 60},
		{name: "missing without default", key: "rest.backoff", wantErr: true},
		{name: "two defaults", key: "rest.backoff", defaults: []int{1, 2}, wantErr: true},
		{name: "not an int", key: "host", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, "profile.yaml", "", func(t *testing.T) {
				got, err := GetInt(tt.key, tt.defaults...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		defaults []string
		want     string
		wantErr  bool
	}{
		{name: "diff color", key: "diff.colors.added", want: "10"},
		{name: "unset color falls back", key: "diff.colors.hunk", defaults: []string{"6"}, want: "6"},
		{name: "missing without default", key: "diff.colors.hunk", wantErr: true},
		{name: "not a string", key: "port", wantErr: true},
		{name: "walks through a scalar", key: "host.name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, "profile.yaml", "", func(t *testing.T) {
				got, err := GetString(tt.key, tt.defaults...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGet_Namespace(t *testing.T) {
	tests := []struct {
		namespace string
		key       string
		want      any
	}{
		{"zos-files", "host", "files.example.com"},
		{"zos-files", "port", 10443},
		{"zos-workflows", "encoding", "IBM-037"},
		{"zos-workflows", "port", nil},
		{"", "host", "default.example.com"},
		{"auth", "host", "default.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace+"/"+tt.key, func(t *testing.T) {
			withConfig(t, "nested.yaml", tt.namespace, func(t *testing.T) {
				val, err := Config.get(tt.key)
				if tt.want == nil {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "no valid path found")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, val)
			})
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		key       string
		want      []string
		wantErr   bool
	}{
		{name: "namespaced set", namespace: "zos-files", key: "quick", want: []string{"--context-lines 3", "--seqnum=false"}},
		{name: "qualified set", namespace: "zos-files", key: "zos-files.quick", want: []string{"--context-lines 3", "--seqnum=false"}},
		{name: "global set", namespace: "zos-workflows", key: "quick", want: []string{"--context-lines 0"}},
		{name: "non-string element", namespace: "zos-files", key: "numbers", wantErr: true},
		{name: "not a list", namespace: "zos-files", key: "scalar", wantErr: true},
		{name: "missing", namespace: "zos-files", key: "slow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, "sets.yaml", tt.namespace, func(t *testing.T) {
				got, err := GetStringSlice(tt.key)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

// Getters load the file on first use.
func TestGetter_LazyLoad(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join("testdata", "profile.yaml"))
	require.NoError(t, err)
	t.Setenv("ZOWE_CFG_FILE", abs)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	got, err := GetString("user")
	require.NoError(t, err)
	assert.Equal(t, "ibmuser", got)
	assert.Equal(t, abs, Config.Source)
}
