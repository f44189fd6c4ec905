// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Type is a loaded zowe.yaml. Lookups under Namespace (a command group such as
// "zos-files") shadow the same key at the top level.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration.
var Config Type

func init() {
	_, _ = Load()
}

// GetInt returns the integer at key, or the single default when key is absent.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, found, err := lookup(key, len(defaultValue))
	if !found {
		if err == nil {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("%s is not an int", key)
}

// GetString returns the string at key, or the single default when key is absent.
func GetString(key string, defaultValue ...string) (string, error) {
	val, found, err := lookup(key, len(defaultValue))
	if !found {
		if err == nil {
			return defaultValue[0], nil
		}
		return "", err
	}

	if s, ok := val.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("%s is not a string", key)
}

// GetStringSlice returns the list of strings at key, such as an @set entry.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, found, err := lookup(key, len(defaultValue))
	if !found {
		if err == nil {
			return defaultValue[0], nil
		}
		return nil, err
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s is not a list", key)
	}
	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not a string", key, i)
		}
		result[i] = s
	}
	return result, nil
}

// lookup resolves key against Config, loading it first if needed. found is
// false with a nil error only when the caller supplied exactly one default.
func lookup(key string, defaults int) (val any, found bool, err error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err = Config.get(key)
	if err == nil {
		return val, true, nil
	}
	if defaults == 1 {
		return nil, false, nil
	}
	if defaults > 1 {
		err = errors.New("at most one default value is allowed")
	}
	return nil, false, err
}

// Load reads the config file and makes it the global Config.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data,
	}
	return Config, nil
}

// get walks a dotted key, trying "<Namespace>.<key>" before "<key>".
func (cfg *Type) get(kspec string) (any, error) {
	candidates := []string{kspec}
	if cfg.Namespace != "" {
		candidates = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidates {
		if v, ok := walk(cfg.Data, strings.Split(key, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no valid path found among: %v", candidates)
}

func walk(node any, path []string) (any, bool) {
	for _, p := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[p]; !ok {
			return nil, false
		}
	}
	return node, true
}

// getConfigFile honors ZOWE_CFG_FILE, then falls back to zowe.yaml in the
// user config directory.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv("ZOWE_CFG_FILE"); cfgPath != "" {
		fi, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at ZOWE_CFG_FILE path: %s", cfgPath)
		}
		if fi.IsDir() {
			return "", fmt.Errorf("ZOWE_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from ZOWE_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "zowe.yaml")
	if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}
	return "", errors.New("no config file found in standard locations")
}
