// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"maps"
	"sort"

	"github.com/rightsdash/rightsdash/internal/normalize"
)

// Settings are the effective values a command runs with.
type Settings struct {
	DataPath string
	Addr     string
	// Field is the field named on the command line. It is never replaced by
	// a fallback; a dataset without it is an invalid selection.
	Field string
	// DefaultField is the configured default_field. It only applies when the
	// dataset has it.
	DefaultField string
	Format       string
	FieldKinds   map[string]normalize.Kind
}

// Overlay combines a global and a repository config. Repository values take
// precedence; field_kinds entries are merged key by key.
func Overlay(global, repo *Config) *Config {
	result := &Config{}
	for _, c := range []*Config{global, repo} {
		if c == nil {
			continue
		}
		if c.DataPath != "" {
			result.DataPath = c.DataPath
		}
		if c.Addr != "" {
			result.Addr = c.Addr
		}
		if c.DefaultField != "" {
			result.DefaultField = c.DefaultField
		}
		if c.Format != "" {
			result.Format = c.Format
		}
		if len(c.FieldKinds) > 0 {
			if result.FieldKinds == nil {
				result.FieldKinds = make(map[string]string)
			}
			maps.Copy(result.FieldKinds, c.FieldKinds)
		}
	}
	return result
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to the
// environment (data path only), then the file, then built-in defaults.
// Field and DefaultField are kept apart and have no built-in fallback here;
// see PreferredField.
func Merge(fileCfg *Config, cli Settings, getenv func(string) string) (Settings, error) {
	if fileCfg == nil {
		fileCfg = &Config{}
	}
	result := cli

	if result.DataPath == "" && getenv != nil {
		result.DataPath = getenv(EnvDataPath)
	}
	if result.DataPath == "" {
		result.DataPath = fileCfg.DataPath
	}

	if result.Addr == "" {
		result.Addr = fileCfg.Addr
	}
	if result.Addr == "" {
		result.Addr = DefaultAddr
	}

	if result.DefaultField == "" {
		result.DefaultField = fileCfg.DefaultField
	}

	if result.Format == "" {
		result.Format = fileCfg.Format
	}
	if result.Format == "" {
		result.Format = DefaultFormat
	}

	kinds, err := parseKinds(fileCfg.FieldKinds)
	if err != nil {
		return Settings{}, err
	}
	maps.Copy(kinds, cli.FieldKinds)
	if len(kinds) > 0 {
		result.FieldKinds = kinds
	}
	return result, nil
}

// PreferredField returns the field a dashboard should default to. An explicit
// Field is returned as is. Otherwise the configured DefaultField, then the
// built-in DefaultField, is used when has reports the dataset carries it.
// Empty means the first field.
func (s Settings) PreferredField(has func(string) bool) string {
	if s.Field != "" {
		return s.Field
	}
	if has == nil {
		return ""
	}
	if s.DefaultField != "" && has(s.DefaultField) {
		return s.DefaultField
	}
	if has(DefaultField) {
		return DefaultField
	}
	return ""
}

func parseKinds(raw map[string]string) (map[string]normalize.Kind, error) {
	kinds := make(map[string]normalize.Kind, len(raw))
	fields := make([]string, 0, len(raw))
	for field := range raw {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		k, err := normalize.ParseKind(raw[field])
		if err != nil {
			return nil, fmt.Errorf("field_kinds.%s: %w", field, err)
		}
		kinds[field] = k
	}
	return kinds, nil
}
