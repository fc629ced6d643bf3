// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/rightsdash/rightsdash/internal/dataset"
	"github.com/rightsdash/rightsdash/internal/normalize"
	"github.com/rightsdash/rightsdash/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.DataPath != "" {
		if _, err := dataset.LoaderFor(cfg.DataPath); err != nil {
			errs = append(errs, fmt.Sprintf("data_path: %v", err))
		}
	}

	if cfg.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("addr: %v", err))
		}
	}

	if strings.TrimSpace(cfg.DefaultField) != cfg.DefaultField {
		errs = append(errs, fmt.Sprintf("default_field: must not have surrounding whitespace, got %q", cfg.DefaultField))
	}

	if cfg.Format != "" {
		if _, err := output.GetFormatter(cfg.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}

	fields := make([]string, 0, len(cfg.FieldKinds))
	for field := range cfg.FieldKinds {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if _, err := normalize.ParseKind(cfg.FieldKinds[field]); err != nil {
			errs = append(errs, fmt.Sprintf("field_kinds.%s: %v", field, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
