// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rightsdash/rightsdash/internal/testable"
)

// FS is the file system used to read config files. Override in tests.
var FS testable.FileSystem = testable.DefaultFS

// Load reads the config file from dir. The YAML file is preferred when both
// exist. If neither exists, it returns a zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	yamlPath := filepath.Join(dir, FileName)
	tomlPath := filepath.Join(dir, TOMLFileName)

	cfg, err := loadIfExists(yamlPath)
	if err != nil || cfg != nil {
		if cfg != nil && exists(tomlPath) {
			slog.Warn("both config files present, ignoring TOML", "yaml", yamlPath, "toml", tomlPath)
		}
		return cfg, err
	}
	cfg, err = loadIfExists(tomlPath)
	if err != nil || cfg != nil {
		return cfg, err
	}
	return &Config{}, nil
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(path string) (*Config, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(path, data)
}

func loadIfExists(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

func exists(path string) bool {
	_, err := FS.Stat(path)
	return err == nil
}

func decode(path string, data []byte) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("parse %s: unsupported config extension %q (want .yaml, .yml or .toml)", path, ext)
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
