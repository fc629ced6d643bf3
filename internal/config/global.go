// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global rightsdash configuration.
// It uses $XDG_CONFIG_HOME/rightsdash if set, otherwise ~/.config/rightsdash.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rightsdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rightsdash")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := loadIfExists(GlobalConfigPath())
	if err != nil || cfg != nil {
		return cfg, err
	}
	return &Config{}, nil
}
