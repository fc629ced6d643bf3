// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package config handles .rightsdash.yaml and .rightsdash.toml configuration
// files.
package config

// Config represents the contents of a configuration file.
type Config struct {
	DataPath     string            `yaml:"data_path,omitempty" toml:"data_path,omitempty"`
	Addr         string            `yaml:"addr,omitempty" toml:"addr,omitempty"`
	DefaultField string            `yaml:"default_field,omitempty" toml:"default_field,omitempty"`
	Format       string            `yaml:"format,omitempty" toml:"format,omitempty"`
	FieldKinds   map[string]string `yaml:"field_kinds,omitempty" toml:"field_kinds,omitempty"`
}

// Config file names looked up in the working directory.
const (
	FileName     = ".rightsdash.yaml"
	TOMLFileName = ".rightsdash.toml"
)

// Built-in defaults.
const (
	DefaultAddr   = ":8050"
	DefaultField  = "CRIMINALISATION_CONSENSUAL_SAME_SEX_SEXUAL_ACTS_LEGAL"
	DefaultFormat = "text"
)

// EnvDataPath names the environment variable overriding data_path.
const EnvDataPath = "RIGHTSDASH_DATA"
