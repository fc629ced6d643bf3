// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rightsdash/rightsdash/internal/config"
)

func TestConfigValidate_File(t *testing.T) {
	dir := setupTest(t)
	path := writeTestFile(t, dir, "ok.yaml", "addr: \":9000\"\nformat: json\nfield_kinds:\n  SOME_FIELD: gender\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "validate", path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "✓ "+path+" is valid\n", stdout.String())
}

func TestConfigValidate_Effective(t *testing.T) {
	dir := setupTest(t)
	writeTestFile(t, dir, ".rightsdash.toml", "format = \"text\"\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "validate"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "effective configuration is valid")
}

func TestConfigValidate_ReportsEveryProblem(t *testing.T) {
	dir := setupTest(t)
	path := writeTestFile(t, dir, "bad.yaml", "data_path: lgbt.parquet\nformat: xml\nfield_kinds:\n  X: fuzzy\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "validate", path})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.msg, "data_path")
	assert.Contains(t, ece.msg, "format")
	assert.Contains(t, ece.msg, "field_kinds.X")
}

func TestConfigValidate_UnreadableFile(t *testing.T) {
	dir := setupTest(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "validate", filepath.Join(dir, "missing.yaml")})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
}

func TestConfigList_Empty(t *testing.T) {
	setupTest(t)
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "No configuration set.")
}

func TestConfigList_Sources(t *testing.T) {
	dir := setupTest(t)
	writeTestFile(t, dir, "xdg/rightsdash/config.yaml", "addr: \":9000\"\nformat: json\n")
	writeTestFile(t, dir, ".rightsdash.yaml", "format: markdown\nfield_kinds:\n  X: penalty\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "list"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "addr = :9000 (global)\nfield_kinds.X = penalty (repo)\nformat = markdown (repo)\n", stdout.String())
}

func TestFlattenMap(t *testing.T) {
	got := flattenMap(map[string]any{
		"a": 1,
		"b": map[string]any{"c": "x", "d": map[string]any{"e": true}},
	}, "")
	assert.Equal(t, map[string]any{"a": 1, "b.c": "x", "b.d.e": true}, got)
}

func TestConfigShow_Overlay(t *testing.T) {
	dir := setupTest(t)
	writeTestFile(t, dir, "xdg/rightsdash/config.yaml", "addr: \":9000\"\nformat: json\n")
	writeTestFile(t, dir, ".rightsdash.toml", "format = \"markdown\"\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show"})
	require.NoError(t, cmd.Execute())

	var got config.Config
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, config.Config{Addr: ":9000", Format: "markdown"}, got)
}
