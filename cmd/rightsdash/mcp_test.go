// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Registered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "mcp" {
			found = true
			sub, _, err := c.Find([]string{"serve"})
			require.NoError(t, err)
			assert.Equal(t, "serve", sub.Name())
			assert.NotNil(t, sub.Flags().Lookup("data"))
			assert.NotNil(t, sub.Flags().Lookup("kind"))
		}
	}
	assert.True(t, found, "mcp command not registered")
}

func TestMCPServe_RejectsArgs(t *testing.T) {
	setupTest(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"mcp", "serve", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestMCPServe_MissingData(t *testing.T) {
	setupTest(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"mcp", "serve"})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
}
