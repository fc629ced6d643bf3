// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	setupTest(t)
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "LGBT+ rights legislation")
	for _, sub := range []string{"serve", "render", "fields", "mcp", "config", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "log-json", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "global flag --%s not registered", name)
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
	q := rootCmd.PersistentFlags().ShorthandLookup("q")
	require.NotNil(t, q)
	assert.Equal(t, "quiet", q.Name)
}

func TestVersionCmd(t *testing.T) {
	setupTest(t)
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "rightsdash "+Version+"\n", stdout.String())
}

func TestExitError_DefaultMessages(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitInvalidArgs, "invalid arguments"},
		{ExitLoadFailure, "could not be loaded"},
		{ExitServeFailure, "server failed"},
	}
	for _, tt := range tests {
		err := exitError(tt.code, "")
		assert.Equal(t, tt.code, err.ExitCode())
		assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
	}
	assert.Equal(t, "custom 7", exitError(ExitInvalidArgs, "custom %d", 7).Error())
}
