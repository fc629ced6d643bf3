// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/rightsdash/rightsdash/internal/testable"
)

const legalField = "CRIMINALISATION_CONSENSUAL_SAME_SEX_SEXUAL_ACTS_LEGAL"

const testCSV = `CONTINENT,COUNTRY,CRIMINALISATION_CONSENSUAL_SAME_SEX_SEXUAL_ACTS_LEGAL,CRIMINALISATION_MAX_PENALTY
Africa,Kenya,N,14
Africa,Ghana,N,3
Africa,Gabon,Y,DOES NOT APPLY
Europe,Malta,Y,DOES NOT APPLY
Europe,Spain,Y,DOES NOT APPLY
`

// newTestCmd returns rootCmd with its output redirected to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// setupTest isolates a command test: fresh flags, an empty working directory,
// no global config, no color and the real file system.
func setupTest(t *testing.T) string {
	t.Helper()
	resetFlags()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("RIGHTSDASH_DATA", "")

	prevColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = prevColor
		cmdFS = testable.DefaultFS
		resetFlags()
	})
	return dir
}

// resetFlags restores every flag and flag variable to its default.
func resetFlags() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd, renderCmd, fieldsCmd, mcpServeCmd, configValidateCmd, configListCmd, configShowCmd, versionCmd} {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Changed = false
				_ = f.Value.Set(f.DefValue)
			})
		}
		if h := cmd.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}

	verbose, quiet, noColor, logJSON, configPath = false, false, false, false, ""
	serveFlags.reset()
	serveAddr = ""
	renderFlags.reset()
	renderContinent, renderFormat, renderOutput = "", "", ""
	fieldsFlags.reset()
	fieldsJSON = false
	mcpFlags.reset()
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// requireExitCode asserts err is an exitCodeError with the given code.
func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %T: %v", err, err)
	require.Equal(t, code, ece.code, ece.msg)
	return ece
}
