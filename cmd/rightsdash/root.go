// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	rdlog "github.com/rightsdash/rightsdash/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logJSON    bool
	configPath string
)

// rootCmd is the base command for rightsdash.
var rootCmd = &cobra.Command{
	Use:   "rightsdash",
	Short: "Chart LGBT+ rights legislation by continent",
	Long: `Rightsdash charts a dataset of LGBT+ rights legislation by country. For a
selected attribute it counts countries per continent and canonical value as a
stacked bar chart, and lays out one colored square per country as a waffle
chart, either for all continents or for one.

Serve the interactive dashboard over HTTP, render a single view to the
terminal or a file, or expose the charts to AI agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		rdlog.Setup(rdlog.Options{Verbose: verbose, Quiet: quiet, JSON: logJSON})
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .rightsdash.yaml or .rightsdash.toml, plus the global config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
