// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/rightsdash/rightsdash/internal/mcpserver"
)

// MCP command flags.
var mcpFlags datasetFlags

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running rightsdash as an MCP server, exposing the dashboard charts as tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Load the dataset and start an MCP server on stdin/stdout, exposing:
  - fields:       List chartable fields, the default field and continents
  - bar_chart:    Countries per continent and canonical value for a field
  - waffle_chart: One grid cell per country, for ALL or one continent
  - view:         Both charts for a selection, in any output format

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := mcpFlags.settings()
		if err != nil {
			return err
		}
		settings, err := resolveSettings(cli)
		if err != nil {
			return err
		}
		dash, _, err := loadDashboard(settings)
		if err != nil {
			return err
		}
		// stdio has no scrape endpoint, so tool metrics are not collected.
		return mcpserver.Run(cmd.Context(), Version, dash, nil, &mcp.StdioTransport{})
	},
}

func init() {
	mcpFlags.register(mcpServeCmd.Flags())
	mcpCmd.AddCommand(mcpServeCmd)
}
