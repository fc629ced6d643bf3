// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes dashboard views as Model Context Protocol tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/metrics"
)

// New creates a new MCP server with the dashboard tools registered. Tool
// calls record compute latency and rejected selections (surface "mcp") only
// when m is non-nil; a nil m disables metrics.
func New(version string, dash *dashboard.Dashboard, m *metrics.Metrics) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rightsdash",
		Title:   "Rightsdash: LGBT+ rights by continent",
		Version: version,
	}, nil)

	registerTools(server, &tools{dash: dash, metrics: m})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, dash *dashboard.Dashboard, m *metrics.Metrics, transport mcp.Transport) error {
	server := New(version, dash, m)
	return server.Run(ctx, transport)
}
