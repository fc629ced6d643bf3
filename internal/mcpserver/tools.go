// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/metrics"
	"github.com/rightsdash/rightsdash/internal/output"
)

// FieldsInput is the input schema for the fields MCP tool.
type FieldsInput struct{}

// BarChartInput is the input schema for the bar_chart MCP tool.
type BarChartInput struct {
	Field string `json:"field,omitempty" jsonschema:"Field to chart (defaults to the configured default field)"`
}

// WaffleChartInput is the input schema for the waffle_chart MCP tool.
type WaffleChartInput struct {
	Field     string `json:"field,omitempty" jsonschema:"Field to chart (defaults to the configured default field)"`
	Continent string `json:"continent,omitempty" jsonschema:"Continent name or ALL (default: ALL)"`
}

// ViewInput is the input schema for the view MCP tool.
type ViewInput struct {
	Field     string `json:"field,omitempty" jsonschema:"Field to chart (defaults to the configured default field)"`
	Continent string `json:"continent,omitempty" jsonschema:"Continent name or ALL (default: ALL)"`
	Format    string `json:"format,omitempty" jsonschema:"Output format: json, markdown, text or html (default: json)"`
}

type fieldsResult struct {
	Fields       []string `json:"fields"`
	DefaultField string   `json:"default_field"`
	Continents   []string `json:"continents"`
}

// tools holds the state shared by the tool handlers.
type tools struct {
	dash    *dashboard.Dashboard
	metrics *metrics.Metrics
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all dashboard tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fields",
		Description: "List the categorical fields that can be charted, the default field, and the continent choices.",
		Annotations: readOnly(),
	}, t.handleFields)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bar_chart",
		Description: "Count distinct countries per continent and canonical value for a field. Returns one series per value with its color.",
		Annotations: readOnly(),
	}, t.handleBarChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "waffle_chart",
		Description: "Lay out one grid cell per country for a field, optionally restricted to a continent. Returns series with cell coordinates and colors.",
		Annotations: readOnly(),
	}, t.handleWaffleChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "view",
		Description: "Compute both charts for a field and continent selection and render them in the requested format.",
		Annotations: readOnly(),
	}, t.handleView)
}

func (t *tools) handleFields(_ context.Context, _ *mcp.CallToolRequest, _ FieldsInput) (*mcp.CallToolResult, any, error) {
	return jsonResult(fieldsResult{
		Fields:       t.dash.Fields(),
		DefaultField: t.dash.DefaultField(),
		Continents:   t.dash.Continents(),
	})
}

func (t *tools) handleBarChart(ctx context.Context, _ *mcp.CallToolRequest, input BarChartInput) (*mcp.CallToolResult, any, error) {
	sel, err := t.dash.Resolve(dashboard.Selection{Field: input.Field})
	if err != nil {
		return nil, nil, t.selectionError(ctx, err)
	}
	start := time.Now()
	chart, err := t.dash.BarChart(sel.Field)
	t.metrics.ObserveCompute("bar", time.Since(start))
	if err != nil {
		return nil, nil, t.selectionError(ctx, err)
	}
	return jsonResult(chart)
}

func (t *tools) handleWaffleChart(ctx context.Context, _ *mcp.CallToolRequest, input WaffleChartInput) (*mcp.CallToolResult, any, error) {
	sel, err := t.dash.Resolve(dashboard.Selection{Field: input.Field, Continent: input.Continent})
	if err != nil {
		return nil, nil, t.selectionError(ctx, err)
	}
	start := time.Now()
	chart, err := t.dash.WaffleChart(sel.Field, sel.Continent)
	t.metrics.ObserveCompute("waffle", time.Since(start))
	if err != nil {
		return nil, nil, t.selectionError(ctx, err)
	}
	return jsonResult(chart)
}

func (t *tools) handleView(ctx context.Context, _ *mcp.CallToolRequest, input ViewInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	start := time.Now()
	view, err := t.dash.View(dashboard.Selection{Field: input.Field, Continent: input.Continent})
	t.metrics.ObserveCompute("view", time.Since(start))
	if err != nil {
		return nil, nil, t.selectionError(ctx, err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(view, &buf); err != nil {
		return nil, nil, fmt.Errorf("format output: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, nil, nil
}

// selectionError logs and counts rejected selections.
func (t *tools) selectionError(ctx context.Context, err error) error {
	if errors.Is(err, dashboard.ErrInvalidSelection) {
		t.metrics.IncrementInvalidSelection("mcp")
		slog.DebugContext(ctx, "mcp selection rejected", "error", err)
	}
	return err
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
