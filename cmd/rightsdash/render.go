// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/output"
)

// Render command flags.
var (
	renderFlags     datasetFlags
	renderContinent string
	renderFormat    string
	renderOutput    string
)

// renderCmd computes one view and writes it.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the bar and waffle charts for one selection",
	Long: `Compute the stacked bar chart and the waffle chart for a field and a
continent selection and write them in the chosen format.

Formats: text (terminal, colored squares), json, markdown, html (a
self-contained page).

Examples:
  rightsdash render --data lgbt.csv
  rightsdash render --data lgbt.xlsx --field MARRIAGE_EQUALITY --continent Europe
  rightsdash render --data lgbt.csv --format html -o dashboard.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderFlags.register(renderCmd.Flags())
	renderCmd.Flags().StringVar(&renderContinent, "continent", "", "continent to show in the waffle chart, or ALL (default ALL)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: html, json, markdown, text (default text)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cli, err := renderFlags.settings()
	if err != nil {
		return err
	}
	cli.Format = renderFormat
	settings, err := resolveSettings(cli)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(settings.Format)
	if err != nil {
		return exitError(ExitInvalidArgs, "rightsdash: %v", err)
	}

	dash, _, err := loadDashboard(settings)
	if err != nil {
		return err
	}

	view, err := dash.View(dashboard.Selection{Field: settings.Field, Continent: renderContinent})
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidSelection) {
			return exitError(ExitInvalidArgs, "rightsdash: %v", err)
		}
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := cmdFS.Create(renderOutput)
		if err != nil {
			return exitError(ExitInvalidArgs, "rightsdash: cannot create output file: %v", err)
		}
		defer f.Close() //nolint:errcheck // best-effort close after successful write
		w = f
	}

	if err := formatter.Format(view, w); err != nil {
		return exitError(ExitInvalidArgs, "rightsdash: write %s output: %v", formatter.Name(), err)
	}
	if renderOutput != "" {
		slog.Info("view written", "path", renderOutput, "format", formatter.Name(),
			"field", view.Selection.Field, "continent", view.Selection.Continent)
	}
	return nil
}
