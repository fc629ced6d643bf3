// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes a view as a Markdown document with one table per
// chart.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the view to w.
//
// The output includes:
//   - A title heading naming the field
//   - The bar chart as a continent by value count table
//   - The waffle chart as a value, count and color table
func (m *MarkdownFormatter) Format(view *dashboard.View, w io.Writer) error {
	if view == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# %s\n\n", mdEscape(view.Selection.Field)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if view.Bar != nil {
		if err := writeBarMarkdown(w, view.Bar); err != nil {
			return err
		}
	}
	if view.Waffle != nil {
		if err := writeWaffleMarkdown(w, view.Waffle); err != nil {
			return err
		}
	}
	return nil
}

func writeBarMarkdown(w io.Writer, bar *dashboard.BarChart) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", mdEscape(bar.Title)); err != nil {
		return fmt.Errorf("write bar heading: %w", err)
	}
	if len(bar.Series) == 0 {
		if _, err := fmt.Fprintf(w, "_No data._\n\n"); err != nil {
			return fmt.Errorf("write bar table: %w", err)
		}
		return nil
	}

	header := []string{"Continent"}
	align := []string{"---"}
	for _, s := range bar.Series {
		header = append(header, mdEscape(s.Name))
		align = append(align, "---:")
	}
	if err := writeMarkdownRow(w, header); err != nil {
		return err
	}
	if err := writeMarkdownRow(w, align); err != nil {
		return err
	}
	for i, cont := range bar.Continents {
		row := []string{mdEscape(cont)}
		for _, s := range bar.Series {
			row = append(row, fmt.Sprint(s.Points[i].Count))
		}
		if err := writeMarkdownRow(w, row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return fmt.Errorf("write bar table: %w", err)
	}
	return nil
}

func writeWaffleMarkdown(w io.Writer, waffle *dashboard.WaffleChart) error {
	if _, err := fmt.Fprintf(w, "## %s (%d countries)\n\n", mdEscape(waffle.Title), waffle.Total()); err != nil {
		return fmt.Errorf("write waffle heading: %w", err)
	}
	if len(waffle.Series) == 0 {
		if _, err := fmt.Fprintf(w, "_No data._\n\n"); err != nil {
			return fmt.Errorf("write waffle table: %w", err)
		}
		return nil
	}
	if err := writeMarkdownRow(w, []string{"Value", "Countries", "Color"}); err != nil {
		return err
	}
	if err := writeMarkdownRow(w, []string{"---", "---:", "---"}); err != nil {
		return err
	}
	for _, s := range waffle.Series {
		row := []string{mdEscape(s.Value), fmt.Sprint(s.Count), "`" + s.Color.String() + "`"}
		if err := writeMarkdownRow(w, row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return fmt.Errorf("write waffle table: %w", err)
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
		return fmt.Errorf("write table row: %w", err)
	}
	return nil
}

// mdEscape keeps table cells intact when values contain pipes.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
