// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/layout"
	"github.com/rightsdash/rightsdash/internal/palette"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// squareGlyph is drawn for each waffle cell.
const squareGlyph = "■"

var colorBold = color.New(color.Bold)

// TextFormatter writes a view as a terminal report: the bar chart as a
// count table and the waffle chart as a grid of colored squares.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the view to w.
func (f *TextFormatter) Format(view *dashboard.View, w io.Writer) error {
	if view == nil {
		return nil
	}
	if view.Bar != nil {
		if err := writeBarText(w, view.Bar); err != nil {
			return err
		}
	}
	if view.Waffle != nil {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := writeWaffleText(w, view.Waffle); err != nil {
			return err
		}
	}
	return nil
}

func writeBarText(w io.Writer, bar *dashboard.BarChart) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", colorBold.Sprint(bar.Title)); err != nil {
		return err
	}
	if len(bar.Series) == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	cols := []column{{header: "CONTINENT"}}
	for _, s := range bar.Series {
		cols = append(cols, column{header: s.Name, align: alignRight, paint: painter(s.Color)})
	}
	cols = append(cols, column{header: "TOTAL", align: alignRight, paint: bold})

	tbl := newTextTable(cols...)
	for i, cont := range bar.Continents {
		row := []string{cont}
		total := 0
		for _, s := range bar.Series {
			row = append(row, strconv.Itoa(s.Points[i].Count))
			total += s.Points[i].Count
		}
		row = append(row, strconv.Itoa(total))
		tbl.addRow(row...)
	}
	return tbl.render(w)
}

func writeWaffleText(w io.Writer, waffle *dashboard.WaffleChart) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", colorBold.Sprint(waffle.Title), waffle.Field); err != nil {
		return err
	}
	if waffle.Total() == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	legend := make([]string, len(waffle.Series))
	for i, s := range waffle.Series {
		legend[i] = painter(s.Color)(squareGlyph) + " " + s.Name
	}
	if _, err := fmt.Fprintf(w, "  %s\n\n", strings.Join(legend, "   ")); err != nil {
		return err
	}

	grid := make(map[[2]int]layout.Cell)
	top, bottom := waffle.Rows, waffle.Rows
	for _, s := range waffle.Series {
		for _, c := range s.Cells {
			grid[[2]int{c.X, c.Y}] = c
			top = max(top, c.Y)
			bottom = min(bottom, c.Y)
		}
	}
	width := waffle.Width
	if width <= 0 {
		width = layout.DefaultWidth
	}

	for y := top; y >= bottom; y-- {
		var line strings.Builder
		line.WriteString("  ")
		for x := 0; x < width; x++ {
			c, ok := grid[[2]int{x, y}]
			if !ok {
				line.WriteString("  ")
				continue
			}
			line.WriteString(painter(palette.Color(c.Color))(squareGlyph))
			line.WriteString(" ")
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func bold(s string) string { return colorBold.Sprint(s) }

// painter returns a function coloring text with c, or the identity when c
// cannot be decoded.
func painter(c palette.Color) func(string) string {
	r, g, b, err := c.RGB()
	if err != nil {
		return func(s string) string { return s }
	}
	rgb := color.RGB(r, g, b)
	return func(s string) string { return rgb.Sprint(s) }
}
