// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"
)

// alignment controls how a column's content is justified.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// column describes a single text table column. paint, when set, decorates
// the header and every cell after padding widths are computed.
type column struct {
	header string
	align  alignment
	paint  func(string) string
}

// textTable renders aligned text tables.
type textTable struct {
	columns []column
	rows    [][]string
}

func newTextTable(columns ...column) *textTable {
	return &textTable{columns: columns}
}

// addRow appends a row, padding missing values with empty strings.
func (t *textTable) addRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

func (t *textTable) render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = t.cell(i, col.header, widths[i])
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}
	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, val := range row {
			parts[i] = t.cell(i, val, widths[i])
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

// cell pads on the raw value so ANSI escapes do not skew alignment.
func (t *textTable) cell(i int, val string, width int) string {
	col := t.columns[i]
	pad := strings.Repeat(" ", max(width-len(val), 0))
	display := val
	if col.paint != nil {
		display = col.paint(val)
	}
	if col.align == alignRight {
		return pad + display
	}
	return display + pad
}

func writeLine(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
