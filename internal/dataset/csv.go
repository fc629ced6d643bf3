// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

func init() {
	RegisterLoader(NewCSVLoader())
	RegisterLoader(NewTSVLoader())
}

// CSVLoader reads delimiter-separated text with a header row.
type CSVLoader struct {
	name  string
	comma rune
	exts  []string
}

// Compile-time interface check.
var _ Loader = (*CSVLoader)(nil)

// NewCSVLoader returns a comma-separated loader for .csv files.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{name: "csv", comma: ',', exts: []string{".csv"}}
}

// NewTSVLoader returns a tab-separated loader for .tsv files.
func NewTSVLoader() *CSVLoader {
	return &CSVLoader{name: "tsv", comma: '\t', exts: []string{".tsv"}}
}

// Name returns the loader name.
func (l *CSVLoader) Name() string { return l.name }

// Extensions returns the handled file extensions.
func (l *CSVLoader) Extensions() []string { return l.exts }

// Load parses the stream into a Table.
func (l *CSVLoader) Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.comma
	cr.FieldsPerRecord = -1 // ragged rows are checked against the header in FromRows

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.name, err)
	}
	return FromRows(rows)
}
