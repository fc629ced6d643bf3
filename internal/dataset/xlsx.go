// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

func init() {
	RegisterLoader(NewXLSXLoader())
}

// XLSXLoader reads the first worksheet of an Excel workbook.
type XLSXLoader struct {
	// Sheet selects a worksheet by name. Empty means the first sheet.
	Sheet string
}

// Compile-time interface check.
var _ Loader = (*XLSXLoader)(nil)

// NewXLSXLoader returns a loader for .xlsx workbooks.
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

// Name returns the loader name.
func (l *XLSXLoader) Name() string { return "xlsx" }

// Extensions returns the handled file extensions.
func (l *XLSXLoader) Extensions() []string { return []string{".xlsx"} }

// Load parses the workbook into a Table.
func (l *XLSXLoader) Load(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSchema)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return FromRows(rows)
}
