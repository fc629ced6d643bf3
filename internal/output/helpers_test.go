// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/dataset"
)

const legalField = "CRIMINALISATION_CONSENSUAL_SAME_SEX_SEXUAL_ACTS_LEGAL"

// testView returns the ALL view of a small dataset: Africa has one YES and
// two NO, Europe has two YES.
func testView(t *testing.T) *dashboard.View {
	t.Helper()
	return testViewFor(t, dashboard.Selection{})
}

func testViewFor(t *testing.T, sel dashboard.Selection) *dashboard.View {
	t.Helper()
	tbl, err := dataset.FromRows([][]string{
		{"CONTINENT", "COUNTRY", legalField},
		{"Africa", "Kenya", "N"},
		{"Africa", "Ghana", "N"},
		{"Africa", "Gabon", "Y"},
		{"Europe", "Malta", "Y"},
		{"Europe", "Spain", "Y"},
	})
	require.NoError(t, err)
	d, err := dashboard.New(tbl, dashboard.Options{})
	require.NoError(t, err)
	view, err := d.View(sel)
	require.NoError(t, err)
	return view
}

// fixedNow returns a deterministic time for testing.
func fixedNow() time.Time {
	return time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
}

// restoreFormatters re-registers the built-in formatters after a test
// cleared the registry.
func restoreFormatters() {
	resetFmtForTesting()
	RegisterFormatter(NewJSONFormatter())
	RegisterFormatter(NewTextFormatter())
	RegisterFormatter(NewMarkdownFormatter())
	RegisterFormatter(NewHTMLFormatter())
}

// failWriter succeeds for the first failAfter writes and fails afterwards.
type failWriter struct {
	failAfter int
	writes    int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.writes >= w.failAfter {
		return 0, errors.New("write error")
	}
	w.writes++
	return len(p), nil
}
