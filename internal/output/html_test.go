// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/layout"
)

func TestHTMLFormatter_Name(t *testing.T) {
	assert.Equal(t, "html", NewHTMLFormatter().Name())
}

func TestHTMLFormatter_NilView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter().Format(nil, &buf))
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
	assert.Contains(t, buf.String(), "No data loaded")
}

func TestHTMLFormatter_StaticPage(t *testing.T) {
	f := &HTMLFormatter{nowFunc: fixedNow}

	var buf bytes.Buffer
	require.NoError(t, f.Format(testView(t), &buf))
	out := buf.String()

	assert.Contains(t, out, "Generated 2026-02-07 12:00 UTC")
	assert.Contains(t, out, "Number of Countries with "+legalField)
	assert.Equal(t, 3, strings.Count(out, `class="bar"`))
	assert.Equal(t, 5, strings.Count(out, `class="cell"`))
	assert.Contains(t, out, `fill="#7FDBFF"`)
	assert.Contains(t, out, `fill="#FF624C"`)
	assert.Contains(t, out, "YES: 3")
	assert.Contains(t, out, "<title>Kenya: NO</title>")
	assert.Contains(t, out, "var view = {")
	assert.NotContains(t, out, "<form")
}

func TestHTMLFormatter_InteractivePage(t *testing.T) {
	f := &HTMLFormatter{FormAction: "/", nowFunc: fixedNow}
	view := testViewFor(t, dashboard.Selection{Continent: "Africa"})

	var buf bytes.Buffer
	require.NoError(t, f.Format(view, &buf))
	out := buf.String()

	assert.Contains(t, out, `<form class="filters" id="filters" method="get" action="/">`)
	assert.Contains(t, out, `<option value="`+legalField+`" selected>`)
	assert.Contains(t, out, `value="Africa" checked`)
	assert.Contains(t, out, `value="ALL" onchange`)
	assert.Equal(t, 3, strings.Count(out, `class="cell"`))
}

func TestHTMLFormatter_EscapesValues(t *testing.T) {
	view := &dashboard.View{
		Selection: dashboard.Selection{Field: "<script>", Continent: dashboard.All},
		Fields:    []string{"<script>"},
	}
	var buf bytes.Buffer
	require.NoError(t, (&HTMLFormatter{FormAction: "/"}).Format(view, &buf))
	assert.NotContains(t, buf.String(), `<option value="<script>"`)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestBuildBarSVG_StacksSegments(t *testing.T) {
	view := testView(t)
	bar := buildBarSVG(view.Bar)

	require.False(t, bar.Empty)
	require.Len(t, bar.Rects, 3)
	base := barMarginTop + barPlotHeight

	// Africa is the tallest bar: YES (1) sits on the axis with NO (2) above it.
	yes, no := bar.Rects[0], bar.Rects[1]
	assert.Equal(t, base, yes.Y+yes.H)
	assert.Equal(t, yes.Y, no.Y+no.H)
	assert.Equal(t, barPlotHeight/3, yes.H)
	assert.Equal(t, 2*barPlotHeight/3, no.H)
	assert.Equal(t, "Africa, NO: 2", no.Tip)

	require.Len(t, bar.Labels, 2)
	assert.Equal(t, "Europe", bar.Labels[1].Text)
	assert.Equal(t, "3", bar.Ticks[1].Text)
}

func TestBuildWaffleSVG_TopRowFirst(t *testing.T) {
	waffle := &dashboard.WaffleChart{
		Width: 2, Rows: 5,
		Series: []dashboard.WaffleSeries{{
			Name: "YES: 3", Value: "YES", Count: 3,
			Cells: []layout.Cell{
				{X: 0, Y: 5, Country: "a", Value: "YES"},
				{X: 1, Y: 5, Country: "b", Value: "YES"},
				{X: 0, Y: 4, Country: "c", Value: "YES"},
			},
		}},
	}
	svg := buildWaffleSVG(waffle)

	pitch := waffleCell + waffleGap
	assert.Equal(t, 2*pitch, svg.Width)
	assert.Equal(t, 2*pitch, svg.Height)
	require.Len(t, svg.Cells, 3)
	assert.Equal(t, 0, svg.Cells[0].Y)
	assert.Equal(t, pitch, svg.Cells[1].X)
	assert.Equal(t, pitch, svg.Cells[2].Y)
}
