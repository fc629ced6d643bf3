// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/layout"
	"github.com/rightsdash/rightsdash/internal/palette"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// Chart geometry in SVG user units.
const (
	barPlotWidth  = 600
	barPlotHeight = 260
	barMarginLeft = 40
	barMarginTop  = 20
	barMarginBot  = 40
	waffleCell    = 20
	waffleGap     = 2
)

// HTMLFormatter writes a view as a self-contained HTML page with inline SVG
// charts.
type HTMLFormatter struct {
	// FormAction, when set, adds the field and continent selection form
	// submitting to that URL.
	FormAction string

	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter rendering a static page.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the view as an HTML page to w.
func (h *HTMLFormatter) Format(view *dashboard.View, w io.Writer) error {
	if view == nil {
		return h.writeEmpty(w)
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // marshaled JSON is safe to embed
			},
		}).Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	if err := htmlTmpl.Execute(w, buildHTMLData(view, h.FormAction, now)); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the page.
type htmlData struct {
	GeneratedAt string
	FormAction  string
	Selection   dashboard.Selection
	Fields      []string
	Continents  []string
	Bar         *barSVG
	Waffle      *waffleSVG
	View        *dashboard.View
}

type svgRect struct {
	X, Y, W, H int
	Fill       palette.Color
	Tip        string
}

type svgText struct {
	X, Y int
	Text string
}

type legendEntry struct {
	Name  string
	Color palette.Color
}

type barSVG struct {
	Title  string
	Width  int
	Height int
	Rects  []svgRect
	Labels []svgText
	Ticks  []svgText
	Legend []legendEntry
	Empty  bool
}

type waffleSVG struct {
	Title  string
	Width  int
	Height int
	Cells  []svgRect
	Legend []legendEntry
	Empty  bool
}

func buildHTMLData(view *dashboard.View, action string, now time.Time) htmlData {
	data := htmlData{
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		FormAction:  action,
		Selection:   view.Selection,
		Fields:      view.Fields,
		Continents:  view.Continents,
		View:        view,
	}
	if view.Bar != nil {
		data.Bar = buildBarSVG(view.Bar)
	}
	if view.Waffle != nil {
		data.Waffle = buildWaffleSVG(view.Waffle)
	}
	return data
}

// buildBarSVG stacks each continent's series counts bottom-up in series order.
func buildBarSVG(bar *dashboard.BarChart) *barSVG {
	out := &barSVG{
		Title:  bar.Title,
		Width:  barMarginLeft + barPlotWidth + 20,
		Height: barMarginTop + barPlotHeight + barMarginBot,
		Empty:  len(bar.Series) == 0 || len(bar.Continents) == 0,
	}
	for _, s := range bar.Series {
		out.Legend = append(out.Legend, legendEntry{Name: s.Name, Color: s.Color})
	}
	if out.Empty {
		return out
	}

	maxTotal := 0
	for i := range bar.Continents {
		total := 0
		for _, s := range bar.Series {
			total += s.Points[i].Count
		}
		maxTotal = max(maxTotal, total)
	}
	if maxTotal == 0 {
		maxTotal = 1
	}

	base := barMarginTop + barPlotHeight
	band := barPlotWidth / len(bar.Continents)
	barW := max(band*3/5, 1)
	for i, cont := range bar.Continents {
		x := barMarginLeft + i*band + (band-barW)/2
		y := base
		for _, s := range bar.Series {
			n := s.Points[i].Count
			if n == 0 {
				continue
			}
			h := max(n*barPlotHeight/maxTotal, 1)
			y -= h
			out.Rects = append(out.Rects, svgRect{
				X: x, Y: y, W: barW, H: h,
				Fill: s.Color,
				Tip:  fmt.Sprintf("%s, %s: %d", cont, s.Name, n),
			})
		}
		out.Labels = append(out.Labels, svgText{X: x + barW/2, Y: base + 16, Text: cont})
	}
	out.Ticks = []svgText{
		{X: barMarginLeft - 6, Y: base, Text: "0"},
		{X: barMarginLeft - 6, Y: barMarginTop + 4, Text: fmt.Sprint(maxTotal)},
	}
	return out
}

// buildWaffleSVG maps grid rows so the highest y is drawn at the top.
func buildWaffleSVG(waffle *dashboard.WaffleChart) *waffleSVG {
	width := waffle.Width
	if width <= 0 {
		width = layout.DefaultWidth
	}
	out := &waffleSVG{
		Title: waffle.Title,
		Empty: waffle.Total() == 0,
	}
	for _, s := range waffle.Series {
		out.Legend = append(out.Legend, legendEntry{Name: s.Name, Color: s.Color})
	}

	top, bottom := waffle.Rows, waffle.Rows
	for _, s := range waffle.Series {
		for _, c := range s.Cells {
			top = max(top, c.Y)
			bottom = min(bottom, c.Y)
		}
	}
	pitch := waffleCell + waffleGap
	out.Width = width * pitch
	out.Height = (top - bottom + 1) * pitch

	for _, s := range waffle.Series {
		for _, c := range s.Cells {
			out.Cells = append(out.Cells, svgRect{
				X:    c.X * pitch,
				Y:    (top - c.Y) * pitch,
				W:    waffleCell,
				H:    waffleCell,
				Fill: palette.Color(c.Color),
				Tip:  fmt.Sprintf("%s: %s", c.Country, c.Value),
			})
		}
	}
	return out
}

func (h *HTMLFormatter) writeEmpty(w io.Writer) error {
	const emptyHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Rights Dashboard</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>No data loaded.</p></body></html>`
	if _, err := io.WriteString(w, emptyHTML); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}
