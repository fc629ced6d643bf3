// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"

	"github.com/rightsdash/rightsdash/internal/aggregate"
	"github.com/rightsdash/rightsdash/internal/layout"
	"github.com/rightsdash/rightsdash/internal/palette"
)

// BarPoint is one continent's count within a bar series.
type BarPoint struct {
	Continent string `json:"continent"`
	Count     int    `json:"count"`
}

// BarSeries is one stacked segment type of the bar chart.
type BarSeries struct {
	Name   string        `json:"name"`
	Color  palette.Color `json:"color"`
	Points []BarPoint    `json:"points"`
}

// BarChart is the continent by canonical value stacked bar chart.
type BarChart struct {
	Field      string      `json:"field"`
	Title      string      `json:"title"`
	Continents []string    `json:"continents"`
	Series     []BarSeries `json:"series"`
}

// WaffleSeries is the run of cells for one canonical value.
type WaffleSeries struct {
	Name  string        `json:"name"`
	Value string        `json:"value"`
	Count int           `json:"count"`
	Color palette.Color `json:"color"`
	Cells []layout.Cell `json:"cells"`
}

// WaffleChart is the unit-square chart for one continent selection.
type WaffleChart struct {
	Field     string         `json:"field"`
	Continent string         `json:"continent"`
	Title     string         `json:"title"`
	Width     int            `json:"width"`
	Rows      int            `json:"rows"`
	Series    []WaffleSeries `json:"series"`
}

// Total returns the number of cells across all series.
func (w *WaffleChart) Total() int {
	n := 0
	for _, s := range w.Series {
		n += len(s.Cells)
	}
	return n
}

// View is everything the dashboard shows for one selection.
type View struct {
	Selection  Selection    `json:"selection"`
	Fields     []string     `json:"fields"`
	Continents []string     `json:"continents"`
	Bar        *BarChart    `json:"bar"`
	Waffle     *WaffleChart `json:"waffle"`
}

// BarChart computes the stacked bar chart for field.
func (d *Dashboard) BarChart(field string) (*BarChart, error) {
	if err := d.checkField(field); err != nil {
		return nil, err
	}
	rows, err := d.normalized(field)
	if err != nil {
		return nil, err
	}
	m := aggregate.Pivot(rows)

	chart := &BarChart{
		Field:      field,
		Title:      fmt.Sprintf("Number of Countries with %s", field),
		Continents: m.Continents,
		Series:     make([]BarSeries, 0, len(m.Values)),
	}
	for _, value := range m.Values {
		counts := m.Column(value)
		points := make([]BarPoint, len(m.Continents))
		for i, cont := range m.Continents {
			points[i] = BarPoint{Continent: cont, Count: counts[i]}
		}
		chart.Series = append(chart.Series, BarSeries{
			Name:   value,
			Color:  palette.For(value),
			Points: points,
		})
	}
	return chart, nil
}

// WaffleChart computes the waffle chart for field, restricted to continent
// unless it is All.
func (d *Dashboard) WaffleChart(field, continent string) (*WaffleChart, error) {
	if err := d.checkField(field); err != nil {
		return nil, err
	}
	if err := d.checkContinent(continent); err != nil {
		return nil, err
	}
	rows, err := d.normalized(field)
	if err != nil {
		return nil, err
	}
	buckets := aggregate.Buckets(aggregate.FilterContinent(rows, continent))

	startRow := layout.StartRowFor(continent)
	cells := layout.Layout(buckets, layout.Options{
		Width:    d.width,
		StartRow: startRow,
		Color:    func(v string) string { return palette.For(v).String() },
	})

	chart := &WaffleChart{
		Field:     field,
		Continent: continent,
		Title:     continent,
		Width:     d.width,
		Rows:      startRow,
		Series:    make([]WaffleSeries, 0, len(buckets)),
	}
	offset := 0
	for _, b := range buckets {
		n := b.Count()
		chart.Series = append(chart.Series, WaffleSeries{
			Name:  fmt.Sprintf("%s: %d", b.Value, n),
			Value: b.Value,
			Count: n,
			Color: palette.For(b.Value),
			Cells: cells[offset : offset+n],
		})
		offset += n
	}
	return chart, nil
}

// View resolves sel and computes both charts.
func (d *Dashboard) View(sel Selection) (*View, error) {
	sel, err := d.Resolve(sel)
	if err != nil {
		return nil, err
	}
	bar, err := d.BarChart(sel.Field)
	if err != nil {
		return nil, err
	}
	waffle, err := d.WaffleChart(sel.Field, sel.Continent)
	if err != nil {
		return nil, err
	}
	return &View{
		Selection:  sel,
		Fields:     d.Fields(),
		Continents: d.Continents(),
		Bar:        bar,
		Waffle:     waffle,
	}, nil
}
