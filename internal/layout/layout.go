// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package layout packs bucket members into a fixed-width waffle grid.
package layout

import "github.com/rightsdash/rightsdash/internal/aggregate"

// DefaultWidth is the number of cells per grid row.
const DefaultWidth = 16

// Starting rows for the two waffle views.
const (
	AllRows       = 10
	ContinentRows = 5
)

// Cell is one square of the waffle grid.
type Cell struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Country string `json:"country"`
	Value   string `json:"value"`
	Color   string `json:"color,omitempty"`
}

// Options configures Layout.
type Options struct {
	// Width is the number of cells per row. Zero or negative means DefaultWidth.
	Width int

	// StartRow is the y coordinate of the first row. Rows stack downward.
	StartRow int

	// Color resolves a bucket value to a cell color. Nil leaves colors empty.
	Color func(value string) string
}

// StartRowFor returns the starting row for a continent selection.
func StartRowFor(continent string) int {
	if continent == aggregate.All {
		return AllRows
	}
	return ContinentRows
}

// Layout emits one cell per bucket member, bucket by bucket, filling rows
// left to right from (0, StartRow) and moving down one row every Width
// cells. Rows below zero are emitted as negative y; nothing is clipped.
func Layout(buckets []aggregate.Bucket, opts Options) []Cell {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	total := 0
	for _, b := range buckets {
		total += len(b.Members)
	}
	cells := make([]Cell, 0, total)

	x, y := 0, opts.StartRow
	for _, b := range buckets {
		color := ""
		if opts.Color != nil {
			color = opts.Color(b.Value)
		}
		for _, country := range b.Members {
			cells = append(cells, Cell{X: x, Y: y, Country: country, Value: b.Value, Color: color})
			x++
			if x == width {
				x = 0
				y--
			}
		}
	}
	return cells
}
