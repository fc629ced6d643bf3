// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsdash/rightsdash/internal/aggregate"
)

func countries(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i+1)
	}
	return out
}

func TestLayout_RowWrapAtSeventeenthCell(t *testing.T) {
	buckets := []aggregate.Bucket{{Value: "YES", Members: countries("C", 20)}}

	cells := Layout(buckets, Options{StartRow: AllRows})
	require.Len(t, cells, 20)

	assert.Equal(t, Cell{X: 0, Y: 10, Country: "C01", Value: "YES"}, cells[0])
	assert.Equal(t, 15, cells[15].X)
	assert.Equal(t, 10, cells[15].Y)
	assert.Equal(t, 0, cells[16].X, "17th cell starts a new row")
	assert.Equal(t, 9, cells[16].Y)
	assert.Equal(t, 3, cells[19].X)
	assert.Equal(t, 9, cells[19].Y)
}

func TestLayout_BucketsAreContiguousAndOrdered(t *testing.T) {
	buckets := []aggregate.Bucket{
		{Value: "YES", Members: []string{"Malta", "Spain", "Japan"}},
		{Value: "NO", Members: []string{"Kenya", "Ghana"}},
	}
	cells := Layout(buckets, Options{StartRow: ContinentRows})

	var order []string
	var values []string
	for _, c := range cells {
		order = append(order, c.Country)
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"Malta", "Spain", "Japan", "Kenya", "Ghana"}, order)
	assert.Equal(t, []string{"YES", "YES", "YES", "NO", "NO"}, values)

	// The second bucket continues on the same cursor.
	assert.Equal(t, 3, cells[3].X)
	assert.Equal(t, ContinentRows, cells[3].Y)
}

func TestLayout_CompletenessAndUniqueness(t *testing.T) {
	buckets := []aggregate.Bucket{
		{Value: "YES", Members: countries("Y", 37)},
		{Value: "NO", Members: countries("N", 29)},
		{Value: "DE FACTO", Members: countries("D", 3)},
	}
	cells := Layout(buckets, Options{StartRow: AllRows})

	total := 0
	for _, b := range buckets {
		total += b.Count()
	}
	assert.Len(t, cells, total)

	seen := make(map[string]bool)
	positions := make(map[[2]int]bool)
	for _, c := range cells {
		assert.False(t, seen[c.Country], "country %s appears twice", c.Country)
		seen[c.Country] = true
		pos := [2]int{c.X, c.Y}
		assert.False(t, positions[pos], "position %v reused", pos)
		positions[pos] = true
	}
}

func TestLayout_OverflowContinuesBelowZero(t *testing.T) {
	buckets := []aggregate.Bucket{{Value: "NO", Members: countries("C", 16*7)}}
	cells := Layout(buckets, Options{StartRow: ContinentRows})

	last := cells[len(cells)-1]
	assert.Equal(t, 15, last.X)
	assert.Equal(t, ContinentRows-6, last.Y)
	assert.Negative(t, last.Y)
}

func TestLayout_ColorAndWidth(t *testing.T) {
	buckets := []aggregate.Bucket{{Value: "YES", Members: countries("C", 5)}}
	cells := Layout(buckets, Options{
		Width:    2,
		StartRow: 0,
		Color:    func(v string) string { return "color-" + v },
	})

	assert.Equal(t, "color-YES", cells[0].Color)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {0, -1}, {1, -1}, {0, -2}}, positions(cells))
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, Layout(nil, Options{}))
}

func TestStartRowFor(t *testing.T) {
	assert.Equal(t, AllRows, StartRowFor(aggregate.All))
	assert.Equal(t, ContinentRows, StartRowFor("Africa"))
}

func positions(cells []Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}
