// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package aggregate counts distinct countries per continent and canonical
// value.
package aggregate

import (
	"slices"
	"strings"

	"github.com/rightsdash/rightsdash/internal/dataset"
)

// All selects every continent.
const All = "ALL"

// Bucket is the set of countries sharing one canonical value.
type Bucket struct {
	Value   string   `json:"value"`
	Members []string `json:"members"`
}

// Count returns the number of distinct member countries.
func (b Bucket) Count() int {
	return len(b.Members)
}

// Matrix is the continent by value pivot used by the bar chart.
type Matrix struct {
	Continents []string `json:"continents"`
	Values     []string `json:"values"`
	// Counts[i][j] is the distinct-country count for Continents[i] and Values[j].
	Counts [][]int `json:"counts"`
}

// Count returns the cell for continent and value, or 0 when either is absent.
func (m *Matrix) Count(continent, value string) int {
	i := slices.Index(m.Continents, continent)
	j := slices.Index(m.Values, value)
	if i < 0 || j < 0 {
		return 0
	}
	return m.Counts[i][j]
}

// Column returns the counts for value in continent order.
func (m *Matrix) Column(value string) []int {
	j := slices.Index(m.Values, value)
	out := make([]int, len(m.Continents))
	if j < 0 {
		return out
	}
	for i := range m.Continents {
		out[i] = m.Counts[i][j]
	}
	return out
}

// RowTotal returns the sum of a continent's counts.
func (m *Matrix) RowTotal(continent string) int {
	i := slices.Index(m.Continents, continent)
	if i < 0 {
		return 0
	}
	total := 0
	for _, c := range m.Counts[i] {
		total += c
	}
	return total
}

// Pivot groups rows by continent and value. Continents keep encounter order;
// values are sorted in descending order.
func Pivot(rows []dataset.Row) *Matrix {
	m := &Matrix{}
	contIdx := make(map[string]int)
	seen := make(map[string]map[string]map[string]bool) // continent -> value -> country
	valueSet := make(map[string]bool)

	for _, r := range rows {
		if _, ok := contIdx[r.Continent]; !ok {
			contIdx[r.Continent] = len(m.Continents)
			m.Continents = append(m.Continents, r.Continent)
			seen[r.Continent] = make(map[string]map[string]bool)
		}
		if seen[r.Continent][r.Value] == nil {
			seen[r.Continent][r.Value] = make(map[string]bool)
		}
		seen[r.Continent][r.Value][r.Country] = true
		if !valueSet[r.Value] {
			valueSet[r.Value] = true
			m.Values = append(m.Values, r.Value)
		}
	}
	SortValues(m.Values)

	m.Counts = make([][]int, len(m.Continents))
	for i, cont := range m.Continents {
		m.Counts[i] = make([]int, len(m.Values))
		for j, val := range m.Values {
			m.Counts[i][j] = len(seen[cont][val])
		}
	}
	return m
}

// Buckets groups rows by value only. Buckets are sorted in descending value
// order; members are distinct and keep table order.
func Buckets(rows []dataset.Row) []Bucket {
	idx := make(map[string]int)
	members := make(map[string]map[string]bool)
	var out []Bucket

	for _, r := range rows {
		i, ok := idx[r.Value]
		if !ok {
			i = len(out)
			idx[r.Value] = i
			out = append(out, Bucket{Value: r.Value})
			members[r.Value] = make(map[string]bool)
		}
		if members[r.Value][r.Country] {
			continue
		}
		members[r.Value][r.Country] = true
		out[i].Members = append(out[i].Members, r.Country)
	}

	slices.SortStableFunc(out, func(a, b Bucket) int {
		return strings.Compare(b.Value, a.Value)
	})
	return out
}

// FilterContinent returns the rows belonging to continent. All returns a
// copy of rows unchanged.
func FilterContinent(rows []dataset.Row, continent string) []dataset.Row {
	if continent == All {
		return slices.Clone(rows)
	}
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		if r.Continent == continent {
			out = append(out, r)
		}
	}
	return out
}

// SortValues sorts canonical values in place, descending by label.
func SortValues(values []string) {
	slices.SortFunc(values, func(a, b string) int {
		return strings.Compare(b, a)
	})
}
