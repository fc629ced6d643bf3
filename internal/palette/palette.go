// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package palette resolves canonical values to display colors.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a "#RRGGBB" hex string.
type Color string

// Fallback is returned for values not present in the table.
const Fallback Color = "#AAAAAA"

// Entry assigns one color to a set of canonical values.
type Entry struct {
	Color  Color
	Values []string
}

// entries is searched in order; the first entry containing a value wins.
var entries = []Entry{
	{Color: "#7FDBFF", Values: []string{"YES", "MALE ONLY", "UNKNOWN"}},
	{Color: "#FF624C", Values: []string{"NO", "ANY GENDER", "DEATH"}},
	{Color: "#9BFF7F", Values: []string{"DE FACTO"}},
	{Color: "#FF8F4C", Values: []string{"FOR LIFE"}},
	{Color: "#FFE84C", Values: []string{"11-20 years"}},
	{Color: "#BCFF4C", Values: []string{"1-10 years"}},
}

// For returns the color for a canonical value.
func For(value string) Color {
	for _, e := range entries {
		for _, v := range e.Values {
			if v == value {
				return e.Color
			}
		}
	}
	return Fallback
}

// Entries returns a copy of the lookup table in resolution order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Color: e.Color, Values: append([]string(nil), e.Values...)}
	}
	return out
}

// String returns the hex form.
func (c Color) String() string { return string(c) }

// RGB decodes the color into its components.
func (c Color) RGB() (r, g, b int, err error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", string(c))
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", string(c), err)
	}
	return int(n >> 16 & 0xFF), int(n >> 8 & 0xFF), int(n & 0xFF), nil
}
