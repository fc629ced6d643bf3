// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package dataset

import "strings"

// naTokens are the cell contents treated as missing, matching what common
// CSV readers interpret as NA by default.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// ParseCell converts a raw cell into a Value. Surrounding whitespace is kept
// for present values; normalization trims it later.
func ParseCell(raw string) Value {
	if naTokens[strings.TrimSpace(raw)] {
		return Value{}
	}
	return Value{Raw: raw, Valid: true}
}
