// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package normalize maps raw categorical values onto canonical labels.
package normalize

import (
	"strconv"
	"strings"

	"github.com/rightsdash/rightsdash/internal/dataset"
)

// Canonical labels produced by the rules below.
const (
	Yes            = "YES"
	No             = "NO"
	MaleOnly       = "MALE ONLY"
	Death          = "DEATH"
	Unknown        = "UNKNOWN"
	OneToTen       = "1-10 years"
	ElevenToTwenty = "11-20 years"

	// DoesNotApply marks rows excluded from penalty and gender views.
	DoesNotApply = "DOES NOT APPLY"
)

var penaltyYears = func() map[string]string {
	m := make(map[string]string, 20)
	for i := 1; i <= 20; i++ {
		label := OneToTen
		if i > 10 {
			label = ElevenToTwenty
		}
		m[strconv.Itoa(i)] = label
	}
	return m
}()

// Value returns the canonical form of raw for kind. keep is false when the
// row carrying this value must be dropped from the view.
func Value(kind Kind, raw string) (canonical string, keep bool) {
	s := strings.TrimSpace(raw)
	switch kind {
	case KindPenalty:
		return penalty(s)
	case KindGender:
		return gender(s)
	default:
		return binary(s), true
	}
}

func penalty(s string) (string, bool) {
	if strings.Contains(strings.ToLower(s), "death") {
		return Death, true
	}
	if s == "UNDETERMINED" {
		return Unknown, true
	}
	if label, ok := penaltyYears[s]; ok {
		return label, true
	}
	return s, s != DoesNotApply
}

func gender(s string) (string, bool) {
	if s == "M ONLY" {
		return MaleOnly, true
	}
	return s, s != DoesNotApply
}

func binary(s string) string {
	switch s {
	case "Y":
		return Yes
	case "N":
		return No
	default:
		return s
	}
}

// Rows returns a new slice with every row's value canonicalized for kind and
// dropped rows removed. The input is not modified.
func Rows(rows []dataset.Row, kind Kind) []dataset.Row {
	out := make([]dataset.Row, 0, len(rows))
	for _, r := range rows {
		canonical, keep := Value(kind, r.Value)
		if !keep {
			continue
		}
		r.Value = canonical
		out = append(out, r)
	}
	return out
}
