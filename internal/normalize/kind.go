// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Kind selects the normalization strategy for a categorical field.
type Kind int

const (
	// KindBinary maps Y/N abbreviations. It is the default for unknown fields.
	KindBinary Kind = iota
	// KindPenalty buckets maximum-penalty descriptions.
	KindPenalty
	// KindGender expands gender-scope abbreviations.
	KindGender
)

// Fields with a non-binary kind in the published dataset.
const (
	PenaltyField = "CRIMINALISATION_MAX_PENALTY"
	GenderField  = "CRIMINALISATION_GENDER"
)

var kindNames = map[Kind]string{
	KindBinary:  "binary",
	KindPenalty: "penalty",
	KindGender:  "gender",
}

// String returns the kind name used in configuration files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == want {
			return k, nil
		}
	}
	names := make([]string, 0, len(kindNames))
	for _, n := range kindNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return 0, fmt.Errorf("unknown field kind %q (must be one of: %s)", name, strings.Join(names, ", "))
}

// Classifier maps field names to kinds.
type Classifier struct {
	kinds map[string]Kind
}

// NewClassifier returns a classifier seeded with the built-in field kinds.
// Entries in overrides replace or extend the built-ins.
func NewClassifier(overrides map[string]Kind) *Classifier {
	c := &Classifier{kinds: map[string]Kind{
		PenaltyField: KindPenalty,
		GenderField:  KindGender,
	}}
	for field, k := range overrides {
		c.kinds[field] = k
	}
	return c
}

// KindOf returns the kind for field, defaulting to KindBinary.
func (c *Classifier) KindOf(field string) Kind {
	if k, ok := c.kinds[field]; ok {
		return k
	}
	return KindBinary
}
