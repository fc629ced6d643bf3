// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package dashboard composes normalization, aggregation, layout and color
// resolution into the bar and waffle chart data products.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rightsdash/rightsdash/internal/aggregate"
	"github.com/rightsdash/rightsdash/internal/dataset"
	"github.com/rightsdash/rightsdash/internal/layout"
	"github.com/rightsdash/rightsdash/internal/normalize"
)

// All selects every continent in the waffle view.
const All = aggregate.All

// ErrInvalidSelection indicates a field or continent the dataset does not have.
var ErrInvalidSelection = errors.New("invalid selection")

// Options configures a Dashboard.
type Options struct {
	// DefaultField is used when a selection names no field. Empty means the
	// first field of the table.
	DefaultField string

	// FieldKinds overrides the normalization kind of individual fields.
	FieldKinds map[string]normalize.Kind

	// Width is the waffle row width. Zero means layout.DefaultWidth.
	Width int
}

// Dashboard holds the loaded table and computes views from it. It never
// mutates the table, so one Dashboard may serve concurrent callers.
type Dashboard struct {
	table        *dataset.Table
	classifier   *normalize.Classifier
	defaultField string
	width        int
}

// Selection is the user's choice of field and continent.
type Selection struct {
	Field     string `json:"field"`
	Continent string `json:"continent"`
}

// New builds a Dashboard over table.
func New(table *dataset.Table, opts Options) (*Dashboard, error) {
	if table == nil {
		return nil, errors.New("dashboard: nil table")
	}
	d := &Dashboard{
		table:      table,
		classifier: normalize.NewClassifier(opts.FieldKinds),
		width:      opts.Width,
	}
	if d.width <= 0 {
		d.width = layout.DefaultWidth
	}

	switch {
	case opts.DefaultField != "":
		if !table.HasField(opts.DefaultField) {
			return nil, d.fieldError(opts.DefaultField)
		}
		d.defaultField = opts.DefaultField
	case len(table.Fields()) > 0:
		d.defaultField = table.Fields()[0]
	}
	return d, nil
}

// Fields returns the selectable categorical fields in header order.
func (d *Dashboard) Fields() []string {
	return d.table.Fields()
}

// DefaultField returns the field used when none is selected.
func (d *Dashboard) DefaultField() string {
	return d.defaultField
}

// Continents returns the selectable continents: All first, then the
// dataset's continents in encounter order.
func (d *Dashboard) Continents() []string {
	return append([]string{All}, d.table.Continents()...)
}

// KindOf reports the normalization kind applied to field.
func (d *Dashboard) KindOf(field string) normalize.Kind {
	return d.classifier.KindOf(field)
}

// Resolve fills in defaults and validates a selection.
func (d *Dashboard) Resolve(sel Selection) (Selection, error) {
	if sel.Field == "" {
		sel.Field = d.defaultField
	}
	if sel.Continent == "" {
		sel.Continent = All
	}
	if err := d.checkField(sel.Field); err != nil {
		return sel, err
	}
	if err := d.checkContinent(sel.Continent); err != nil {
		return sel, err
	}
	return sel, nil
}

func (d *Dashboard) checkField(field string) error {
	if field == "" || !d.table.HasField(field) {
		return d.fieldError(field)
	}
	return nil
}

func (d *Dashboard) fieldError(field string) error {
	return fmt.Errorf("%w: unknown field %q (available: %s)",
		ErrInvalidSelection, field, strings.Join(d.table.Fields(), ", "))
}

func (d *Dashboard) checkContinent(continent string) error {
	if continent == All || d.table.HasContinent(continent) {
		return nil
	}
	return fmt.Errorf("%w: unknown continent %q (available: %s)",
		ErrInvalidSelection, continent, strings.Join(d.Continents(), ", "))
}

// normalized projects the table onto field and canonicalizes the values.
func (d *Dashboard) normalized(field string) ([]dataset.Row, error) {
	rows, err := d.table.Project(field)
	if err != nil {
		return nil, err
	}
	return normalize.Rows(rows, d.classifier.KindOf(field)), nil
}
