// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package dataset loads the per-country rights table and exposes it as an
// immutable snapshot.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Identifying column headers. They are matched case-insensitively and must be
// the first two columns of every dataset.
const (
	ContinentColumn = "CONTINENT"
	CountryColumn   = "COUNTRY"
)

// ErrSchema indicates the input does not have the expected column layout.
var ErrSchema = errors.New("dataset schema")

// Value is a single cell. Valid is false for missing cells.
type Value struct {
	Raw   string
	Valid bool
}

// Record is one row of the table. Values is aligned with Table.Fields().
type Record struct {
	Continent Value
	Country   Value
	Values    []Value
}

// Row is the projection of a record onto a single categorical field, with
// every component present.
type Row struct {
	Continent string `json:"continent"`
	Country   string `json:"country"`
	Value     string `json:"value"`
}

// Table is a read-only snapshot of the loaded dataset. It is safe for
// concurrent use because nothing mutates it after construction.
type Table struct {
	fields  []string
	index   map[string]int
	records []Record
}

// New builds a Table from field names and records. Inputs are copied.
func New(fields []string, records []Record) (*Table, error) {
	t := &Table{
		fields:  make([]string, len(fields)),
		index:   make(map[string]int, len(fields)),
		records: make([]Record, len(records)),
	}
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if name == "" {
			return nil, fmt.Errorf("%w: field %d has an empty name", ErrSchema, i+3)
		}
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrSchema, name)
		}
		t.fields[i] = name
		t.index[name] = i
	}
	for i, rec := range records {
		if len(rec.Values) != len(fields) {
			return nil, fmt.Errorf("%w: record %d has %d values, want %d", ErrSchema, i+1, len(rec.Values), len(fields))
		}
		t.records[i] = copyRecord(rec)
	}
	return t, nil
}

// Fields returns the categorical field names in header order.
func (t *Table) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// HasField reports whether name is one of the table's categorical fields.
func (t *Table) HasField(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a deep copy of all records in table order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	for i, rec := range t.records {
		out[i] = copyRecord(rec)
	}
	return out
}

// Continents returns the distinct non-missing continents in encounter order.
func (t *Table) Continents() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range t.records {
		if !rec.Continent.Valid || seen[rec.Continent.Raw] {
			continue
		}
		seen[rec.Continent.Raw] = true
		out = append(out, rec.Continent.Raw)
	}
	return out
}

// HasContinent reports whether any record belongs to continent.
func (t *Table) HasContinent(continent string) bool {
	for _, rec := range t.records {
		if rec.Continent.Valid && rec.Continent.Raw == continent {
			return true
		}
	}
	return false
}

// Project returns the (continent, country, field) rows of every record where
// all three are present. The caller owns the returned slice.
func (t *Table) Project(field string) ([]Row, error) {
	idx, ok := t.index[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	rows := make([]Row, 0, len(t.records))
	for _, rec := range t.records {
		v := rec.Values[idx]
		if !rec.Continent.Valid || !rec.Country.Valid || !v.Valid {
			continue
		}
		rows = append(rows, Row{
			Continent: rec.Continent.Raw,
			Country:   rec.Country.Raw,
			Value:     v.Raw,
		})
	}
	return rows, nil
}

func copyRecord(rec Record) Record {
	vals := make([]Value, len(rec.Values))
	copy(vals, rec.Values)
	rec.Values = vals
	return rec
}
