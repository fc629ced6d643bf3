// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rightsdash/rightsdash/internal/testable"
)

// ErrUnsupportedFormat is returned when no loader handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Loader decodes a tabular dataset from a stream.
type Loader interface {
	// Name returns the loader name (e.g., "csv", "xlsx").
	Name() string

	// Extensions returns the lower-case file extensions handled, with the dot.
	Extensions() []string

	// Load reads the whole stream and returns the table.
	Load(r io.Reader) (*Table, error)
}

var (
	loaderMu    sync.RWMutex
	loaderByExt = make(map[string]Loader)
)

// RegisterLoader adds a loader to the global registry, keyed by each of its
// extensions. It panics if an extension is already claimed.
func RegisterLoader(l Loader) {
	loaderMu.Lock()
	defer loaderMu.Unlock()
	for _, ext := range l.Extensions() {
		if existing, ok := loaderByExt[ext]; ok {
			panic(fmt.Sprintf("dataset loader for %s already registered by %s", ext, existing.Name()))
		}
		loaderByExt[ext] = l
	}
}

// LoaderFor returns the loader registered for the extension of path.
func LoaderFor(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loaderMu.RLock()
	defer loaderMu.RUnlock()
	l, ok := loaderByExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, extensionList())
	}
	return l, nil
}

// FS is the file system used by Open. Override in tests.
var FS testable.FileSystem = testable.DefaultFS

// Open loads the dataset at path using the loader registered for its
// extension.
func Open(path string) (*Table, error) {
	l, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	slog.Debug("dataset loaded", "path", path, "loader", l.Name(), "records", t.Len(), "fields", len(t.fields))
	return t, nil
}

// FromRows builds a Table from a header row followed by data rows. Short rows
// are padded with missing cells; long rows are rejected.
func FromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrSchema)
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need %s and %s columns, got %d column(s)", ErrSchema, ContinentColumn, CountryColumn, len(header))
	}
	if got := strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff")); !strings.EqualFold(got, ContinentColumn) {
		return nil, fmt.Errorf("%w: first column must be %s, got %q", ErrSchema, ContinentColumn, got)
	}
	if got := strings.TrimSpace(header[1]); !strings.EqualFold(got, CountryColumn) {
		return nil, fmt.Errorf("%w: second column must be %s, got %q", ErrSchema, CountryColumn, got)
	}

	width := len(header)
	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > width {
			return nil, fmt.Errorf("%w: line %d has %d cells, header has %d", ErrSchema, i+2, len(row), width)
		}
		if isBlank(row) {
			continue
		}
		cells := make([]Value, width)
		for j := range cells {
			if j < len(row) {
				cells[j] = ParseCell(row[j])
			}
		}
		records = append(records, Record{
			Continent: cells[0],
			Country:   cells[1],
			Values:    cells[2:],
		})
	}
	return New(header[2:], records)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// extensionList returns a comma-separated sorted list of registered
// extensions. Callers must hold loaderMu.
func extensionList() string {
	exts := make([]string, 0, len(loaderByExt))
	for ext := range loaderByExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
