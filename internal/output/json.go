// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps a view with metadata for the JSON output format.
type JSONEnvelope struct {
	View     *dashboard.View `json:"view"`
	Metadata JSONMetadata    `json:"metadata"`
}

// JSONMetadata describes the view.
type JSONMetadata struct {
	BarSeries   int    `json:"bar_series"`
	WaffleCells int    `json:"waffle_cells"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes views as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the view as a JSON document to w. Output is pretty-printed
// unless Compact is set or w is a pipe or regular file.
func (f *JSONFormatter) Format(view *dashboard.View, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		View: view,
		Metadata: JSONMetadata{
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	if view != nil {
		if view.Bar != nil {
			envelope.Metadata.BarSeries = len(view.Bar.Series)
		}
		if view.Waffle != nil {
			envelope.Metadata.WaffleCells = view.Waffle.Total()
		}
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact pretty-prints for terminals and non-file writers, and
// compacts for pipes and files.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}
