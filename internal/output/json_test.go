// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

func newTestJSONFormatter() *JSONFormatter {
	return &JSONFormatter{nowFunc: fixedNow}
}

func TestJSONFormatter_Name(t *testing.T) {
	assert.Equal(t, "json", NewJSONFormatter().Name())
}

func TestJSONFormatter_NilView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestJSONFormatter().Format(nil, &buf))

	var envelope JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))
	assert.Nil(t, envelope.View)
	assert.Zero(t, envelope.Metadata.BarSeries)
	assert.Zero(t, envelope.Metadata.WaffleCells)
}

func TestJSONFormatter_View(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestJSONFormatter().Format(testView(t), &buf))

	var envelope JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))

	require.NotNil(t, envelope.View)
	assert.Equal(t, dashboard.Selection{Field: legalField, Continent: dashboard.All}, envelope.View.Selection)
	assert.Equal(t, 2, envelope.Metadata.BarSeries)
	assert.Equal(t, 5, envelope.Metadata.WaffleCells)
	assert.Equal(t, "2026-02-07T12:00:00Z", envelope.Metadata.GeneratedAt)

	require.NotNil(t, envelope.View.Bar)
	assert.Equal(t, []string{"Africa", "Europe"}, envelope.View.Bar.Continents)
	require.Len(t, envelope.View.Bar.Series, 2)
	assert.Equal(t, "YES", envelope.View.Bar.Series[0].Name)
	assert.Equal(t, "#7FDBFF", envelope.View.Bar.Series[0].Color.String())

	require.NotNil(t, envelope.View.Waffle)
	require.Len(t, envelope.View.Waffle.Series, 2)
	assert.Equal(t, "YES: 3", envelope.View.Waffle.Series[0].Name)
	assert.Equal(t, "NO: 2", envelope.View.Waffle.Series[1].Name)
}

func TestJSONFormatter_PrettyVsCompact(t *testing.T) {
	view := testView(t)

	var pretty bytes.Buffer
	require.NoError(t, newTestJSONFormatter().Format(view, &pretty))
	assert.Greater(t, strings.Count(pretty.String(), "\n"), 1)

	var compact bytes.Buffer
	f := &JSONFormatter{Compact: true, nowFunc: fixedNow}
	require.NoError(t, f.Format(view, &compact))
	assert.Equal(t, 1, strings.Count(compact.String(), "\n"))

	var a, b any
	require.NoError(t, json.Unmarshal(pretty.Bytes(), &a))
	require.NoError(t, json.Unmarshal(compact.Bytes(), &b))
	assert.Equal(t, a, b)
}

func TestJSONFormatter_WriteFailure(t *testing.T) {
	view := testView(t)

	t.Run("fail_on_data_write", func(t *testing.T) {
		err := newTestJSONFormatter().Format(view, &failWriter{failAfter: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write json")
	})

	t.Run("fail_on_newline_write", func(t *testing.T) {
		err := newTestJSONFormatter().Format(view, &failWriter{failAfter: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write json trailing newline")
	})
}

func TestJSONFormatter_ShouldCompact(t *testing.T) {
	t.Run("compact_true_always_compact", func(t *testing.T) {
		f := &JSONFormatter{Compact: true}
		assert.True(t, f.shouldCompact(&bytes.Buffer{}))
	})

	t.Run("non_file_writer_defaults_pretty", func(t *testing.T) {
		f := &JSONFormatter{}
		assert.False(t, f.shouldCompact(&bytes.Buffer{}))
	})

	t.Run("pipe_is_compact", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer func() { _ = r.Close() }()
		defer func() { _ = w.Close() }()
		assert.True(t, (&JSONFormatter{}).shouldCompact(w))
	})
}
