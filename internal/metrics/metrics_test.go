// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersWithGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCompute("bar", 2*time.Millisecond)
	m.IncrementInvalidSelection("http")
	m.ObserveRequest("/api/bar", 200, time.Millisecond)
	m.SetDatasetRows(42)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"rightsdash_chart_compute_duration_seconds",
		"rightsdash_invalid_selections_total",
		"rightsdash_http_requests_total",
		"rightsdash_http_request_duration_seconds",
		"rightsdash_dataset_rows",
	}, names)
}

func TestMetrics_Values(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementInvalidSelection("mcp")
	m.IncrementInvalidSelection("mcp")
	m.ObserveRequest("/api/waffle", 400, time.Millisecond)
	m.ObserveRequest("/api/waffle", 0, time.Millisecond)
	m.SetDatasetRows(7)

	assert.InDelta(t, 2, testutil.ToFloat64(m.InvalidSelections.WithLabelValues("mcp")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/api/waffle", "400")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues("/api/waffle", "200")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.DatasetRows), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCompute("bar", time.Second)
		m.IncrementInvalidSelection("mcp")
		m.ObserveRequest("/", 200, time.Second)
		m.SetDatasetRows(1)
	})
}

func TestNew_TwiceOnSameRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
