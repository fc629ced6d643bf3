// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for the dashboard.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for chart computation and the HTTP API.
type Metrics struct {
	// Chart recompute latency by chart ("bar", "waffle", "view")
	ComputeLatency *prometheus.HistogramVec

	// Selections rejected because the field or continent is unknown
	InvalidSelections *prometheus.CounterVec

	// HTTP requests by route pattern and status code
	Requests *prometheus.CounterVec

	// HTTP request latency by route pattern
	RequestLatency *prometheus.HistogramVec

	// Rows in the loaded dataset
	DatasetRows prometheus.Gauge
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ComputeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rightsdash_chart_compute_duration_seconds",
			Help:    "Duration of chart recomputation by chart",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"chart"}),

		InvalidSelections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rightsdash_invalid_selections_total",
			Help: "Total selections rejected by surface",
		}, []string{"surface"}), // surface: "http", "mcp"

		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rightsdash_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		}, []string{"route", "code"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rightsdash_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),

		DatasetRows: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rightsdash_dataset_rows",
			Help: "Number of rows in the loaded dataset",
		}),
	}
}

// ObserveCompute records how long computing a chart took.
func (m *Metrics) ObserveCompute(chart string, d time.Duration) {
	if m != nil {
		m.ComputeLatency.WithLabelValues(chart).Observe(d.Seconds())
	}
}

// IncrementInvalidSelection records a rejected selection.
func (m *Metrics) IncrementInvalidSelection(surface string) {
	if m != nil {
		m.InvalidSelections.WithLabelValues(surface).Inc()
	}
}

// ObserveRequest records a served HTTP request.
func (m *Metrics) ObserveRequest(route string, code int, d time.Duration) {
	if m != nil {
		m.Requests.WithLabelValues(route, statusLabel(code)).Inc()
		m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}

// SetDatasetRows records the size of the loaded dataset.
func (m *Metrics) SetDatasetRows(n int) {
	if m != nil {
		m.DatasetRows.Set(float64(n))
	}
}

func statusLabel(code int) string {
	if code == 0 {
		code = 200
	}
	return strconv.Itoa(code)
}
