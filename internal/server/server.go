// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP: a JSON API, a
// self-contained HTML page and Prometheus metrics.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rightsdash/rightsdash/internal/dashboard"
	"github.com/rightsdash/rightsdash/internal/metrics"
	"github.com/rightsdash/rightsdash/internal/output"
)

// Options configures a Server.
type Options struct {
	// Logger receives one line per request. Nil means slog.Default().
	Logger *slog.Logger

	// Metrics records request and compute metrics. Nil disables them.
	Metrics *metrics.Metrics

	// Gatherer backs GET /metrics. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Server wires dashboard views to HTTP routes.
type Server struct {
	dash     *dashboard.Dashboard
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	page     *output.HTMLFormatter
}

// New constructs a Server over dash.
func New(dash *dashboard.Dashboard, opts Options) *Server {
	s := &Server{
		dash:     dash,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		page:     &output.HTMLFormatter{FormAction: "/"},
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	return s
}

// Handler returns the root router with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	s.Register(r)
	return r
}

// Register mounts the dashboard endpoints on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", s.handleFields)
		r.Get("/continents", s.handleContinents)
		r.Get("/bar", s.handleBar)
		r.Get("/waffle", s.handleWaffle)
		r.Get("/view", s.handleView)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "no such route")
	})
}
