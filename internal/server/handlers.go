// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

type fieldsResponse struct {
	Fields       []string `json:"fields"`
	DefaultField string   `json:"default_field"`
}

type continentsResponse struct {
	Continents []string `json:"continents"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// selection reads field and continent query parameters and fills defaults.
func (s *Server) selection(r *http.Request) (dashboard.Selection, error) {
	q := r.URL.Query()
	return s.dash.Resolve(dashboard.Selection{
		Field:     q.Get("field"),
		Continent: q.Get("continent"),
	})
}

// handleIndex handles GET / with the HTML dashboard page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := s.view(r)
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := s.page.Format(view, &buf); err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleFields handles GET /api/fields.
func (s *Server) handleFields(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fieldsResponse{
		Fields:       s.dash.Fields(),
		DefaultField: s.dash.DefaultField(),
	})
}

// handleContinents handles GET /api/continents.
func (s *Server) handleContinents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, continentsResponse{Continents: s.dash.Continents()})
}

// handleBar handles GET /api/bar?field=.
func (s *Server) handleBar(w http.ResponseWriter, r *http.Request) {
	sel, err := s.dash.Resolve(dashboard.Selection{Field: r.URL.Query().Get("field")})
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	start := time.Now()
	chart, err := s.dash.BarChart(sel.Field)
	s.metrics.ObserveCompute("bar", time.Since(start))
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// handleWaffle handles GET /api/waffle?field=&continent=.
func (s *Server) handleWaffle(w http.ResponseWriter, r *http.Request) {
	sel, err := s.selection(r)
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	start := time.Now()
	chart, err := s.dash.WaffleChart(sel.Field, sel.Continent)
	s.metrics.ObserveCompute("waffle", time.Since(start))
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// handleView handles GET /api/view?field=&continent=.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := s.view(r)
	if err != nil {
		s.writeDashboardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) view(r *http.Request) (*dashboard.View, error) {
	q := r.URL.Query()
	start := time.Now()
	view, err := s.dash.View(dashboard.Selection{
		Field:     q.Get("field"),
		Continent: q.Get("continent"),
	})
	s.metrics.ObserveCompute("view", time.Since(start))
	return view, err
}
