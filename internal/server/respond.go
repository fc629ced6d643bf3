// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rightsdash/rightsdash/internal/dashboard"
)

// Error codes used in the error envelope.
const (
	codeBadRequest = "bad_request"
	codeNotFound   = "not_found"
	codeInternal   = "internal_error"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, errorResponse{Error: code, ErrorDescription: description})
}

// writeDashboardError maps invalid selections to 400 and hides everything
// else behind a 500.
func (s *Server) writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dashboard.ErrInvalidSelection) {
		s.metrics.IncrementInvalidSelection("http")
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	s.logger.ErrorContext(r.Context(), "request failed",
		"request_id", RequestIDFrom(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "")
}
