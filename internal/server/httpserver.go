// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"time"
)

// ShutdownTimeout bounds graceful shutdown of a running server.
const ShutdownTimeout = 10 * time.Second

// NewHTTPServer builds an HTTP server with sane defaults for this project.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
