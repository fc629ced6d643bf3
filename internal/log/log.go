// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for rightsdash using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Options selects the log level and encoding.
type Options struct {
	Verbose bool
	Quiet   bool

	// JSON switches from slog.TextHandler to slog.JSONHandler.
	JSON bool
}

// Level maps verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet wins when both flags are set.
func (o Options) Level() slog.Level {
	switch {
	case o.Quiet:
		return slog.LevelWarn
	case o.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level()}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Setup configures the default slog logger to write to stderr.
func Setup(opts Options) {
	slog.SetDefault(New(os.Stderr, opts))
}
