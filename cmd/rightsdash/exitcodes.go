// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the rightsdash CLI.
const (
	ExitOK           = 0 // Command succeeded.
	ExitInvalidArgs  = 1 // Invalid arguments, config or selection.
	ExitLoadFailure  = 2 // Dataset could not be read.
	ExitServeFailure = 3 // Server failed to start or stopped with an error.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitLoadFailure:
			msg = "rightsdash: dataset could not be loaded"
		case ExitServeFailure:
			msg = "rightsdash: server failed"
		default:
			msg = "rightsdash: invalid arguments"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
