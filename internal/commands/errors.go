// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error taxonomy shared by the parser, registry and dispatcher.
//
// Every failure of a single input line is one of these; none of them ends
// the session. Callers distinguish them with errors.Is / errors.As.

package commands

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a line holds no command. It is not shown
// to the user.
var ErrEmptyInput = errors.New("empty input")

// CommandNotFoundError is returned when a name is neither a builtin nor an
// external program.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

// ExecutionError is returned when a command could not be run or a builtin
// failed.
type ExecutionError struct {
	Message string
	Err     error // Underlying error (if any)
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ParseError is returned for malformed input such as a redirection
// operator without a target.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Failf builds an ExecutionError with a formatted message.
func Failf(format string, args ...interface{}) *ExecutionError {
	return &ExecutionError{Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an ExecutionError around err.
func Wrap(err error, message string) *ExecutionError {
	return &ExecutionError{Message: message, Err: err}
}
