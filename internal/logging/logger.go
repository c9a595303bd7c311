// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger used throughout rigsh.
//
// Log output is diagnostic only and never mixes with command output: it
// goes to stderr or to a configured file. Debug level also enables the
// debug-only builtins.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "rigsh"

// Options configures New.
type Options struct {
	// Level is the minimum level written
	Level hclog.Level

	// Output defaults to stderr
	Output io.Writer

	// Color enables ANSI level coloring
	Color bool
}

// New creates the root logger.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	color := hclog.ColorOff
	if opts.Color {
		color = hclog.ForceColor
	}

	level := opts.Level
	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            Name,
		Level:           level,
		Output:          out,
		Color:           color,
		IncludeLocation: level <= hclog.Debug,
	})
}

// OpenFile opens path for appending log output.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// WithSession returns a child logger tagged with a fresh session ID.
func WithSession(logger hclog.Logger) hclog.Logger {
	return logger.With("session", uuid.NewString())
}

// DebugEnabled reports whether debug-only behavior should be active.
func DebugEnabled(logger hclog.Logger) bool {
	return logger.IsDebug()
}
