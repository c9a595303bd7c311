// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Read-eval-print loop.

package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/rigsh/internal/config"
	"github.com/jeranaias/rigsh/internal/lineedit"
	"github.com/jeranaias/rigsh/internal/parser"
)

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ConfigWatcher reports config file changes.
type ConfigWatcher interface {
	Changed() bool
	Path() string
}

// REPL reads lines and evaluates them until input ends.
type REPL struct {
	Session *Session
	Reader  LineReader
	Config  *config.Config

	// Interactive enables the working directory header
	Interactive bool

	// Watcher, if set, is polled before every prompt
	Watcher ConfigWatcher

	// Load rereads the watched file. Callers that layer overrides on top
	// of the file apply them here. Defaults to config.LoadFromPath.
	Load func(path string) (*config.Config, error)

	// OnConfigChange is called after a reloaded config has been applied
	OnConfigChange func(cfg *config.Config)
}

// Run loops until end of input. It returns nil on end of input and an
// error only when the terminal can no longer be used.
func (r *REPL) Run() error {
	for {
		r.pollConfig()

		if r.Interactive && r.Config.ShowHeader {
			r.printHeader()
		}

		line, err := r.readCommand()
		switch {
		case errors.Is(err, lineedit.ErrRestoreFailed):
			return err

		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.Session.Stdout())
			if line != "" {
				_ = r.Session.Run(line)
			}
			return nil

		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		_ = r.Session.Run(line)
	}
}

// readCommand reads a line and any continuation lines.
func (r *REPL) readCommand() (string, error) {
	line, err := r.Reader.ReadLine(r.Config.Prompt)
	for err == nil && parser.NeedsContinuation(line) {
		var next string
		next, err = r.Reader.ReadLine(r.Config.ContinuationPrompt)
		line = parser.TrimContinuation(line) + next
	}
	return line, err
}

func (r *REPL) printHeader() {
	cwd, err := r.Session.env.Getwd()
	if err != nil {
		r.Session.logger.Debug("cannot read working directory", "error", err)
		return
	}
	fmt.Fprintln(r.Session.Stdout(), r.Session.theme.Header.Render(cwd))
}

// pollConfig reloads the config file if the watcher saw a change. A config
// that fails to load or validate is ignored.
func (r *REPL) pollConfig() {
	if r.Watcher == nil || !r.Watcher.Changed() {
		return
	}

	load := r.Load
	if load == nil {
		load = config.LoadFromPath
	}

	cfg, err := load(r.Watcher.Path())
	if err != nil {
		r.Session.logger.Warn("ignoring config change", "error", err)
		return
	}

	r.Config = cfg
	r.Session.SetSuggestions(cfg.Suggestions)
	r.Session.logger.Info("configuration reloaded", "path", r.Watcher.Path())

	if r.OnConfigChange != nil {
		r.OnConfigChange(cfg)
	}
}
