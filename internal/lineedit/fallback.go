// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// fallback.go - Line input when the raw-mode editor is unavailable.

package lineedit

import (
	"errors"

	"github.com/peterh/liner"
)

// Fallback reads whole lines through liner. On pipes and scripts it reads
// plain lines. When stdin is a terminal that the Editor could not open,
// liner switches the terminal mode itself and Close puts it back.
type Fallback struct {
	state *liner.State
}

// NewFallback creates a fallback reader on stdin.
func NewFallback() *Fallback {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Fallback{state: state}
}

// ReadLine shows prompt and reads one line. Ctrl-C discards the line and
// returns an empty one; end of input returns io.EOF.
func (f *Fallback) ReadLine(prompt string) (string, error) {
	line, err := f.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	return line, err
}

// Close releases liner's terminal state.
func (f *Fallback) Close() error {
	return f.state.Close()
}
