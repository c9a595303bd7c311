// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for rigsh.
//
// Colors are used only when stdout is a terminal, unless the user says
// otherwise through the color setting, NO_COLOR or FORCE_COLOR.

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/rigsh/internal/config"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is a terminal.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled decides whether to emit colors for the given color mode.
// In auto mode NO_COLOR (any non-empty value) disables colors, FORCE_COLOR
// enables them, and otherwise stdout must be a terminal.
// See https://no-color.org/ for the NO_COLOR specification.
func ColorsEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsStdoutTTY()
}

// GetColorProfile returns the termenv color profile for mode.
// Returns Ascii (no colors) when colors are disabled.
func GetColorProfile(mode string) termenv.Profile {
	if !ColorsEnabled(mode) {
		return termenv.Ascii
	}
	profile := termenv.ColorProfile()
	if profile == termenv.Ascii {
		// forced on for a non-terminal
		return termenv.ANSI
	}
	return profile
}
