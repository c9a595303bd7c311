// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles a session renders with. The zero Theme renders
// plain text.
type Theme struct {
	// Header is the working directory line above the prompt
	Header lipgloss.Style

	// Error is used for execution and parse failures
	Error lipgloss.Style

	// Hint is used for "did you mean" suggestions
	Hint lipgloss.Style
}

// DefaultTheme returns the standard colors. Whether they are emitted
// depends on the lipgloss color profile.
func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")), // Green
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")), // Red
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Gray
			Italic(true),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{Header: plain, Error: plain, Hint: plain}
}
