// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Color profile setup.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigsh/internal/shell"
)

// ApplyColorMode configures lipgloss for mode and returns the session
// theme. With colors off the theme still applies but renders plain text.
func ApplyColorMode(mode string) shell.Theme {
	lipgloss.SetColorProfile(GetColorProfile(mode))
	if !ColorsEnabled(mode) {
		return shell.PlainTheme()
	}
	return shell.DefaultTheme()
}
