// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineedit

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TTYPath is the controlling terminal device.
const TTYPath = "/dev/tty"

// OpenTTY opens the controlling terminal for reading and writing.
func OpenTTY() (*os.File, error) {
	tty, err := os.OpenFile(TTYPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", TTYPath, err)
	}
	return tty, nil
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
