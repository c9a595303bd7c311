// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package lineedit

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jeranaias/rigsh/internal/util"
)

// TermiosMode switches a terminal file descriptor between its saved mode
// and non-canonical, no-echo input.
type TermiosMode struct {
	fd int
}

// NewTermiosMode creates a ModeSwitcher for fd.
func NewTermiosMode(fd int) *TermiosMode {
	return &TermiosMode{fd: fd}
}

// EnterRaw disables canonical mode, echo and signal keys, so Ctrl-C arrives
// as a byte instead of killing the process. Output processing is left
// alone. Reads block for at least one byte.
func (m *TermiosMode) EnterRaw() (util.Release, error) {
	saved, err := term.GetState(m.fd)
	if err != nil {
		return nil, fmt.Errorf("get terminal state: %w", err)
	}

	raw, err := unix.IoctlGetTermios(m.fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(m.fd, ioctlSetTermios, raw); err != nil {
		return nil, fmt.Errorf("set termios: %w", err)
	}

	return func() error {
		return term.Restore(m.fd, saved)
	}, nil
}
