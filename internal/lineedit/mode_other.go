// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package lineedit

import (
	"errors"

	"github.com/jeranaias/rigsh/internal/util"
)

// TermiosMode is unavailable on this platform; EnterRaw always fails and
// callers fall back to line-buffered input.
type TermiosMode struct {
	fd int
}

// NewTermiosMode creates a ModeSwitcher for fd.
func NewTermiosMode(fd int) *TermiosMode {
	return &TermiosMode{fd: fd}
}

// EnterRaw reports that raw mode is unsupported.
func (m *TermiosMode) EnterRaw() (util.Release, error) {
	return nil, errors.New("raw terminal mode is not supported on this platform")
}
