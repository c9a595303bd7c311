// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lineedit reads a single line from the controlling terminal.
//
// The Editor switches the terminal out of canonical mode for the duration
// of one ReadLine call, handles cursor movement and backspace itself, and
// always puts the terminal back the way it found it. Signal keys are off
// while a line is edited, so Ctrl-C discards the line instead of killing
// the shell. When stdin is not a terminal, or the terminal cannot be
// opened, the Fallback reader is used instead.
//
// # Key Types
//
//   - Editor: Raw-mode byte-at-a-time line editor
//   - ModeSwitcher: Enters raw mode and hands back the restore function
//   - TermiosMode: ModeSwitcher backed by termios ioctls
//   - Fallback: Plain line reader for pipes and scripts
//
// # Usage
//
//	ed, err := lineedit.Open()
//	if err != nil {
//	    return err
//	}
//	defer ed.Close()
//	line, err := ed.ReadLine("$ ")
package lineedit
