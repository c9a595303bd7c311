// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineedit

// Input bytes with special meaning.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyNewline   = '\n'
	keyReturn    = '\r'
	keyEscape    = 0x1B
	keyDelete    = 0x7F
)

// Final bytes of the escape sequences the editor understands.
const (
	seqUp    = 'A'
	seqDown  = 'B'
	seqRight = 'C'
	seqLeft  = 'D'
	seqEnd   = 'F'
	seqHome  = 'H'
)

// Output control sequences.
const (
	ansiClearToEOL = "\x1b[K"
	ansiColumnFmt  = "\x1b[%dG"
)
