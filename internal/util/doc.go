// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the shell packages.
//
// # Key Functions
//
// Resource Scoping:
//   - Bracket: acquire a resource, run a body, always release it
//
// Display Width:
//   - RunesWidth: terminal column width of an edit buffer (CJK aware)
//
// # Usage
//
//	// Swap a stream for the duration of one call
//	err := util.Bracket(swapOutputs, runCommand)
//
//	// Column of the cursor within the edit buffer
//	col := util.RunesWidth(buf[:cursor]) + 1
package util
