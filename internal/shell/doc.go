// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell ties the line editor, parser and command registry together.
//
// A Session evaluates one line at a time: parse, resolve redirections,
// look the command up, run it with the current output streams and report
// any failure on stderr. The REPL drives a Session from a LineReader until
// input ends or a command exits the process.
//
// # Key Types
//
//   - Session: Per-shell state and the dispatcher
//   - REPL: Read-eval-print loop with line continuation and config reload
//   - Theme: Styles for the header, errors and suggestions
package shell
