// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package parser turns a raw input line into a command invocation.
//
// # Key Functions
//
//   - Tokenize: Split a line into words honoring quotes and backslash escapes
//   - NeedsContinuation / TrimContinuation: Trailing-backslash line joining
//   - ResolveRedirections: Strip >, 1>, 2> and &> operators from a token list
//
// # Usage
//
//	tokens := parser.Tokenize(`echo "a b" > out.txt`)
//	inv, err := parser.ResolveRedirections(tokens)
//	// inv.Name == "echo", inv.Args == ["a b"], inv.Redirection.Stdout == "out.txt"
package parser
