// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokenize.go - Shell word splitting.

package parser

import "strings"

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits a command line into tokens.
//
// Single quotes group text unless inside double quotes and vice versa. A
// backslash copies the following character verbatim in every quote state; a
// lone trailing backslash is dropped. Unquoted spaces and tabs separate tokens.
// An unterminated quote extends to the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote

		case char == '\\':
			if i+1 < len(runes) {
				current.WriteRune(runes[i+1])
				i++
			}

		case isBlank(char) && !inSingleQuote && !inDoubleQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			for i+1 < len(runes) && isBlank(runes[i+1]) {
				i++
			}

		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// =============================================================================
// LINE CONTINUATION
// =============================================================================

// NeedsContinuation reports whether line ends in an unescaped backslash,
// i.e. an odd number of trailing backslashes.
func NeedsContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// TrimContinuation drops the final backslash and joins with a single space.
func TrimContinuation(line string) string {
	return strings.TrimSuffix(line, "\\") + " "
}
