// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// redirect.go - Output redirection operators.

package parser

import (
	"github.com/jeranaias/rigsh/internal/commands"
)

// Redirection operators.
const (
	OpStdout     = ">"
	OpStdoutFD   = "1>"
	OpStderr     = "2>"
	OpStdoutBoth = "&>"
)

const (
	msgNoOutputFile = "no file specified for output redirection"
	msgNoErrorFile  = "no file specified for error output redirection"
)

// Redirection holds the file targets of a single command. An empty path
// means the stream is inherited.
type Redirection struct {
	Stdout string
	Stderr string
}

// IsZero reports whether no stream is redirected.
func (r Redirection) IsZero() bool {
	return r.Stdout == "" && r.Stderr == ""
}

// Shared reports whether both streams go to the same file.
func (r Redirection) Shared() bool {
	return r.Stdout != "" && r.Stdout == r.Stderr
}

// Invocation is a parsed command ready for dispatch.
type Invocation struct {
	Name        string
	Args        []string
	Redirection Redirection
}

// ResolveRedirections removes redirection operators and their targets from
// tokens. The remaining tokens keep their order; the first becomes the
// command name. Repeating an operator kind keeps the last target.
func ResolveRedirections(tokens []string) (Invocation, error) {
	var inv Invocation
	words := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok {
		case OpStdout, OpStdoutFD, OpStdoutBoth:
			if i+1 >= len(tokens) {
				return Invocation{}, &commands.ParseError{Message: msgNoOutputFile}
			}
			i++
			inv.Redirection.Stdout = tokens[i]
			if tok == OpStdoutBoth {
				inv.Redirection.Stderr = tokens[i]
			}

		case OpStderr:
			if i+1 >= len(tokens) {
				return Invocation{}, &commands.ParseError{Message: msgNoErrorFile}
			}
			i++
			inv.Redirection.Stderr = tokens[i]

		default:
			words = append(words, tok)
		}
	}

	if len(words) == 0 {
		return Invocation{}, commands.ErrEmptyInput
	}

	inv.Name = words[0]
	inv.Args = words[1:]
	return inv, nil
}
