// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Kind distinguishes builtin from external commands.
type Kind int

const (
	KindBuiltin Kind = iota
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindExternal:
		return "external"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// BuiltinFunc runs a builtin with its arguments (command name excluded).
type BuiltinFunc func(ctx *Context, args []string) error

// Command is a named entry in the registry. Run is set for builtins, Path
// for externals.
type Command struct {
	// Name is the case-sensitive lookup key
	Name string

	Kind Kind

	// Run executes a builtin
	Run BuiltinFunc

	// Path is the absolute path of an external executable
	Path string

	// Usage shows argument syntax (e.g., "cd <directory>")
	Usage string

	// Description is shown by help
	Description string

	// DebugOnly builtins are registered only when debug logging is on
	DebugOnly bool
}

// IsBuiltin reports whether the command runs in-process.
func (c *Command) IsBuiltin() bool {
	return c.Kind == KindBuiltin
}

// TypeMessage is the line printed by the type builtin.
func (c *Command) TypeMessage() string {
	switch {
	case c.Kind == KindExternal:
		return fmt.Sprintf("%s is %s", c.Name, c.Path)
	case c.DebugOnly:
		return fmt.Sprintf("%s is a debug-only shell builtin", c.Name)
	default:
		return fmt.Sprintf("%s is a shell builtin", c.Name)
	}
}

// HelpMessage is the text printed by the help builtin.
func (c *Command) HelpMessage() string {
	if c.Kind == KindExternal {
		return fmt.Sprintf("%s is an external command (%s)\ntry: man %s", c.Name, c.Path, c.Name)
	}
	msg := "usage: " + c.Name
	if c.Usage != "" {
		msg = "usage: " + c.Usage
	}
	if c.Description != "" {
		msg += "\n" + c.Description
	}
	return msg
}

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context provides the environment a builtin runs in.
type Context struct {
	// Stdout and Stderr are the current, possibly redirected, streams
	Stdout io.Writer
	Stderr io.Writer

	Registry *Registry
	Env      Environment
	Logger   hclog.Logger
}

// Println writes a line to the context's stdout.
func (ctx *Context) Println(a ...interface{}) error {
	_, err := fmt.Fprintln(ctx.Stdout, a...)
	return err
}

// Printf writes formatted output to the context's stdout.
func (ctx *Context) Printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(ctx.Stdout, format, a...)
	return err
}
