// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtins.go - Commands implemented inside the shell process.

package commands

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"
)

// Builtins returns a fresh set of every builtin command, debug-only ones
// included.
func Builtins() []*Command {
	return []*Command{
		{
			Name:        "cd",
			Kind:        KindBuiltin,
			Run:         runCd,
			Usage:       "cd <directory>",
			Description: "changes the current working directory to the specified directory.\nif no directory is specified, the HOME environment variable is used.",
		},
		{
			Name:        "echo",
			Kind:        KindBuiltin,
			Run:         runEcho,
			Usage:       "echo [args...]",
			Description: "prints its arguments separated by single spaces.",
		},
		{
			Name:        "exit",
			Kind:        KindBuiltin,
			Run:         runExit,
			Usage:       "exit [status]",
			Description: "exits the shell with the given status (default 0).",
		},
		{
			Name:        "help",
			Kind:        KindBuiltin,
			Run:         runHelp,
			Usage:       "help <command name>",
			Description: "displays the help message for the specified command.",
		},
		{
			Name:        "pwd",
			Kind:        KindBuiltin,
			Run:         runPwd,
			Usage:       "pwd",
			Description: "prints the current working directory.",
		},
		{
			Name:        "type",
			Kind:        KindBuiltin,
			Run:         runType,
			Usage:       "type <command name>",
			Description: "shows whether a name is a shell builtin or an external program.",
		},
		{
			Name:        "all",
			Kind:        KindBuiltin,
			Run:         runAll,
			Usage:       "all",
			Description: "lists every builtin and external command.",
		},
		{
			Name:        "dprint",
			Kind:        KindBuiltin,
			Run:         runDebugPrint,
			Usage:       "dprint <command name>",
			Description: "dumps the registry entry of a command.",
			DebugOnly:   true,
		},
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func runCd(ctx *Context, args []string) error {
	target := ""
	if len(args) > 0 {
		target = args[0]
	} else {
		target = ctx.Env.Getenv("HOME")
		if target == "" {
			target = "/"
		}
	}

	ctx.Logger.Debug("changing directory", "target", target)

	if err := ctx.Env.Chdir(target); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return Wrap(err, "cd: "+target)
	}
	return nil
}

func runEcho(ctx *Context, args []string) error {
	return ctx.Println(strings.Join(args, " "))
}

func runExit(ctx *Context, args []string) error {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Failf("exit: %s: numeric argument required", args[0])
		}
		code = n
	}

	ctx.Logger.Debug("exiting", "status", code)
	ctx.Env.Exit(code)
	return nil
}

func runHelp(ctx *Context, args []string) error {
	if len(args) == 0 {
		return Failf("usage: help <command name>")
	}

	cmd, ok := ctx.Registry.Lookup(args[0])
	if !ok {
		return &CommandNotFoundError{Name: args[0]}
	}
	return ctx.Println(cmd.HelpMessage())
}

func runPwd(ctx *Context, _ []string) error {
	dir, err := ctx.Env.Getwd()
	if err != nil {
		return Wrap(err, "pwd")
	}
	return ctx.Println(dir)
}

func runType(ctx *Context, args []string) error {
	if len(args) == 0 {
		return Failf("usage: type <command name>")
	}

	cmd, ok := ctx.Registry.Lookup(args[0])
	if !ok {
		return ctx.Printf("%s: not found\n", args[0])
	}
	return ctx.Println(cmd.TypeMessage())
}

func runAll(ctx *Context, _ []string) error {
	builtins := ctx.Registry.BuiltinNames()
	externals := ctx.Registry.ExternalNames()

	if err := ctx.Printf("builtin commands (%d):\n  %s\n", len(builtins), strings.Join(builtins, ", ")); err != nil {
		return err
	}
	return ctx.Printf("external commands (%d):\n  %s\n", len(externals), strings.Join(externals, ", "))
}

func runDebugPrint(ctx *Context, args []string) error {
	if len(args) == 0 {
		return Failf("usage: dprint <command name>")
	}

	cmd, ok := ctx.Registry.Lookup(args[0])
	if !ok {
		return Failf("%s: not found", args[0])
	}

	var b strings.Builder
	b.WriteString("name:       " + cmd.Name + "\n")
	b.WriteString("kind:       " + cmd.Kind.String() + "\n")
	if cmd.Kind == KindExternal {
		b.WriteString("path:       " + cmd.Path + "\n")
	} else {
		b.WriteString("usage:      " + cmd.Usage + "\n")
		b.WriteString("debug only: " + strconv.FormatBool(cmd.DebugOnly) + "\n")
	}
	return ctx.Printf("%s", b.String())
}
