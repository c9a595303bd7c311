// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command registry and builtins for rigsh.
//
// A command is either a builtin, implemented in-process as a BuiltinFunc,
// or an external program found on PATH. The Registry is populated once at
// startup and is read-only afterwards.
//
// # Key Types
//
//   - Command: Tagged variant of builtin or external
//   - Registry: Name lookup with builtins taking precedence over externals
//   - Context: Streams and collaborators handed to a builtin
//   - Environment: Process-global state (env vars, cwd, exit)
//
// # Built-in Commands
//
//   - cd: Change the working directory
//   - echo: Print arguments
//   - exit: Exit the shell
//   - help: Show a command's help text
//   - pwd: Print the working directory
//   - type: Describe how a name resolves
//   - all: List every known command
//   - dprint: Dump a registry entry (only when debug logging is on)
//
// # Usage
//
//	reg := commands.Build(os.Getenv("PATH"), commands.BuildOptions{Logger: logger})
//	cmd, ok := reg.Lookup("echo")
package commands
