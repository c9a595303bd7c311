// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli is the rigsh process entry point.
//
// It parses flags, loads configuration, sets up logging and colors, builds
// the command registry and then either evaluates a single -c line or runs
// the interactive loop.
//
// # Usage
//
//	rigsh                      # interactive shell
//	rigsh -c 'echo hi > out'   # evaluate one line
//	rigsh --write-config       # save the effective config
package cli
