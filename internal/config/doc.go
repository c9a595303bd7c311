// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rigsh.
//
// Settings are read from a TOML file, overridden by environment variables,
// and validated before use. A Watcher reports edits to the file so a
// running session can pick them up.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RIGSH_*)
//   - $RIGSH_CONFIG, or ~/.rigsh/config.toml
//   - Built-in defaults
//
// # Usage
//
//	path, err := config.Path()
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.LoadFromPath(path)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(cfg.Prompt)
package config
