// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "os"

// Environment is the process-global state a builtin may touch.
type Environment interface {
	Getenv(key string) string
	Getwd() (string, error)
	Chdir(dir string) error
	// Exit terminates the process. Fakes may return instead.
	Exit(code int)
}

// OSEnvironment is the Environment of the running process.
type OSEnvironment struct{}

func (OSEnvironment) Getenv(key string) string { return os.Getenv(key) }
func (OSEnvironment) Getwd() (string, error)   { return os.Getwd() }
func (OSEnvironment) Chdir(dir string) error   { return os.Chdir(dir) }
func (OSEnvironment) Exit(code int)            { os.Exit(code) }
