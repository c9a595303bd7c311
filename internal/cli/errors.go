// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Process exit codes.

package cli

import (
	"fmt"

	ucli "github.com/urfave/cli/v2"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitGeneralError indicates a failed command line or an unusable terminal
	ExitGeneralError = 1
	// ExitUsageError indicates invalid flags
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
)

// configError wraps a configuration failure with its exit code.
func configError(err error) error {
	return ucli.Exit(fmt.Sprintf("rigsh: %v", err), ExitConfigError)
}

// usageError reports an invalid flag value.
func usageError(format string, args ...interface{}) error {
	return ucli.Exit("rigsh: "+fmt.Sprintf(format, args...), ExitUsageError)
}

// fatalError reports an error that ends the session.
func fatalError(err error) error {
	return ucli.Exit(fmt.Sprintf("rigsh: %v", err), ExitGeneralError)
}
