// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"fmt"

	"github.com/jeranaias/rigsh/internal/commands"
	"github.com/jeranaias/rigsh/internal/suggest"
)

// Report prints err to the session's stderr. Empty input is not shown.
func (s *Session) Report(err error) {
	var notFound *commands.CommandNotFoundError

	switch {
	case err == nil:
		return

	case errors.Is(err, commands.ErrEmptyInput):
		s.logger.Debug("empty input")

	case errors.As(err, &notFound):
		fmt.Fprintln(s.stderr, notFound.Error())
		if hint, ok := s.Suggest(notFound.Name); ok {
			fmt.Fprintln(s.stderr, s.theme.Hint.Render(fmt.Sprintf("did you mean %q?", hint)))
		}

	default:
		s.logger.Debug("command failed", "error", err)
		fmt.Fprintln(s.stderr, s.theme.Error.Render(err.Error()))
	}
}

// Suggest returns the known command name closest to name, if suggestions
// are enabled and one is close enough.
func (s *Session) Suggest(name string) (string, bool) {
	if !s.suggestions {
		return "", false
	}
	return suggest.Closest(name, s.registry.Names(), suggest.Threshold(name))
}
