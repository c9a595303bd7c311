// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Command dispatch and per-command redirection.

package shell

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"

	"github.com/jeranaias/rigsh/internal/commands"
	"github.com/jeranaias/rigsh/internal/parser"
	"github.com/jeranaias/rigsh/internal/util"
)

// redirectPerm is the mode of files created by redirection.
const redirectPerm = 0644

// =============================================================================
// SESSION
// =============================================================================

// Options configures a Session. Nil streams default to the process's own.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Env    commands.Environment
	Logger hclog.Logger
	Theme  Theme

	// Suggestions enables "did you mean" hints
	Suggestions bool
}

// Session is the state of one shell: its registry, collaborators and the
// current output streams.
type Session struct {
	registry *commands.Registry
	env      commands.Environment
	logger   hclog.Logger
	theme    Theme

	suggestions bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewSession creates a session around reg.
func NewSession(reg *commands.Registry, opts Options) *Session {
	s := &Session{
		registry:    reg,
		env:         opts.Env,
		logger:      opts.Logger,
		theme:       opts.Theme,
		suggestions: opts.Suggestions,
		stdin:       opts.Stdin,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
	}
	if s.env == nil {
		s.env = commands.OSEnvironment{}
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	return s
}

// Registry returns the session's command registry.
func (s *Session) Registry() *commands.Registry { return s.registry }

// Stdout returns the current standard output.
func (s *Session) Stdout() io.Writer { return s.stdout }

// Stderr returns the current standard error.
func (s *Session) Stderr() io.Writer { return s.stderr }

// SetTheme replaces the session's styles.
func (s *Session) SetTheme(theme Theme) { s.theme = theme }

// SetSuggestions toggles "did you mean" hints.
func (s *Session) SetSuggestions(enabled bool) { s.suggestions = enabled }

// =============================================================================
// EVALUATION
// =============================================================================

// Run evaluates line and reports any failure. The error is returned so
// callers can derive an exit status.
func (s *Session) Run(line string) error {
	err := s.Eval(line)
	if err != nil {
		s.Report(err)
	}
	return err
}

// Eval parses and dispatches line without reporting.
func (s *Session) Eval(line string) error {
	tokens := parser.Tokenize(line)
	s.logger.Debug("tokenized", "tokens", tokens)

	inv, err := parser.ResolveRedirections(tokens)
	if err != nil {
		return err
	}
	s.logger.Debug("invocation",
		"name", inv.Name,
		"args", inv.Args,
		"stdout", inv.Redirection.Stdout,
		"stderr", inv.Redirection.Stderr)

	return s.Dispatch(inv)
}

// Dispatch runs inv with its redirections in place. The session's streams
// are restored before Dispatch returns.
func (s *Session) Dispatch(inv parser.Invocation) error {
	cmd, ok := s.registry.Lookup(inv.Name)
	if !ok {
		return &commands.CommandNotFoundError{Name: inv.Name}
	}

	return util.Bracket(
		func() (util.Release, error) { return s.redirect(inv.Redirection) },
		func() error { return s.execute(cmd, inv.Args) },
	)
}

func (s *Session) execute(cmd *commands.Command, args []string) error {
	if cmd.IsBuiltin() {
		return cmd.Run(&commands.Context{
			Stdout:   s.stdout,
			Stderr:   s.stderr,
			Registry: s.registry,
			Env:      s.env,
			Logger:   s.logger,
		}, args)
	}
	if cmd.Kind == commands.KindExternal {
		return s.spawn(cmd, args)
	}
	return commands.Failf("%s: unknown command kind %s", cmd.Name, cmd.Kind)
}

// spawn runs an external program by its resolved path and waits for it.
// A non-zero exit status is not a shell error.
func (s *Session) spawn(cmd *commands.Command, args []string) error {
	proc := &exec.Cmd{
		Path:   cmd.Path,
		Args:   append([]string{cmd.Name}, args...),
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	}

	s.logger.Debug("spawning", "path", cmd.Path, "args", args)

	err := proc.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		s.logger.Debug("process exited", "name", cmd.Name, "status", exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return commands.Wrap(err, "failed to execute "+cmd.Name)
	}

	s.logger.Debug("process exited", "name", cmd.Name, "status", 0)
	return nil
}

// =============================================================================
// REDIRECTION
// =============================================================================

// redirect opens the targets of r and swaps them in. Nothing is swapped
// unless every target opened.
func (s *Session) redirect(r parser.Redirection) (util.Release, error) {
	if r.IsZero() {
		return nil, nil
	}

	var opened []*os.File
	closeAll := func() error {
		var errs []error
		for _, f := range opened {
			errs = append(errs, f.Close())
		}
		return errors.Join(errs...)
	}

	open := func(path string) (*os.File, error) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, redirectPerm)
		if err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				err = pathErr.Err
			}
			return nil, commands.Wrap(err, path)
		}
		opened = append(opened, f)
		return f, nil
	}

	newOut, newErr := s.stdout, s.stderr
	if r.Shared() {
		f, err := open(r.Stdout)
		if err != nil {
			return nil, err
		}
		newOut, newErr = f, f
	} else {
		if r.Stdout != "" {
			f, err := open(r.Stdout)
			if err != nil {
				return nil, err
			}
			newOut = f
		}
		if r.Stderr != "" {
			f, err := open(r.Stderr)
			if err != nil {
				_ = closeAll()
				return nil, err
			}
			newErr = f
		}
	}

	prevOut, prevErr := s.stdout, s.stderr
	s.stdout, s.stderr = newOut, newErr
	s.logger.Debug("redirected", "stdout", r.Stdout, "stderr", r.Stderr)

	return func() error {
		s.stdout, s.stderr = prevOut, prevErr
		return closeAll()
	}, nil
}
