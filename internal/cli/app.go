// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Flag parsing and session startup.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	ucli "github.com/urfave/cli/v2"

	"github.com/jeranaias/rigsh/internal/commands"
	"github.com/jeranaias/rigsh/internal/config"
	"github.com/jeranaias/rigsh/internal/lineedit"
	"github.com/jeranaias/rigsh/internal/logging"
	"github.com/jeranaias/rigsh/internal/shell"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// -v is --verbose here
	ucli.VersionFlag = &ucli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// App creates the CLI application.
func App() *ucli.App {
	return &ucli.App{
		Name:            "rigsh",
		Usage:           "an interactive command shell",
		Version:         fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		Flags:           globalFlags(),
		Action:          run,
		HideHelpCommand: true,
	}
}

// globalFlags returns the CLI flags.
func globalFlags() []ucli.Flag {
	return []ucli.Flag{
		&ucli.StringFlag{
			Name:    "config",
			Usage:   "path to the TOML config file",
			EnvVars: []string{config.EnvConfig},
		},
		&ucli.StringFlag{
			Name:  "log-level",
			Usage: "log level: trace, debug, info, warn, error, off",
		},
		&ucli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging and debug-only builtins",
		},
		&ucli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
		&ucli.StringFlag{
			Name:    "command",
			Aliases: []string{"c"},
			Usage:   "evaluate `LINE` and exit",
		},
		&ucli.BoolFlag{
			Name:  "write-config",
			Usage: "write the effective config file and exit",
		},
	}
}

// Flags holds the parsed command line.
type Flags struct {
	ConfigPath  string
	LogLevel    string
	Verbose     bool
	NoColor     bool
	Command     string
	HasCommand  bool
	WriteConfig bool
}

// ParseFlags extracts flags from context.
func ParseFlags(c *ucli.Context) *Flags {
	return &Flags{
		ConfigPath:  c.String("config"),
		LogLevel:    c.String("log-level"),
		Verbose:     c.Bool("verbose"),
		NoColor:     c.Bool("no-color"),
		Command:     c.String("command"),
		HasCommand:  c.IsSet("command"),
		WriteConfig: c.Bool("write-config"),
	}
}

// =============================================================================
// STARTUP
// =============================================================================

func run(c *ucli.Context) error {
	if c.NArg() > 0 {
		return usageError("unexpected argument %q", c.Args().First())
	}
	flags := ParseFlags(c)

	path := flags.ConfigPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return configError(err)
		}
		path = p
	}

	cfg, err := loadConfig(path, flags)
	if err != nil {
		return configError(err)
	}

	if flags.WriteConfig {
		if err := config.SaveTOML(cfg, path); err != nil {
			return configError(err)
		}
		fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
		return nil
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return configError(err)
	}
	defer closeLog()

	env := commands.OSEnvironment{}
	theme := ApplyColorMode(cfg.Color)
	reg := commands.Build(env.Getenv("PATH"), commands.BuildOptions{
		Debug:  logging.DebugEnabled(logger),
		Logger: logger,
	})

	session := shell.NewSession(reg, shell.Options{
		Env:         env,
		Logger:      logger,
		Theme:       theme,
		Suggestions: cfg.Suggestions,
	})

	if flags.HasCommand {
		return runOnce(session, flags.Command)
	}
	return runInteractive(session, cfg, path, flags, logger)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(path string, flags *Flags) (*config.Config, error) {
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}

	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.Verbose {
		cfg.LogLevel = "debug"
	}
	if flags.NoColor {
		cfg.Color = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configLoader rereads a config file with the command line's overrides
// applied again, for config reloads.
func configLoader(flags *Flags) func(path string) (*config.Config, error) {
	return func(path string) (*config.Config, error) {
		return loadConfig(path, flags)
	}
}

// newLogger creates the session logger. The returned func closes the log
// file, if any.
func newLogger(cfg *config.Config) (hclog.Logger, func(), error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	color := IsStderrTTY() && ColorsEnabled(cfg.Color)

	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeLog = func() { f.Close() }
		color = false
	}

	logger := logging.New(logging.Options{Level: level, Output: out, Color: color})
	return logging.WithSession(logger), closeLog, nil
}

// runOnce evaluates a single line. Empty input is success.
func runOnce(session *shell.Session, line string) error {
	err := session.Run(line)
	if err != nil && !errors.Is(err, commands.ErrEmptyInput) {
		return ucli.Exit("", ExitGeneralError)
	}
	return nil
}

// runInteractive runs the read-eval-print loop until end of input.
func runInteractive(session *shell.Session, cfg *config.Config, path string, flags *Flags, logger hclog.Logger) error {
	reader, closeReader := newLineReader(logger)
	defer closeReader()

	repl := &shell.REPL{
		Session:     session,
		Reader:      reader,
		Config:      cfg,
		Interactive: IsTTY(),
		Load:        configLoader(flags),
		OnConfigChange: func(cfg *config.Config) {
			session.SetTheme(ApplyColorMode(cfg.Color))
		},
	}

	if w, err := config.NewWatcher(path, logger); err != nil {
		logger.Debug("config watcher disabled", "error", err)
	} else {
		defer w.Close()
		repl.Watcher = w
	}

	if err := repl.Run(); err != nil {
		return fatalError(err)
	}
	return nil
}

// newLineReader picks the raw-mode editor when stdin is a terminal and the
// plain line reader otherwise.
func newLineReader(logger hclog.Logger) (shell.LineReader, func()) {
	if lineedit.IsInteractive(os.Stdin) {
		ed, err := lineedit.Open()
		if err == nil {
			return ed, func() { ed.Close() }
		}
		logger.Warn("falling back to line input", "error", err)
	}

	fb := lineedit.NewFallback()
	return fb, func() { fb.Close() }
}
