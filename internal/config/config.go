// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"

	"github.com/jeranaias/rigsh/internal/util"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config is the rigsh configuration.
type Config struct {
	// Prompt is shown before each command
	Prompt string `toml:"prompt" json:"prompt"`

	// ContinuationPrompt is shown after a line ending in a backslash
	ContinuationPrompt string `toml:"continuation_prompt" json:"continuation_prompt"`

	// ShowHeader prints the working directory above each prompt
	ShowHeader bool `toml:"show_header" json:"show_header"`

	// Suggestions enables "did you mean" hints for unknown commands
	Suggestions bool `toml:"suggestions" json:"suggestions"`

	// Color is one of auto, always, never
	Color string `toml:"color" json:"color"`

	// LogLevel is one of trace, debug, info, warn, error, off
	LogLevel string `toml:"log_level" json:"log_level"`

	// LogFile receives log output; empty means stderr
	LogFile string `toml:"log_file" json:"log_file"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables.
const (
	EnvConfig   = "RIGSH_CONFIG"
	EnvPrompt   = "RIGSH_PROMPT"
	EnvLogLevel = "RIGSH_LOG_LEVEL"
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Prompt:             "$ ",
		ContinuationPrompt: "> ",
		ShowHeader:         true,
		Suggestions:        true,
		Color:              ColorAuto,
		LogLevel:           "warn",
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the rigsh configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".rigsh"), nil
}

// Path returns the config file path: $RIGSH_CONFIG if set, otherwise
// config.toml in ConfigDir.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadFromPath loads configuration from a specific file. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Permissions for a config file written for the first time.
const (
	filePerm = 0644
	dirPerm  = 0755
)

// SaveTOML writes the configuration to path. The file is replaced in one
// rename, so a crash leaves either the old config or the new one. An
// existing file keeps its permissions, and a symlinked config.toml is
// written through to its target.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# rigsh configuration file\n")
	buf.WriteString("# Generated by rigsh --write-config\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := replaceFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// replaceFile writes data to a temporary sibling of path's target and
// renames it into place. The temporary file is removed on failure.
func replaceFile(path string, data []byte) error {
	target, perm, err := saveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var tmp *os.File
	return util.Bracket(
		func() (util.Release, error) {
			f, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
			if err != nil {
				return nil, err
			}
			tmp = f
			return func() error {
				_ = f.Close()
				// gone after a successful rename
				if err := os.Remove(f.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				return nil
			}, nil
		},
		func() error {
			if _, err := tmp.Write(data); err != nil {
				return err
			}
			if err := tmp.Chmod(perm); err != nil {
				return err
			}
			if err := tmp.Sync(); err != nil {
				return err
			}
			if err := tmp.Close(); err != nil {
				return err
			}
			return os.Rename(tmp.Name(), target)
		},
	)
}

// saveTarget resolves symlinks in path and returns the file to replace and
// the permissions the new file gets.
func saveTarget(path string) (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, filePerm, nil
	}
	if err != nil {
		return "", 0, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Prompt == "" {
		errs = append(errs, ValidationError{Field: "prompt", Message: "must not be empty"})
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.Color),
		})
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "log_level", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseLogLevel converts a level name to an hclog level.
func ParseLogLevel(name string) (hclog.Level, error) {
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid level '%s', must be one of: trace, debug, info, warn, error, off", name)
	}
	return level, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - RIGSH_PROMPT: overrides prompt
//   - RIGSH_LOG_LEVEL: overrides log_level
func (c *Config) ApplyEnvOverrides() {
	if prompt := os.Getenv(EnvPrompt); prompt != "" {
		c.Prompt = prompt
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
