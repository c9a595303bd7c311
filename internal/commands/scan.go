// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// scan.go - PATH discovery of external programs.

package commands

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
)

// External is an executable found on PATH.
type External struct {
	Name string
	Path string
}

// ScanPath lists the executables in every directory of pathList, in PATH
// order. Only the first file of a given name is returned. Unreadable
// directories and names that are not valid UTF-8 are skipped.
func ScanPath(pathList string, logger hclog.Logger) []External {
	var found []External
	seen := make(map[string]struct{})

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("skipping PATH entry", "dir", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !utf8.ValidString(name) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}

			full := filepath.Join(dir, name)
			if !isExecutable(full) {
				continue
			}

			seen[name] = struct{}{}
			found = append(found, External{Name: name, Path: full})
		}
	}

	return found
}

// isExecutable reports whether path, after following symlinks, is a regular
// file with any execute bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
