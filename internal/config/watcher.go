// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watcher.go - Config file change notification.

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// watcherBuffer bounds the events queued between two polls.
const watcherBuffer = 32

// Watcher reports changes to one config file. It has no callbacks: the
// owner polls Changed from its own goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  hclog.Logger
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors that replace the file by rename are noticed.
func NewWatcher(path string, logger hclog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewBufferedWatcher(watcherBuffer)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	logger.Debug("watching directory for changes", "path", dir, "file", filepath.Base(abs))
	return &Watcher{watcher: w, path: abs, logger: logger}, nil
}

// Changed drains pending events without blocking and reports whether any
// of them touched the config file.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("configuration file changed", "file", event.Name, "op", event.Op.String())
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return changed
			}
			w.logger.Warn("configuration watcher error", "error", err)
		default:
			return changed
		}
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
