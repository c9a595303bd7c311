// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	levels := []hclog.Level{hclog.Trace, hclog.Debug, hclog.Info, hclog.Warn, hclog.Error}

	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			logger := New(Options{Level: level, Output: &bytes.Buffer{}})
			assert.Equal(t, level, logger.GetLevel())
			assert.Equal(t, level <= hclog.Debug, DebugEnabled(logger))
		})
	}
}

func TestNew_DefaultsToWarn(t *testing.T) {
	logger := New(Options{Output: &bytes.Buffer{}})
	assert.Equal(t, hclog.Warn, logger.GetLevel())
	assert.Equal(t, Name, logger.Name())
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Options{Level: hclog.Info, Output: buf})

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestWithSession(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := WithSession(New(Options{Level: hclog.Info, Output: buf}))

	logger.Info("hello")

	line := buf.String()
	require.Contains(t, line, "session=")
	idx := bytes.Index(buf.Bytes(), []byte("session="))
	id := string(buf.Bytes()[idx+len("session=") : idx+len("session=")+36])
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rigsh.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	logger := New(Options{Level: hclog.Info, Output: f})
	logger.Info("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
