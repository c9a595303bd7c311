// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type fakeEnv struct {
	vars     map[string]string
	cwd      string
	chdirErr error
	exited   bool
	exitCode int
}

func (f *fakeEnv) Getenv(key string) string { return f.vars[key] }
func (f *fakeEnv) Getwd() (string, error)   { return f.cwd, nil }

func (f *fakeEnv) Chdir(dir string) error {
	if f.chdirErr != nil {
		return f.chdirErr
	}
	f.cwd = dir
	return nil
}

func (f *fakeEnv) Exit(code int) {
	f.exited = true
	f.exitCode = code
}

func newTestContext(reg *Registry, env *fakeEnv) (*Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Context{
		Stdout:   out,
		Stderr:   &bytes.Buffer{},
		Registry: reg,
		Env:      env,
		Logger:   hclog.NewNullLogger(),
	}, out
}

func writeExecutable(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func run(t *testing.T, reg *Registry, env *fakeEnv, name string, args ...string) (string, error) {
	t.Helper()
	cmd, ok := reg.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	ctx, out := newTestContext(reg, env)
	err := cmd.Run(ctx, args)
	return out.String(), err
}

func builtinRegistry(debug bool) *Registry {
	return Build("", BuildOptions{Debug: debug})
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	echo := &Command{Name: "echo", Kind: KindBuiltin, Run: runEcho}
	r.Register(echo)

	assert.Panics(t, func() { r.Register(echo) })
}

func TestRegistry_RegisterExternalPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.Register(&Command{Name: "ls", Kind: KindExternal, Path: "/bin/ls"})
	})
}

func TestRegistry_BuiltinShadowsExternal(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "echo", Kind: KindBuiltin, Run: runEcho})
	r.AddExternals([]External{{Name: "echo", Path: "/bin/echo"}, {Name: "ls", Path: "/bin/ls"}})

	cmd, ok := r.Lookup("echo")
	require.True(t, ok)
	assert.Equal(t, KindBuiltin, cmd.Kind)

	cmd, ok = r.Lookup("ls")
	require.True(t, ok)
	assert.Equal(t, KindExternal, cmd.Kind)
	assert.Equal(t, "/bin/ls", cmd.Path)

	_, ok = r.Lookup("nope")
	assert.False(t, ok)

	_, ok = r.Lookup("ECHO")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestRegistry_ExternalFirstWins(t *testing.T) {
	r := NewRegistry()
	r.AddExternals([]External{{Name: "tool", Path: "/a/tool"}, {Name: "tool", Path: "/b/tool"}})

	cmd, ok := r.Lookup("tool")
	require.True(t, ok)
	assert.Equal(t, "/a/tool", cmd.Path)
}

func TestRegistry_NamesSortedUnion(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "pwd", Kind: KindBuiltin, Run: runPwd})
	r.Register(&Command{Name: "echo", Kind: KindBuiltin, Run: runEcho})
	r.AddExternals([]External{{Name: "ls", Path: "/bin/ls"}, {Name: "echo", Path: "/bin/echo"}})

	assert.Equal(t, []string{"echo", "ls", "pwd"}, r.Names())
	assert.Equal(t, []string{"echo", "pwd"}, r.BuiltinNames())
	assert.Equal(t, []string{"echo", "ls"}, r.ExternalNames())
}

func TestBuild_DebugOnlyGating(t *testing.T) {
	_, ok := builtinRegistry(false).Lookup("dprint")
	assert.False(t, ok)

	_, ok = builtinRegistry(true).Lookup("dprint")
	assert.True(t, ok)

	for _, name := range []string{"cd", "echo", "exit", "help", "pwd", "type", "all"} {
		_, ok := builtinRegistry(false).Lookup(name)
		assert.True(t, ok, "builtin %q missing", name)
	}
}

// =============================================================================
// PATH SCAN TESTS
// =============================================================================

func TestScanPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	toolA := writeExecutable(t, first, "tool", 0755)
	writeExecutable(t, second, "tool", 0755)
	writeExecutable(t, second, "other", 0700)
	writeExecutable(t, first, "notes.txt", 0644)
	require.NoError(t, os.Mkdir(filepath.Join(first, "subdir"), 0755))
	require.NoError(t, os.Symlink(toolA, filepath.Join(second, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(first, "missing"), filepath.Join(second, "dangling")))

	pathList := strings.Join([]string{first, filepath.Join(first, "does-not-exist"), "", second}, string(os.PathListSeparator))
	found := ScanPath(pathList, hclog.NewNullLogger())

	byName := make(map[string]string)
	for _, ext := range found {
		_, dup := byName[ext.Name]
		assert.False(t, dup, "duplicate %q", ext.Name)
		byName[ext.Name] = ext.Path
	}

	assert.Equal(t, toolA, byName["tool"], "first PATH entry wins")
	assert.Equal(t, filepath.Join(second, "other"), byName["other"])
	assert.Equal(t, filepath.Join(second, "linked"), byName["linked"])
	assert.NotContains(t, byName, "notes.txt")
	assert.NotContains(t, byName, "subdir")
	assert.NotContains(t, byName, "dangling")
}

func TestScanPath_Empty(t *testing.T) {
	assert.Empty(t, ScanPath("", hclog.NewNullLogger()))
}

func TestBuild_WithPath(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "echo", 0755)
	writeExecutable(t, dir, "hello", 0755)

	r := Build(dir, BuildOptions{})

	cmd, ok := r.Lookup("echo")
	require.True(t, ok)
	assert.True(t, cmd.IsBuiltin())

	cmd, ok = r.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "hello"), cmd.Path)
	assert.Contains(t, r.Names(), "hello")
}

// =============================================================================
// BUILTIN TESTS
// =============================================================================

func TestEcho(t *testing.T) {
	out, err := run(t, builtinRegistry(false), &fakeEnv{}, "echo", "a b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", out)

	out, err = run(t, builtinRegistry(false), &fakeEnv{}, "echo")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestPwd(t *testing.T) {
	out, err := run(t, builtinRegistry(false), &fakeEnv{cwd: "/work"}, "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/work\n", out)
}

func TestCd(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		args []string
		want string
	}{
		{"explicit", nil, []string{"/tmp"}, "/tmp"},
		{"home", map[string]string{"HOME": "/home/me"}, nil, "/home/me"},
		{"root fallback", nil, nil, "/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := &fakeEnv{vars: tc.vars}
			_, err := run(t, builtinRegistry(false), env, "cd", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, env.cwd)
		})
	}
}

func TestCd_Failure(t *testing.T) {
	env := &fakeEnv{chdirErr: &os.PathError{Op: "chdir", Path: "/nope", Err: os.ErrNotExist}}
	_, err := run(t, builtinRegistry(false), env, "cd", "/nope")

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "cd: /nope", execErr.Message)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExit(t *testing.T) {
	env := &fakeEnv{}
	_, err := run(t, builtinRegistry(false), env, "exit")
	require.NoError(t, err)
	assert.True(t, env.exited)
	assert.Equal(t, 0, env.exitCode)

	env = &fakeEnv{}
	_, err = run(t, builtinRegistry(false), env, "exit", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, env.exitCode)
}

func TestExit_NonInteger(t *testing.T) {
	env := &fakeEnv{}
	_, err := run(t, builtinRegistry(false), env, "exit", "abc")

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.False(t, env.exited)
}

func TestType(t *testing.T) {
	reg := builtinRegistry(true)
	reg.AddExternals([]External{{Name: "ls", Path: "/bin/ls"}})

	tests := []struct {
		arg  string
		want string
	}{
		{"echo", "echo is a shell builtin\n"},
		{"ls", "ls is /bin/ls\n"},
		{"dprint", "dprint is a debug-only shell builtin\n"},
		{"nope", "nope: not found\n"},
	}

	for _, tc := range tests {
		out, err := run(t, reg, &fakeEnv{}, "type", tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out)
	}

	_, err := run(t, reg, &fakeEnv{}, "type")
	var execErr *ExecutionError
	assert.True(t, errors.As(err, &execErr))
}

func TestHelp(t *testing.T) {
	reg := builtinRegistry(false)
	reg.AddExternals([]External{{Name: "ls", Path: "/bin/ls"}})

	out, err := run(t, reg, &fakeEnv{}, "help", "cd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "usage: cd <directory>\n"))

	out, err = run(t, reg, &fakeEnv{}, "help", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "/bin/ls")

	_, err = run(t, reg, &fakeEnv{}, "help", "ehco")
	var notFound *CommandNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ehco", notFound.Name)

	_, err = run(t, reg, &fakeEnv{}, "help")
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "usage: help <command name>", execErr.Error())
}

func TestAll(t *testing.T) {
	reg := builtinRegistry(false)
	reg.AddExternals([]External{{Name: "ls", Path: "/bin/ls"}, {Name: "cat", Path: "/bin/cat"}})

	out, err := run(t, reg, &fakeEnv{}, "all")
	require.NoError(t, err)
	assert.Equal(t,
		"builtin commands (7):\n  all, cd, echo, exit, help, pwd, type\n"+
			"external commands (2):\n  cat, ls\n",
		out)
}

func TestDebugPrint(t *testing.T) {
	reg := builtinRegistry(true)
	reg.AddExternals([]External{{Name: "ls", Path: "/bin/ls"}})

	out, err := run(t, reg, &fakeEnv{}, "dprint", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:       external")
	assert.Contains(t, out, "path:       /bin/ls")

	_, err = run(t, reg, &fakeEnv{}, "dprint", "missing")
	assert.Error(t, err)
}

// =============================================================================
// ERROR TESTS
// =============================================================================

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "foo: command not found", (&CommandNotFoundError{Name: "foo"}).Error())
	assert.Equal(t, "boom", Failf("boom").Error())
	assert.Equal(t, "spawn ls: denied", Wrap(errors.New("denied"), "spawn ls").Error())
	assert.Equal(t, "bad", (&ParseError{Message: "bad"}).Error())

	inner := errors.New("inner")
	assert.ErrorIs(t, Wrap(inner, "outer"), inner)
}
