// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds every known command. Builtins shadow externals of the
// same name.
type Registry struct {
	builtins  map[string]*Command
	externals map[string]*Command
	names     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builtins:  make(map[string]*Command),
		externals: make(map[string]*Command),
	}
}

// Register adds a builtin. Registering the same builtin name twice is a
// programming error and panics.
func (r *Registry) Register(cmd *Command) {
	if cmd.Kind != KindBuiltin || cmd.Run == nil {
		panic(fmt.Sprintf("commands: %q is not a builtin", cmd.Name))
	}
	if _, exists := r.builtins[cmd.Name]; exists {
		panic(fmt.Sprintf("commands: builtin %q registered twice", cmd.Name))
	}
	r.builtins[cmd.Name] = cmd
	r.refreshNames()
}

// AddExternals records externals in order. A name already known as an
// external is kept; later entries of that name are ignored.
func (r *Registry) AddExternals(found []External) {
	for _, ext := range found {
		if _, exists := r.externals[ext.Name]; exists {
			continue
		}
		r.externals[ext.Name] = &Command{
			Name: ext.Name,
			Kind: KindExternal,
			Path: ext.Path,
		}
	}
	r.refreshNames()
}

func (r *Registry) refreshNames() {
	seen := make(map[string]struct{}, len(r.builtins)+len(r.externals))
	names := make([]string, 0, len(r.builtins)+len(r.externals))
	for _, m := range []map[string]*Command{r.builtins, r.externals} {
		for name := range m {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	r.names = names
}

// Lookup finds a command by exact name, builtins first.
func (r *Registry) Lookup(name string) (*Command, bool) {
	if cmd, ok := r.builtins[name]; ok {
		return cmd, true
	}
	if cmd, ok := r.externals[name]; ok {
		return cmd, true
	}
	return nil, false
}

// Names returns the sorted union of builtin and external names.
// The returned slice must not be modified.
func (r *Registry) Names() []string {
	return r.names
}

// BuiltinNames returns the sorted builtin names.
func (r *Registry) BuiltinNames() []string {
	return sortedKeys(r.builtins)
}

// ExternalNames returns the sorted external names.
func (r *Registry) ExternalNames() []string {
	return sortedKeys(r.externals)
}

func sortedKeys(m map[string]*Command) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// BuildOptions configures Build.
type BuildOptions struct {
	// Debug registers debug-only builtins
	Debug bool

	Logger hclog.Logger
}

// Build creates the session registry: builtins first, then every
// executable found on pathList.
func Build(pathList string, opts BuildOptions) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	r := NewRegistry()
	for _, cmd := range Builtins() {
		if cmd.DebugOnly && !opts.Debug {
			continue
		}
		r.Register(cmd)
	}

	r.AddExternals(ScanPath(pathList, logger))

	logger.Debug("registry built",
		"builtins", len(r.builtins),
		"externals", len(r.externals))
	return r
}
