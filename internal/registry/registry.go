// Package registry provides the glue between grid files and compiled-in
// node implementations.
//
// A node package registers a factory under its kind name (the first
// label of a `node` block); the builder looks kinds up here when it
// turns a loaded grid into a live pipeline. The registry is populated
// once at startup and read-only afterwards.
package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgrid/internal/pipeline"
)

// Factory builds a concrete node from its instance name and the
// already-evaluated arguments of its grid block.
type Factory func(name string, args map[string]cty.Value) (pipeline.Node, error)

// Module is the interface a node package implements to be compiled in.
type Module interface {
	Register(r *Registry)
}

// Registry holds the node factories for a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterNode registers a factory for a node kind. Registering the
// same kind twice is a programmer error and panics at startup.
func (r *Registry) RegisterNode(kind string, f Factory) {
	if _, exists := r.factories[kind]; exists {
		panic(fmt.Sprintf("node kind %q already registered", kind))
	}
	slog.Debug("Registering node kind.", "kind", kind)
	r.factories[kind] = f
}

// Factory returns the factory registered for kind, if any.
func (r *Registry) Factory(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// Kinds returns the registered kind names in sorted order, for
// diagnostics.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
