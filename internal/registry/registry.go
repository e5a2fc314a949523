// Package registry holds the named root-configuration factories an
// application instance can resolve. Option-set packages implement Module
// and register their roots; the CLI selects one by name.
package registry

import (
	"fmt"
	"sort"

	"github.com/vk/conftreego/internal/conftree"
)

// Module is the interface option-set packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry maps root-configuration names to their factories for a single
// application instance.
type Registry struct {
	roots map[string]conftree.GroupFactory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{roots: make(map[string]conftree.GroupFactory)}
}

// AddRoot registers a root-configuration factory under a name. Duplicate
// registration is a programmer error and panics.
func (r *Registry) AddRoot(name string, factory conftree.GroupFactory) {
	if _, exists := r.roots[name]; exists {
		panic(fmt.Sprintf("registry: root config %q registered twice", name))
	}
	r.roots[name] = factory
}

// Root returns the factory registered under name.
func (r *Registry) Root(name string) (conftree.GroupFactory, error) {
	factory, ok := r.roots[name]
	if !ok {
		return nil, fmt.Errorf("no root config named %q; available: %v", name, r.Names())
	}
	return factory, nil
}

// Names lists the registered root-configuration names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.roots))
	for name := range r.roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
