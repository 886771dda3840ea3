// Package registry provides a named registry for pluggable values.
// Packages register their built-ins in init() functions, allowing the CLI and
// the renderer to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps unique names to values of type T.
// It is safe for concurrent use. The zero value is not usable; call New.
type Registry[T any] struct {
	kind   string
	mu     sync.RWMutex
	values map[string]T
}

// New creates an empty registry. kind names what is stored (e.g. "snake
// theme") and appears in error messages.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:   kind,
		values: make(map[string]T),
	}
}

// Register adds a value under name.
// Typically called from an init() function.
// Panics if a value with the same name is already registered.
func (r *Registry[T]) Register(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.values[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}

	r.values[name] = v
}

// Set adds or replaces the value under name.
// Used for user-defined entries, which may shadow built-ins.
func (r *Registry[T]) Set(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[name] = v
}

// Get returns the value registered under name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}

	return v, nil
}

// Exists checks if a value with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.values[name]
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.values))
	for name := range r.values {
		result = append(result, name)
	}

	sort.Strings(result)

	return result
}
