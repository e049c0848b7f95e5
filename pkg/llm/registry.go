package llm

import (
	"fmt"
	"sync"
)

// Factory constructs a backend from config. Construction failures (missing
// credential, unreachable runtime) propagate to the caller of Create.
type Factory func(cfg Config) (Model, error)

// Registry maps provider names to backend factories. It is read-mostly:
// built-in backends are registered at construction and extensions should be
// registered before concurrent traffic begins.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a provider factory under the given name. Re-registering a
// name replaces the factory but keeps its original position.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("llm: provider name is required")
	}
	if factory == nil {
		return fmt.Errorf("llm: provider %q: factory is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = factory
	return nil
}

// Create instantiates the named backend. It returns *UnknownProviderError
// for unregistered names and otherwise propagates the factory's error
// unchanged.
func (r *Registry) Create(name string, cfg Config) (Model, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownProviderError{Name: name, Known: r.AvailableProviders()}
	}
	return factory(cfg)
}

// AvailableProviders returns the registered provider names in
// registration order.
func (r *Registry) AvailableProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether a provider name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}
