package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/primer/pkg/domain"
)

// Function defines the signature for a logic node implementation.
// It receives the current variables (context merged with node args) and returns
// the value stored under the node's SaveTo key.
type Function func(ctx context.Context, vars map[string]any) (any, error)

// Registry manages the functions available to logic nodes.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Function),
	}
}

// Register adds a function to the registry.
// If a function with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute looks up a function by name and calls it.
func (r *Registry) Execute(ctx context.Context, name string, vars map[string]any) (any, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFunction, name)
	}

	return fn(ctx, vars)
}
