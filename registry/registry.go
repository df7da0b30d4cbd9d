// Package registry is the typed contract between a backend entry module and the
// entry adapter. A backend registers a Factory under a well-known name from its
// init function; the adapter looks that name up once at load time.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
)

var (
	ErrNotRegistered  = errors.New("application not registered")
	ErrNilApplication = errors.New("application factory returned no handler")
)

// Env is what a backend learns about the resolved layout when its factory runs.
type Env struct {
	AdapterDir string
	BackendDir string
	InstanceID string
}

// Factory builds the backend's application object. It runs at most once per adapter.
type Factory func(ctx context.Context, env Env) (http.Handler, error)

// Handler adapts an already-built application to a Factory.
func Handler(h http.Handler) Factory {
	return func(context.Context, Env) (http.Handler, error) {
		return h, nil
	}
}

// Registry holds registered application factories by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register makes a factory available under name. It panics if the name is empty,
// the factory is nil or the name is already taken.
func (r *Registry) Register(name string, f Factory) {
	if name == "" {
		panic("registry: Register with empty name")
	}
	if f == nil {
		panic("registry: Register factory is nil for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		panic("registry: Register called twice for " + name)
	}
	r.factories[name] = f
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = New()

// Default returns the process-wide registry backends register into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry.
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}

// Get looks a factory up in the default registry.
func Get(name string) (Factory, error) {
	return defaultRegistry.Get(name)
}

// Names lists the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// IsResolution reports whether err means the application could not be resolved by name.
func IsResolution(err error) bool {
	return errors.Is(err, ErrNotRegistered) || errors.Is(err, ErrNilApplication)
}
