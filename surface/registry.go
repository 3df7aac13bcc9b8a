// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a surface from options.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface backend.
type Backend struct {
	// Name is the unique identifier, e.g. "image" or "recording".
	Name string

	// Priority orders automatic selection; higher wins.
	Priority int

	// New creates surfaces for this backend.
	New Factory
}

// Registry maps backend names to factories.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry, replacing any backend
// with the same name.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Names returns the registered backend names, highest priority first.
func Names() []string {
	return globalRegistry.Names()
}

// NewSurface creates a surface with the highest priority backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.New(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface with a specific backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewByName(name, Options{Width: width, Height: height})
}

// NewSurfaceWithOptions creates a surface with a specific backend and options.
func NewSurfaceWithOptions(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = Backend{Name: name, Priority: priority, New: factory}
}

// Get returns the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// Names returns backend names sorted by priority, then name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// New creates a surface using the highest priority backend that succeeds.
func (r *Registry) New(opts Options) (Surface, error) {
	names := r.Names()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a surface using the named backend and paints the
// background from opts.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	s, err := b.New(opts)
	if err != nil {
		return nil, err
	}
	if opts.Background != nil {
		s.Clear(opts.Background)
	}
	return s, nil
}

// ErrNoBackendAvailable is returned when no surface backends are registered.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	})
}
