package check

import (
	"errors"
	"sync"
)

// Factory constructs a fresh check instance. Instances are never shared
// between invocations.
type Factory func() Check

// Descriptor is an immutable registry entry describing one available check.
type Descriptor struct {
	// Name is the unique registry key for the check
	Name string `json:"name" yaml:"name"`

	// Doc is the human-readable description used in listings
	Doc string `json:"doc" yaml:"doc"`

	// Factory constructs the check instance
	Factory Factory `json:"-" yaml:"-"`
}

// Registry is the catalog of check names to constructible implementations.
//
// Registration order is preserved: Resolve with no names and Descriptors both
// return entries in the order they were first registered. Registering a name
// that already exists overwrites the prior entry in place (last-write-wins),
// which is what lets user configuration override built-in checks.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Descriptor
}

// NewRegistry creates a new, empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Descriptor),
	}
}

// Register adds a check to the registry, overwriting any prior entry with the
// same name. Returns an error only for an empty name or nil factory.
func (r *Registry) Register(name string, doc string, factory Factory) error {
	if name == "" {
		return errors.New("check name cannot be empty")
	}
	if factory == nil {
		return errors.New("check factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}

	r.entries[name] = Descriptor{Name: name, Doc: doc, Factory: factory}

	return nil
}

// MustRegister registers a check and panics on failure. Intended for wiring
// built-in checks at command construction time.
func (r *Registry) MustRegister(name string, doc string, factory Factory) {
	if err := r.Register(name, doc, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs instances for the requested check names, in request
// order. With no names, every registered check is resolved in registration
// order (the "--all" semantics).
//
// If any requested name is not registered, resolution fails with an
// *UnknownCheckError carrying all unmatched names, and nothing runs.
func (r *Registry) Resolve(names ...string) ([]Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(names) == 0 {
		names = r.order
	}

	var unknown []string
	checks := make([]Check, 0, len(names))

	for _, name := range names {
		entry, exists := r.entries[name]
		if !exists {
			unknown = append(unknown, name)

			continue
		}

		checks = append(checks, entry.Factory())
	}

	if len(unknown) > 0 {
		return nil, &UnknownCheckError{Names: unknown}
	}

	return checks, nil
}

// Descriptors returns every registry entry in registration order, for
// enumeration independent of any run.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.entries[name])
	}

	return result
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
