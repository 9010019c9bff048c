package adapter

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/go-loom/loom/pkg/metadata"
)

// Registry tracks the adapters available to a host application. It is an
// explicit value rather than a process-wide global so independent apps in
// one process (or parallel tests) don't share registrations.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter. It rejects a nil adapter, an empty name, a
// version that is not valid semver, and a duplicate name.
func (r *Registry) Register(a Adapter) error {
	if a == nil {
		return fmt.Errorf("adapter registry: nil adapter")
	}
	name := a.Name()
	if name == "" {
		return fmt.Errorf("adapter registry: adapter has no name")
	}
	if !semver.IsValid(metadata.CanonicalVersion(a.Version())) {
		return fmt.Errorf("adapter registry: adapter %q has invalid version %q", name, a.Version())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("adapter registry: adapter %q already registered", name)
	}
	r.adapters[name] = a
	return nil
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	return a, ok
}

// Names returns the registered adapter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
