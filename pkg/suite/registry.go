package suite

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available suites
type Registry struct {
	mu     sync.RWMutex
	suites map[string]func() Suite
}

// NewRegistry creates a new suite registry
func NewRegistry() *Registry {
	return &Registry{
		suites: make(map[string]func() Suite),
	}
}

// Register adds a suite to the registry
func (r *Registry) Register(name string, factory func() Suite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.suites[name]; exists {
		return fmt.Errorf("suite %s already registered", name)
	}

	r.suites[name] = factory
	return nil
}

// Get returns a new instance of the requested suite
func (r *Registry) Get(name string) (Suite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.suites[name]
	if !exists {
		return nil, fmt.Errorf("suite %s not found", name)
	}

	return factory(), nil
}

// List returns all registered suite names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global suite registry
var DefaultRegistry = NewRegistry()
