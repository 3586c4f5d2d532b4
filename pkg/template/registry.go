package template

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps store type identifiers to concrete Store instances so the
// resolver can turn configured type names into stores at runtime. New store
// implementations register here; the resolver needs no changes.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]Store
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]Store),
	}
}

// Key normalises a configured store type to its registry key.
func Key(storeType string) string {
	return strings.ToLower(strings.TrimSpace(storeType))
}

// Register adds a store under its Type(). Duplicate types return an error.
func (r *Registry) Register(store Store) error {
	if store == nil {
		return fmt.Errorf("template: store is required")
	}
	key := Key(store.Type())
	if key == "" {
		return fmt.Errorf("template: store type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[key]; exists {
		return fmt.Errorf("template: store type %q already registered", key)
	}

	r.stores[key] = store
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(store Store) {
	if err := r.Register(store); err != nil {
		panic(err)
	}
}

// Get retrieves a store by type.
func (r *Registry) Get(storeType string) (Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[Key(storeType)]
	return store, ok
}

// Has reports whether a store type is registered.
func (r *Registry) Has(storeType string) bool {
	_, ok := r.Get(storeType)
	return ok
}

// List returns the sorted registered store types.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.stores))
	for key := range r.stores {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}
