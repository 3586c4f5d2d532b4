package template

import (
	"fmt"
	"strings"
)

// DefaultStoreType is used when no store order is configured.
const DefaultStoreType = "bundled"

// ConfigurationError reports configured store types that have no registered
// instance. It is fatal: resolution keeps failing until the configuration or
// the registration set changes, so callers must not retry automatically.
type ConfigurationError struct {
	Missing []MissingStore
}

// MissingStore names one unresolvable store type and the registry key an
// instance was expected under.
type MissingStore struct {
	Type        string
	RegistryKey string
}

func (e *ConfigurationError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, missing := range e.Missing {
		names = append(names, fmt.Sprintf("%s (registry key %q)", missing.Type, missing.RegistryKey))
	}
	return "template: no store registered for configured type(s): " + strings.Join(names, ", ")
}

// SourceResolver turns the configured store order into the priority-ordered
// list of stores participating in template lookups.
type SourceResolver struct {
	registry *Registry
	order    []string
}

// NewSourceResolver builds a resolver over the registry. order lists store
// types by priority, highest first; when empty, the resolver falls back to
// the single built-in bundled store.
func NewSourceResolver(registry *Registry, order []string) *SourceResolver {
	cleaned := make([]string, 0, len(order))
	for _, storeType := range order {
		if trimmed := strings.TrimSpace(storeType); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{DefaultStoreType}
	}
	return &SourceResolver{registry: registry, order: cleaned}
}

// ActiveStores returns the stores participating in lookups for the given
// tier, in configured priority order. Every configured type is validated
// before any store is returned, so one error names all missing types at
// once. The result is never empty on success.
func (r *SourceResolver) ActiveStores(tier Tier) ([]Store, error) {
	_ = tier // all configured stores serve every tier today; access is per-template

	var missing []MissingStore
	for _, storeType := range r.order {
		if !r.registry.Has(storeType) {
			missing = append(missing, MissingStore{Type: storeType, RegistryKey: Key(storeType)})
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	stores := make([]Store, 0, len(r.order))
	for _, storeType := range r.order {
		store, _ := r.registry.Get(storeType)
		stores = append(stores, store)
	}
	return stores, nil
}
