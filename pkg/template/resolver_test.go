package template

import (
	"errors"
	"strings"
	"testing"
)

func TestActiveStoresPreservesConfiguredOrder(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(newFakeStore("bundled", nil))
	registry.MustRegister(newFakeStore("filesystem", nil))

	resolver := NewSourceResolver(registry, []string{"filesystem", "bundled"})
	stores, err := resolver.ActiveStores(TierFree)
	if err != nil {
		t.Fatalf("active stores: %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}
	if stores[0].Type() != "filesystem" || stores[1].Type() != "bundled" {
		t.Fatalf("order not preserved: %s, %s", stores[0].Type(), stores[1].Type())
	}
}

func TestActiveStoresDefaultsToBundled(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(newFakeStore(DefaultStoreType, nil))

	resolver := NewSourceResolver(registry, nil)
	stores, err := resolver.ActiveStores(TierProfessional)
	if err != nil {
		t.Fatalf("active stores: %v", err)
	}
	if len(stores) != 1 || stores[0].Type() != DefaultStoreType {
		t.Fatalf("expected the default bundled store, got %v", stores)
	}
}

func TestActiveStoresNamesEveryMissingType(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(newFakeStore("bundled", nil))

	resolver := NewSourceResolver(registry, []string{"premium", "bundled", "legacy"})
	_, err := resolver.ActiveStores(TierFree)
	if err == nil {
		t.Fatalf("expected configuration error")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Fatalf("expected both missing types reported, got %+v", cfgErr.Missing)
	}
	msg := err.Error()
	for _, name := range []string{"premium", "legacy"} {
		if !strings.Contains(msg, name) {
			t.Fatalf("error %q does not name %q", msg, name)
		}
	}
	if strings.Contains(msg, "bundled") {
		t.Fatalf("error %q should not name the registered type", msg)
	}
}

func TestActiveStoresFailsEveryCallUntilFixed(t *testing.T) {
	registry := NewRegistry()
	resolver := NewSourceResolver(registry, []string{"premium"})

	for i := 0; i < 3; i++ {
		if _, err := resolver.ActiveStores(TierFree); err == nil {
			t.Fatalf("call %d: expected configuration error", i)
		}
	}

	registry.MustRegister(newFakeStore("premium", nil))
	if _, err := resolver.ActiveStores(TierFree); err != nil {
		t.Fatalf("expected resolution to succeed once registered: %v", err)
	}
}
