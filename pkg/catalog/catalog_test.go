package catalog

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/resumegen/go-resumegen/pkg/template"
)

// memStore is an in-memory Store for catalog and finder tests.
type memStore struct {
	storeType string
	templates []template.Metadata
}

func (s *memStore) Type() string { return s.storeType }

func (s *memStore) FindAll() []template.Metadata {
	return append([]template.Metadata(nil), s.templates...)
}

func (s *memStore) FindByID(id string) (template.Metadata, bool) {
	for _, meta := range s.templates {
		if meta.ID == id {
			return meta, true
		}
	}
	return template.Metadata{}, false
}

func (s *memStore) ExistsByID(id string) bool {
	_, ok := s.FindByID(id)
	return ok
}

func (s *memStore) Content(meta template.Metadata) ([]byte, error) {
	return []byte(`\documentclass{article}\begin{document}{{ basics.name }}\end{document}`), nil
}

func (s *memStore) Rebuild() {}

func meta(id string, tier template.Tier) template.Metadata {
	return template.Metadata{
		ID:              id,
		Name:            id,
		Version:         "1.0",
		RequiredTier:    tier,
		ContentLocation: id + "/resume.tex.tpl",
	}
}

func resolverFor(t *testing.T, order []string, stores ...template.Store) *template.SourceResolver {
	t.Helper()
	registry := template.NewRegistry()
	for _, store := range stores {
		registry.MustRegister(store)
	}
	return template.NewSourceResolver(registry, order)
}

func listIDs(metas []template.Metadata) []string {
	ids := make([]string, 0, len(metas))
	for _, m := range metas {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestListTemplatesFiltersByTier(t *testing.T) {
	store := &memStore{storeType: "bundled", templates: []template.Metadata{
		meta("classic", template.TierFree),
		meta("modern", template.TierBasic),
		meta("executive", template.TierProfessional),
	}}
	catalog := NewCatalog(resolverFor(t, []string{"bundled"}, store))

	cases := []struct {
		tier template.Tier
		want []string
	}{
		{tier: template.TierFree, want: []string{"classic"}},
		{tier: template.TierBasic, want: []string{"classic", "modern"}},
		{tier: template.TierProfessional, want: []string{"classic", "modern", "executive"}},
	}
	for _, tc := range cases {
		got, err := catalog.ListTemplates(tc.tier, 0)
		if err != nil {
			t.Fatalf("list %s: %v", tc.tier, err)
		}
		if diff := cmp.Diff(tc.want, listIDs(got)); diff != "" {
			t.Fatalf("tier %s (-want +got):\n%s", tc.tier, diff)
		}
	}
}

// Visibility is monotonic: everything a lower tier sees, a higher tier
// sees too.
func TestListTemplatesVisibilityIsMonotonic(t *testing.T) {
	store := &memStore{storeType: "bundled", templates: []template.Metadata{
		meta("a", template.TierFree),
		meta("b", template.TierBasic),
		meta("c", template.TierBasic),
		meta("d", template.TierProfessional),
	}}
	catalog := NewCatalog(resolverFor(t, []string{"bundled"}, store))

	tiers := []template.Tier{template.TierFree, template.TierBasic, template.TierProfessional}
	for i := 0; i+1 < len(tiers); i++ {
		lower, err := catalog.ListTemplates(tiers[i], 0)
		if err != nil {
			t.Fatalf("list %s: %v", tiers[i], err)
		}
		higher, err := catalog.ListTemplates(tiers[i+1], 0)
		if err != nil {
			t.Fatalf("list %s: %v", tiers[i+1], err)
		}
		higherIDs := make(map[string]struct{}, len(higher))
		for _, m := range higher {
			higherIDs[m.ID] = struct{}{}
		}
		for _, m := range lower {
			if _, ok := higherIDs[m.ID]; !ok {
				t.Fatalf("%s sees %q but %s does not", tiers[i], m.ID, tiers[i+1])
			}
		}
	}
}

func TestListTemplatesHigherPriorityStoreMasksLower(t *testing.T) {
	premium := &memStore{storeType: "premium", templates: []template.Metadata{
		{ID: "classic", Name: "Premium Classic", Version: "2.0", RequiredTier: template.TierFree},
	}}
	standard := &memStore{storeType: "bundled", templates: []template.Metadata{
		meta("classic", template.TierFree),
		meta("modern", template.TierFree),
	}}
	catalog := NewCatalog(resolverFor(t, []string{"premium", "bundled"}, premium, standard))

	got, err := catalog.ListTemplates(template.TierFree, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"classic", "modern"}, listIDs(got)); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	if got[0].Name != "Premium Classic" {
		t.Fatalf("expected the premium definition to win, got %q", got[0].Name)
	}
}

// A limit is applied after tier filtering: ineligible templates never
// consume limit budget.
func TestListTemplatesFiltersBeforeTruncating(t *testing.T) {
	templates := []template.Metadata{
		meta("pro-1", template.TierProfessional),
		meta("pro-2", template.TierProfessional),
		meta("pro-3", template.TierProfessional),
	}
	for i := 0; i < 5; i++ {
		templates = append(templates, meta(fmt.Sprintf("free-%d", i), template.TierFree))
	}
	store := &memStore{storeType: "bundled", templates: templates}
	catalog := NewCatalog(resolverFor(t, []string{"bundled"}, store))

	got, err := catalog.ListTemplates(template.TierFree, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 templates, got %d", len(got))
	}
	for _, m := range got {
		if m.RequiredTier != template.TierFree {
			t.Fatalf("ineligible template %q returned", m.ID)
		}
	}
}

func TestListTemplatesPropagatesConfigurationError(t *testing.T) {
	catalog := NewCatalog(resolverFor(t, []string{"premium"}))

	_, err := catalog.ListTemplates(template.TierFree, 0)
	if err == nil {
		t.Fatalf("expected configuration error, never a silent empty list")
	}
}

// A FREE caller over an empty premium store and a default store holding one
// FREE and one PROFESSIONAL template sees only the FREE template.
func TestListTemplatesTierScenario(t *testing.T) {
	premium := &memStore{storeType: "premium"}
	standard := &memStore{storeType: "bundled", templates: []template.Metadata{
		meta("engineering", template.TierFree),
		meta("exec", template.TierProfessional),
	}}
	catalog := NewCatalog(resolverFor(t, []string{"premium", "bundled"}, premium, standard))

	got, err := catalog.ListTemplates(template.TierFree, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"engineering"}, listIDs(got)); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}
