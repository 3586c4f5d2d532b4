// Package catalog exposes tier-gated template listing and lookup over the
// priority-ordered stores produced by the source resolver.
package catalog

import (
	"github.com/resumegen/go-resumegen/pkg/template"
)

// Catalog lists the templates visible to a subscription tier.
type Catalog struct {
	resolver *template.SourceResolver
}

// NewCatalog builds a catalog over the resolver.
func NewCatalog(resolver *template.SourceResolver) *Catalog {
	return &Catalog{resolver: resolver}
}

// ListTemplates returns the templates a caller at the given tier may use,
// in store priority order. When one id appears in several stores the
// highest-priority definition masks the rest. limit <= 0 means unlimited.
//
// Tier filtering happens before truncation; an ineligible template never
// consumes limit budget.
func (c *Catalog) ListTemplates(tier template.Tier, limit int) ([]template.Metadata, error) {
	stores, err := c.resolver.ActiveStores(tier)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var visible []template.Metadata
	for _, store := range stores {
		for _, meta := range store.FindAll() {
			if _, masked := seen[meta.ID]; masked {
				continue
			}
			seen[meta.ID] = struct{}{}
			if !tier.Allows(meta.RequiredTier) {
				continue
			}
			visible = append(visible, meta)
		}
	}

	if limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	return visible, nil
}
