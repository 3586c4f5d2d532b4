package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/resumegen/go-resumegen/pkg/template"
)

var (
	// ErrTemplateNotFound means no active store contains the requested id.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateAccessDenied means the id exists but the caller's tier is
	// too low. Kept distinct from ErrTemplateNotFound so callers can offer
	// an upgrade instead of a dead end.
	ErrTemplateAccessDenied = errors.New("template access denied")
)

// Finder resolves a single template by id and enforces tier access.
type Finder struct {
	resolver *template.SourceResolver
	log      *slog.Logger
}

// NewFinder builds a finder over the resolver. A nil logger falls back to
// slog.Default.
func NewFinder(resolver *template.SourceResolver, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{resolver: resolver, log: logger}
}

// FindByIDAndValidateAccess returns the highest-priority definition of id
// visible to the caller. Existence is decided before eligibility: a caller
// whose tier is too low gets ErrTemplateAccessDenied, never
// ErrTemplateNotFound.
func (f *Finder) FindByIDAndValidateAccess(id, callerID string, tier template.Tier) (template.Metadata, error) {
	meta, _, err := f.Locate(id, callerID, tier)
	return meta, err
}

// Locate works like FindByIDAndValidateAccess but also reports the store
// owning the winning definition, for callers that need the template body.
func (f *Finder) Locate(id, callerID string, tier template.Tier) (template.Metadata, template.Store, error) {
	stores, err := f.resolver.ActiveStores(tier)
	if err != nil {
		return template.Metadata{}, nil, err
	}

	for _, store := range stores {
		meta, ok := store.FindByID(id)
		if !ok {
			continue
		}
		// First match wins, consistent with the catalog's de-duplication:
		// lower-priority definitions of the same id are never consulted.
		if !tier.Allows(meta.RequiredTier) {
			f.log.Info("template access denied",
				"template", id, "caller", callerID,
				"required_tier", meta.RequiredTier.String(), "caller_tier", tier.String())
			return template.Metadata{}, nil, fmt.Errorf("%w: %q requires tier %s", ErrTemplateAccessDenied, id, meta.RequiredTier)
		}
		return meta, store, nil
	}

	return template.Metadata{}, nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}
