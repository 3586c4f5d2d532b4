// Package bundled ships the built-in resume templates compiled into the
// binary, so a fresh deployment can render without any filesystem setup.
package bundled

import (
	"log/slog"

	"github.com/resumegen/go-resumegen/pkg/template"
)

// StoreType is the registry key the bundled store registers under.
const StoreType = "bundled"

// Store serves the embedded template bundle.
type Store struct {
	*template.Scanner
}

var _ template.Store = (*Store)(nil)

// New builds the bundled store. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Store {
	return &Store{
		Scanner: template.NewScanner(StoreType, TemplatesFS(), logger),
	}
}

// Type reports the registry key for this store implementation.
func (s *Store) Type() string {
	return StoreType
}
