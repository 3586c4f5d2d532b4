// Package fsstore serves resume templates from a directory on disk, for
// deployments that manage template bundles outside the binary (for example
// a mounted volume refreshed by an operator).
package fsstore

import (
	"log/slog"
	"os"

	"github.com/resumegen/go-resumegen/pkg/template"
)

// StoreType is the registry key the filesystem store registers under.
const StoreType = "filesystem"

// Store discovers descriptors under a root directory.
type Store struct {
	*template.Scanner
	root string
}

var _ template.Store = (*Store)(nil)

// New builds a filesystem store rooted at dir. The directory does not need
// to exist yet; a missing root behaves as an empty store until Rebuild is
// called after it appears.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{
		Scanner: template.NewScanner(StoreType, os.DirFS(dir), logger),
		root:    dir,
	}
}

// Type reports the registry key for this store implementation.
func (s *Store) Type() string {
	return StoreType
}

// Root returns the directory the store scans.
func (s *Store) Root() string {
	return s.root
}
