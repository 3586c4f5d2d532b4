package template

import (
	"io/fs"
	"log/slog"
	"path"
	"sync"
	"sync/atomic"

	"github.com/resumegen/go-resumegen/internal/metrics"
)

// descriptorNames is the fixed discovery pattern: a descriptor is any file
// with one of these names, anywhere under the store root.
var descriptorNames = map[string]struct{}{
	"template.yaml": {},
	"template.yml":  {},
	"template.json": {},
}

// snapshot is one completed discovery pass. It is immutable after
// construction, which is what makes unsynchronized concurrent reads safe.
type snapshot struct {
	ordered []Metadata
	byID    map[string]Metadata
}

// Scanner implements descriptor discovery over an fs.FS and backs both
// bundled and filesystem stores. The first lookup triggers exactly one scan
// even under concurrent access; later lookups read the cached snapshot
// without locking.
type Scanner struct {
	storeType string
	fsys      fs.FS
	log       *slog.Logger

	once sync.Once
	snap atomic.Pointer[snapshot]
}

// NewScanner builds a scanner for the given store type over fsys. A nil
// logger falls back to slog.Default.
func NewScanner(storeType string, fsys fs.FS, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		storeType: storeType,
		fsys:      fsys,
		log:       logger.With("store", storeType),
	}
}

// FindAll returns every discovered template in descriptor-path order.
func (s *Scanner) FindAll() []Metadata {
	snap := s.current()
	out := make([]Metadata, 0, len(snap.ordered))
	for _, meta := range snap.ordered {
		out = append(out, meta.clone())
	}
	return out
}

// FindByID returns the template with the given id, if discovered.
func (s *Scanner) FindByID(id string) (Metadata, bool) {
	meta, ok := s.current().byID[id]
	if !ok {
		return Metadata{}, false
	}
	return meta.clone(), true
}

// ExistsByID reports whether a descriptor with the given id was discovered.
func (s *Scanner) ExistsByID(id string) bool {
	_, ok := s.current().byID[id]
	return ok
}

// Content reads the template body a metadata entry points at.
func (s *Scanner) Content(meta Metadata) ([]byte, error) {
	return fs.ReadFile(s.fsys, meta.ContentLocation)
}

// Rebuild replaces the cached snapshot with a fresh scan. The swap is
// atomic: concurrent readers see the old snapshot until the new one is
// complete.
func (s *Scanner) Rebuild() {
	s.ensureLoaded()
	s.snap.Store(s.scan())
}

func (s *Scanner) current() *snapshot {
	s.ensureLoaded()
	return s.snap.Load()
}

func (s *Scanner) ensureLoaded() {
	s.once.Do(func() {
		s.snap.Store(s.scan())
	})
}

// scan walks the store root collecting descriptors. A descriptor that
// cannot be read or parsed is logged and skipped; discovery of the rest
// continues. Zero descriptors is a valid, empty result.
func (s *Scanner) scan() *snapshot {
	snap := &snapshot{byID: make(map[string]Metadata)}
	if s.fsys == nil {
		return snap
	}

	err := fs.WalkDir(s.fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.skip(p, walkErr)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := descriptorNames[path.Base(p)]; !ok {
			return nil
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			s.skip(p, err)
			return nil
		}
		meta, err := parseDescriptor(data, p)
		if err != nil {
			s.skip(p, err)
			return nil
		}

		// Descriptor locations are relative to the descriptor's directory.
		if meta.ContentLocation != "" && !fs.ValidPath(meta.ContentLocation) {
			s.skip(p, fs.ErrInvalid)
			return nil
		}
		meta.ContentLocation = path.Join(path.Dir(p), meta.ContentLocation)

		if _, exists := snap.byID[meta.ID]; exists {
			s.log.Warn("duplicate template id in store, keeping first",
				"id", meta.ID, "descriptor", p)
			return nil
		}
		snap.byID[meta.ID] = meta
		snap.ordered = append(snap.ordered, meta)
		return nil
	})
	if err != nil {
		s.log.Warn("template discovery aborted early", "error", err)
	}

	s.log.Info("template discovery complete", "templates", len(snap.ordered))
	return snap
}

func (s *Scanner) skip(p string, err error) {
	metrics.DescriptorsSkipped.Inc()
	s.log.Warn("skipping unreadable template descriptor", "path", p, "error", err)
}
