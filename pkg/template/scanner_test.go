package template

import (
	"io"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func descriptorYAML(id, name, tier string) []byte {
	return []byte("id: " + id + "\nname: " + name + "\nversion: \"1.0\"\nrequiredTier: " + tier + "\ntemplateContentLocation: resume.tex.tpl\n")
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"classic/template.yaml":    {Data: descriptorYAML("classic", "Classic", "FREE")},
		"classic/resume.tex.tpl":   {Data: []byte(`\documentclass{article}`)},
		"executive/template.yaml":  {Data: descriptorYAML("executive", "Executive", "PROFESSIONAL")},
		"executive/resume.tex.tpl": {Data: []byte(`\documentclass{report}`)},
	}
}

func TestScannerDiscoversDescriptors(t *testing.T) {
	s := NewScanner("test", testFS(), discardLogger())

	all := s.FindAll()
	ids := make([]string, 0, len(all))
	for _, meta := range all {
		ids = append(ids, meta.ID)
	}
	if diff := cmp.Diff([]string{"classic", "executive"}, ids); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}

	meta, ok := s.FindByID("executive")
	if !ok {
		t.Fatalf("executive not found")
	}
	if meta.RequiredTier != TierProfessional {
		t.Fatalf("unexpected tier: %v", meta.RequiredTier)
	}
	if !s.ExistsByID("classic") {
		t.Fatalf("classic should exist")
	}
	if s.ExistsByID("ghost") {
		t.Fatalf("ghost should not exist")
	}
}

func TestScannerResolvesContentRelativeToDescriptor(t *testing.T) {
	s := NewScanner("test", testFS(), discardLogger())

	meta, ok := s.FindByID("classic")
	if !ok {
		t.Fatalf("classic not found")
	}
	body, err := s.Content(meta)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if string(body) != `\documentclass{article}` {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestScannerSkipsBrokenDescriptors(t *testing.T) {
	fsys := testFS()
	fsys["broken/template.yaml"] = &fstest.MapFile{Data: []byte("id: [unclosed")}
	fsys["badtier/template.yaml"] = &fstest.MapFile{Data: descriptorYAML("badtier", "Bad", "GOLD")}

	s := NewScanner("test", fsys, discardLogger())
	if got := len(s.FindAll()); got != 2 {
		t.Fatalf("expected broken descriptors skipped, got %d templates", got)
	}
}

func TestScannerEmptyRootIsValid(t *testing.T) {
	s := NewScanner("test", fstest.MapFS{}, discardLogger())
	if got := len(s.FindAll()); got != 0 {
		t.Fatalf("expected empty result, got %d", got)
	}
}

func TestScannerKeepsFirstOnDuplicateID(t *testing.T) {
	fsys := fstest.MapFS{
		"a/template.yaml": {Data: descriptorYAML("classic", "First", "FREE")},
		"b/template.yaml": {Data: descriptorYAML("classic", "Second", "FREE")},
	}
	s := NewScanner("test", fsys, discardLogger())

	all := s.FindAll()
	if len(all) != 1 {
		t.Fatalf("expected one template, got %d", len(all))
	}
	if all[0].Name != "First" {
		t.Fatalf("expected first descriptor to win, got %q", all[0].Name)
	}
}

// countingFS counts how many times each file is opened so the test can
// prove concurrent first access triggers a single discovery pass.
type countingFS struct {
	inner fs.FS
	opens atomic.Int64
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.inner.Open(name)
}

func TestScannerConcurrentFirstAccessScansOnce(t *testing.T) {
	counting := &countingFS{inner: testFS()}
	s := NewScanner("test", counting, discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := len(s.FindAll()); got != 2 {
				t.Errorf("expected 2 templates, got %d", got)
			}
		}()
	}
	wg.Wait()

	opensAfterFirst := counting.opens.Load()
	s.FindAll()
	s.ExistsByID("classic")
	if counting.opens.Load() != opensAfterFirst {
		t.Fatalf("later lookups must serve the cached snapshot without re-reading")
	}
}

func TestScannerRebuildSwapsSnapshot(t *testing.T) {
	fsys := fstest.MapFS{
		"classic/template.yaml": {Data: descriptorYAML("classic", "Classic", "FREE")},
	}
	s := NewScanner("test", fsys, discardLogger())

	if got := len(s.FindAll()); got != 1 {
		t.Fatalf("expected 1 template, got %d", got)
	}

	fsys["modern/template.yaml"] = &fstest.MapFile{Data: descriptorYAML("modern", "Modern", "BASIC")}
	if got := len(s.FindAll()); got != 1 {
		t.Fatalf("snapshot must not change before rebuild, got %d", got)
	}

	s.Rebuild()
	if got := len(s.FindAll()); got != 2 {
		t.Fatalf("expected 2 templates after rebuild, got %d", got)
	}
}

func TestScannerSnapshotIsImmutable(t *testing.T) {
	s := NewScanner("test", testFS(), discardLogger())

	all := s.FindAll()
	all[0].SupportedLocales = append(all[0].SupportedLocales, "xx")
	all[0].Name = "mutated"

	fresh, _ := s.FindByID("classic")
	if fresh.Name == "mutated" {
		t.Fatalf("caller mutation leaked into the cached snapshot")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
