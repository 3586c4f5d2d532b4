package template

// Store is the capability contract every template source satisfies. A store
// owns the metadata it discovered and knows how to resolve each entry's
// opaque content location.
//
// Discovery is lazy: the first call to any lookup method triggers a single
// scan whose result is cached for the process lifetime (or until Rebuild).
// Lookup methods never fail; a store that cannot read its backing medium is
// an empty store.
type Store interface {
	// Type identifies the store implementation in the resolver registry.
	Type() string
	// FindAll returns every discovered template in stable (path) order.
	FindAll() []Metadata
	// FindByID returns the template with the given id, if discovered.
	FindByID(id string) (Metadata, bool)
	// ExistsByID reports whether the store discovered the given id.
	ExistsByID(id string) bool
	// Content resolves a metadata entry's content location to the raw
	// template body.
	Content(meta Metadata) ([]byte, error)
	// Rebuild discards the cached discovery snapshot and scans again,
	// swapping the result in atomically. Readers observe either the old or
	// the new snapshot, never a mix.
	Rebuild()
}
