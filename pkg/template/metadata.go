package template

// Metadata describes one template as discovered from its descriptor file.
// Values are immutable after discovery and owned by the store that found
// them; callers receive copies and must not assume identity.
type Metadata struct {
	// ID is unique within a single store. When two stores define the same
	// ID, resolution order decides which definition wins (see catalog).
	ID string
	// Name is the human-readable display name.
	Name string
	// Version is the template author's version string, reported verbatim.
	Version string
	// RequiredTier is the minimum subscription tier allowed to use the
	// template.
	RequiredTier Tier
	// ContentLocation is an opaque locator for the template body. Only the
	// owning store knows how to resolve it.
	ContentLocation string
	// Description is optional marketing copy for catalog listings. HTML is
	// stripped at load time.
	Description string
	// SupportedLocales lists the locales the template declares support
	// for. Empty means the template is locale-agnostic.
	SupportedLocales []string
	// PreviewURL optionally points at a rendered preview image.
	PreviewURL string
	// Params carries free-form template parameters passed through to the
	// rendering context.
	Params map[string]any
}

// clone returns a defensive copy so cached snapshots stay immutable even if
// a caller mutates the returned slices or maps.
func (m Metadata) clone() Metadata {
	out := m
	if len(m.SupportedLocales) > 0 {
		out.SupportedLocales = append([]string(nil), m.SupportedLocales...)
	}
	if len(m.Params) > 0 {
		out.Params = make(map[string]any, len(m.Params))
		for key, value := range m.Params {
			out.Params[key] = value
		}
	}
	return out
}
