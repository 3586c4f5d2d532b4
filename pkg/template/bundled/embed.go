package bundled

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle rooted at the template
// directories, for consumers that want the built-in templates out of the
// box.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen; fall back to the raw FS so the bundle
		// remains usable.
		return embeddedTemplates
	}
	return sub
}
