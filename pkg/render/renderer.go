// Package render maps validated resume documents into escaped render
// models and drives the template engine plus external compiler that turn
// them into a binary artifact.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/resumegen/go-resumegen/internal/metrics"
	"github.com/resumegen/go-resumegen/pkg/render/compiler"
	"github.com/resumegen/go-resumegen/pkg/render/latex"
	"github.com/resumegen/go-resumegen/pkg/resume"
	"github.com/resumegen/go-resumegen/pkg/template"
)

// ContentTypePDF is the media type of the produced artifact.
const ContentTypePDF = "application/pdf"

// TemplateEngine is the slice of the engine contract the renderer needs:
// template bodies arrive as store content, so only string rendering is
// used.
type TemplateEngine interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

// Artifact is the result of a successful render.
type Artifact struct {
	// Content is the compiled binary.
	Content []byte
	// ContentType is the media type of Content.
	ContentType string
	// Filename is a download suggestion derived from the document and
	// template.
	Filename string
	// Elapsed measures the full map-render-compile pipeline for
	// observability.
	Elapsed time.Duration
}

// Renderer runs the document-to-PDF pipeline for one selected template.
type Renderer struct {
	mapper   Mapper
	engine   TemplateEngine
	compiler compiler.Compiler
	log      *slog.Logger
}

// NewRenderer wires the pipeline. A nil mapper defaults to the LaTeX
// mapper; engine and compiler are required. A nil logger falls back to
// slog.Default.
func NewRenderer(mapper Mapper, engine TemplateEngine, comp compiler.Compiler, logger *slog.Logger) (*Renderer, error) {
	if engine == nil {
		return nil, fmt.Errorf("render: template engine is required")
	}
	if comp == nil {
		return nil, fmt.Errorf("render: compiler is required")
	}
	if mapper == nil {
		mapper = LaTeXMapper{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{mapper: mapper, engine: engine, compiler: comp, log: logger}, nil
}

// Render maps doc, substitutes it into the template body, and compiles the
// result. extra is merged into the substitution context after the model
// (template params, theme tokens); model keys always win.
func (r *Renderer) Render(ctx context.Context, doc resume.Document, meta template.Metadata, body []byte, locale string, extra map[string]any) (Artifact, error) {
	started := time.Now()

	artifact, outcome, err := r.render(ctx, doc, meta, body, locale, extra)
	metrics.RenderDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	if err != nil {
		return Artifact{}, err
	}

	artifact.Elapsed = time.Since(started)
	return artifact, nil
}

func (r *Renderer) render(ctx context.Context, doc resume.Document, meta template.Metadata, body []byte, locale string, extra map[string]any) (Artifact, string, error) {
	locale, err := resolveLocale(meta, locale)
	if err != nil {
		return Artifact{}, "locale_unsupported", err
	}

	model := r.mapper.Map(doc, locale)

	// Defensive check against a misbehaving mapper or custom filter chain:
	// unescaped caller content must never reach the compiler.
	for _, field := range model.textFields() {
		if latex.ContainsUnescaped(field) {
			r.log.Error("unescaped content reached the render model",
				"template", meta.ID, "locale", locale)
			return Artifact{}, "unsafe_content", fmt.Errorf("%w: template %q", ErrUnsafeContent, meta.ID)
		}
	}

	data := model.Context()
	for key, value := range extra {
		if _, reserved := data[key]; reserved {
			continue
		}
		data[key] = value
	}

	markup, err := r.engine.RenderString(string(body), data)
	if err != nil {
		r.log.Error("template engine failed", "template", meta.ID, "error", err)
		return Artifact{}, "rendering_failed", fmt.Errorf("%w: template %q", ErrRenderingFailed, meta.ID)
	}

	pdf, err := r.compiler.Compile(ctx, []byte(markup), locale)
	if err != nil {
		switch {
		case errors.Is(err, compiler.ErrTimedOut):
			metrics.CompileTimeouts.Inc()
			return Artifact{}, "compilation_timeout", fmt.Errorf("%w: template %q", ErrCompilationTimeout, meta.ID)
		default:
			return Artifact{}, "compilation_failed", fmt.Errorf("%w: template %q", ErrCompilationFailed, meta.ID)
		}
	}

	return Artifact{
		Content:     pdf,
		ContentType: ContentTypePDF,
		Filename:    suggestFilename(doc, meta),
	}, "ok", nil
}

// resolveLocale checks the requested locale against the template's declared
// set. An empty request falls back to the template's first declared locale;
// a template without declared locales accepts anything.
func resolveLocale(meta template.Metadata, locale string) (string, error) {
	if len(meta.SupportedLocales) == 0 {
		return locale, nil
	}
	if locale == "" {
		return meta.SupportedLocales[0], nil
	}
	for _, supported := range meta.SupportedLocales {
		if strings.EqualFold(supported, locale) {
			return supported, nil
		}
	}
	return "", fmt.Errorf("%w: template %q does not declare %q", ErrLocaleUnsupported, meta.ID, locale)
}

func suggestFilename(doc resume.Document, meta template.Metadata) string {
	base := slugify(doc.Basics.Name)
	if base == "" {
		base = "resume"
	}
	return fmt.Sprintf("%s-%s.pdf", base, meta.ID)
}

func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
