// Package orchestrator coordinates the full pipeline from tier-gated
// template resolution to the compiled PDF artifact. It applies sensible
// defaults (bundled store, pdflatex compiler) while remaining open to
// dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/resumegen/go-resumegen/pkg/catalog"
	"github.com/resumegen/go-resumegen/pkg/render"
	"github.com/resumegen/go-resumegen/pkg/render/compiler"
	"github.com/resumegen/go-resumegen/pkg/render/engine"
	"github.com/resumegen/go-resumegen/pkg/resume"
	"github.com/resumegen/go-resumegen/pkg/template"
	"github.com/resumegen/go-resumegen/pkg/template/bundled"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a store registry. The default registry holds only
// the bundled store.
func WithRegistry(registry *template.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithStoreOrder sets the priority-ordered store types consulted during
// resolution, highest priority first.
func WithStoreOrder(order ...string) Option {
	return func(o *Orchestrator) {
		o.storeOrder = order
	}
}

// WithMapper injects a custom document mapper.
func WithMapper(mapper render.Mapper) Option {
	return func(o *Orchestrator) {
		o.mapper = mapper
	}
}

// WithEngine injects a custom template engine.
func WithEngine(eng render.TemplateEngine) Option {
	return func(o *Orchestrator) {
		o.engine = eng
	}
}

// WithCompiler injects a custom compiler, replacing the pdflatex default.
func WithCompiler(comp compiler.Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = comp
	}
}

// WithThemeSelector registers a go-theme selector so style tokens (accent
// colour, font choices) can be resolved per request and exposed to
// templates under the "theme" context key.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request omits
// them.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithLogger injects the logger used across the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator exposes the two operations of the subsystem: listing the
// templates a tier may use and rendering a document with one of them.
type Orchestrator struct {
	registry   *template.Registry
	storeOrder []string
	mapper     render.Mapper
	engine     render.TemplateEngine
	compiler   compiler.Compiler
	logger     *slog.Logger

	themeSelector  theme.ThemeSelector
	defaultTheme   string
	defaultVariant string

	resolver *template.SourceResolver
	catalog  *catalog.Catalog
	finder   *catalog.Finder
	renderer *render.Renderer

	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.registry == nil {
		o.registry = template.NewRegistry()
		o.registry.MustRegister(bundled.New(o.logger))
	}
	if o.mapper == nil {
		o.mapper = render.LaTeXMapper{}
	}
	if o.engine == nil {
		eng, err := engine.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: build template engine: %w", err)
			return
		}
		o.engine = eng
	}
	if o.compiler == nil {
		o.compiler = &compiler.PDFLaTeX{Logger: o.logger}
	}

	o.resolver = template.NewSourceResolver(o.registry, o.storeOrder)
	o.catalog = catalog.NewCatalog(o.resolver)
	o.finder = catalog.NewFinder(o.resolver, o.logger)

	renderer, err := render.NewRenderer(o.mapper, o.engine, o.compiler, o.logger)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: build renderer: %w", err)
		return
	}
	o.renderer = renderer
}

// ListTemplates returns the templates visible to tier, capped at limit when
// limit > 0.
func (o *Orchestrator) ListTemplates(tier template.Tier, limit int) ([]template.Metadata, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.catalog.ListTemplates(tier, limit)
}

// Request describes one render invocation.
type Request struct {
	// Document is the validated resume to render.
	Document resume.Document

	// TemplateID selects the template; resolution is tier-gated.
	TemplateID string

	// CallerID identifies the caller for audit logging only.
	CallerID string

	// Tier is the caller's resolved subscription tier.
	Tier template.Tier

	// Locale selects the output locale. Empty falls back to the template's
	// first declared locale.
	Locale string

	// ThemeName and ThemeVariant select style tokens when a theme selector
	// is configured. Empty values fall back to the configured defaults.
	ThemeName    string
	ThemeVariant string
}

// Render resolves the template for the request's tier, maps and escapes the
// document, and produces the compiled artifact. Failures surface as the
// typed errors of the catalog and render packages.
func (o *Orchestrator) Render(ctx context.Context, req Request) (render.Artifact, error) {
	if ctx == nil {
		return render.Artifact{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Artifact{}, err
	}
	if err := o.initialiseErr; err != nil {
		return render.Artifact{}, err
	}
	if req.TemplateID == "" {
		return render.Artifact{}, errors.New("orchestrator: template id is required")
	}

	meta, store, err := o.finder.Locate(req.TemplateID, req.CallerID, req.Tier)
	if err != nil {
		return render.Artifact{}, err
	}

	body, err := store.Content(meta)
	if err != nil {
		o.logger.Error("template body unreadable",
			"template", meta.ID, "store", store.Type(), "error", err)
		return render.Artifact{}, fmt.Errorf("%w: template %q", render.ErrRenderingFailed, meta.ID)
	}

	extra := map[string]any{
		"params": meta.Params,
		"theme":  o.resolveThemeTokens(req.ThemeName, req.ThemeVariant),
	}

	return o.renderer.Render(ctx, req.Document, meta, body, req.Locale, extra)
}

// resolveThemeTokens merges the selected theme's base tokens with the
// variant overlay. Selection failures degrade to no tokens; templates carry
// their own defaults.
func (o *Orchestrator) resolveThemeTokens(name, variant string) map[string]string {
	if o.themeSelector == nil {
		return nil
	}
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}
	if name == "" {
		return nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil || selection == nil || selection.Manifest == nil {
		o.logger.Warn("theme selection failed", "theme", name, "variant", variant, "error", err)
		return nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variantSpec, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variantSpec.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}
