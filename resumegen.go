// Package resumegen renders structured resume documents into PDF artifacts
// using tier-gated template stores. The root package re-exports the
// orchestrator entry points; advanced callers can wire the pkg/...
// components directly.
package resumegen

import (
	"context"
	"io/fs"

	"github.com/resumegen/go-resumegen/pkg/orchestrator"
	"github.com/resumegen/go-resumegen/pkg/render"
	"github.com/resumegen/go-resumegen/pkg/resume"
	"github.com/resumegen/go-resumegen/pkg/template"
	"github.com/resumegen/go-resumegen/pkg/template/bundled"
)

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// Artifact aliases the render artifact for convenience.
type Artifact = render.Artifact

// Document aliases the resume document for convenience.
type Document = resume.Document

// Tier re-exports the subscription tier enumeration.
type Tier = template.Tier

// Subscription tiers in ascending rank order.
const (
	TierFree         = template.TierFree
	TierBasic        = template.TierBasic
	TierProfessional = template.TierProfessional
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render builds an orchestrator with the given options and renders one
// request. It is the simplest entry point for callers that just want a PDF.
func Render(ctx context.Context, req Request, options ...orchestrator.Option) (Artifact, error) {
	return orchestrator.New(options...).Render(ctx, req)
}

// ListTemplates builds an orchestrator with the given options and lists the
// templates visible to tier.
func ListTemplates(tier Tier, limit int, options ...orchestrator.Option) ([]template.Metadata, error) {
	return orchestrator.New(options...).ListTemplates(tier, limit)
}

// BundledTemplates exposes the built-in template bundle so callers can
// inspect or extend it without importing the store package directly.
func BundledTemplates() fs.FS {
	return bundled.TemplatesFS()
}
