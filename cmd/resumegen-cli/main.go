package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/resumegen/go-resumegen/internal/config"
	"github.com/resumegen/go-resumegen/pkg/orchestrator"
	"github.com/resumegen/go-resumegen/pkg/render/compiler"
	"github.com/resumegen/go-resumegen/pkg/resume"
	"github.com/resumegen/go-resumegen/pkg/template"
	"github.com/resumegen/go-resumegen/pkg/template/bundled"
	"github.com/resumegen/go-resumegen/pkg/template/fsstore"
)

func main() {
	resumePath := flag.String("resume", "resume.json", "resume document path (JSON)")
	templateID := flag.String("template", "", "template id (interactive pick if empty)")
	tierName := flag.String("tier", "FREE", "subscription tier to render as")
	locale := flag.String("locale", "", "output locale")
	output := flag.String("output", "", "output file (derived from resume if empty)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tier, err := template.ParseTier(*tierName)
	if err != nil {
		log.Fatalf("Invalid tier: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	registry := template.NewRegistry()
	registry.MustRegister(bundled.New(logger))
	if cfg.TemplatesDir != "" {
		registry.MustRegister(fsstore.New(cfg.TemplatesDir, logger))
	}

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithStoreOrder(cfg.StoreOrder...),
		orchestrator.WithCompiler(&compiler.PDFLaTeX{
			Binary:  cfg.CompilerBinary,
			Timeout: cfg.CompileTimeout,
			Logger:  logger,
		}),
		orchestrator.WithLogger(logger),
	)

	doc, err := loadDocument(*resumePath)
	if err != nil {
		log.Fatalf("Failed to load resume: %v", err)
	}

	id := strings.TrimSpace(*templateID)
	if id == "" {
		id, err = pickTemplate(gen, tier)
		if err != nil {
			log.Fatalf("Failed to pick template: %v", err)
		}
	}

	requestLocale := *locale
	if requestLocale == "" {
		requestLocale = cfg.DefaultLocale
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	artifact, err := gen.Render(ctx, orchestrator.Request{
		Document:   doc,
		TemplateID: id,
		CallerID:   "cli",
		Tier:       tier,
		Locale:     requestLocale,
	})
	if err != nil {
		log.Fatalf("Failed to render resume: %v", err)
	}

	target := *output
	if target == "" {
		target = artifact.Filename
	}
	if err := os.WriteFile(target, artifact.Content, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Resume written to %s (%s, %s)\n", target, artifact.ContentType, time.Since(started).Round(time.Millisecond))
}

func loadDocument(path string) (resume.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resume.Document{}, err
	}
	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return resume.Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func pickTemplate(gen *orchestrator.Orchestrator, tier template.Tier) (string, error) {
	templates, err := gen.ListTemplates(tier, 0)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates visible to tier %s", tier)
	}

	options := make([]string, len(templates))
	for i, meta := range templates {
		options[i] = fmt.Sprintf("%s: %s (v%s)", meta.ID, meta.Name, meta.Version)
	}

	var picked int
	prompt := &survey.Select{
		Message: "Pick a template:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return templates[picked].ID, nil
}
