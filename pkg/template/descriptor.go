package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// descriptorFile mirrors the machine-readable descriptor shipped next to
// each template body. JSON and YAML are both accepted.
type descriptorFile struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Version          string         `json:"version" yaml:"version"`
	RequiredTier     string         `json:"requiredTier" yaml:"requiredTier"`
	ContentLocation  string         `json:"templateContentLocation" yaml:"templateContentLocation"`
	Description      string         `json:"description" yaml:"description"`
	SupportedLocales []string       `json:"supportedLocales" yaml:"supportedLocales"`
	PreviewURL       string         `json:"previewUrl" yaml:"previewUrl"`
	Params           map[string]any `json:"params" yaml:"params"`
}

// parseDescriptor decodes and validates one descriptor file. source is only
// used for error messages.
func parseDescriptor(data []byte, source string) (Metadata, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Metadata{}, fmt.Errorf("template: descriptor %s is empty", source)
	}

	var doc descriptorFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Metadata{}, fmt.Errorf("template: descriptor %s: invalid JSON or YAML", source)
		}
	}

	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return Metadata{}, fmt.Errorf("template: descriptor %s has no id", source)
	}
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return Metadata{}, fmt.Errorf("template: descriptor %s (id %q) has no name", source, id)
	}
	location := strings.TrimSpace(doc.ContentLocation)
	if location == "" {
		return Metadata{}, fmt.Errorf("template: descriptor %s (id %q) has no templateContentLocation", source, id)
	}

	tier := TierFree
	if trimmed := strings.TrimSpace(doc.RequiredTier); trimmed != "" {
		parsed, err := ParseTier(trimmed)
		if err != nil {
			return Metadata{}, fmt.Errorf("template: descriptor %s (id %q): %w", source, id, err)
		}
		tier = parsed
	}

	locales := make([]string, 0, len(doc.SupportedLocales))
	for _, locale := range doc.SupportedLocales {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	if len(locales) == 0 {
		locales = nil
	}

	return Metadata{
		ID:               id,
		Name:             name,
		Version:          strings.TrimSpace(doc.Version),
		RequiredTier:     tier,
		ContentLocation:  location,
		Description:      sanitizeDescription(doc.Description),
		SupportedLocales: locales,
		PreviewURL:       strings.TrimSpace(doc.PreviewURL),
		Params:           doc.Params,
	}, nil
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// sanitizeDescription strips markup from descriptor copy so catalog
// listings can embed it without further treatment. Descriptors ship on
// disk next to user-editable template bodies, so they are not trusted.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	descriptionPolicyOnce.Do(func() {
		descriptionPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(descriptionPolicy.Sanitize(trimmed))
}
