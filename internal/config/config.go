// Package config loads the subsystem's settings from the environment so
// entrypoints stay lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures the environment-derived settings of the rendering
// subsystem.
type Config struct {
	// StoreOrder lists store types by priority, highest first.
	StoreOrder []string `env:"RESUMEGEN_STORE_ORDER" envSeparator:"," envDefault:"bundled"`
	// TemplatesDir is the root of the filesystem store. Empty disables it.
	TemplatesDir string `env:"RESUMEGEN_TEMPLATES_DIR"`
	// CompilerBinary is the pdflatex-compatible executable to invoke.
	CompilerBinary string `env:"RESUMEGEN_COMPILER_BIN" envDefault:"pdflatex"`
	// CompileTimeout is the wall-clock budget per compiler invocation.
	CompileTimeout time.Duration `env:"RESUMEGEN_COMPILE_TIMEOUT" envDefault:"30s"`
	// DefaultLocale is used when a request does not name one.
	DefaultLocale string `env:"RESUMEGEN_DEFAULT_LOCALE" envDefault:"en"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
