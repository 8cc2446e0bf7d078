package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app. Every field has
// an environment binding; CLI flags override parsed values.
type Config struct {
	// Rscript is the R interpreter binary, resolved on PATH when relative.
	Rscript string `env:"COSCHOOL_RSCRIPT" envDefault:"Rscript"`
	// Package is the R data package driven by the bridge.
	Package string `env:"COSCHOOL_PACKAGE" envDefault:"coschooldata"`
	// CacheDir is where the payload cache lives; empty means the user
	// cache directory.
	CacheDir string `env:"COSCHOOL_CACHE_DIR"`
	// CacheTTL bounds payload freshness; non-positive disables expiry.
	CacheTTL time.Duration `env:"COSCHOOL_CACHE_TTL" envDefault:"24h"`
	// NoCache disables the payload cache entirely.
	NoCache bool `env:"COSCHOOL_NO_CACHE"`
	// Refresh bypasses cache lookups while still storing fresh payloads.
	// Flag-only; no environment binding.
	Refresh bool
	// Timeout bounds a single R call.
	Timeout time.Duration `env:"COSCHOOL_TIMEOUT" envDefault:"5m"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
