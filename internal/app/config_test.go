package app_test

import (
	"testing"
	"time"

	"coschooldata/internal/app"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Rscript != "Rscript" {
		t.Fatalf("Rscript default %q", cfg.Rscript)
	}
	if cfg.Package != "coschooldata" {
		t.Fatalf("Package default %q", cfg.Package)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Fatalf("CacheTTL default %v", cfg.CacheTTL)
	}
	if cfg.Timeout != 5*time.Minute {
		t.Fatalf("Timeout default %v", cfg.Timeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("COSCHOOL_RSCRIPT", "/opt/R/bin/Rscript")
	t.Setenv("COSCHOOL_CACHE_DIR", "/tmp/coschool-cache")
	t.Setenv("COSCHOOL_CACHE_TTL", "1h")
	t.Setenv("COSCHOOL_NO_CACHE", "true")
	t.Setenv("COSCHOOL_TIMEOUT", "30s")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Rscript != "/opt/R/bin/Rscript" || cfg.CacheDir != "/tmp/coschool-cache" {
		t.Fatalf("paths not applied: %+v", cfg)
	}
	if cfg.CacheTTL != time.Hour || cfg.Timeout != 30*time.Second {
		t.Fatalf("durations not applied: %+v", cfg)
	}
	if !cfg.NoCache {
		t.Fatal("NoCache not applied")
	}
}

func TestFromEnv_BadDuration(t *testing.T) {
	t.Setenv("COSCHOOL_TIMEOUT", "not-a-duration")
	if _, err := app.FromEnv(); err == nil {
		t.Fatal("expected error for bad duration")
	}
}

func TestNewWire_NoCache(t *testing.T) {
	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	cfg.NoCache = true

	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	if w.Cache != nil {
		t.Fatal("cache should be disabled")
	}
	if w.Enrollment == nil || w.Assessment == nil || w.Runtime == nil {
		t.Fatal("incomplete dependency graph")
	}
}

func TestNewWire_WithCacheDir(t *testing.T) {
	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	cfg.CacheDir = t.TempDir()

	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	if w.Cache == nil {
		t.Fatal("cache should be enabled")
	}
}
