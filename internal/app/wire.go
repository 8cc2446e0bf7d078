package app

import (
	"fmt"
	"os"
	"path/filepath"

	"coschooldata/internal/domain"
	"coschooldata/internal/rlang"
	"coschooldata/internal/services/assessment"
	"coschooldata/internal/services/enrollment"
	"coschooldata/internal/store"
)

// Wire bundles the runtime, services, and cache for the CLI.
type Wire struct {
	Runtime    domain.Runtime
	Enrollment domain.EnrollmentService
	Assessment domain.AssessmentService
	Cache      *store.Cache // nil when caching is disabled
	RLang      *rlang.Runtime
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	rt := rlang.New(cfg.Rscript, cfg.Package)

	var runtime domain.Runtime = rt
	var cache *store.Cache
	if !cfg.NoCache {
		dir := cfg.CacheDir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = filepath.Join(base, "coschool")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
		var err error
		cache, err = store.Open(filepath.Join(dir, "frames.db"), cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		runtime = store.NewCachedRuntime(rt, cache, cfg.Refresh)
	}

	return &Wire{
		Runtime:    runtime,
		Enrollment: enrollment.New(runtime),
		Assessment: assessment.New(runtime),
		Cache:      cache,
		RLang:      rt,
	}, nil
}

// Close releases resources held by the graph.
func (w *Wire) Close() error {
	if w == nil || w.Cache == nil {
		return nil
	}
	return w.Cache.Close()
}
