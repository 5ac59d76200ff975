package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/cache"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		OptionsHash: opts.ContentHash(),
		Artifacts:   make(map[string][]byte),
		CacheInfo:   CacheInfo{Hits: make(map[string]bool)},
	}

	generateStart := time.Now()
	b, err := Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Border = b
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.CurveCount = len(b.Path)

	r.Logger.Debug("generated border",
		"curves", result.Stats.CurveCount,
		"space", fmt.Sprintf("%.0fx%.0f", b.Space.Width, b.Space.Height),
		"duration", result.Stats.GenerateTime)

	renderStart := time.Now()
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.OptionsHash, format)

		// Deterministic output: a cached artifact never goes stale,
		// so entries are stored without expiry.
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.Artifacts[format] = data
			result.CacheInfo.Hits[format] = true
			r.Logger.Debug("artifact cache hit", "format", format)
			continue
		}

		data, err := Render(b, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			r.Logger.Warn("failed to cache artifact", "format", format, "err", err)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered border",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}
