package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/cache"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/observability"
)

// Runner renders documents with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
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

// Render produces every requested format of d. The returned flag reports
// whether all artifacts came from the cache.
func (r *Runner) Render(ctx context.Context, d document.Document, opts Options) (map[string][]byte, bool, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}

	docHash, err := document.Hash(d)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Renderer, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	for _, format := range opts.Formats {
		data, hit, err := r.renderOne(ctx, d, docHash, opts, format)
		if err != nil {
			observability.Render().OnRenderComplete(ctx, opts.Renderer, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data
		allHit = allHit && hit
	}

	observability.Render().OnRenderComplete(ctx, opts.Renderer, opts.Formats, time.Since(start), nil)
	r.Logger.Debug("rendered artifacts",
		"renderer", opts.Renderer,
		"formats", opts.Formats,
		"cached", allHit,
		"duration", time.Since(start).Round(time.Millisecond))
	return artifacts, allHit, nil
}

func (r *Runner) renderOne(ctx context.Context, d document.Document, docHash string, opts Options, format string) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := RenderFormat(ctx, d, opts, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}
