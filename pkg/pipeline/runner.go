package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/coursegraph/pkg/cache"
	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/graph"
	"github.com/matzehuels/coursegraph/pkg/observability"
)

// Runner executes the catalog pipeline for the CLI and the HTTP server.
// It keeps no per-run state, so one Runner serves concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a Runner. A nil cache disables caching, a nil keyer
// uses cache.NewDefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	loadStart := time.Now()
	c, err := r.Load(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	result.Catalog = c
	result.Stats.LoadTime = time.Since(loadStart)

	layoutStart := time.Now()
	l, err := r.Layout(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Dangling = catalog.DanglingReferences(c)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CourseCount = len(l.Nodes)
	result.Stats.EdgeCount = len(l.Edges)
	result.Stats.LevelCount = LevelCount(l)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)
	if hash, err := LayoutHash(l); err == nil {
		result.LayoutHash = hash
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads a catalog file.
func (r *Runner) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	observability.Pipeline().OnLoadStart(ctx, path)
	start := time.Now()

	c, err := catalog.ReadFile(path)
	observability.Pipeline().OnLoadComplete(ctx, path, courseCount(c), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded catalog", "path", path, "courses", len(c.Courses))
	return c, nil
}

// Decode reads a catalog from r, for request bodies and stdin.
func (r *Runner) Decode(ctx context.Context, src io.Reader, format catalog.Format) (*catalog.Catalog, error) {
	const source = "stream"
	observability.Pipeline().OnLoadStart(ctx, source)
	start := time.Now()

	c, err := catalog.Read(src, format)
	observability.Pipeline().OnLoadComplete(ctx, source, courseCount(c), time.Since(start), err)
	return c, err
}

// Layout validates c (unless opts.SkipValidation) and computes its layout.
// Dangling prerequisite references are logged as warnings.
func (r *Runner) Layout(ctx context.Context, c *catalog.Catalog, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, err
	}

	if !opts.SkipValidation {
		if err := catalog.Validate(c); err != nil {
			return graph.Layout{}, err
		}
	}
	for _, ref := range catalog.DanglingReferences(c) {
		r.Logger.Warn("unknown prerequisite", "course", ref.Course, "missing", ref.Missing)
	}

	observability.Pipeline().OnLayoutStart(ctx, opts.Direction, courseCount(c))
	start := time.Now()

	l, g, err := ComputeLayout(c, opts)
	duration := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Direction, LevelCount(l), duration, err)
	if err != nil {
		return graph.Layout{}, err
	}

	r.Logger.Info("computed layout",
		"courses", g.NodeCount(),
		"edges", g.EdgeCount(),
		"levels", LevelCount(l),
		"direction", opts.Direction,
		"duration", duration)
	return l, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutHash, err := LayoutHash(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}

	hooks := observability.Cache()
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, "artifact")
				break
			}
			hooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(ctx, l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close closes the cache.
func (r *Runner) Close() error { return r.Cache.Close() }

// LayoutHash returns the content hash of the serialized layout.
func LayoutHash(l graph.Layout) (string, error) {
	data, err := graph.MarshalLayout(l)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func courseCount(c *catalog.Catalog) int {
	if c == nil {
		return 0
	}
	return len(c.Courses)
}
