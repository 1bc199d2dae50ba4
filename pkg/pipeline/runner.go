package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pktviz/pktviz/pkg/cache"
	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/observability"
	"github.com/pktviz/pktviz/pkg/render/grid"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner with different options.
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

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	d, diagramHash, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.DiagramHash = diagramHash
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.FieldCount = len(d.Fields)
	result.Stats.TotalBits = d.TotalBits()
	result.CacheInfo.ParseHit = parseHit

	r.Logger.Info("parsed diagram",
		"fields", len(d.Fields),
		"bits", d.TotalBits(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout (grid only; nodelink geometry is computed by Graphviz)
	if opts.IsGrid() {
		layoutStart := time.Now()
		l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, d, diagramHash, opts)
		if err != nil {
			return nil, err
		}
		result.Layout = l
		result.Stats.LayoutTime = time.Since(layoutStart)
		result.Stats.WordCount = rowCount(l)
		result.CacheInfo.LayoutHit = layoutHit

		r.Logger.Info("computed layout",
			"rows", result.Stats.WordCount,
			"cells", len(l.Cells),
			"duration", result.Stats.LayoutTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Layout, d, diagramHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo parses with caching and returns the source hash and
// cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*diagram.Diagram, string, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	src, err := readSource(ctx, opts)
	if err != nil {
		return nil, "", false, err
	}
	sourceHash := cache.Hash([]byte(src))
	cacheKey := r.Keyer.DiagramKey(sourceHash)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if d, err := UnmarshalDiagram(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "diagram")
				return d, sourceHash, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "diagram")

	observability.Pipeline().OnParseStart(ctx)
	start := time.Now()
	d, err := diagram.ParseString(src)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, 0, time.Since(start), err)
		return nil, "", false, err
	}
	observability.Pipeline().OnParseComplete(ctx, len(d.Fields), time.Since(start), nil)

	if data, err := MarshalDiagram(d); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDiagram)
		observability.Cache().OnCacheSet(ctx, "diagram", len(data))
	}

	return d, sourceHash, false, nil // Cache miss
}

// Parse is a convenience wrapper that discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	d, _, _, err := r.ParseWithCacheInfo(ctx, opts)
	return d, err
}

// GenerateLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, d *diagram.Diagram, diagramHash string, opts Options) (grid.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return grid.Layout{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(diagramHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	observability.Pipeline().OnLayoutStart(ctx, len(d.Fields))
	start := time.Now()
	l, err := GenerateLayout(d, opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, 0, time.Since(start), err)
		return grid.Layout{}, false, err
	}
	observability.Pipeline().OnLayoutComplete(ctx, rowCount(l), time.Since(start), nil)

	if data, err := MarshalLayout(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, d *diagram.Diagram, diagramHash string, opts Options) (grid.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, d, diagramHash, opts)
	return l, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. Grid artifacts are keyed by the layout hash; nodelink artifacts,
// which never pass through the layout stage, are keyed by the diagram hash.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l grid.Layout, d *diagram.Diagram, diagramHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	keyHash := diagramHash
	if opts.IsGrid() {
		layoutData, err := MarshalLayout(l)
		if err != nil {
			return nil, false, err
		}
		keyHash = cache.Hash(layoutData)
	}

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(keyHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Pipeline().OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()
	rendered, err := Render(l, d, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), nil)

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(keyHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l grid.Layout, d *diagram.Diagram, diagramHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, d, diagramHash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// rowCount returns the number of rows in a layout.
func rowCount(l grid.Layout) int {
	rows := 0
	for _, c := range l.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
	}
	return rows
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
