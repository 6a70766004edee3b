package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KuroiKoyani/pareto-chart/pkg/cache"
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/observability"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
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

// Execute runs the complete load → build → project → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	obs := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	obs.OnLoadStart(ctx, opts.Source())
	q, err := r.Load(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	obs.OnLoadComplete(ctx, opts.Source(), q.Len(), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// Compute dataset hash for cache keys and API responses
	if data, err := dataset.Marshal(q); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("loaded dataset",
		"source", q.Category.Source,
		"rows", q.Len(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	obs.OnBuildStart(ctx, q.Len())
	series, buildHit, err := r.BuildWithCacheInfo(ctx, q, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	obs.OnBuildComplete(ctx, len(series.Points), series.Total, result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Series = series
	result.Stats.PointCount = len(series.Points)
	result.Stats.Total = series.Total
	result.CacheInfo.BuildHit = buildHit

	r.Logger.Info("built series",
		"points", len(series.Points),
		"total", series.Total,
		"duration", result.Stats.BuildTime)

	// Stage 3: Project
	projectStart := time.Now()
	obs.OnProjectStart(ctx, len(series.Points))
	geom, projectHit, err := r.ProjectWithCacheInfo(ctx, series, opts)
	result.Stats.ProjectTime = time.Since(projectStart)
	obs.OnProjectComplete(ctx, result.Stats.ProjectTime, err)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	result.Geometry = geom
	result.CacheInfo.ProjectHit = projectHit

	r.Logger.Info("projected geometry",
		"bars", len(geom.Bars),
		"viewport", fmt.Sprintf("%gx%g", opts.Width, opts.Height),
		"duration", result.Stats.ProjectTime)

	// Stage 4: Render
	renderStart := time.Now()
	obs.OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, series, geom, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	obs.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the dataset. Loading is never cached; the dataset is the
// source of truth.
func (r *Runner) Load(ctx context.Context, opts Options) (dataset.QueryResult, error) {
	r.applyLogger(&opts)
	return Load(ctx, opts)
}

// BuildWithCacheInfo builds the series with caching and returns cache hit
// info.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, q dataset.QueryResult, opts Options) (pareto.Series, bool, error) {
	r.applyLogger(&opts)

	// Compute cache key from dataset content
	data, err := dataset.Marshal(q)
	if err != nil {
		return pareto.Series{}, false, fmt.Errorf("serialize dataset for cache key: %w", err)
	}
	cacheKey := r.Keyer.PointsKey(cache.Hash(data), opts.PointsKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached pareto.Series
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "points")
				return cached, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "points")

	// Build
	series, err := BuildSeries(q, opts)
	if err != nil {
		return pareto.Series{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(series); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPoints)
		observability.Cache().OnCacheSet(ctx, "points", len(data))
	}

	return series, false, nil // Cache miss
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Build(ctx context.Context, q dataset.QueryResult, opts Options) (pareto.Series, error) {
	series, _, err := r.BuildWithCacheInfo(ctx, q, opts)
	return series, err
}

// ProjectWithCacheInfo projects geometry with caching and returns cache hit
// info.
func (r *Runner) ProjectWithCacheInfo(ctx context.Context, s pareto.Series, opts Options) (pareto.Geometry, bool, error) {
	if err := opts.ValidateForProject(); err != nil {
		return pareto.Geometry{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from series content
	seriesData, err := json.Marshal(s)
	if err != nil {
		return pareto.Geometry{}, false, fmt.Errorf("serialize series for cache key: %w", err)
	}
	cacheKey := r.Keyer.GeometryKey(cache.Hash(seriesData), opts.GeometryKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached pareto.Geometry
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "geometry")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "geometry")

	// Project
	geom, err := ProjectGeometry(s, opts)
	if err != nil {
		return pareto.Geometry{}, false, err
	}

	// Cache the result
	if data, err := json.Marshal(geom); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGeometry)
		observability.Cache().OnCacheSet(ctx, "geometry", len(data))
	}

	return geom, false, nil // Cache miss
}

// Project is a convenience wrapper that calls ProjectWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Project(ctx context.Context, s pareto.Series, opts Options) (pareto.Geometry, error) {
	geom, _, err := r.ProjectWithCacheInfo(ctx, s, opts)
	return geom, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s pareto.Series, geom pareto.Geometry, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from geometry data
	geomData, err := json.Marshal(geom)
	if err != nil {
		return nil, false, fmt.Errorf("serialize geometry for cache key: %w", err)
	}
	cacheKeyHash := cache.Hash(geomData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := RenderArtifacts(s, geom, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(cacheKeyHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s pareto.Series, geom pareto.Geometry, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, geom, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
