// Package cache provides caching for chart pipeline stages.
//
// The pipeline caches three artifact classes, each keyed by a content hash of
// its inputs so that unchanged stages are skipped on re-runs:
//   - points: built data point series (dataset hash + build options)
//   - geometry: projected geometry (series hash + viewport)
//   - artifacts: rendered outputs (geometry hash + format options)
//
// # Backends
//
// Three backends implement the Cache interface:
//   - FileCache: file-based storage for CLI usage (XDG cache directory)
//   - RedisCache: Redis-backed storage for server deployments
//   - NullCache: no-op cache for tests or --no-cache runs
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.PointsKey(datasetHash, cache.PointsKeyOpts{HighContrast: true})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    // decode cached points
//	}
package cache

import (
	"context"
	"errors"
	"time"
)

// TTLs per artifact class. Points and geometry are cheap to recompute but
// expensive to re-read from slow sources; rendered artifacts are the most
// expensive stage and keep the longest TTL.
const (
	// TTLPoints is the lifetime of cached data point series.
	TTLPoints = 12 * time.Hour

	// TTLGeometry is the lifetime of cached projected geometry.
	TTLGeometry = 12 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 24 * time.Hour
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
// Cache.Get itself reports misses through its hit return value.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the interface for cache storage backends.
type Cache interface {
	// Get retrieves a value by key.
	// Returns (nil, false, nil) on a miss; errors are reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// =============================================================================
// Keyer - Cache Key Construction
// =============================================================================

// PointsKeyOpts are the build options that affect cached data points.
type PointsKeyOpts struct {
	HighContrast bool   `json:"high_contrast"`
	Theme        string `json:"theme,omitempty"` // theme fingerprint (path or hash)
}

// GeometryKeyOpts are the projection options that affect cached geometry.
type GeometryKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArtifactKeyOpts are the render options that affect cached artifacts.
type ArtifactKeyOpts struct {
	Format       string `json:"format"`
	HighContrast bool   `json:"high_contrast"`
}

// Keyer builds cache keys for the pipeline stages.
// Implementations must produce stable keys: identical inputs yield identical
// keys across processes, so caches can be shared.
type Keyer interface {
	// PointsKey builds a key for a built data point series.
	PointsKey(datasetHash string, opts PointsKeyOpts) string

	// GeometryKey builds a key for projected geometry.
	GeometryKey(seriesHash string, opts GeometryKeyOpts) string

	// ArtifactKey builds a key for a rendered artifact.
	ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds keys by hashing the JSON encoding of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PointsKey builds a key for a built data point series.
func (k *DefaultKeyer) PointsKey(datasetHash string, opts PointsKeyOpts) string {
	return hashKey("points", datasetHash, opts)
}

// GeometryKey builds a key for projected geometry.
func (k *DefaultKeyer) GeometryKey(seriesHash string, opts GeometryKeyOpts) string {
	return hashKey("geom", seriesHash, opts)
}

// ArtifactKey builds a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", geometryHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
