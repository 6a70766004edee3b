package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when one cache backend is shared by several charts or
// tenants and their keys must not collide.
//
// Example usage:
//
//	// Per-dashboard keys
//	dashKeyer := NewScopedKeyer(NewDefaultKeyer(), "dash:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PointsKey generates a prefixed key for data point series caching.
func (k *ScopedKeyer) PointsKey(datasetHash string, opts PointsKeyOpts) string {
	return k.prefix + k.inner.PointsKey(datasetHash, opts)
}

// GeometryKey generates a prefixed key for geometry caching.
func (k *ScopedKeyer) GeometryKey(seriesHash string, opts GeometryKeyOpts) string {
	return k.prefix + k.inner.GeometryKey(seriesHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(geometryHash, opts)
}
