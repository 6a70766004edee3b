// Package pipeline provides the core chart pipeline for paretochart.
//
// This package implements the complete load → build → project → render
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read the dataset from a file (CSV, JSON, XLSX) or MongoDB
//  2. Build: Assemble data points and accumulate the cumulative series
//  3. Project: Map the series to pixel geometry for a viewport
//  4. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "defects.csv",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	q, err := runner.Load(ctx, opts)
//
//	// Build with an existing dataset
//	series, err := runner.Build(ctx, q, opts)
//
//	// Project with an existing series
//	geom, err := runner.Project(ctx, series, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KuroiKoyani/pareto-chart/pkg/cache"
	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 400.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Path     string `json:"path,omitempty"`
	Category string `json:"category,omitempty"` // category column name
	Value    string `json:"value,omitempty"`    // value column name
	Sheet    string `json:"sheet,omitempty"`    // XLSX sheet name

	MongoURI        string         `json:"mongo_uri,omitempty"`
	MongoDatabase   string         `json:"mongo_database,omitempty"`
	MongoCollection string         `json:"mongo_collection,omitempty"`
	MongoFilter     map[string]any `json:"mongo_filter,omitempty"`
	MongoLimit      int64          `json:"mongo_limit,omitempty"`

	Refresh bool `json:"refresh,omitempty"`

	// Projection options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	ThemePath    string   `json:"theme,omitempty"`
	HighContrast bool     `json:"high_contrast,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	// theme memoizes ResolveTheme so palette assignments stay stable
	// across stages of one run.
	theme *theme.Theme `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DatasetHash is the content hash of the loaded dataset.
	DatasetHash string

	// Series is the built chart model.
	Series pareto.Series

	// Geometry is the projected pixel geometry.
	Geometry pareto.Geometry

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount  int
	Total       float64
	LoadTime    time.Duration
	BuildTime   time.Duration
	ProjectTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit   bool // Whether the built series came from cache
	ProjectHit bool // Whether the geometry came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetProjectDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Path == "" && o.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "path or mongo_uri is required")
	}
	if o.MongoURI != "" {
		if o.MongoDatabase == "" || o.MongoCollection == "" {
			return errors.New(errors.ErrCodeInvalidInput,
				"mongo_database and mongo_collection are required with mongo_uri")
		}
		if o.Category == "" || o.Value == "" {
			return errors.New(errors.ErrCodeInvalidInput,
				"category and value fields are required with mongo_uri")
		}
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetProjectDefaults sets default values for geometry projection.
func (o *Options) SetProjectDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForProject validates and sets defaults for geometry projection.
func (o *Options) ValidateForProject() error {
	o.SetProjectDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidViewport,
			"viewport must not be negative: %gx%g", o.Width, o.Height)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetProjectDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForProject(); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Viewport returns the projection viewport.
func (o *Options) Viewport() pareto.Viewport {
	return pareto.Viewport{Width: o.Width, Height: o.Height}
}

// IsMongo reports whether the dataset comes from MongoDB.
func (o *Options) IsMongo() bool {
	return o.MongoURI != ""
}

// Source returns a human-readable name for the dataset source.
func (o *Options) Source() string {
	if o.IsMongo() {
		return o.MongoDatabase + "." + o.MongoCollection
	}
	return o.Path
}

// ResolveTheme loads the theme once and memoizes it, so color assignments
// are shared by the build and render stages of a run. With no theme path
// the defaults are used; HighContrast overlays either way.
func (o *Options) ResolveTheme() (*theme.Theme, error) {
	if o.theme != nil {
		return o.theme, nil
	}

	th := theme.Default()
	if o.ThemePath != "" {
		loaded, err := theme.Load(o.ThemePath)
		if err != nil {
			return nil, err
		}
		th = loaded
	}
	if o.HighContrast {
		th.HighContrast = true
	}
	o.theme = th
	return th, nil
}

// PointsKeyOpts returns cache key options for the build stage.
func (o *Options) PointsKeyOpts() cache.PointsKeyOpts {
	return cache.PointsKeyOpts{
		HighContrast: o.HighContrast,
		Theme:        o.ThemePath,
	}
}

// GeometryKeyOpts returns cache key options for the project stage.
func (o *Options) GeometryKeyOpts() cache.GeometryKeyOpts {
	return cache.GeometryKeyOpts{
		Width:  o.Width,
		Height: o.Height,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		HighContrast: o.HighContrast,
	}
}
