// Package pkg provides the core libraries for Pareto chart rendering.
//
// # Overview
//
// A Pareto chart ranks categories by magnitude and overlays the running
// cumulative percentage of the total, so the few categories that dominate
// an outcome stand out from the many that do not. The pkg directory is
// organized into four main areas:
//
//  1. [dataset] - Input decoding (CSV, JSON, XLSX, MongoDB)
//  2. [pareto] - Chart model (points, series, projection)
//  3. [render] - Output (declarative state, SVG, PNG, tooltips)
//  4. [pipeline] - Orchestration (load → build → project → render)
//
// # Architecture
//
// The typical data flow:
//
//	CSV / JSON / XLSX / MongoDB
//	         ↓
//	    [dataset] package (decode into a QueryResult)
//	         ↓
//	    [pareto] package (build points, compute series, project)
//	         ↓
//	    [render] package (sync state, encode)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
// Load a dataset and render it to SVG:
//
//	import (
//	    "github.com/KuroiKoyani/pareto-chart/pkg/dataset"
//	    "github.com/KuroiKoyani/pareto-chart/pkg/pareto"
//	    "github.com/KuroiKoyani/pareto-chart/pkg/render"
//	    "github.com/KuroiKoyani/pareto-chart/pkg/theme"
//	)
//
//	// 1. Load the dataset
//	q, _ := dataset.ReadFile("defects.csv", dataset.ReadOptions{})
//
//	// 2. Build the ordered series
//	th := theme.Default()
//	points := pareto.BuildPoints(q, pareto.BuildOptions{Theme: th})
//	s := pareto.ComputeSeries(points)
//
//	// 3. Project into a viewport
//	geom := pareto.Project(s, pareto.Viewport{Width: 800, Height: 400}, pareto.DefaultMargins())
//
//	// 4. Sync render state and encode
//	st := render.NewState()
//	st.Sync(s, geom, th)
//	svg := render.EncodeSVG(st, th)
//
// # Main Packages
//
// ## Chart Model
//
// [dataset] - Tabular input carried as parallel category and value columns.
// Readers for CSV, JSON, and XLSX files plus a MongoDB source in
// [dataset/mongodb]. Absent cells survive decoding as nil values.
//
// [pareto] - The chart model. BuildPoints turns a query result into ordered
// data points with stable palette colors and selection identities,
// ComputeSeries accumulates the cumulative percentage line, and Project maps
// the series into pixel space through band and linear scales.
//
// [render] - Declarative render state. Sync diffs a new series against the
// previous state, SyncHighlight applies selection dimming, EncodeSVG emits
// the dual-axis SVG document, and TooltipFor builds hover payloads.
//
// [render/raster] - PNG export. Bars go through a go-chart bar chart; the
// cumulative line and markers are drawn by an overlay on the chart canvas.
//
// ## Interaction
//
// [selection] - Hierarchical selection identities (source, category, index)
// minted as deterministic UUIDs, immutable selection sets, and a manager
// that confirms mutations before they apply.
//
// [capability] - Closed lookup from a selected visual part to the editable
// styles and quick actions an external editing surface may offer for it.
//
// [chart] - Controller for interactive hosts. Owns the theme, issuer,
// selection manager, and render state; one Update call per event runs the
// full model pipeline and returns the resulting diff.
//
// ## Infrastructure
//
// [pipeline] - The complete render pipeline (load → build → project →
// render) shared by CLI and API so every entry point behaves the same.
// Stage results are cached by dataset hash.
//
// [cache] - Pipeline stage caches: a file cache for the CLI, Redis for
// shared server deployments, and a null cache for uncached runs.
//
// [httpapi] - JSON API over the pipeline (render, capabilities, health,
// version) built on chi.
//
// [theme] - Chart themes loaded from TOML with stable category-to-color
// palette assignment and a high-contrast mode.
//
// [errors] - Coded errors shared across surfaces; codes map to CLI exit
// behavior and HTTP status.
//
// [observability] - Optional hooks for pipeline, cache, and HTTP events.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pareto/...   # Specific package
//	go test -run Example       # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/dataset
// [dataset/mongodb]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/dataset/mongodb
// [pareto]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/pareto
// [render]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/render
// [render/raster]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/render/raster
// [selection]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/selection
// [capability]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/capability
// [chart]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/chart
// [pipeline]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/cache
// [httpapi]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/httpapi
// [theme]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/theme
// [errors]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/KuroiKoyani/pareto-chart/pkg/buildinfo
package pkg
