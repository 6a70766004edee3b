// Package render maintains the chart's persistent visual elements and
// reconciles them against freshly computed series and geometry.
//
// # Overview
//
// A [State] is an arena of render targets owned by one controller. Bars are
// keyed by their data point's stable index; each [State.Sync] diffs the
// incoming point set against the arena's keys and returns an explicit
// [Diff]: which bars were created, updated in place, and removed. Updating
// in place preserves element identity (the *Bar pointer survives), so
// transient interactive state like an in-progress hover is never lost to a
// data refresh.
//
// The line, markers, and axes carry no interactive state and are rebuilt
// wholesale on every sync.
//
// # Idempotence
//
// Sync is idempotent: syncing the same series and geometry twice yields an
// identical element set with identical attributes and an empty second diff.
// Hosts may re-render freely on resize or focus events without accumulating
// duplicates.
//
// # Highlighting
//
// Selection highlighting is opacity-only and runs through
// [State.SyncHighlight], both immediately after every sync and
// independently when the selection changes without a re-render. Both paths
// converge on the same opacities regardless of ordering.
//
// # Output
//
// [EncodeSVG] serializes the current element set deterministically. The
// raster subpackage rasterizes the same model to PNG.
package render
