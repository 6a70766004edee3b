// Package dataset defines the query-result model that feeds chart building,
// plus readers for the common tabular input formats.
//
// # Overview
//
// A chart is built from a [QueryResult]: one categorical column and one
// numeric column, carried as parallel cell sequences. The model is
// permissive: columns may have unequal lengths and cells may hold no value
// at all. Downstream stages (the point builder) decide how to pad and
// interpret; this package only transports.
//
// # Readers
//
// Three file formats are supported:
//
//   - CSV via [ReadCSV] (header row names columns)
//   - XLSX via [ReadXLSX] (first sheet by default)
//   - JSON via [ReadJSON] (the canonical serialization, round-trip safe)
//
// [ReadFile] dispatches on the file extension. For database-backed input see
// the mongodb subpackage.
//
// # Empty Results
//
// A result with no labels, no cells, or no category source is "empty":
// chartable code must treat it as "render nothing", never as an error.
// Use [QueryResult.Empty] to check. Only genuine I/O or syntax failures
// surface as errors from the readers.
package dataset

import (
	"encoding/json"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// =============================================================================
// QueryResult - Tabular Input Model
// =============================================================================

// QueryResult is a single categorical column paired with a numeric column.
// It is the canonical serialization format for chart input: used for file
// import/export, API requests, storage, and caching.
type QueryResult struct {
	Category CategoryColumn `json:"category" bson:"category"`
	Value    ValueColumn    `json:"value" bson:"value"`
}

// CategoryColumn holds the ordered category labels and the identifier of the
// field or column they came from. Source doubles as the namespace for
// selection identities, so an absent Source makes the result unusable.
type CategoryColumn struct {
	Source string   `json:"source" bson:"source"`
	Labels []string `json:"labels" bson:"labels"`
}

// ValueColumn holds the ordered numeric cells and a column-level numeric
// format (e.g. "0.00"). Per-cell formats override the column format.
type ValueColumn struct {
	Format string      `json:"format,omitempty" bson:"format,omitempty"`
	Cells  []ValueCell `json:"cells" bson:"cells"`
}

// ValueCell is one numeric observation. Value is a pointer so that an absent
// cell (empty CSV field, non-numeric text, short column) survives transport
// as nil rather than collapsing to 0.
type ValueCell struct {
	Value  *float64 `json:"value" bson:"value"`
	Format string   `json:"format,omitempty" bson:"format,omitempty"`
	Color  string   `json:"color,omitempty" bson:"color,omitempty"`
}

// Empty reports whether the result carries nothing chartable: no labels, no
// cells, or no category source. Builders return an empty point sequence for
// empty results instead of an error.
func (q QueryResult) Empty() bool {
	return len(q.Category.Labels) == 0 || len(q.Value.Cells) == 0 || q.Category.Source == ""
}

// Len returns the logical row count: the longer of the two columns.
// Builders right-pad the shorter column to this length.
func (q QueryResult) Len() int {
	if n := len(q.Category.Labels); n > len(q.Value.Cells) {
		return n
	}
	return len(q.Value.Cells)
}

// CellFormat returns the effective numeric format for the cell at i: the
// per-cell format if set, else the column format. Out-of-range indices
// fall back to the column format.
func (q QueryResult) CellFormat(i int) string {
	if i >= 0 && i < len(q.Value.Cells) && q.Value.Cells[i].Format != "" {
		return q.Value.Cells[i].Format
	}
	return q.Value.Format
}

// =============================================================================
// Serialization Helpers
// =============================================================================

// Marshal serializes a QueryResult to indented JSON bytes.
func Marshal(q QueryResult) ([]byte, error) {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal query result")
	}
	return data, nil
}

// Unmarshal deserializes JSON bytes to a QueryResult.
func Unmarshal(data []byte) (QueryResult, error) {
	var q QueryResult
	if err := json.Unmarshal(data, &q); err != nil {
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal query result")
	}
	return q, nil
}

// Float returns a pointer to v. Convenience for building cells in code
// and tests.
func Float(v float64) *float64 { return &v }
