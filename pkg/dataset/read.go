package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// ReadOptions selects which columns of a tabular input become the category
// and value columns. Zero value means "first column categorical, second
// numeric", which covers the common two-column export.
type ReadOptions struct {
	// Category is the header name of the categorical column.
	// Empty selects the first column.
	Category string `json:"category,omitempty"`

	// Value is the header name of the numeric column.
	// Empty selects the second column.
	Value string `json:"value,omitempty"`

	// Sheet is the worksheet name for XLSX input.
	// Empty selects the first sheet. Ignored for other formats.
	Sheet string `json:"sheet,omitempty"`
}

// ReadFile reads a query result from path, dispatching on the file extension.
// Supported extensions: .csv, .json, .xlsx.
//
// Returns ErrCodeFileNotFound if the file does not exist and
// ErrCodeUnsupported for unrecognized extensions.
func ReadFile(path string, opts ReadOptions) (QueryResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return QueryResult{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, opts)
	case ".json":
		return ReadJSON(f)
	case ".xlsx":
		return ReadXLSX(f, opts)
	default:
		return QueryResult{}, errors.New(errors.ErrCodeUnsupported, "unsupported input format: %s", filepath.Ext(path))
	}
}

// columnIndex resolves a header name to its column index. An empty name
// falls back to the given default index when the header is wide enough.
// Header matching is case-insensitive.
func columnIndex(header []string, name string, fallback int) (int, error) {
	if name == "" {
		if fallback < len(header) {
			return fallback, nil
		}
		return -1, errors.New(errors.ErrCodeInvalidColumn, "input has too few columns")
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return -1, errors.New(errors.ErrCodeInvalidColumn, "column not found: %s", name)
}

// cellAt returns the trimmed field at index i, or "" when the row is too
// short. Ragged rows are normal in both CSV and XLSX input.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
