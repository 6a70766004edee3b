package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// ReadCSV decodes a CSV table from r into a QueryResult.
//
// The first record is the header row; opts selects the category and value
// columns by header name (defaults: first column categorical, second
// numeric). The category column's header becomes the result's Source.
//
// Rows shorter than the header are allowed. Value fields that do not parse
// as numbers become nil-valued cells, not errors; absent data renders as
// absent, it does not abort the chart. Rows where both selected fields are
// empty are skipped.
//
// ReadCSV returns an error only for CSV syntax failures or when a named
// column is not present in the header. An input with just a header row (or
// nothing at all) decodes to an empty QueryResult.
func ReadCSV(r io.Reader, opts ReadOptions) (QueryResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return QueryResult{}, nil
	}
	if err != nil {
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv header")
	}

	catIdx, err := columnIndex(header, opts.Category, 0)
	if err != nil {
		return QueryResult{}, err
	}
	valIdx, err := columnIndex(header, opts.Value, 1)
	if err != nil {
		return QueryResult{}, err
	}

	q := QueryResult{
		Category: CategoryColumn{Source: cellAt(header, catIdx)},
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv row")
		}

		label := cellAt(row, catIdx)
		raw := cellAt(row, valIdx)
		if label == "" && raw == "" {
			continue
		}

		q.Category.Labels = append(q.Category.Labels, label)
		q.Value.Cells = append(q.Value.Cells, parseCell(raw))
	}

	return q, nil
}

// parseCell converts a raw field into a value cell. Empty or non-numeric
// input yields a nil value.
func parseCell(raw string) ValueCell {
	if raw == "" {
		return ValueCell{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ValueCell{}
	}
	return ValueCell{Value: &v}
}
