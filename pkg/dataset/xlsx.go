package dataset

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// ReadXLSX decodes a worksheet from an Excel workbook into a QueryResult.
//
// opts.Sheet names the worksheet (default: the workbook's first sheet). The
// first row is the header; column selection and cell parsing follow the same
// policy as [ReadCSV]: opts picks columns by header name, non-numeric value
// cells become nil-valued cells, rows where both selected fields are empty
// are skipped.
//
// Returns ErrCodeInvalidInput for unreadable workbooks and
// ErrCodeInvalidColumn when the named sheet or column does not exist.
func ReadXLSX(r io.Reader, opts ReadOptions) (QueryResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return QueryResult{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidColumn, err, "read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return QueryResult{}, nil
	}

	header := rows[0]
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
	for _, row := range rows[1:] {
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
