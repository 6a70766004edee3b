package dataset

import (
	"encoding/json"
	"io"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// ReadJSON decodes a JSON query result from r.
//
// The input must be a JSON object with "category" and "value" objects:
//
//	{
//	  "category": {"source": "defect", "labels": ["A", "B", "C"]},
//	  "value": {"cells": [{"value": 10}, {"value": 30}, {"value": 60}]}
//	}
//
// Optional fields:
//   - value.format: column-level numeric format string
//   - cell.format: per-cell format override
//   - cell.color: per-cell fill color override
//   - cell.value may be null for absent observations
//
// ReadJSON returns an error only if the JSON is malformed. Structural
// emptiness (missing labels, cells, or source) is not an error: the decoded
// result reports Empty() and renders nothing. ReadJSON does not close r.
func ReadJSON(r io.Reader) (QueryResult, error) {
	var q QueryResult
	if err := json.NewDecoder(r).Decode(&q); err != nil {
		return QueryResult{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode query result")
	}
	return q, nil
}

// WriteJSON encodes a QueryResult as indented JSON and writes it to w.
// The output round-trips through [ReadJSON] unchanged.
func WriteJSON(q QueryResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode query result")
	}
	return nil
}
