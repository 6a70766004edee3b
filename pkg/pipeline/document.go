package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
)

// DocumentVersion identifies the chart document schema.
const DocumentVersion = 1

// Document is the JSON artifact: the built series together with its
// projected geometry. It carries enough to re-render the chart or feed an
// external viewer without re-reading the dataset.
type Document struct {
	Version  int             `json:"version"`
	Series   pareto.Series   `json:"series"`
	Geometry pareto.Geometry `json:"geometry"`
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d Document) ([]byte, error) {
	if d.Version == 0 {
		d.Version = DocumentVersion
	}
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document.
// Validates that the series and geometry agree on the point count.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}

	if d.Version == 0 {
		d.Version = DocumentVersion
	}
	if d.Version > DocumentVersion {
		return Document{}, fmt.Errorf("document version %d not supported", d.Version)
	}

	if !d.Series.Empty() && len(d.Geometry.Bars) != len(d.Series.Points) {
		return Document{}, fmt.Errorf("document has %d bars for %d points",
			len(d.Geometry.Bars), len(d.Series.Points))
	}

	return d, nil
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadDocumentFile reads and validates a chart document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
