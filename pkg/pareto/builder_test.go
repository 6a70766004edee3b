package pareto

import (
	"testing"

	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

func query(labels []string, values []*float64) dataset.QueryResult {
	cells := make([]dataset.ValueCell, len(values))
	for i, v := range values {
		cells[i] = dataset.ValueCell{Value: v}
	}
	return dataset.QueryResult{
		Category: dataset.CategoryColumn{Source: "defect", Labels: labels},
		Value:    dataset.ValueColumn{Cells: cells},
	}
}

func TestBuildPointsEmptyResult(t *testing.T) {
	tests := []struct {
		name string
		q    dataset.QueryResult
	}{
		{name: "zero value", q: dataset.QueryResult{}},
		{name: "no source", q: dataset.QueryResult{
			Category: dataset.CategoryColumn{Labels: []string{"A"}},
			Value:    dataset.ValueColumn{Cells: []dataset.ValueCell{{Value: dataset.Float(1)}}},
		}},
		{name: "no labels", q: dataset.QueryResult{
			Category: dataset.CategoryColumn{Source: "defect"},
			Value:    dataset.ValueColumn{Cells: []dataset.ValueCell{{Value: dataset.Float(1)}}},
		}},
		{name: "no cells", q: dataset.QueryResult{
			Category: dataset.CategoryColumn{Source: "defect", Labels: []string{"A"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPoints(tt.q, BuildOptions{}); len(got) != 0 {
				t.Errorf("got %d points, want empty sequence", len(got))
			}
		})
	}
}

func TestBuildPointsUnequalLengths(t *testing.T) {
	// 3 categories, 2 values: 3 points, the third nil-valued
	q := query([]string{"A", "B", "C"}, []*float64{dataset.Float(10), dataset.Float(30)})

	points := BuildPoints(q, BuildOptions{})
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[2].Category != "C" {
		t.Errorf("point[2].Category = %q, want C", points[2].Category)
	}
	if points[2].Value != nil {
		t.Error("padded point should have a nil value")
	}

	// 2 categories, 3 values: 3 points, the third unlabeled
	q = query([]string{"A", "B"}, []*float64{dataset.Float(1), dataset.Float(2), dataset.Float(3)})
	points = BuildPoints(q, BuildOptions{})
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[2].Category != "" {
		t.Errorf("padded point label = %q, want empty", points[2].Category)
	}
	if points[2].Value == nil || *points[2].Value != 3 {
		t.Errorf("point[2].Value = %v, want 3", points[2].Value)
	}
}

func TestBuildPointsIndexOrder(t *testing.T) {
	q := query([]string{"A", "B", "C"}, []*float64{dataset.Float(1), dataset.Float(2), dataset.Float(3)})

	points := BuildPoints(q, BuildOptions{})
	for i, p := range points {
		if p.Index != i {
			t.Errorf("point[%d].Index = %d, want %d", i, p.Index, i)
		}
	}
}

func TestBuildPointsPaletteColors(t *testing.T) {
	th := theme.Default()
	q := query([]string{"A", "B", "A"}, []*float64{dataset.Float(1), dataset.Float(2), dataset.Float(3)})

	points := BuildPoints(q, BuildOptions{Theme: th})
	if points[0].Color == "" {
		t.Fatal("points should get palette colors")
	}
	if points[0].Color == points[1].Color {
		t.Error("different labels should get different colors")
	}
	if points[0].Color != points[2].Color {
		t.Error("same label should get the same color")
	}
	if points[0].StrokeColor != "" || points[0].StrokeWidthPx != 0 {
		t.Error("normal mode should have no stroke")
	}

	// Stability across updates with the same theme
	again := BuildPoints(q, BuildOptions{Theme: th})
	if again[0].Color != points[0].Color {
		t.Error("colors should be stable across updates")
	}
}

func TestBuildPointsColorOverride(t *testing.T) {
	q := query([]string{"A", "B"}, []*float64{dataset.Float(1), dataset.Float(2)})
	q.Value.Cells[1].Color = "#ABCDEF"

	points := BuildPoints(q, BuildOptions{})
	if points[1].Color != "#ABCDEF" {
		t.Errorf("point[1].Color = %q, want the per-cell override", points[1].Color)
	}
}

func TestBuildPointsHighContrast(t *testing.T) {
	th := theme.Default()
	th.HighContrast = true

	q := query([]string{"A", "B"}, []*float64{dataset.Float(1), dataset.Float(2)})
	q.Value.Cells[0].Color = "#ABCDEF" // override must be ignored

	points := BuildPoints(q, BuildOptions{Theme: th})
	for i, p := range points {
		if p.Color != th.Background {
			t.Errorf("point[%d].Color = %q, want background %q", i, p.Color, th.Background)
		}
		if p.StrokeColor != th.Foreground {
			t.Errorf("point[%d].StrokeColor = %q, want foreground", i, p.StrokeColor)
		}
		if p.StrokeWidthPx <= 0 {
			t.Errorf("point[%d].StrokeWidthPx = %v, want > 0", i, p.StrokeWidthPx)
		}
	}
}

func TestBuildPointsSelectionIdentities(t *testing.T) {
	q := query([]string{"A", "B"}, []*float64{dataset.Float(1), dataset.Float(2)})

	points := BuildPoints(q, BuildOptions{})
	if points[0].Selection.ID == points[1].Selection.ID {
		t.Error("points should get distinct selection identities")
	}

	// Identities are stable across rebuilds
	again := BuildPoints(q, BuildOptions{})
	if points[0].Selection.ID != again[0].Selection.ID {
		t.Error("selection identities should be stable across rebuilds")
	}
}

func TestBuildPointsValueFormat(t *testing.T) {
	q := query([]string{"A", "B"}, []*float64{dataset.Float(1), dataset.Float(2)})
	q.Value.Format = "0.0"
	q.Value.Cells[1].Format = "0.00"

	points := BuildPoints(q, BuildOptions{})
	if points[0].ValueFormat != "0.0" {
		t.Errorf("point[0].ValueFormat = %q, want column format", points[0].ValueFormat)
	}
	if points[1].ValueFormat != "0.00" {
		t.Errorf("point[1].ValueFormat = %q, want per-cell override", points[1].ValueFormat)
	}
}
