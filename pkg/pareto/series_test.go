package pareto

import (
	"math"
	"testing"

	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
)

const tol = 1e-9

func TestComputeSeriesCumulativePercents(t *testing.T) {
	points := BuildPoints(query(
		[]string{"A", "B", "C"},
		[]*float64{dataset.Float(10), dataset.Float(30), dataset.Float(60)},
	), BuildOptions{})

	s := ComputeSeries(points)
	if s.Total != 100 {
		t.Errorf("Total = %v, want 100", s.Total)
	}

	want := []float64{10, 40, 100}
	for i, w := range want {
		if got := s.Points[i].CumulativePercent; math.Abs(got-w) > tol {
			t.Errorf("percent[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestComputeSeriesZeroTotal(t *testing.T) {
	points := BuildPoints(query(
		[]string{"A", "B"},
		[]*float64{dataset.Float(0), dataset.Float(0)},
	), BuildOptions{})

	s := ComputeSeries(points)
	if s.Total != 0 {
		t.Errorf("Total = %v, want 0", s.Total)
	}
	for i, p := range s.Points {
		if p.CumulativePercent != 0 {
			t.Errorf("percent[%d] = %v, want 0 for zero total", i, p.CumulativePercent)
		}
	}
	for _, lp := range s.Line {
		if lp.Percent != 0 {
			t.Errorf("line percent = %v, want 0 for zero total", lp.Percent)
		}
	}
}

func TestComputeSeriesMonotonic(t *testing.T) {
	points := BuildPoints(query(
		[]string{"A", "B", "C", "D", "E"},
		[]*float64{dataset.Float(3), dataset.Float(0), dataset.Float(7.5), dataset.Float(1), dataset.Float(12)},
	), BuildOptions{})

	s := ComputeSeries(points)
	prev := 0.0
	for i, p := range s.Points {
		if p.CumulativePercent < prev-tol {
			t.Errorf("percent[%d] = %v decreased from %v", i, p.CumulativePercent, prev)
		}
		prev = p.CumulativePercent
	}
	if final := s.Points[len(s.Points)-1].CumulativePercent; math.Abs(final-100) > tol {
		t.Errorf("final percent = %v, want 100", final)
	}
}

func TestComputeSeriesNilValues(t *testing.T) {
	// 3 categories, 2 values: the padded point counts 0
	points := BuildPoints(query(
		[]string{"A", "B", "C"},
		[]*float64{dataset.Float(10), dataset.Float(30)},
	), BuildOptions{})

	s := ComputeSeries(points)
	if s.Total != 40 {
		t.Errorf("Total = %v, want 40 (nil counts 0)", s.Total)
	}
	if got := s.Points[2].CumulativePercent; math.Abs(got-100) > tol {
		t.Errorf("percent[2] = %v, want 100 (nil adds nothing)", got)
	}
	if s.Points[2].Value != nil {
		t.Error("nil value should stay nil for display")
	}
}

func TestComputeSeriesLine(t *testing.T) {
	points := BuildPoints(query(
		[]string{"A", "B", "C"},
		[]*float64{dataset.Float(10), dataset.Float(30), dataset.Float(60)},
	), BuildOptions{})

	s := ComputeSeries(points)
	if len(s.Line) != len(points)+1 {
		t.Fatalf("line has %d vertices, want %d (points + synthetic origin)", len(s.Line), len(points)+1)
	}

	origin := s.Line[0]
	if origin.Index != -1 || origin.Percent != 0 {
		t.Errorf("line[0] = %+v, want synthetic origin {-1, 0}", origin)
	}
	for i, p := range s.Points {
		lp := s.Line[i+1]
		if lp.Index != p.Index {
			t.Errorf("line[%d].Index = %d, want %d", i+1, lp.Index, p.Index)
		}
		if math.Abs(lp.Percent-p.CumulativePercent) > tol {
			t.Errorf("line[%d].Percent = %v, want %v", i+1, lp.Percent, p.CumulativePercent)
		}
	}
}

func TestComputeSeriesDoesNotMutateInput(t *testing.T) {
	points := BuildPoints(query(
		[]string{"A", "B"},
		[]*float64{dataset.Float(10), dataset.Float(30)},
	), BuildOptions{})

	ComputeSeries(points)
	for i, p := range points {
		if p.CumulativePercent != 0 {
			t.Errorf("input point[%d] was mutated: percent = %v", i, p.CumulativePercent)
		}
	}
}

func TestComputeSeriesEmpty(t *testing.T) {
	s := ComputeSeries(nil)
	if !s.Empty() {
		t.Error("series from no points should be empty")
	}
	if s.Line != nil {
		t.Error("empty series should have no line vertices")
	}
}
