package pareto

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBandScale(t *testing.T) {
	// width 100, 3 bands, padding 0.2:
	// step = 100 / (3 - 0.2 + 0.4) = 31.25
	// bandwidth = 31.25 * 0.8 = 25
	// offset = (100 - 31.25*2.8) * 0.5 = 6.25
	s := NewBandScale([]string{"A", "B", "C"}, 100)

	if !approx(s.Step(), 31.25) {
		t.Errorf("Step() = %v, want 31.25", s.Step())
	}
	if !approx(s.Bandwidth(), 25) {
		t.Errorf("Bandwidth() = %v, want 25", s.Bandwidth())
	}

	wantPos := []float64{6.25, 37.5, 68.75}
	for i, want := range wantPos {
		if got := s.Position(i); !approx(got, want) {
			t.Errorf("Position(%d) = %v, want %v", i, got, want)
		}
	}

	// Last band's right edge plus outer padding fills the width exactly
	right := s.Position(2) + s.Bandwidth()
	if !approx(right+6.25, 100) {
		t.Errorf("layout does not fill the width: right edge %v", right)
	}
}

func TestBandScaleSingleBand(t *testing.T) {
	s := NewBandScale([]string{"only"}, 100)

	// step = 100 / (1 - 0.2 + 0.4) = 83.333...
	if !approx(s.Step(), 100.0/1.2) {
		t.Errorf("Step() = %v, want %v", s.Step(), 100.0/1.2)
	}
	if s.Bandwidth() <= 0 || s.Bandwidth() >= 100 {
		t.Errorf("Bandwidth() = %v, want within (0, 100)", s.Bandwidth())
	}
	if s.Position(0) < 0 {
		t.Errorf("Position(0) = %v, want >= 0", s.Position(0))
	}
}

func TestBandScaleEmptyDomain(t *testing.T) {
	s := NewBandScale(nil, 100)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if math.IsNaN(s.Step()) || math.IsInf(s.Step(), 0) {
		t.Errorf("Step() = %v, want finite", s.Step())
	}
}

func TestLinearScaleProject(t *testing.T) {
	// Inverted range, as used for y-axes
	s := NewLinearScale(0, 100, 380, 20)

	tests := []struct {
		v    float64
		want float64
	}{
		{v: 0, want: 380},
		{v: 100, want: 20},
		{v: 50, want: 200},
		{v: 25, want: 290},
	}
	for _, tt := range tests {
		if got := s.Project(tt.v); !approx(got, tt.want) {
			t.Errorf("Project(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	s := NewLinearScale(0, 0, 380, 20)
	if got := s.Project(0); !approx(got, 380) {
		t.Errorf("Project(0) on degenerate domain = %v, want range start", got)
	}
	if got := s.Project(42); !approx(got, 380) {
		t.Errorf("Project(42) on degenerate domain = %v, want range start", got)
	}
}

func TestLinearScaleTicks(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		count  int
		want   []float64
	}{
		{
			name: "0 to 100",
			d0:   0, d1: 100, count: 5,
			want: []float64{0, 20, 40, 60, 80, 100},
		},
		{
			name: "0 to 1",
			d0:   0, d1: 1, count: 5,
			want: []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
		},
		{
			name: "0 to 7",
			d0:   0, d1: 7, count: 5,
			want: []float64{0, 1, 2, 3, 4, 5, 6, 7},
		},
		{
			name: "degenerate",
			d0:   5, d1: 5, count: 5,
			want: []float64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLinearScale(tt.d0, tt.d1, 0, 1).Ticks(tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ticks %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if !approx(got[i], tt.want[i]) {
					t.Errorf("tick[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinearScaleTicksZeroCount(t *testing.T) {
	if got := NewLinearScale(0, 100, 0, 1).Ticks(0); got != nil {
		t.Errorf("Ticks(0) = %v, want nil", got)
	}
}
