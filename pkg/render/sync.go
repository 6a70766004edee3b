package render

import (
	"slices"

	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// Diff reports what one Sync did to the bar arena. Index slices are sorted
// ascending. A second sync with identical inputs yields an all-empty diff.
type Diff struct {
	Created []int
	Updated []int
	Removed []int
}

// Empty reports whether the sync changed the element set.
func (d Diff) Empty() bool {
	return len(d.Created) == 0 && len(d.Removed) == 0
}

// Sync reconciles the arena against the series and its projected geometry.
//
// Bars are keyed by point index: stale indices are removed, new indices
// create bars at the theme's solid opacity, surviving indices are updated
// in place (position, size, fill, stroke, tooltip data) with opacity and
// transient flags left alone. The line, markers, and axes are rebuilt
// wholesale.
//
// Sync is idempotent and must be the only writer of the element set;
// highlight sync only adjusts opacities afterwards.
func (st *State) Sync(s pareto.Series, geom pareto.Geometry, th *theme.Theme) Diff {
	if th == nil {
		th = theme.Default()
	}
	if st.Bars == nil {
		st.Bars = make(map[int]*Bar)
	}

	var diff Diff

	incoming := make(map[int]bool, len(s.Points))
	for _, p := range s.Points {
		incoming[p.Index] = true
	}

	// Exit: drop elements whose index is gone.
	for idx := range st.Bars {
		if !incoming[idx] {
			delete(st.Bars, idx)
			diff.Removed = append(diff.Removed, idx)
		}
	}

	// Enter and update. Points and bar geometry are parallel sequences.
	for i, p := range s.Points {
		var g pareto.BarGeom
		if i < len(geom.Bars) {
			g = geom.Bars[i]
		}

		b, ok := st.Bars[p.Index]
		if !ok {
			b = &Bar{Index: p.Index, FillOpacity: th.SolidOpacity}
			st.Bars[p.Index] = b
			diff.Created = append(diff.Created, p.Index)
		} else {
			diff.Updated = append(diff.Updated, p.Index)
		}

		b.Category = p.Category
		b.X, b.Y, b.W, b.H = g.X, g.Y, g.W, g.H
		b.Fill = p.Color
		b.StrokeColor = p.StrokeColor
		b.StrokeWidth = p.StrokeWidthPx
		b.Selection = p.Selection
		b.Value = p.Value
		b.ValueFormat = p.ValueFormat
		b.CumulativePercent = p.CumulativePercent
	}

	// Line and markers: no identity, full rebuild.
	st.Line = slices.Clone(geom.Line)
	st.Markers = st.Markers[:0]
	for _, mk := range geom.Markers {
		st.Markers = append(st.Markers, MarkerEl{
			Index: mk.Index,
			X:     mk.X,
			Y:     mk.Y,
			R:     th.MarkerRadius,
			Fill:  th.LineColor,
		})
	}

	// Axes: ticks regenerated wholesale, label fill re-resolved.
	labelColor := th.AxisColor()
	st.ValueAxis = Axis{Ticks: slices.Clone(geom.ValueTicks), LabelColor: labelColor}
	st.PercentAxis = Axis{Ticks: slices.Clone(geom.PercentTicks), LabelColor: labelColor}
	st.CategoryAxis = Axis{Ticks: slices.Clone(geom.CategoryTicks), LabelColor: labelColor}

	st.Viewport = geom.Viewport

	slices.Sort(diff.Created)
	slices.Sort(diff.Updated)
	slices.Sort(diff.Removed)
	return diff
}
