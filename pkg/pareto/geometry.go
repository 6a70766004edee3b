package pareto

import "strconv"

// BarGeom is the pixel-space rectangle of one bar, keyed by the point's
// index.
type BarGeom struct {
	Index int     `json:"index" bson:"index"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	W     float64 `json:"w" bson:"w"`
	H     float64 `json:"h" bson:"h"`
}

// Vertex is one pixel-space point of the cumulative line.
type Vertex struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Marker is the pixel-space center of one line marker, keyed by the point's
// index.
type Marker struct {
	Index int     `json:"index" bson:"index"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// Tick is one axis tick: its domain value (or band index), display label,
// and pixel position.
type Tick struct {
	Value float64 `json:"value" bson:"value"`
	Label string  `json:"label" bson:"label"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// Geometry is the fully projected chart: everything the render layer needs,
// in absolute pixel coordinates. Transient; rebuilt on every update, never
// persisted.
type Geometry struct {
	Viewport Viewport `json:"viewport" bson:"viewport"`
	Margins  Margins  `json:"margins" bson:"margins"`

	Bars    []BarGeom `json:"bars" bson:"bars"`
	Line    []Vertex  `json:"line" bson:"line"`
	Markers []Marker  `json:"markers" bson:"markers"`

	ValueTicks    []Tick `json:"value_ticks" bson:"value_ticks"`
	PercentTicks  []Tick `json:"percent_ticks" bson:"percent_ticks"`
	CategoryTicks []Tick `json:"category_ticks" bson:"category_ticks"`
}

// Empty reports whether the geometry renders nothing.
func (g Geometry) Empty() bool { return len(g.Bars) == 0 }

// axisTickCount is the target tick count for both vertical axes.
const axisTickCount = 5

// Project maps a series into pixel space for the given viewport.
//
// Three scales are built fresh per call: the category band scale spans the
// plot width, and the value and percent scales share the vertical pixel
// range [plotHeight, margins.Top]: values on the left axis, 0-100 on the
// right. Bars rise from the baseline; the line runs from the synthetic
// origin at the first band's left edge through each band's right edge;
// markers sit on the per-point vertices.
//
// An empty series projects to empty geometry. Viewports smaller than the
// margins clamp the plot area to zero instead of going negative.
func Project(s Series, vp Viewport, m Margins) Geometry {
	geom := Geometry{Viewport: vp, Margins: m}
	if s.Empty() {
		return geom
	}

	plotW := vp.Width - m.Left - m.Right
	if plotW < 0 {
		plotW = 0
	}
	plotH := vp.Height - m.Bottom
	if plotH < m.Top {
		plotH = m.Top
	}

	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Category
	}

	band := NewBandScale(labels, plotW)
	value := NewLinearScale(0, s.Total, plotH, m.Top)
	percent := NewLinearScale(0, 100, plotH, m.Top)

	baseline := value.Project(0)

	geom.Bars = make([]BarGeom, len(s.Points))
	geom.Markers = make([]Marker, 0, len(s.Points))
	for i, p := range s.Points {
		x := m.Left + band.Position(i)
		y := value.Project(p.Magnitude())
		geom.Bars[i] = BarGeom{
			Index: p.Index,
			X:     x,
			Y:     y,
			W:     band.Bandwidth(),
			H:     baseline - y,
		}
		geom.Markers = append(geom.Markers, Marker{
			Index: p.Index,
			X:     m.Left + band.Position(i) + band.Bandwidth(),
			Y:     percent.Project(p.CumulativePercent),
		})
	}

	// Band slots are ordinal; point indices are identity keys and need not
	// be sequential after upstream filtering.
	slot := make(map[int]int, len(s.Points))
	for i, p := range s.Points {
		slot[p.Index] = i
	}

	geom.Line = make([]Vertex, 0, len(s.Line))
	for _, lp := range s.Line {
		if lp.Index < 0 {
			geom.Line = append(geom.Line, Vertex{
				X: m.Left + band.Position(0),
				Y: percent.Project(lp.Percent),
			})
			continue
		}
		i, ok := slot[lp.Index]
		if !ok {
			continue
		}
		geom.Line = append(geom.Line, Vertex{
			X: m.Left + band.Position(i) + band.Bandwidth(),
			Y: percent.Project(lp.Percent),
		})
	}

	for _, v := range value.Ticks(axisTickCount) {
		geom.ValueTicks = append(geom.ValueTicks, Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', -1, 64),
			X:     m.Left,
			Y:     value.Project(v),
		})
	}
	for _, v := range percent.Ticks(axisTickCount) {
		geom.PercentTicks = append(geom.PercentTicks, Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', -1, 64) + "%",
			X:     m.Left + plotW,
			Y:     percent.Project(v),
		})
	}
	for i, p := range s.Points {
		geom.CategoryTicks = append(geom.CategoryTicks, Tick{
			Value: float64(p.Index),
			Label: p.Category,
			X:     m.Left + band.Position(i) + band.Bandwidth()/2,
			Y:     plotH,
		})
	}

	return geom
}
