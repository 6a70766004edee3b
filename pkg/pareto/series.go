package pareto

// LinePoint is one vertex of the cumulative-percentage line in data space.
// Index -1 marks the synthetic origin vertex that anchors the line to the
// first category's left edge at 0 percent.
type LinePoint struct {
	Index   int     `json:"index" bson:"index"`
	Percent float64 `json:"percent" bson:"percent"`
}

// Series is the computed chart model: points with cumulative percentages
// filled in, the value total, and the overlay line's vertices.
type Series struct {
	Points []DataPoint `json:"points" bson:"points"`
	Total  float64     `json:"total" bson:"total"`
	Line   []LinePoint `json:"line" bson:"line"`
}

// Empty reports whether the series has nothing to render.
func (s Series) Empty() bool { return len(s.Points) == 0 }

// ComputeSeries accumulates the running value sum in index order and fills
// each point's cumulative percentage: runningSum / total * 100. Absent
// values count 0 toward the sum. When the total is 0 every percentage is
// defined as 0; no division happens.
//
// The returned line holds the synthetic origin vertex followed by one
// vertex per point, in order. For non-negative inputs the percents are
// non-decreasing by construction and the last equals 100 (within floating
// tolerance). Negative values are accepted but void that monotonicity.
//
// The input slice is not mutated; the series carries its own copy.
func ComputeSeries(points []DataPoint) Series {
	if len(points) == 0 {
		return Series{}
	}

	var total float64
	for _, p := range points {
		total += p.Magnitude()
	}

	out := make([]DataPoint, len(points))
	copy(out, points)

	line := make([]LinePoint, 0, len(points)+1)
	line = append(line, LinePoint{Index: -1, Percent: 0})

	var sum float64
	for i := range out {
		sum += out[i].Magnitude()
		if total != 0 {
			out[i].CumulativePercent = sum / total * 100
		} else {
			out[i].CumulativePercent = 0
		}
		line = append(line, LinePoint{Index: out[i].Index, Percent: out[i].CumulativePercent})
	}

	return Series{Points: out, Total: total, Line: line}
}
