package pareto

import "math"

// Band scale padding policy: 0.2 of the band step between and around bands,
// bands centered in the leftover space.
const (
	bandPaddingInner = 0.2
	bandPaddingOuter = 0.2
	bandAlign        = 0.5
)

// BandScale maps an ordered discrete domain onto uniform pixel slots
// spanning [0, width], with fractional padding between and around slots.
// Positions are addressed by ordinal index since labels need not be unique.
//
// Scales are pure values: build a fresh one whenever data or viewport
// changes and discard the old, never mutate.
type BandScale struct {
	domain    []string
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale builds a band scale over the given labels spanning
// [0, width].
func NewBandScale(domain []string, width float64) BandScale {
	n := float64(len(domain))
	s := BandScale{domain: domain}

	div := n - bandPaddingInner + bandPaddingOuter*2
	if div < 1 {
		div = 1
	}
	s.step = width / div
	s.bandwidth = s.step * (1 - bandPaddingInner)
	s.start = (width - s.step*(n-bandPaddingInner)) * bandAlign
	return s
}

// Len returns the number of bands.
func (s BandScale) Len() int { return len(s.domain) }

// Domain returns the ordered category labels.
func (s BandScale) Domain() []string { return s.domain }

// Position returns the left edge of band i.
func (s BandScale) Position(i int) float64 {
	return s.start + s.step*float64(i)
}

// Bandwidth returns the width of each band.
func (s BandScale) Bandwidth() float64 { return s.bandwidth }

// Step returns the distance between consecutive band starts.
func (s BandScale) Step() float64 { return s.step }

// LinearScale maps a continuous domain onto a pixel range. The range may be
// inverted (start greater than end) for y-axes, where pixels grow downward
// while values grow upward.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale builds a linear mapping from [d0, d1] to [r0, r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Project maps a domain value to pixel space. A degenerate domain maps
// everything to the range start, which pins zero-extent data to the
// baseline instead of dividing by zero.
func (s LinearScale) Project(v float64) float64 {
	if s.d1 == s.d0 {
		return s.r0
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Ticks returns about count round-valued ticks covering the domain,
// chosen from the 1-2-5 progression.
func (s LinearScale) Ticks(count int) []float64 {
	return ticks(s.d0, s.d1, count)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement picks the tick step for [start, stop] with about count
// ticks. Positive results are the step itself; negative results encode the
// reciprocal of a fractional step.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)

	var factor float64 = 1
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// ticks generates round tick values covering [start, stop].
func ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := tickIncrement(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}

	var out []float64
	if step > 0 {
		lo := math.Ceil(start / step)
		hi := math.Floor(stop / step)
		for v := lo; v <= hi; v++ {
			out = append(out, v*step)
		}
	} else {
		step = -step
		lo := math.Ceil(start * step)
		hi := math.Floor(stop * step)
		for v := lo; v <= hi; v++ {
			out = append(out, v/step)
		}
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
