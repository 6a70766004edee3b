package render

import (
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
)

// Bar is one persistent bar element. Bars live in the state's arena keyed
// by Index; Sync mutates surviving bars in place so the pointer is stable
// across updates.
type Bar struct {
	Index    int
	Category string

	// Projected rectangle.
	X, Y, W, H float64

	// Paint, resolved by the point builder.
	Fill        string
	StrokeColor string
	StrokeWidth float64

	// FillOpacity is owned by highlight sync, not by Sync: a data update
	// never flips a bar between solid and dimmed.
	FillOpacity float64

	// Selection is the identity used for highlight membership.
	Selection selection.Identity

	// Data carried for tooltips.
	Value             *float64
	ValueFormat       string
	CumulativePercent float64

	// Hovered is transient interactive state. Sync never touches it.
	Hovered bool
}

// MarkerEl is one marker circle on the cumulative line. Markers carry no
// interactive state and are rebuilt wholesale each sync.
type MarkerEl struct {
	Index   int
	X, Y, R float64
	Fill    string
}

// Axis is one rendered axis: its ticks and label fill. Rebuilt wholesale
// each sync.
type Axis struct {
	Ticks      []pareto.Tick
	LabelColor string
}

// State is the persistent element collection for one chart. It is owned by
// a single controller and passed into each sync; nothing else may mutate
// the elements between updates.
type State struct {
	Bars    map[int]*Bar
	Line    []pareto.Vertex
	Markers []MarkerEl

	ValueAxis    Axis
	PercentAxis  Axis
	CategoryAxis Axis

	Viewport pareto.Viewport
}

// NewState returns an empty arena.
func NewState() *State {
	return &State{Bars: make(map[int]*Bar)}
}

// BarAt returns the bar keyed by index, or nil.
func (st *State) BarAt(index int) *Bar {
	return st.Bars[index]
}

// BarCount returns the number of live bar elements.
func (st *State) BarCount() int { return len(st.Bars) }
