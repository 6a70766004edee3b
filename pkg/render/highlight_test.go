package render

import (
	"testing"

	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

func TestSyncHighlightEmptySelection(t *testing.T) {
	s, geom := chartFor([]string{"A", "B", "C"}, []float64{10, 30, 60})
	th := theme.Default()

	st := NewState()
	st.Sync(s, geom, th)
	st.SyncHighlight(selection.Set{}, th)

	for idx, b := range st.Bars {
		if b.FillOpacity != th.SolidOpacity {
			t.Errorf("bar[%d] opacity = %v, want solid: empty selection dims nothing", idx, b.FillOpacity)
		}
	}
}

func TestSyncHighlightSingleSelection(t *testing.T) {
	s, geom := chartFor([]string{"A", "B", "C"}, []float64{10, 30, 60})
	th := theme.Default()

	st := NewState()
	st.Sync(s, geom, th)

	// Select only B
	st.SyncHighlight(selection.NewSet(s.Points[1].Selection), th)

	if got := st.BarAt(1).FillOpacity; got != th.SolidOpacity {
		t.Errorf("selected bar opacity = %v, want solid %v", got, th.SolidOpacity)
	}
	for _, idx := range []int{0, 2} {
		if got := st.BarAt(idx).FillOpacity; got != th.DimmedOpacity {
			t.Errorf("bar[%d] opacity = %v, want dimmed %v", idx, got, th.DimmedOpacity)
		}
	}

	// Clearing reverts everyone to solid
	st.SyncHighlight(selection.Set{}, th)
	for idx, b := range st.Bars {
		if b.FillOpacity != th.SolidOpacity {
			t.Errorf("bar[%d] opacity = %v after clear, want solid", idx, b.FillOpacity)
		}
	}
}

func TestSyncHighlightHierarchy(t *testing.T) {
	// Two bars share the label "A"; selecting the category covers both
	s, geom := chartFor([]string{"A", "B", "A"}, []float64{10, 30, 60})
	th := theme.Default()

	st := NewState()
	st.Sync(s, geom, th)

	cat := selection.NewIssuer("defect").CategoryIdentity("A")
	st.SyncHighlight(selection.NewSet(cat), th)

	if st.BarAt(0).FillOpacity != th.SolidOpacity {
		t.Error("first A bar should be solid via the category identity")
	}
	if st.BarAt(2).FillOpacity != th.SolidOpacity {
		t.Error("second A bar should be solid via the category identity")
	}
	if st.BarAt(1).FillOpacity != th.DimmedOpacity {
		t.Error("B bar should be dimmed")
	}
}

func TestSyncHighlightConvergence(t *testing.T) {
	s, geom := chartFor([]string{"A", "B", "C"}, []float64{10, 30, 60})
	th := theme.Default()
	sel := selection.NewSet(s.Points[1].Selection)

	// Path 1: highlight applied after the render
	st1 := NewState()
	st1.Sync(s, geom, th)
	st1.SyncHighlight(sel, th)

	// Path 2: highlight applied, then a re-render, then highlight again
	// (the confirmation arriving before and after a sync)
	st2 := NewState()
	st2.Sync(s, geom, th)
	st2.SyncHighlight(sel, th)
	st2.Sync(s, geom, th)
	st2.SyncHighlight(sel, th)

	for idx := range st1.Bars {
		o1, o2 := st1.BarAt(idx).FillOpacity, st2.BarAt(idx).FillOpacity
		if o1 != o2 {
			t.Errorf("bar[%d] opacity diverged: %v vs %v", idx, o1, o2)
		}
	}
}

func TestSyncHighlightRepeatedApplication(t *testing.T) {
	s, geom := chartFor([]string{"A", "B"}, []float64{10, 30})
	th := theme.Default()
	sel := selection.NewSet(s.Points[0].Selection)

	st := NewState()
	st.Sync(s, geom, th)

	st.SyncHighlight(sel, th)
	first := st.BarAt(1).FillOpacity
	st.SyncHighlight(sel, th)
	if st.BarAt(1).FillOpacity != first {
		t.Error("reapplying the same selection should not change opacities")
	}
}
