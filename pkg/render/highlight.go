package render

import (
	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// SyncHighlight sets every bar's fill opacity from the selection set: with
// an empty set all bars are solid (nothing selected means nothing dimmed),
// otherwise members are solid and non-members dimmed. Membership uses the
// identity hierarchy via sel.Contains, so selecting a whole category
// highlights each of its bars.
//
// SyncHighlight runs after every Sync and again whenever the selection
// changes without a re-render. It touches opacity only, is reentrant-safe,
// and converges to the same result regardless of which trigger ran last.
func (st *State) SyncHighlight(sel selection.Set, th *theme.Theme) {
	if th == nil {
		th = theme.Default()
	}

	for _, b := range st.Bars {
		if sel.Empty() || sel.Contains(b.Selection) {
			b.FillOpacity = th.SolidOpacity
		} else {
			b.FillOpacity = th.DimmedOpacity
		}
	}
}
