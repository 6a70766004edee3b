package pareto

import (
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// BuildOptions configures point building. Zero-value fields fall back to
// the default theme and an issuer scoped to the dataset's category source.
type BuildOptions struct {
	// Theme resolves palette colors and the high-contrast pair. The theme
	// also owns the label-to-color assignment table, so passing the same
	// theme across updates keeps category colors stable.
	Theme *theme.Theme

	// Issuer mints selection identities for the points.
	Issuer *selection.Issuer
}

// BuildPoints transforms a query result into an ordered data point sequence.
//
// The sequence length is the longer of the two columns; the shorter column
// is right-padded, an absent label becoming "" and an absent value nil.
// Each point's fill color resolves as:
//
//   - high-contrast mode: the theme background, ignoring per-cell overrides,
//     plus a visible foreground stroke
//   - otherwise: the per-cell override if present, else the palette color
//     assigned to the category label (same label, same color, stable across
//     updates); no stroke
//
// An empty result (no labels, no cells, or no category source) builds an
// empty sequence. Callers treat that as "nothing to render", not an error.
func BuildPoints(q dataset.QueryResult, opts BuildOptions) []DataPoint {
	if q.Empty() {
		return nil
	}

	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	issuer := opts.Issuer
	if issuer == nil {
		issuer = selection.NewIssuer(q.Category.Source)
	}

	n := q.Len()
	points := make([]DataPoint, n)
	for i := 0; i < n; i++ {
		p := DataPoint{
			Index:       i,
			ValueFormat: q.CellFormat(i),
		}
		if i < len(q.Category.Labels) {
			p.Category = q.Category.Labels[i]
		}

		var override string
		if i < len(q.Value.Cells) {
			p.Value = q.Value.Cells[i].Value
			override = q.Value.Cells[i].Color
		}

		if th.HighContrast {
			p.Color = th.Background
			p.StrokeColor = th.Foreground
			p.StrokeWidthPx = th.HighContrastStrokeWidth
		} else if override != "" {
			p.Color = override
		} else {
			p.Color = th.ColorFor(p.Category)
		}

		p.Selection = issuer.IdentityFor(p.Category, i)
		points[i] = p
	}

	return points
}
