package render

import (
	"strconv"

	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
)

// Tooltip is the payload handed to an external tooltip renderer on hover.
// The core produces the content only; the chrome around it is the host's.
type Tooltip struct {
	// Label is the bar's category.
	Label string `json:"label"`

	// Value is the bar's value formatted with its format token. Empty for
	// absent values.
	Value string `json:"value"`

	// Color is the bar's fill, for the tooltip's swatch.
	Color string `json:"color"`

	// Header is the cumulative readout, "Cumulative %: " plus the percent
	// with two decimals.
	Header string `json:"header"`
}

// TooltipFor builds the tooltip payload for a bar. Returns a zero Tooltip
// for nil.
func TooltipFor(b *Bar) Tooltip {
	if b == nil {
		return Tooltip{}
	}

	var value string
	if b.Value != nil {
		value = pareto.FormatValue(*b.Value, b.ValueFormat)
	}
	return Tooltip{
		Label:  b.Category,
		Value:  value,
		Color:  b.Fill,
		Header: "Cumulative %: " + strconv.FormatFloat(b.CumulativePercent, 'f', 2, 64),
	}
}
