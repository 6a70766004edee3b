package pareto

import (
	"strconv"
	"strings"

	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
)

// DataPoint is one category's contribution to the chart. Points are rebuilt
// in full on every data-bearing update; only selection state lives longer.
type DataPoint struct {
	// Category is the display label. Labels need not be unique; Index is
	// the identity key.
	Category string `json:"category" bson:"category"`

	// Value is the raw magnitude. Nil marks an absent or non-numeric cell,
	// preserved for display but counted as 0 in totals.
	Value *float64 `json:"value" bson:"value"`

	// Index is the stable position in input order. It keys render elements
	// across updates and fixes the accumulation order.
	Index int `json:"index" bson:"index"`

	// CumulativePercent is filled by ComputeSeries, 0-100.
	CumulativePercent float64 `json:"cumulative_percent" bson:"cumulative_percent"`

	// Presentation, resolved once per update cycle by BuildPoints.
	Color         string  `json:"color,omitempty" bson:"color,omitempty"`
	StrokeColor   string  `json:"stroke_color,omitempty" bson:"stroke_color,omitempty"`
	StrokeWidthPx float64 `json:"stroke_width_px,omitempty" bson:"stroke_width_px,omitempty"`

	// Selection is the externally-stable identity used for highlight
	// matching.
	Selection selection.Identity `json:"selection" bson:"selection"`

	// ValueFormat is the display format token for Value, if any.
	ValueFormat string `json:"value_format,omitempty" bson:"value_format,omitempty"`
}

// Magnitude returns the value counted toward totals: the raw value, or 0
// when absent.
func (p DataPoint) Magnitude() float64 {
	if p.Value == nil {
		return 0
	}
	return *p.Value
}

// FormattedValue renders the point's value for display using its format
// token. Absent values render as an empty string.
func (p DataPoint) FormattedValue() string {
	if p.Value == nil {
		return ""
	}
	return FormatValue(*p.Value, p.ValueFormat)
}

// FormatValue renders v according to a numeric format token. Tokens of the
// "0.00" family fix the decimal places to the token's fraction digits; an
// empty or unrecognized token renders with minimal digits.
func FormatValue(v float64, format string) string {
	if i := strings.IndexByte(format, '.'); i >= 0 {
		if digits := len(format) - i - 1; allZeros(format[i+1:]) && digits > 0 {
			return strconv.FormatFloat(v, 'f', digits, 64)
		}
	} else if format != "" && allZeros(format) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return len(s) > 0
}

// Viewport is the drawable area in device-independent pixels, supplied on
// every update.
type Viewport struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Margins reserve space around the plot area for axis labels.
type Margins struct {
	Top    float64 `json:"top" bson:"top"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Left   float64 `json:"left" bson:"left"`
}

// DefaultMargins returns the chart's fixed margin constants.
func DefaultMargins() Margins {
	return Margins{Top: 20, Right: 2, Bottom: 5, Left: 30}
}
