// Package capability maps selected visual parts to the style capabilities
// and quick actions an external editing surface may offer for them.
//
// The part set is closed: series fill, axis, and overlay text, addressed on
// the wire by the tokens "colorSelector", "enableAxis", and "directEdit".
// Resolution is a pure lookup with no bearing on rendering; an unknown
// token resolves to no capabilities rather than an error.
package capability

// Part identifies one selectable visual part of the chart.
type Part int

// The closed part set. PartUnknown is the zero value and resolves to
// nothing.
const (
	PartUnknown Part = iota
	PartSeries
	PartAxis
	PartOverlayText
)

// Wire tokens used by hosts to address parts.
const (
	TokenColorSelector = "colorSelector"
	TokenEnableAxis    = "enableAxis"
	TokenDirectEdit    = "directEdit"
)

// String returns the part's name for logs.
func (p Part) String() string {
	switch p {
	case PartSeries:
		return "series"
	case PartAxis:
		return "axis"
	case PartOverlayText:
		return "overlay-text"
	case PartUnknown:
		return "unknown"
	}
	return "unknown"
}

// Token returns the part's wire token, or "" for PartUnknown.
func (p Part) Token() string {
	switch p {
	case PartSeries:
		return TokenColorSelector
	case PartAxis:
		return TokenEnableAxis
	case PartOverlayText:
		return TokenDirectEdit
	case PartUnknown:
		return ""
	}
	return ""
}

// PartFromToken maps a wire token to its part. Anything outside the closed
// token set yields PartUnknown.
func PartFromToken(token string) Part {
	switch token {
	case TokenColorSelector:
		return PartSeries
	case TokenEnableAxis:
		return PartAxis
	case TokenDirectEdit:
		return PartOverlayText
	}
	return PartUnknown
}

// StyleCapability names one editable style surface of a part.
type StyleCapability string

// QuickAction names one shortcut a host may show for a part.
type QuickAction string

// Capabilities for the closed part set.
const (
	StyleFillColor      StyleCapability = "fill-color"
	StyleAxisVisibility StyleCapability = "axis-visibility"
	StyleTextContent    StyleCapability = "text-content"

	ActionPickColor  QuickAction = "pick-color"
	ActionToggleAxis QuickAction = "toggle-axis"
	ActionEditText   QuickAction = "edit-text"
)

// Capabilities is what an editing surface may offer for a selected part.
type Capabilities struct {
	Styles  []StyleCapability `json:"styles,omitempty"`
	Actions []QuickAction     `json:"actions,omitempty"`
}

// Empty reports whether the part offers nothing to edit.
func (c Capabilities) Empty() bool {
	return len(c.Styles) == 0 && len(c.Actions) == 0
}

// Resolve returns the capabilities for a part. The switch is exhaustive
// over the closed part set; PartUnknown (and any out-of-range value)
// resolves to zero capabilities, never an error.
func Resolve(p Part) Capabilities {
	switch p {
	case PartSeries:
		return Capabilities{
			Styles:  []StyleCapability{StyleFillColor},
			Actions: []QuickAction{ActionPickColor},
		}
	case PartAxis:
		return Capabilities{
			Styles:  []StyleCapability{StyleAxisVisibility},
			Actions: []QuickAction{ActionToggleAxis},
		}
	case PartOverlayText:
		return Capabilities{
			Styles:  []StyleCapability{StyleTextContent},
			Actions: []QuickAction{ActionEditText},
		}
	case PartUnknown:
		return Capabilities{}
	}
	return Capabilities{}
}

// ResolveToken resolves a wire token directly: PartFromToken then Resolve.
func ResolveToken(token string) Capabilities {
	return Resolve(PartFromToken(token))
}
