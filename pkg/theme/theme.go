// Package theme holds the chart's visual parameters: the categorical color
// palette, high-contrast colors, highlight opacities, and stroke metrics.
//
// A [Theme] also owns the palette assignment table. Colors are assigned to
// category labels in first-seen order and the assignment is sticky for the
// theme instance's lifetime, so a category keeps its color across updates
// even when categories are inserted or removed around it.
//
// Themes can be customized from TOML files via [Load]; unset fields fall
// back to the defaults.
package theme

import (
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// Default visual parameters.
const (
	DefaultSolidOpacity  = 1.0
	DefaultDimmedOpacity = 0.3

	DefaultForeground     = "#ffffff"
	DefaultBackground     = "#000000"
	DefaultAxisLabelColor = "#666666"
	DefaultLineColor      = "#d62728"

	DefaultHighContrastStrokeWidth = 1.0
	DefaultMarkerRadius            = 3.0
)

// DefaultPalette is the standard 10-color categorical palette.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Theme is the set of visual parameters for one chart. Construct with
// [Default] or [Load]; the zero value has no palette and assigns no colors.
type Theme struct {
	// Palette is cycled through for category fills in normal mode.
	Palette []string `toml:"palette" json:"palette"`

	// HighContrast switches fills to Background and strokes to Foreground,
	// overriding the palette and any per-point color overrides.
	HighContrast bool `toml:"high_contrast" json:"high_contrast"`

	// Foreground is the stroke and text color in high-contrast mode.
	Foreground string `toml:"foreground" json:"foreground"`

	// Background is the fill color in high-contrast mode.
	Background string `toml:"background" json:"background"`

	// AxisLabelColor fills axis tick labels in normal mode.
	AxisLabelColor string `toml:"axis_label_color" json:"axis_label_color"`

	// LineColor strokes the cumulative-percentage line and its markers.
	LineColor string `toml:"line_color" json:"line_color"`

	// SolidOpacity is the fill opacity of selected (or unselected-when-
	// nothing-is-selected) bars. DimmedOpacity applies to non-members of a
	// non-empty selection.
	SolidOpacity  float64 `toml:"solid_opacity" json:"solid_opacity"`
	DimmedOpacity float64 `toml:"dimmed_opacity" json:"dimmed_opacity"`

	// HighContrastStrokeWidth is the bar outline width in high-contrast
	// mode. Zero outside high-contrast mode.
	HighContrastStrokeWidth float64 `toml:"high_contrast_stroke_width" json:"high_contrast_stroke_width"`

	// MarkerRadius is the radius of the cumulative line's point markers.
	MarkerRadius float64 `toml:"marker_radius" json:"marker_radius"`

	mu       sync.Mutex
	assigned map[string]string
	next     int
}

// Default returns a theme with the standard palette and metrics.
func Default() *Theme {
	return &Theme{
		Palette:                 append([]string(nil), DefaultPalette...),
		Foreground:              DefaultForeground,
		Background:              DefaultBackground,
		AxisLabelColor:          DefaultAxisLabelColor,
		LineColor:               DefaultLineColor,
		SolidOpacity:            DefaultSolidOpacity,
		DimmedOpacity:           DefaultDimmedOpacity,
		HighContrastStrokeWidth: DefaultHighContrastStrokeWidth,
		MarkerRadius:            DefaultMarkerRadius,
	}
}

// Load reads a TOML theme file and overlays it on the defaults. Fields
// absent from the file keep their default values, so a theme file can set
// just a palette or just the opacities.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open theme %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}

	var file Theme
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}

	th := Default()
	if len(file.Palette) > 0 {
		th.Palette = file.Palette
	}
	th.HighContrast = file.HighContrast
	if file.Foreground != "" {
		th.Foreground = file.Foreground
	}
	if file.Background != "" {
		th.Background = file.Background
	}
	if file.AxisLabelColor != "" {
		th.AxisLabelColor = file.AxisLabelColor
	}
	if file.LineColor != "" {
		th.LineColor = file.LineColor
	}
	if file.SolidOpacity > 0 {
		th.SolidOpacity = file.SolidOpacity
	}
	if file.DimmedOpacity > 0 {
		th.DimmedOpacity = file.DimmedOpacity
	}
	if file.HighContrastStrokeWidth > 0 {
		th.HighContrastStrokeWidth = file.HighContrastStrokeWidth
	}
	if file.MarkerRadius > 0 {
		th.MarkerRadius = file.MarkerRadius
	}
	return th, nil
}

// ColorFor returns the palette color assigned to label, assigning the next
// free palette slot on first sight. Assignments are stable: the same label
// gets the same color for the lifetime of the theme, regardless of how the
// surrounding categories change between updates. The palette wraps when
// there are more labels than colors.
//
// Safe for concurrent use.
func (t *Theme) ColorFor(label string) string {
	if len(t.Palette) == 0 {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.assigned == nil {
		t.assigned = make(map[string]string)
	}
	if c, ok := t.assigned[label]; ok {
		return c
	}
	c := t.Palette[t.next%len(t.Palette)]
	t.assigned[label] = c
	t.next++
	return c
}

// AxisColor returns the effective axis label color: Foreground in
// high-contrast mode, AxisLabelColor otherwise.
func (t *Theme) AxisColor() string {
	if t.HighContrast {
		return t.Foreground
	}
	return t.AxisLabelColor
}
