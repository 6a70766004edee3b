// Package raster exports Pareto charts as PNG images.
//
// Bars render through a go-chart bar chart; the cumulative-percentage line
// and its markers are drawn by a custom overlay on the chart's canvas box,
// scaled to the 0-100 percent range. The overlay mirrors the SVG output's
// dual-axis model within a single rasterized image.
package raster

import (
	"bytes"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// Options sizes the exported image.
type Options struct {
	// Width and Height are in pixels. Zero values fall back to 800x400.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Title is drawn above the chart when set.
	Title string `json:"title"`
}

const (
	defaultWidth  = 800
	defaultHeight = 400
)

// Render rasterizes the series to a PNG. The bar heights use the value
// domain [0, total]; the overlay line uses the percent domain [0, 100] over
// the same canvas. An empty series cannot produce a meaningful image and
// returns ErrCodeInvalidInput.
func Render(s pareto.Series, th *theme.Theme, opts Options) ([]byte, error) {
	if s.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render: empty series")
	}
	if th == nil {
		th = theme.Default()
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	bars := make([]chart.Value, len(s.Points))
	for i, p := range s.Points {
		style := chart.Style{FillColor: colorFromHex(p.Color)}
		if p.StrokeWidthPx > 0 {
			style.StrokeColor = colorFromHex(p.StrokeColor)
			style.StrokeWidth = p.StrokeWidthPx
		} else {
			style.StrokeColor = style.FillColor
			style.StrokeWidth = 1
		}
		bars[i] = chart.Value{Label: p.Category, Value: p.Magnitude(), Style: style}
	}

	bc := chart.BarChart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Bars:   bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yCeiling(s.Total)},
		},
		UseBaseValue: true,
		BaseValue:    0,
	}
	if th.HighContrast {
		bg := colorFromHex(th.Background)
		fg := colorFromHex(th.Foreground)
		bc.Background = chart.Style{FillColor: bg}
		bc.Canvas = chart.Style{FillColor: bg}
		bc.XAxis = chart.Style{FontColor: fg, StrokeColor: fg}
		bc.YAxis.Style = chart.Style{FontColor: fg, StrokeColor: fg}
	}
	bc.Elements = []chart.Renderable{cumulativeOverlay(s, th)}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
	}
	return buf.Bytes(), nil
}

// yCeiling keeps the value range non-degenerate for zero totals.
func yCeiling(total float64) float64 {
	if total <= 0 {
		return 1
	}
	return total
}

// cumulativeOverlay draws the percent line and markers over the finished
// bar canvas. Vertex x-positions split the canvas into even slots, the
// synthetic origin at the first slot's left edge and one vertex per point
// at its slot's right edge, matching the vector output's shape.
func cumulativeOverlay(s pareto.Series, th *theme.Theme) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		n := len(s.Points)
		if n == 0 {
			return
		}

		lineColor := colorFromHex(th.LineColor)
		slot := float64(canvasBox.Width()) / float64(n)
		yFor := func(percent float64) int {
			return canvasBox.Bottom - int(percent/100*float64(canvasBox.Height()))
		}
		xFor := func(ordinal int) int {
			return canvasBox.Left + int(slot*float64(ordinal+1))
		}

		r.SetStrokeColor(lineColor)
		r.SetStrokeWidth(1.5)
		r.MoveTo(canvasBox.Left, yFor(0))
		for i := range s.Points {
			r.LineTo(xFor(i), yFor(s.Points[i].CumulativePercent))
		}
		r.Stroke()

		r.SetFillColor(lineColor)
		for i := range s.Points {
			r.Circle(float64(th.MarkerRadius), xFor(i), yFor(s.Points[i].CumulativePercent))
			r.Fill()
		}
	}
}

// colorFromHex parses "#rrggbb" into a drawing color, with a neutral gray
// fallback for malformed input.
func colorFromHex(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
	}
	return drawing.ColorFromHex(hex)
}
