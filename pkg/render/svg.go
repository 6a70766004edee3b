package render

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EncodeSVG serializes the current element set as a standalone SVG
// document. Output is deterministic: bars are emitted in index order and
// every attribute derives from the state and theme, so encoding the same
// state twice yields identical bytes.
func EncodeSVG(st *State, th *theme.Theme) []byte {
	if th == nil {
		th = theme.Default()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		st.Viewport.Width, st.Viewport.Height, st.Viewport.Width, st.Viewport.Height)

	if th.HighContrast {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			st.Viewport.Width, st.Viewport.Height, th.Background)
	}

	renderBars(&buf, st)
	renderLine(&buf, st, th)
	renderMarkers(&buf, st)
	renderAxis(&buf, st.ValueAxis, "value", "end")
	renderAxis(&buf, st.PercentAxis, "percent", "start")
	renderAxis(&buf, st.CategoryAxis, "category", "middle")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBars(buf *bytes.Buffer, st *State) {
	indices := make([]int, 0, len(st.Bars))
	for idx := range st.Bars {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	buf.WriteString(`  <g class="bars">` + "\n")
	for _, idx := range indices {
		b := st.Bars[idx]
		fmt.Fprintf(buf, `    <rect data-index="%d" data-category="%s" data-selection="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%g"`,
			b.Index, xmlEscaper.Replace(b.Category), xmlEscaper.Replace(b.Selection.String()),
			b.X, b.Y, b.W, b.H, b.Fill, b.FillOpacity)
		if b.StrokeWidth > 0 {
			fmt.Fprintf(buf, ` stroke="%s" stroke-width="%g"`, b.StrokeColor, b.StrokeWidth)
		}
		buf.WriteString("/>\n")
	}
	buf.WriteString("  </g>\n")
}

func renderLine(buf *bytes.Buffer, st *State, th *theme.Theme) {
	if len(st.Line) == 0 {
		return
	}

	var d strings.Builder
	for i, v := range st.Line {
		if i == 0 {
			fmt.Fprintf(&d, "M %.2f %.2f", v.X, v.Y)
		} else {
			fmt.Fprintf(&d, " L %.2f %.2f", v.X, v.Y)
		}
	}
	fmt.Fprintf(buf, `  <path class="cumulative" d="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		d.String(), th.LineColor)
}

func renderMarkers(buf *bytes.Buffer, st *State) {
	if len(st.Markers) == 0 {
		return
	}

	buf.WriteString(`  <g class="markers">` + "\n")
	for _, mk := range st.Markers {
		fmt.Fprintf(buf, `    <circle data-index="%d" cx="%.2f" cy="%.2f" r="%g" fill="%s"/>`+"\n",
			mk.Index, mk.X, mk.Y, mk.R, mk.Fill)
	}
	buf.WriteString("  </g>\n")
}

func renderAxis(buf *bytes.Buffer, ax Axis, name, anchor string) {
	if len(ax.Ticks) == 0 {
		return
	}

	fmt.Fprintf(buf, `  <g class="axis axis-%s" fill="%s" text-anchor="%s">`+"\n", name, ax.LabelColor, anchor)
	for _, tk := range ax.Ticks {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f">%s</text>`+"\n",
			tk.X, tk.Y, xmlEscaper.Replace(tk.Label))
	}
	buf.WriteString("  </g>\n")
}
