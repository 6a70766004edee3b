package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KuroiKoyani/pareto-chart/pkg/chart"
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
)

const (
	// Gutter widths for the value (left) and percent (right) axis labels.
	leftGutter  = 8
	rightGutter = 5

	// Rows taken by header, cursor caret, status, and help.
	chromeRows = 4

	minPlotWidth  = 10
	minPlotHeight = 4

	// Owner id for cells painted by the cumulative line.
	ownerLine = -2
)

// viewModel is the bubbletea model for the interactive chart. The chart
// controller owns all chart state; the model holds only terminal concerns:
// sizes, the cursor, and which of the two screens is visible.
type viewModel struct {
	ctrl  *chart.Controller
	query dataset.QueryResult
	title string

	width  int
	height int

	cursor    int
	showTable bool
	table     table.Model

	status string
}

// newViewModel builds the model and runs the first chart update against a
// provisional 80x24 terminal, so the chart exists before the first
// WindowSizeMsg arrives.
func newViewModel(ctrl *chart.Controller, q dataset.QueryResult, title string) viewModel {
	tbl := table.New(table.WithFocused(true))
	tbl.SetHeight(12)

	m := viewModel{
		ctrl:   ctrl,
		query:  q,
		title:  title,
		width:  80,
		height: 24,
		table:  tbl,
	}
	m.syncChart()
	return m
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - chromeRows)
		m.syncChart()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
			return m, nil
		}
		if m.showTable {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "left":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right":
			if m.cursor < len(m.ctrl.Series().Points)-1 {
				m.cursor++
			}
		case " ":
			m.toggleCursor()
		case "c":
			m.ctrl.ClearSelection()
			m.status = "selection cleared"
		case "h":
			m.toggleContrast()
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := StyleTitle.Render(" " + appName + " ─ " + m.title + " ")

	var body string
	if m.showTable {
		body = m.table.View()
	} else {
		w, h := m.plotSize()
		body = m.renderChart(w, h)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine(), m.helpLine())
}

// plotSize returns the chart cell area after gutters and chrome.
func (m viewModel) plotSize() (int, int) {
	w := m.width - leftGutter - rightGutter
	if w < minPlotWidth {
		w = minPlotWidth
	}
	h := m.height - chromeRows - 1
	if h < minPlotHeight {
		h = minPlotHeight
	}
	return w, h
}

// syncChart re-runs the controller pipeline against the braille raster of
// the current plot area: two micro-pixels per cell across, four down.
func (m *viewModel) syncChart() {
	w, h := m.plotSize()
	m.ctrl.Update(m.query, pareto.Viewport{Width: float64(w * 2), Height: float64(h * 4)})
	if n := len(m.ctrl.Series().Points); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// toggleCursor flips the selection of the bar under the cursor.
func (m *viewModel) toggleCursor() {
	s := m.ctrl.Series()
	if len(s.Points) == 0 {
		return
	}
	bar := m.ctrl.State().BarAt(s.Points[m.cursor].Index)
	if bar == nil {
		return
	}
	sel := m.ctrl.Toggle(bar.Selection)
	if sel.Empty() {
		m.status = "selection cleared"
	} else {
		m.status = fmt.Sprintf("%d selected", sel.Len())
	}
}

// toggleContrast flips the theme's high-contrast mode and rebuilds the
// element set so stroke outlines follow. Palette assignments and the
// selection survive: both live outside the rebuilt points.
func (m *viewModel) toggleContrast() {
	th := m.ctrl.Theme()
	th.HighContrast = !th.HighContrast
	m.syncChart()
	if th.HighContrast {
		m.status = "high contrast on"
	} else {
		m.status = "high contrast off"
	}
}

// refreshTable rebuilds the table columns and rows from the current series.
// Rows are cleared first so stale rows never pair with new columns.
func (m *viewModel) refreshTable() {
	s := m.ctrl.Series()

	catW := 10
	for _, p := range s.Points {
		if len(p.Category) > catW {
			catW = len(p.Category)
		}
	}

	m.table.SetRows(nil)
	m.table.SetColumns([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Category", Width: catW},
		{Title: "Value", Width: 12},
		{Title: "Cumulative %", Width: 12},
	})
	m.table.SetRows(tableRows(s))
}

// tableRows builds one table row per point, in accumulation order.
func tableRows(s pareto.Series) []table.Row {
	rows := make([]table.Row, 0, len(s.Points))
	for _, p := range s.Points {
		rows = append(rows, table.Row{
			strconv.Itoa(p.Index + 1),
			p.Category,
			p.FormattedValue(),
			strconv.FormatFloat(p.CumulativePercent, 'f', 2, 64),
		})
	}
	return rows
}

// renderChart draws bars in cell resolution and the cumulative line in
// braille micro-pixels over them, with axis gutters on both sides. The two
// vertical scales share the same rows: the value axis runs 0 to the series
// total over exactly the rows the percent axis runs 0 to 100.
func (m viewModel) renderChart(w, h int) string {
	s := m.ctrl.Series()
	if len(s.Points) == 0 {
		return StyleDim.Render("  no data to plot")
	}

	n := len(s.Points)
	step := w / n
	if step < 1 {
		step = 1
		n = w // draw the bands that fit
	}
	barW := step * 4 / 5
	if barW < 1 {
		barW = 1
	}

	glyphs := make([][]rune, h)
	owners := make([][]int, h)
	for y := range glyphs {
		glyphs[y] = make([]rune, w)
		owners[y] = make([]int, w)
		for x := range glyphs[y] {
			glyphs[y][x] = ' '
			owners[y][x] = -1
		}
	}

	th := m.ctrl.Theme()
	for i := 0; i < n; i++ {
		p := s.Points[i]
		barH := 0
		if s.Total > 0 {
			barH = int(math.Round(p.Magnitude() / s.Total * float64(h)))
			if p.Magnitude() > 0 && barH < 1 {
				barH = 1
			}
		}
		glyph := '█'
		if bar := m.ctrl.State().BarAt(p.Index); bar != nil && bar.FillOpacity < th.SolidOpacity {
			glyph = '░'
		}
		for x := i * step; x < i*step+barW && x < w; x++ {
			for y := h - barH; y < h; y++ {
				glyphs[y][x] = glyph
				owners[y][x] = i
			}
		}
	}

	// The line starts at the first band's left edge at 0% and touches each
	// band's right edge at its cumulative percent.
	br := newBraille(w, h)
	px, py := -1, -1
	for _, lp := range s.Line {
		xMic := 0
		if lp.Index >= 0 {
			xMic = (lp.Index*step+barW)*2 - 1
			if xMic > w*2-1 {
				xMic = w*2 - 1
			}
		}
		yMic := int(math.Round((1 - lp.Percent/100) * float64(h*4-1)))
		if px < 0 {
			br.set(xMic, yMic)
		} else {
			br.line(px, py, xMic, yMic)
		}
		px, py = xMic, yMic
	}

	cells := br.cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y][x] != ' ' {
				glyphs[y][x] = cells[y][x]
				owners[y][x] = ownerLine
			}
		}
	}

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.LineColor))
	barStyles := make([]lipgloss.Style, n)
	for i := 0; i < n; i++ {
		barStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.barColor(s.Points[i])))
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		left, right := axisLabels(y, h, s)
		b.WriteString(StyleDim.Render(fmt.Sprintf("%*s ", leftGutter-1, left)))
		x := 0
		for x < w {
			owner := owners[y][x]
			start := x
			for x < w && owners[y][x] == owner {
				x++
			}
			run := string(glyphs[y][start:x])
			switch {
			case owner == ownerLine:
				b.WriteString(lineStyle.Render(run))
			case owner >= 0:
				b.WriteString(barStyles[owner].Render(run))
			default:
				b.WriteString(run)
			}
		}
		b.WriteString(StyleDim.Render(fmt.Sprintf(" %-*s", rightGutter-1, right)))
		b.WriteByte('\n')
	}

	// Caret row marking the cursor's band.
	caret := make([]rune, w)
	for x := range caret {
		caret[x] = ' '
	}
	if m.cursor < n {
		for x := m.cursor * step; x < m.cursor*step+barW && x < w; x++ {
			caret[x] = '▔'
		}
	}
	b.WriteString(strings.Repeat(" ", leftGutter))
	b.WriteString(StyleHighlight.Render(string(caret)))

	return b.String()
}

// barColor picks the terminal color for a bar: the stroke color when high
// contrast resolved one, the fill otherwise.
func (m viewModel) barColor(p pareto.DataPoint) string {
	if bar := m.ctrl.State().BarAt(p.Index); bar != nil {
		if m.ctrl.Theme().HighContrast && bar.StrokeColor != "" {
			return bar.StrokeColor
		}
		return bar.Fill
	}
	return p.Color
}

// axisLabels returns the value and percent gutter labels for row y. Only the
// top, middle, and bottom rows carry labels.
func axisLabels(y, h int, s pareto.Series) (string, string) {
	switch y {
	case 0:
		return formatAxisValue(s.Total, s), "100%"
	case h / 2:
		return formatAxisValue(s.Total/2, s), "50%"
	case h - 1:
		return formatAxisValue(0, s), "0%"
	}
	return "", ""
}

// formatAxisValue renders a value-axis label with the series' format token.
func formatAxisValue(v float64, s pareto.Series) string {
	format := ""
	if len(s.Points) > 0 {
		format = s.Points[0].ValueFormat
	}
	return pareto.FormatValue(v, format)
}

// statusLine shows the tooltip payload for the bar under the cursor plus
// selection and mode notes.
func (m viewModel) statusLine() string {
	s := m.ctrl.Series()
	if len(s.Points) == 0 {
		return " " + StyleDim.Render("no data")
	}

	tip := m.ctrl.TooltipAt(s.Points[m.cursor].Index)
	parts := []string{StyleHighlight.Render(tip.Label)}
	if tip.Value != "" {
		parts = append(parts, StyleValue.Render(tip.Value))
	}
	parts = append(parts, tip.Header)
	if sel := m.ctrl.Selection(); !sel.Empty() {
		parts = append(parts, StyleSuccess.Render(fmt.Sprintf("%d selected", sel.Len())))
	}
	if m.status != "" {
		parts = append(parts, StyleDim.Render(m.status))
	}
	return " " + strings.Join(parts, StyleDim.Render(" · "))
}

func (m viewModel) helpLine() string {
	return StyleDim.Render(" ←/→ move · space select · c clear · h contrast · tab table · q quit")
}

// =============================================================================
// Braille Buffer
// =============================================================================

// braille is a 2x4 micro-pixel buffer over a cell grid. Each terminal cell
// holds eight addressable pixels encoded as one braille rune.
type braille struct {
	w, h  int
	masks [][]uint8
}

func newBraille(w, h int) *braille {
	masks := make([][]uint8, h)
	for i := range masks {
		masks[i] = make([]uint8, w)
	}
	return &braille{w: w, h: h, masks: masks}
}

// set turns on the micro-pixel at (mx, my). Out-of-range pixels are dropped.
func (b *braille) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= b.w || cy >= b.h {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.masks[cy][cx] |= bit
}

// line draws a straight segment on the micro grid using Bresenham.
func (b *braille) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cells renders the buffer as a rune grid; untouched cells are spaces.
func (b *braille) cells() [][]rune {
	out := make([][]rune, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.masks[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = row
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
