// Package chart wires the update path behind a single Controller.
//
// # Overview
//
// The Controller owns everything with cross-update lifetime: the theme (and
// its palette assignments), the identity issuer, the selection manager, and
// the render state arena. Callers feed it events one at a time:
//
//	ctrl := chart.New(chart.Config{})
//	diff := ctrl.Update(query, pareto.Viewport{Width: 800, Height: 400})
//	ctrl.Toggle(ctrl.State().BarAt(0).Selection)
//	svg := ctrl.SVG()
//
// # Event Ordering
//
// A Controller is not safe for concurrent use. Events are applied in call
// order, and each Update applies the confirmed selection's highlighting
// before it returns, so a caller never observes freshly synced bars without
// their opacity resolved. Selection changes between updates re-highlight the
// then-current element set; both paths converge on the same opacities.
package chart

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/render"
	"github.com/KuroiKoyani/pareto-chart/pkg/selection"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// Config configures a Controller. Zero values select defaults.
type Config struct {
	// Theme styles bars, line, and axes. Defaults to theme.Default().
	Theme *theme.Theme

	// Logger receives debug events. Defaults to a discarding logger.
	Logger *log.Logger
}

// Controller runs the build, accumulate, project, and sync stages over a
// persistent render state, and routes selection changes into highlighting.
type Controller struct {
	theme   *theme.Theme
	logger  *log.Logger
	manager *selection.Manager
	state   *render.State

	// issuer is rebuilt when the data source changes so identities stay
	// stable across updates of the same source.
	issuer *selection.Issuer
	source string

	series pareto.Series
	geom   pareto.Geometry
}

// New creates a Controller with an empty element set and no selection.
func New(cfg Config) *Controller {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Controller{
		theme:   th,
		logger:  logger,
		manager: selection.NewManager(),
		state:   render.NewState(),
	}
}

// Update runs the full pipeline for a query result: build points, accumulate
// the cumulative series, project geometry for the viewport, and sync the
// render state. The confirmed selection's highlighting is applied before
// Update returns.
func (c *Controller) Update(q dataset.QueryResult, vp pareto.Viewport) render.Diff {
	if c.issuer == nil || c.source != q.Category.Source {
		c.source = q.Category.Source
		c.issuer = selection.NewIssuer(q.Category.Source)
	}

	points := pareto.BuildPoints(q, pareto.BuildOptions{Theme: c.theme, Issuer: c.issuer})
	c.series = pareto.ComputeSeries(points)
	c.geom = pareto.Project(c.series, vp, pareto.DefaultMargins())

	diff := c.state.Sync(c.series, c.geom, c.theme)
	c.state.SyncHighlight(c.manager.Current(), c.theme)

	c.logger.Debug("chart updated",
		"points", len(c.series.Points),
		"created", len(diff.Created),
		"updated", len(diff.Updated),
		"removed", len(diff.Removed))
	return diff
}

// ApplySelection replaces the confirmed selection and re-highlights the
// current element set without re-running the pipeline.
func (c *Controller) ApplySelection(sel selection.Set) {
	c.manager.Select(sel.Members()...)
	c.state.SyncHighlight(c.manager.Current(), c.theme)
	c.logger.Debug("selection applied", "members", sel.Len())
}

// Select replaces the selection with the given identities and applies the
// confirmed set's highlighting.
func (c *Controller) Select(ids ...selection.Identity) selection.Set {
	sel := <-c.manager.Select(ids...)
	c.state.SyncHighlight(sel, c.theme)
	return sel
}

// Toggle flips one identity's membership and applies the confirmed set's
// highlighting.
func (c *Controller) Toggle(id selection.Identity) selection.Set {
	sel := <-c.manager.Toggle(id)
	c.state.SyncHighlight(sel, c.theme)
	return sel
}

// ClearSelection empties the selection; every bar returns to solid.
func (c *Controller) ClearSelection() selection.Set {
	sel := <-c.manager.Clear()
	c.state.SyncHighlight(sel, c.theme)
	return sel
}

// Selection returns the confirmed selection set.
func (c *Controller) Selection() selection.Set {
	return c.manager.Current()
}

// State exposes the render state arena. Callers must not mutate it.
func (c *Controller) State() *render.State { return c.state }

// Series returns the series from the last Update.
func (c *Controller) Series() pareto.Series { return c.series }

// Geometry returns the projected geometry from the last Update.
func (c *Controller) Geometry() pareto.Geometry { return c.geom }

// Theme returns the controller's theme.
func (c *Controller) Theme() *theme.Theme { return c.theme }

// SVG encodes the current element set as an SVG document.
func (c *Controller) SVG() []byte {
	return render.EncodeSVG(c.state, c.theme)
}

// TooltipAt returns the tooltip payload for the bar with the given point
// index, or a zero tooltip when no such bar exists.
func (c *Controller) TooltipAt(index int) render.Tooltip {
	return render.TooltipFor(c.state.BarAt(index))
}
