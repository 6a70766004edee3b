package pipeline

import (
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
)

// BuildSeries assembles data points from the dataset and accumulates the
// cumulative series. Points keep the dataset's order; the running sum and
// percentages follow that order, not a value sort.
func BuildSeries(q dataset.QueryResult, opts Options) (pareto.Series, error) {
	th, err := opts.ResolveTheme()
	if err != nil {
		return pareto.Series{}, err
	}

	points := pareto.BuildPoints(q, pareto.BuildOptions{Theme: th})
	return pareto.ComputeSeries(points), nil
}

// ProjectGeometry maps a series onto pixel geometry for the options'
// viewport, using the chart's fixed margins.
func ProjectGeometry(s pareto.Series, opts Options) (pareto.Geometry, error) {
	if err := opts.ValidateForProject(); err != nil {
		return pareto.Geometry{}, err
	}
	return pareto.Project(s, opts.Viewport(), pareto.DefaultMargins()), nil
}
