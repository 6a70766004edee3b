// Package pareto implements the data-to-geometry pipeline for Pareto charts:
// categorical bars measured on a left value axis, overlaid with a
// cumulative-percentage line measured on a right percent axis.
//
// # Overview
//
// The pipeline runs in three pure stages:
//
//  1. [BuildPoints] turns a dataset query result into typed data points,
//     resolving fill and stroke colors and issuing selection identities.
//  2. [ComputeSeries] accumulates the running total and derives each point's
//     cumulative percentage plus the overlay line's vertex list.
//  3. [Project] maps the series into pixel space through three scales: a
//     band scale for category x-positions and two linear scales sharing one
//     vertical pixel range (values on the left, 0-100 percent on the right).
//
// Each stage consumes the previous stage's output and returns fresh values.
// Nothing is retained between updates: scales and geometry are rebuilt from
// scratch every time data or viewport changes, so stale tick computations
// can never leak into the next frame.
//
// # Accumulation Order
//
// Cumulative percentages accumulate in input index order. Categories are not
// sorted by descending value first, so the line's shape follows however the
// dataset ordered its rows. Callers wanting a classical sorted Pareto must
// sort the dataset before building points.
//
// # Usage
//
//	points := pareto.BuildPoints(q, pareto.BuildOptions{Theme: th})
//	series := pareto.ComputeSeries(points)
//	geom := pareto.Project(series, pareto.Viewport{Width: 800, Height: 400}, pareto.DefaultMargins())
//
// An empty query result builds an empty point sequence and everything
// downstream renders nothing; no stage returns an error.
package pareto
