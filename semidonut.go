// seehuhn.de/go/semidonut - semi-circular ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package semidonut lays out semi-circular ring charts.
//
// A chart is a sequence of slices which share a 180° arc in proportion to
// their values.  [Layout] turns the slices into ring segments (annulus
// sectors) described by their arc end points, angles and large-arc flags.
// Angles are measured in degrees, with 0° pointing up and angles increasing
// clockwise, in a coordinate system where the y axis points down.
//
// The package only computes geometry.  The svg, pdfchart and raster
// sub-packages turn segments into drawable output.
package semidonut

import "seehuhn.de/go/geom/vec"

// FullSweep is the angle, in degrees, covered by a complete chart.
const FullSweep = 180.0

// sweepTolerance is the distance, in degrees, below which an end angle is
// snapped to [FullSweep].
const sweepTolerance = 1e-9

// Slice is one category of a chart.
type Slice struct {
	Label string  // display name
	Value float64 // non-negative magnitude
	Color string  // colour token, used for rendering only
}

// ChartInput describes a chart to be laid out.
type ChartInput struct {
	// Slices lists the categories in drawing order.  The first slice
	// starts at 0°.
	Slices []Slice

	// TotalValue is the value which corresponds to the full 180° arc.
	// Normally this is the sum of all slice values, but callers may
	// normalise against a larger total.  If TotalValue is not positive,
	// the chart is empty.
	TotalValue float64

	// OuterRadius is the radius of the outer edge.  Must be positive.
	OuterRadius float64

	// InnerRatio gives the inner radius as a fraction of OuterRadius.
	// Must be strictly between 0 and 1.
	InnerRatio float64

	// Center is the centre of the circle the arcs lie on.
	Center vec.Vec2
}

// InnerRadius returns the radius of the inner edge of the ring.
func (in *ChartInput) InnerRadius() float64 {
	return in.OuterRadius * in.InnerRatio
}

// DefaultCenter returns the centre used for a chart with the given outer
// radius, leaving a margin of 10% of the radius around the circle.
func DefaultCenter(outerRadius float64) vec.Vec2 {
	c := outerRadius + outerRadius/10
	return vec.Vec2{X: c, Y: c}
}

// Segment is the geometry of one non-empty slice.
type Segment struct {
	Index int   // position of the slice in ChartInput.Slices
	Slice Slice // the slice this segment was computed from

	OuterStart, OuterEnd vec.Vec2 // arc end points on the outer radius
	InnerStart, InnerEnd vec.Vec2 // arc end points on the inner radius

	StartAngle float64 // degrees, 0° is at the top
	EndAngle   float64 // degrees, clockwise from the top

	// LargeArc is set when the segment covers the full 180° arc.
	LargeArc bool

	Center      vec.Vec2
	OuterRadius float64
	InnerRadius float64
}

// Sweep returns the angular width of the segment in degrees.
func (s *Segment) Sweep() float64 {
	return s.EndAngle - s.StartAngle
}
