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

package semidonut

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Validate checks that the chart can be laid out.
// The returned error, if any, is a [*ConfigError].
func (in *ChartInput) Validate() error {
	if !(in.OuterRadius > 0) || math.IsInf(in.OuterRadius, 0) {
		return &ConfigError{Field: "OuterRadius", Reason: "must be positive and finite"}
	}
	if !(in.InnerRatio > 0 && in.InnerRatio < 1) {
		return &ConfigError{Field: "InnerRatio", Reason: "must be between 0 and 1"}
	}
	if math.IsNaN(in.TotalValue) || math.IsInf(in.TotalValue, 0) {
		return &ConfigError{Field: "TotalValue", Reason: "must be finite"}
	}
	for i, s := range in.Slices {
		if !(s.Value >= 0) || math.IsInf(s.Value, 0) {
			field := "Slices[" + strconv.Itoa(i) + "].Value"
			return &ConfigError{Field: field, Reason: "must be non-negative and finite"}
		}
	}
	return nil
}

// Layout computes the ring segments of a chart.
//
// Slices are placed one after another, starting at 0°, and each slice
// covers Value/TotalValue of the 180° arc.  Slices which cover no angle,
// for example because their value is zero, produce no segment.  The
// returned segments are in the order of the slices they come from.
//
// The end angle of the chart never exceeds 180°.  If TotalValue is less
// than the sum of the slice values, slices beyond the end of the arc are
// dropped.  If TotalValue is not positive, the result is empty.
//
// An error is returned, and no segments, if the input fails [ChartInput.Validate].
func Layout(in ChartInput) ([]Segment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.TotalValue <= 0 {
		return nil, nil
	}

	outerR := in.OuterRadius
	innerR := in.InnerRadius()

	var segs []Segment
	var cumValue float64 // sum of the values of all slices so far
	startAngle := 0.0
	for i, s := range in.Slices {
		if s.Value == 0 {
			continue
		}

		// The end angle is derived from the running value sum rather than by
		// adding up sweeps, so that rounding errors cannot accumulate.
		// Dividing first keeps values near MaxFloat64 from overflowing.
		cumValue += s.Value
		endAngle := min(cumValue/in.TotalValue*FullSweep, FullSweep)
		if FullSweep-endAngle <= sweepTolerance {
			endAngle = FullSweep
		}
		if endAngle <= startAngle {
			continue
		}

		segs = append(segs, Segment{
			Index:       i,
			Slice:       s,
			OuterStart:  PolarToCartesian(in.Center, outerR, startAngle),
			OuterEnd:    PolarToCartesian(in.Center, outerR, endAngle),
			InnerStart:  PolarToCartesian(in.Center, innerR, startAngle),
			InnerEnd:    PolarToCartesian(in.Center, innerR, endAngle),
			StartAngle:  startAngle,
			EndAngle:    endAngle,
			LargeArc:    endAngle-startAngle >= FullSweep,
			Center:      in.Center,
			OuterRadius: outerR,
			InnerRadius: innerR,
		})
		startAngle = endAngle
	}
	return segs, nil
}

// PolarToCartesian returns the point at distance r from center, in the
// direction given by angle.  The angle is in degrees; 0° points up, 90°
// points right and 180° points down (the y axis points down).
func PolarToCartesian(center vec.Vec2, r, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return vec.Vec2{
		X: center.X + r*sin,
		Y: center.Y - r*cos,
	}
}
