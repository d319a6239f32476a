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

// Package testcases contains example charts, used for tests and for
// exporting sample output.
package testcases

import (
	"seehuhn.de/go/semidonut"
)

// TestCase is a named chart.
type TestCase struct {
	Name  string // lowercase a-z and _ only
	Input semidonut.ChartInput

	// Segments is the number of segments Layout must produce.
	Segments int
}

// chart builds a chart input with the given radius and the default centre.
func chart(radius, ratio, total float64, slices ...semidonut.Slice) semidonut.ChartInput {
	return semidonut.ChartInput{
		Slices:      slices,
		TotalValue:  total,
		OuterRadius: radius,
		InnerRatio:  ratio,
		Center:      semidonut.DefaultCenter(radius),
	}
}

// sl is a helper to create a slice.
func sl(label string, value float64, color string) semidonut.Slice {
	return semidonut.Slice{Label: label, Value: value, Color: color}
}
