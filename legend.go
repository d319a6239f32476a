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
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LegendEntry is one line of a chart legend.
type LegendEntry struct {
	Label string
	Value float64
	Color string
}

// String formats the entry as "label (value)".
func (e LegendEntry) String() string {
	return e.Label + " (" + strconv.FormatFloat(e.Value, 'f', -1, 64) + ")"
}

// Legend returns one legend entry for every slice, in order.
// Unlike [Layout], slices with value zero are included.
func Legend(slices []Slice) []LegendEntry {
	if len(slices) == 0 {
		return nil
	}
	res := make([]LegendEntry, len(slices))
	for i, s := range slices {
		res[i] = LegendEntry{Label: s.Label, Value: s.Value, Color: s.Color}
	}
	return res
}

// Chart bundles the output of [Layout] with the legend of the same input.
// This is what the rendering packages consume.
type Chart struct {
	Input    ChartInput
	Segments []Segment
	Legend   []LegendEntry
}

// NewChart lays out the input and computes its legend.
// A zero Center is replaced by [DefaultCenter], so that the whole ring lies
// inside [Chart.Canvas].
func NewChart(in ChartInput) (*Chart, error) {
	if in.Center == (vec.Vec2{}) {
		in.Center = DefaultCenter(in.OuterRadius)
	}
	segs, err := Layout(in)
	if err != nil {
		return nil, err
	}
	return &Chart{
		Input:    in,
		Segments: segs,
		Legend:   Legend(in.Slices),
	}, nil
}

// Canvas returns the drawing area of the chart.  It reaches from the origin
// to 110% of the outer radius right of and below the centre.  For the
// default centre this is the square around the full circle of the outer
// edge, with a margin of 10% of the outer radius.  Parts of the ring at
// negative coordinates are clipped.  The legend is placed below this area.
func (c *Chart) Canvas() rect.Rect {
	r := c.Input.OuterRadius
	m := r + r/10
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: c.Input.Center.X + m,
		URy: c.Input.Center.Y + m,
	}
}
