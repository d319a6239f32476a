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

// Package svg converts chart segments into SVG path data and documents.
package svg

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/semidonut"
)

// DefaultPrecision is the number of decimal places used by [PathCommand].
const DefaultPrecision = 3

// Formatter converts numbers and segments to SVG syntax.
// The zero value prints integers only.
type Formatter struct {
	// Precision is the maximal number of digits after the decimal point.
	Precision int
}

// PathCommand returns the SVG path data for a segment, using
// [DefaultPrecision].
func PathCommand(seg semidonut.Segment) string {
	return Formatter{Precision: DefaultPrecision}.PathCommand(seg)
}

// PathCommand returns the SVG path data for a segment.
//
// The path moves to the start of the outer arc, draws the outer arc
// clockwise, draws a line to the end of the inner arc, draws the inner arc
// counter-clockwise back to its start and closes the path.
func (f Formatter) PathCommand(seg semidonut.Segment) string {
	large := "0"
	if seg.LargeArc {
		large = "1"
	}
	outerR := f.Number(seg.OuterRadius)
	innerR := f.Number(seg.InnerRadius)

	var b strings.Builder
	b.WriteString("M ")
	f.writePoint(&b, seg.OuterStart)
	b.WriteString(" A " + outerR + " " + outerR + " 0 " + large + " 1 ")
	f.writePoint(&b, seg.OuterEnd)
	b.WriteString(" L ")
	f.writePoint(&b, seg.InnerEnd)
	b.WriteString(" A " + innerR + " " + innerR + " 0 " + large + " 0 ")
	f.writePoint(&b, seg.InnerStart)
	b.WriteString(" Z")
	return b.String()
}

func (f Formatter) writePoint(b *strings.Builder, p vec.Vec2) {
	b.WriteString(f.Number(p.X))
	b.WriteByte(' ')
	b.WriteString(f.Number(p.Y))
}

// Number formats x with at most f.Precision decimal places.  Trailing zeros
// are removed and negative zero is printed as "0".  The output does not
// depend on the locale.
func (f Formatter) Number(x float64) string {
	s := strconv.FormatFloat(x, 'f', max(f.Precision, 0), 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
