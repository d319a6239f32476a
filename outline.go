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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxArcStep is the largest angle, in degrees, approximated by a single
// cubic Bézier curve.
const maxArcStep = 90.0

// Outline returns the boundary of the segment as a closed path.
//
// The path starts at OuterStart, follows the outer arc clockwise to
// OuterEnd, continues with a straight line to InnerEnd and follows the inner
// arc back to InnerStart.  Arcs are approximated by cubic Bézier curves.
func (s *Segment) Outline() *path.Data {
	p := (&path.Data{}).MoveTo(s.OuterStart)
	appendArc(p, s.Center, s.OuterRadius, s.StartAngle, s.EndAngle)
	p.LineTo(s.InnerEnd)
	appendArc(p, s.Center, s.InnerRadius, s.EndAngle, s.StartAngle)
	return p.Close()
}

// Circle returns a closed path approximating the circle with the given
// centre and radius.  The path starts at the top and runs clockwise.
func Circle(center vec.Vec2, r float64) *path.Data {
	p := (&path.Data{}).MoveTo(PolarToCartesian(center, r, 0))
	appendArc(p, center, r, 0, 360)
	return p.Close()
}

// appendArc adds a circular arc from angle a0 to angle a1 to p.
// The current point of p must be the start of the arc.
// Angles are in degrees, using the same convention as [PolarToCartesian].
func appendArc(p *path.Data, center vec.Vec2, r, a0, a1 float64) {
	n := max(int(math.Ceil(math.Abs(a1-a0)/maxArcStep)), 1)
	step := (a1 - a0) / float64(n)

	// length of the control arms for one step
	k := r * 4 / 3 * math.Tan(step*math.Pi/180/4)

	prev := PolarToCartesian(center, r, a0)
	for i := 1; i <= n; i++ {
		from := a0 + float64(i-1)*step
		to := a0 + float64(i)*step
		if i == n {
			to = a1
		}
		next := PolarToCartesian(center, r, to)
		c1 := prev.Add(tangent(from).Mul(k))
		c2 := next.Sub(tangent(to).Mul(k))
		p.CubeTo(c1, c2, next)
		prev = next
	}
}

// tangent returns the unit vector pointing in the direction of increasing
// angle at the given angle.
func tangent(angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return vec.Vec2{X: cos, Y: sin}
}
