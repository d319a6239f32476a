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

package semidonut_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/semidonut"
)

// benchInput returns a chart with n equal slices.
func benchInput(n int) semidonut.ChartInput {
	in := semidonut.ChartInput{
		TotalValue:  float64(n),
		OuterRadius: 100,
		InnerRatio:  0.5,
		Center:      semidonut.DefaultCenter(100),
	}
	for i := range n {
		in.Slices = append(in.Slices, semidonut.Slice{
			Label: fmt.Sprintf("s%d", i),
			Value: 1,
		})
	}
	return in
}

func BenchmarkLayout(b *testing.B) {
	for _, n := range []int{3, 30, 3000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			in := benchInput(n)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := semidonut.Layout(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkOutline(b *testing.B) {
	segs, err := semidonut.Layout(benchInput(3))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		for i := range segs {
			segs[i].Outline()
		}
	}
}

// BenchmarkFillSegments measures x/image/vector filling all segment
// outlines of a chart.
func BenchmarkFillSegments(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := float64(size) / 2.2
			in := benchInput(5)
			in.OuterRadius = r
			in.Center = semidonut.DefaultCenter(r)
			segs, err := semidonut.Layout(in)
			if err != nil {
				b.Fatal(err)
			}
			outlines := make([]*path.Data, len(segs))
			for i := range segs {
				outlines[i] = segs[i].Outline()
			}

			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			b.ReportAllocs()
			for b.Loop() {
				for _, p := range outlines {
					z.Reset(size, size)
					for cmd, pts := range p.Iter() {
						switch cmd {
						case path.CmdMoveTo:
							z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
						case path.CmdLineTo:
							z.LineTo(float32(pts[0].X), float32(pts[0].Y))
						case path.CmdCubeTo:
							z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
								float32(pts[1].X), float32(pts[1].Y),
								float32(pts[2].X), float32(pts[2].Y))
						case path.CmdClose:
							z.ClosePath()
						}
					}
					z.Draw(dst, dst.Bounds(), src, image.Point{})
				}
			}
		})
	}
}
