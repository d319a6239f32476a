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

// Package raster renders charts into anti-aliased RGBA images.
//
// One pixel corresponds to one unit of the chart radius.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/theme"
)

// MaxPixels is the largest image, in pixels, which [Render] will allocate.
const MaxPixels = 1 << 26

// ErrTooLarge is returned by [Render] if the image would have more than
// [MaxPixels] pixels.
var ErrTooLarge = errors.New("image too large")

// Render draws the chart, including its legend, into a new image.
//
// Neighbouring segments are separated by radial lines in the separator
// colour of the theme.  The outer ends of the chart at 0° and 180° have no
// separator.  The legend text uses a fixed 7x13 pixel font, regardless of
// the legend font size of the theme.
func Render(chart *semidonut.Chart, th theme.Theme) (*image.RGBA, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	fills := make([]color.RGBA, len(chart.Legend))
	for i, e := range chart.Legend {
		c, err := theme.ParseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("slice %q: %w", e.Label, err)
		}
		fills[i] = c
	}
	black := color.RGBA{A: 0xff}
	paper := theme.ParseColorOr(th.Paper, black)
	separator := theme.ParseColorOr(th.Separator, black)
	text := theme.ParseColorOr(th.TextPrimary, black)

	canvas := chart.Canvas()
	w := math.Ceil(canvas.URx)
	h := math.Ceil(canvas.URy + th.LegendHeight(len(chart.Legend)))
	if !(w*h <= MaxPixels) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrTooLarge, w, h)
	}
	width, height := int(w), int(h)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)
	fill := func(p *path.Data, c color.RGBA) {
		z.Reset(width, height)
		addPath(z, p)
		z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}

	for _, seg := range chart.Segments {
		fill(seg.Outline(), fills[seg.Index])
	}
	if th.SeparatorWidth > 0 {
		// Segments are contiguous, so the start of every segment but the
		// first is a boundary between neighbours.
		for _, seg := range chart.Segments[min(1, len(chart.Segments)):] {
			fill(radialLine(seg, seg.StartAngle, th.SeparatorWidth), separator)
		}
	}

	left := canvas.LLx + 0.1*chart.Input.OuterRadius
	r := th.LegendSwatch / 2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(text),
		Face: basicfont.Face7x13,
	}
	for i, e := range chart.Legend {
		baseline := canvas.URy + float64(i+1)*th.LineHeight()
		mid := baseline - 0.35*th.LegendFontSize
		if r > 0 {
			fill(semidonut.Circle(vec.Vec2{X: left + r, Y: mid}, r), fills[i])
		}
		d.Dot = fixed.P(int(math.Round(left+th.LegendSwatch+0.5*th.LegendFontSize)), int(math.Round(baseline)))
		d.DrawString(e.String())
	}

	return dst, nil
}

// WritePNG renders the chart and writes it to w in PNG format.
func WritePNG(w io.Writer, chart *semidonut.Chart, th theme.Theme) error {
	img, err := Render(chart, th)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// addPath adds a path to the rasterizer.
func addPath(z *vector.Rasterizer, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

// radialLine returns a thin rectangle along the given angle, reaching from
// the inner to the outer edge of the segment.
func radialLine(seg semidonut.Segment, angle, width float64) *path.Data {
	a := semidonut.PolarToCartesian(seg.Center, seg.InnerRadius, angle)
	b := semidonut.PolarToCartesian(seg.Center, seg.OuterRadius, angle)
	n := b.Sub(a).Normal().Mul(width / 2)
	return (&path.Data{}).
		MoveTo(a.Add(n)).
		LineTo(b.Add(n)).
		LineTo(b.Sub(n)).
		LineTo(a.Sub(n)).
		Close()
}
