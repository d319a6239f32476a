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

// Package pdfchart renders a chart as a single-page PDF file.
package pdfchart

import (
	"fmt"
	imgcolor "image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/theme"
)

var black = imgcolor.RGBA{A: 0xff}

// Write writes a one-page PDF document showing the chart to w.
// One PDF unit corresponds to one unit of the chart radius.
func Write(w io.Writer, chart *semidonut.Chart, th theme.Theme) error {
	if err := th.Validate(); err != nil {
		return err
	}
	fills := make([]color.Color, len(chart.Legend))
	for i, e := range chart.Legend {
		c, err := theme.ParseColor(e.Color)
		if err != nil {
			return fmt.Errorf("slice %q: %w", e.Label, err)
		}
		fills[i] = deviceRGB(c)
	}
	paper := deviceRGB(theme.ParseColorOr(th.Paper, black))
	separator := deviceRGB(theme.ParseColorOr(th.Separator, black))
	text := deviceRGB(theme.ParseColorOr(th.TextPrimary, black))

	canvas := chart.Canvas()
	width := canvas.URx
	height := canvas.URy + th.LegendHeight(len(chart.Legend))

	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: width, URy: height}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(paper)
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; chart coordinates have the y axis
	// pointing down.
	page.PushGraphicsState()
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	page.SetStrokeColor(separator)
	page.SetLineWidth(th.SeparatorWidth)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, seg := range chart.Segments {
		page.SetFillColor(fills[seg.Index])
		drawPath(page, seg.Outline())
		if th.SeparatorWidth > 0 {
			page.FillAndStroke()
		} else {
			page.Fill()
		}
	}

	left := canvas.LLx + 0.1*chart.Input.OuterRadius
	r := th.LegendSwatch / 2
	for i := range chart.Legend {
		mid := canvas.URy + float64(i+1)*th.LineHeight() - 0.35*th.LegendFontSize
		page.SetFillColor(fills[i])
		drawPath(page, semidonut.Circle(vec.Vec2{X: left + r, Y: mid}, r))
		page.Fill()
	}
	page.PopGraphicsState()

	if len(chart.Legend) > 0 {
		font, err := gofont.Regular.NewSimple(nil)
		if err != nil {
			return err
		}
		page.SetFillColor(text)
		page.TextSetFont(font, th.LegendFontSize)
		page.TextBegin()
		x := left + th.LegendSwatch + 0.5*th.LegendFontSize
		for i, e := range chart.Legend {
			if i == 0 {
				page.TextFirstLine(x, height-canvas.URy-th.LineHeight())
			} else {
				page.TextSecondLine(0, -th.LineHeight())
			}
			page.TextShow(e.String())
		}
		page.TextEnd()
	}

	return page.Close()
}

// drawPath appends the path to the current page.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// deviceRGB converts an 8-bit colour into the PDF RGB colour space.
func deviceRGB(c imgcolor.RGBA) color.DeviceRGB {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
