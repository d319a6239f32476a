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

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/theme"
)

// Write writes a complete SVG document for the chart to w.
//
// Each segment becomes a filled path, outlined in the separator colour of
// the theme.  The legend is placed below the chart, one entry per line.
func Write(w io.Writer, chart *semidonut.Chart, th theme.Theme) error {
	return Formatter{Precision: DefaultPrecision}.Write(w, chart, th)
}

// Write writes a complete SVG document for the chart to w, using the
// precision of f for all numbers.
func (f Formatter) Write(w io.Writer, chart *semidonut.Chart, th theme.Theme) error {
	if err := th.Validate(); err != nil {
		return err
	}
	for _, e := range chart.Legend {
		if _, err := theme.ParseColor(e.Color); err != nil {
			return fmt.Errorf("slice %q: %w", e.Label, err)
		}
	}

	canvas := chart.Canvas()
	width := canvas.URx
	height := canvas.URy + th.LegendHeight(len(chart.Legend))

	bw := bufio.NewWriter(w)
	n := f.Number
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" style="background-color:%s">`+"\n",
		n(width), n(height), n(width), n(height), th.Background)
	fmt.Fprintf(bw, `<rect width="%s" height="%s" fill="%s"/>`+"\n", n(width), n(height), th.Paper)

	if len(chart.Segments) > 0 {
		fmt.Fprintf(bw, `<g stroke="%s" stroke-width="%s" stroke-linejoin="round">`+"\n",
			th.Separator, n(th.SeparatorWidth))
		for _, seg := range chart.Segments {
			fmt.Fprintf(bw, `<path d="%s" fill="%s"/>`+"\n", f.PathCommand(seg), seg.Slice.Color)
		}
		bw.WriteString("</g>\n")
	}

	if len(chart.Legend) > 0 {
		left := canvas.LLx + 0.1*chart.Input.OuterRadius
		fmt.Fprintf(bw, `<g font-family="Inter, sans-serif" font-size="%s" fill="%s">`+"\n",
			n(th.LegendFontSize), th.TextPrimary)
		for i, e := range chart.Legend {
			baseline := canvas.URy + float64(i+1)*th.LineHeight()
			mid := baseline - 0.35*th.LegendFontSize
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				n(left+th.LegendSwatch/2), n(mid), n(th.LegendSwatch/2), e.Color)
			fmt.Fprintf(bw, `<text x="%s" y="%s">`, n(left+th.LegendSwatch+0.5*th.LegendFontSize), n(baseline))
			xml.EscapeText(bw, []byte(e.String()))
			bw.WriteString("</text>\n")
		}
		bw.WriteString("</g>\n")
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
