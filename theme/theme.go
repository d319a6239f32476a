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

// Package theme holds the colours and sizes used when drawing a chart.
//
// A Theme is a plain value.  Renderers receive it as an argument, there is
// no global state.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdef"

// ErrBadColor is returned by [ParseColor] for tokens it does not understand.
var ErrBadColor = errors.New("malformed colour token")

// Theme describes the appearance of a rendered chart.
type Theme struct {
	Background    string // page background
	Paper         string // chart card background
	TextPrimary   string // legend text
	TextSecondary string // captions

	// Separator is the colour of the outline drawn around each segment.
	// The outline separates neighbouring segments.
	Separator      string
	SeparatorWidth float64

	// LegendFontSize is the size of the legend text, in the same units as
	// the chart radius.
	LegendFontSize float64

	// LegendSwatch is the diameter of the coloured dot in front of each
	// legend entry.
	LegendSwatch float64
}

// Dark returns the dark dashboard theme.
func Dark() Theme {
	return Theme{
		Background:     "#121212",
		Paper:          "#1e1e1e",
		TextPrimary:    "#e0e0e0",
		TextSecondary:  "#b3b3b3",
		Separator:      "#1e1e1e",
		SeparatorWidth: 2,
		LegendFontSize: 14,
		LegendSwatch:   10,
	}
}

// Validate checks that all colour tokens can be parsed and that sizes are
// not negative.
func (th *Theme) Validate() error {
	tokens := []struct{ name, value string }{
		{"Background", th.Background},
		{"Paper", th.Paper},
		{"TextPrimary", th.TextPrimary},
		{"TextSecondary", th.TextSecondary},
		{"Separator", th.Separator},
	}
	for _, tok := range tokens {
		if _, err := ParseColor(tok.value); err != nil {
			return fmt.Errorf("theme %s: %w", tok.name, err)
		}
	}
	if th.SeparatorWidth < 0 || th.LegendFontSize < 0 || th.LegendSwatch < 0 {
		return errors.New("theme: negative size")
	}
	return nil
}

// ParseColor converts a "#rgb" or "#rrggbb" colour token into an opaque
// RGBA colour.
func ParseColor(token string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if len(s) != 4 && len(s) != 7 || s[0] != '#' || strings.Trim(s[1:], hexDigits) != "" {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, token)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, token)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseColorOr is like [ParseColor], but returns fallback if the token is
// malformed.
func ParseColorOr(token string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(token)
	if err != nil {
		return fallback
	}
	return c
}

// LineHeight returns the distance between two legend lines.
func (th *Theme) LineHeight() float64 {
	return 1.5 * th.LegendFontSize
}

// LegendHeight returns the vertical space needed for a legend with n
// entries.
func (th *Theme) LegendHeight(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n)*th.LineHeight() + 0.5*th.LegendFontSize
}
