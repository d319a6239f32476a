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
	"errors"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/testcases"
)

const angleEps = 1e-9

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				segs, err := semidonut.Layout(tc.Input)
				if err != nil {
					t.Fatal(err)
				}
				if len(segs) != tc.Segments {
					t.Fatalf("got %d segments, want %d", len(segs), tc.Segments)
				}
				checkInvariants(t, tc.Input, segs)
			})
		}
	}
}

// checkInvariants verifies the properties every layout must have.
func checkInvariants(t *testing.T, in semidonut.ChartInput, segs []semidonut.Segment) {
	t.Helper()

	prevIndex := -1
	prevEnd := 0.0
	var sumValues, total float64
	for _, s := range in.Slices {
		sumValues += s.Value
	}
	for i, seg := range segs {
		if seg.Index <= prevIndex {
			t.Errorf("segment %d: index %d not increasing", i, seg.Index)
		}
		if seg.Slice != in.Slices[seg.Index] {
			t.Errorf("segment %d: wrong source slice", i)
		}
		if seg.Slice.Value == 0 {
			t.Errorf("segment %d: zero-valued slice rendered", i)
		}
		prevIndex = seg.Index

		if seg.StartAngle != prevEnd {
			t.Errorf("segment %d: gap, start %g != previous end %g", i, seg.StartAngle, prevEnd)
		}
		if !(seg.EndAngle > seg.StartAngle) {
			t.Errorf("segment %d: empty sweep %g..%g", i, seg.StartAngle, seg.EndAngle)
		}
		if seg.EndAngle > semidonut.FullSweep {
			t.Errorf("segment %d: end angle %g beyond 180°", i, seg.EndAngle)
		}
		prevEnd = seg.EndAngle
		total += seg.Sweep()

		outer := in.OuterRadius
		inner := in.OuterRadius * in.InnerRatio
		for _, p := range []vec.Vec2{seg.OuterStart, seg.OuterEnd} {
			checkDist(t, p, in.Center, outer)
		}
		for _, p := range []vec.Vec2{seg.InnerStart, seg.InnerEnd} {
			checkDist(t, p, in.Center, inner)
		}
	}

	// sweep conservation
	if in.TotalValue > 0 && len(segs) > 0 && sumValues >= in.TotalValue {
		if math.Abs(total-semidonut.FullSweep) > angleEps {
			t.Errorf("total sweep %.15g, want 180", total)
		}
		if last := segs[len(segs)-1]; last.EndAngle != semidonut.FullSweep {
			t.Errorf("last end angle %.17g, want exactly 180", last.EndAngle)
		}
	}
}

func checkDist(t *testing.T, p, center vec.Vec2, r float64) {
	t.Helper()
	d := p.Sub(center).Length()
	if math.Abs(d-r) > 1e-9*max(1, r) {
		t.Errorf("point %v at distance %g from centre, want %g", p, d, r)
	}
}

func TestProportional(t *testing.T) {
	in := semidonut.ChartInput{
		Slices: []semidonut.Slice{
			{Label: "A", Value: 30, Color: "#f00"},
			{Label: "B", Value: 70, Color: "#00f"},
		},
		TotalValue:  100,
		OuterRadius: 100,
		InnerRatio:  0.5,
	}
	segs, err := semidonut.Layout(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}

	want := [][2]float64{{0, 54}, {54, 180}}
	for i, seg := range segs {
		if math.Abs(seg.StartAngle-want[i][0]) > angleEps || math.Abs(seg.EndAngle-want[i][1]) > angleEps {
			t.Errorf("segment %d: %g..%g, want %g..%g",
				i, seg.StartAngle, seg.EndAngle, want[i][0], want[i][1])
		}
		if seg.LargeArc {
			t.Errorf("segment %d: unexpected large arc flag", i)
		}
	}
	if got := segs[0].Sweep(); math.Abs(got-54) > angleEps {
		t.Errorf("first sweep %g, want 54", got)
	}
	if got := segs[1].Sweep(); math.Abs(got-126) > angleEps {
		t.Errorf("second sweep %g, want 126", got)
	}
}

func TestHugeValues(t *testing.T) {
	in := semidonut.ChartInput{
		Slices: []semidonut.Slice{
			{Label: "a", Value: 1e307},
			{Label: "b", Value: 1e307},
		},
		TotalValue:  2e307,
		OuterRadius: 100,
		InnerRatio:  0.5,
	}
	segs, err := semidonut.Layout(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	want := [][2]float64{{0, 90}, {90, 180}}
	for i, seg := range segs {
		if seg.Index != i {
			t.Errorf("segment %d: index %d", i, seg.Index)
		}
		if math.Abs(seg.StartAngle-want[i][0]) > angleEps || math.Abs(seg.EndAngle-want[i][1]) > angleEps {
			t.Errorf("segment %d: %g..%g, want %g..%g",
				i, seg.StartAngle, seg.EndAngle, want[i][0], want[i][1])
		}
		if seg.LargeArc {
			t.Errorf("segment %d: unexpected large arc flag", i)
		}
	}
}

func TestSingleFullSlice(t *testing.T) {
	in := testcases.All["edge"][0].Input // single_full
	segs, err := semidonut.Layout(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	seg := segs[0]
	if seg.Index != 1 {
		t.Errorf("index %d, want 1", seg.Index)
	}
	if seg.StartAngle != 0 || seg.EndAngle != 180 {
		t.Errorf("angles %g..%g, want 0..180", seg.StartAngle, seg.EndAngle)
	}
	if !seg.LargeArc {
		t.Error("large arc flag not set")
	}
}

func TestRingRadii(t *testing.T) {
	center := vec.Vec2{X: 0, Y: 0}
	in := semidonut.ChartInput{
		Slices: []semidonut.Slice{
			{Label: "a", Value: 1}, {Label: "b", Value: 2}, {Label: "c", Value: 4},
		},
		TotalValue:  7,
		OuterRadius: 100,
		InnerRatio:  0.5,
		Center:      center,
	}
	segs, err := semidonut.Layout(in)
	if err != nil {
		t.Fatal(err)
	}
	for _, seg := range segs {
		checkDist(t, seg.InnerStart, center, 50)
		checkDist(t, seg.InnerEnd, center, 50)
		checkDist(t, seg.OuterStart, center, 100)
		checkDist(t, seg.OuterEnd, center, 100)
	}
}

func TestEmpty(t *testing.T) {
	cases := []semidonut.ChartInput{
		{OuterRadius: 1, InnerRatio: 0.5},
		{OuterRadius: 1, InnerRatio: 0.5, TotalValue: 10},
		{
			Slices:      []semidonut.Slice{{Label: "a", Value: 3}},
			OuterRadius: 1, InnerRatio: 0.5, TotalValue: 0,
		},
		{
			Slices:      []semidonut.Slice{{Label: "a", Value: 3}},
			OuterRadius: 1, InnerRatio: 0.5, TotalValue: -5,
		},
	}
	for i, in := range cases {
		segs, err := semidonut.Layout(in)
		if err != nil {
			t.Errorf("%d: unexpected error %v", i, err)
		}
		if len(segs) != 0 {
			t.Errorf("%d: got %d segments, want none", i, len(segs))
		}
	}
}

func TestInvalidConfiguration(t *testing.T) {
	valid := semidonut.ChartInput{
		Slices:      []semidonut.Slice{{Label: "a", Value: 1}},
		TotalValue:  1,
		OuterRadius: 100,
		InnerRatio:  0.5,
	}

	cases := []struct {
		name  string
		edit  func(in *semidonut.ChartInput)
		field string
	}{
		{"zero_radius", func(in *semidonut.ChartInput) { in.OuterRadius = 0 }, "OuterRadius"},
		{"negative_radius", func(in *semidonut.ChartInput) { in.OuterRadius = -1 }, "OuterRadius"},
		{"nan_radius", func(in *semidonut.ChartInput) { in.OuterRadius = math.NaN() }, "OuterRadius"},
		{"inf_radius", func(in *semidonut.ChartInput) { in.OuterRadius = math.Inf(1) }, "OuterRadius"},
		{"ratio_too_large", func(in *semidonut.ChartInput) { in.InnerRatio = 1.2 }, "InnerRatio"},
		{"ratio_one", func(in *semidonut.ChartInput) { in.InnerRatio = 1 }, "InnerRatio"},
		{"ratio_zero", func(in *semidonut.ChartInput) { in.InnerRatio = 0 }, "InnerRatio"},
		{"nan_total", func(in *semidonut.ChartInput) { in.TotalValue = math.NaN() }, "TotalValue"},
		{"negative_value", func(in *semidonut.ChartInput) {
			in.Slices = []semidonut.Slice{{Label: "a", Value: 1}, {Label: "b", Value: -1}}
		}, "Slices[1].Value"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid
			c.edit(&in)
			segs, err := semidonut.Layout(in)
			if !errors.Is(err, semidonut.ErrInvalidConfiguration) {
				t.Fatalf("got error %v, want ErrInvalidConfiguration", err)
			}
			var cfgErr *semidonut.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != c.field {
				t.Errorf("got %v, want error for field %s", err, c.field)
			}
			if segs != nil {
				t.Errorf("got %d segments alongside error", len(segs))
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			a, err := semidonut.Layout(tc.Input)
			if err != nil {
				t.Fatal(err)
			}
			b, err := semidonut.Layout(tc.Input)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(a, b); d != "" {
				t.Errorf("%s_%s: layouts differ (-first +second):\n%s", category, tc.Name, d)
			}
		}
	}
}

func TestPolarToCartesian(t *testing.T) {
	c := vec.Vec2{X: 10, Y: 20}
	cases := []struct {
		angle float64
		want  vec.Vec2
	}{
		{0, vec.Vec2{X: 10, Y: 15}},   // top
		{90, vec.Vec2{X: 15, Y: 20}},  // right
		{180, vec.Vec2{X: 10, Y: 25}}, // bottom
	}
	for _, tc := range cases {
		got := semidonut.PolarToCartesian(c, 5, tc.angle)
		if got.Sub(tc.want).Length() > 1e-12 {
			t.Errorf("angle %g: got %v, want %v", tc.angle, got, tc.want)
		}
	}
}

func TestAccumulatedRounding(t *testing.T) {
	// 0.1 cannot be represented exactly, so adding up 1000 sweeps of 0.18°
	// drifts away from 180°.
	n := 1000
	in := semidonut.ChartInput{
		TotalValue:  100,
		OuterRadius: 1,
		InnerRatio:  0.5,
	}
	for range n {
		in.Slices = append(in.Slices, semidonut.Slice{Label: "x", Value: 0.1})
	}
	segs, err := semidonut.Layout(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != n {
		t.Fatalf("got %d segments, want %d", len(segs), n)
	}
	last := segs[n-1]
	if last.EndAngle != 180 {
		t.Errorf("last end angle %.17g, want 180", last.EndAngle)
	}
	if last.LargeArc {
		t.Error("large arc flag set on a narrow segment")
	}
}
