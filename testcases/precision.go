package testcases

import (
	"strconv"

	"seehuhn.de/go/semidonut"
)

var precisionCases = []TestCase{
	{
		Name:     "many_tenths",
		Input:    chart(100, 0.5, 100, repeated(1000, 0.1)...),
		Segments: 1000,
	},
	{
		Name:     "thirds",
		Input:    chart(100, 0.5, 1, repeated(3, 1.0/3)...),
		Segments: 3,
	},
	{
		Name: "tiny_slice",
		Input: chart(100, 0.5, 1e9,
			sl("tiny", 1, red),
			sl("huge", 1e9-1, green)),
		Segments: 2,
	},
	{
		Name: "huge_values",
		Input: chart(100, 0.5, 2e307,
			sl("a", 1e307, red),
			sl("b", 1e307, blue)),
		Segments: 2,
	},
}

// repeated builds n slices of the same value, cycling through the palette.
func repeated(n int, value float64) []semidonut.Slice {
	palette := []string{red, amber, green, orange, blue}
	res := make([]semidonut.Slice, n)
	for i := range res {
		res[i] = sl("s"+strconv.Itoa(i), value, palette[i%len(palette)])
	}
	return res
}
