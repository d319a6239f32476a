package testcases

var edgeCases = []TestCase{
	{
		Name: "single_full",
		Input: chart(100, 0.5, 10,
			sl("Open", 0, red),
			sl("Closed", 10, green),
			sl("Blocked", 0, amber)),
		Segments: 1,
	},
	{
		Name: "zero_in_middle",
		Input: chart(100, 0.5, 4,
			sl("A", 1, red),
			sl("B", 0, amber),
			sl("C", 3, green)),
		Segments: 2,
	},
	{
		Name: "zero_total",
		Input: chart(100, 0.5, 0,
			sl("Open", 0, red),
			sl("Closed", 0, green)),
		Segments: 0,
	},
	{
		Name:     "no_slices",
		Input:    chart(100, 0.5, 0),
		Segments: 0,
	},
	{
		// normalised against a larger total: the chart covers half the arc
		Name: "superset_total",
		Input: chart(100, 0.5, 60,
			sl("A", 10, red),
			sl("B", 20, blue)),
		Segments: 2,
	},
	{
		// the total is too small, the last slice falls off the end
		Name: "subset_total",
		Input: chart(100, 0.5, 10,
			sl("A", 4, red),
			sl("B", 6, blue),
			sl("C", 5, green)),
		Segments: 2,
	},
}
