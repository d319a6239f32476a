package testcases

const (
	red    = "#ef5350"
	amber  = "#ffb300"
	green  = "#66bb6a"
	orange = "#ffa726"
	blue   = "#42a5f5"
)

var basicCases = []TestCase{
	{
		Name: "story_status",
		Input: chart(100, 0.5, 62,
			sl("Open", 5, red),
			sl("In Progress", 12, amber),
			sl("Closed", 45, green)),
		Segments: 3,
	},
	{
		Name: "two_slices",
		Input: chart(100, 0.5, 100,
			sl("Left", 30, orange),
			sl("Right", 70, blue)),
		Segments: 2,
	},
	{
		Name: "thin_ring",
		Input: chart(100, 0.9, 6,
			sl("A", 1, red),
			sl("B", 2, amber),
			sl("C", 3, green)),
		Segments: 3,
	},
	{
		Name: "small_radius",
		Input: chart(10, 0.25, 4,
			sl("A", 1, red),
			sl("B", 3, blue)),
		Segments: 2,
	},
}
