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

package dashboard

import "strconv"

// Metrics are the figures derived from [UserData].
type Metrics struct {
	CopilotAcceptanceRate   float64 // percent of offered suggestions accepted
	RefactoringAdoptionRate float64 // percent of accepted suggestions which were refactorings
	CommitEfficiencyRatio   float64 // lines changed per closed story
	AvgLinesPerCommit       float64
	StoryPointVelocity      float64 // story points per sprint
	DefectDensity           float64 // defects per 1000 lines of code
	ReviewEffectiveness     float64 // comments per reviewed PR
	ReopenedRate            float64 // percent of closed stories reopened
	PRCreationSpeedHrs      float64
	ImpactScore             float64 // lines changed times PRs reviewed, per commit
}

// Derive computes the derived metrics.
// Ratios with a zero denominator are reported as 0.
func Derive(d UserData) Metrics {
	linesChanged := d.TotalAdditions + d.TotalDeletions
	closed := d.ClosedStories()

	return Metrics{
		CopilotAcceptanceRate:   100 * ratio(d.CopilotSuggestionsAccepted, d.CopilotSuggestionsOffered),
		RefactoringAdoptionRate: 100 * ratio(d.RefactoringSuggestionsAccepted, d.CopilotSuggestionsAccepted),
		CommitEfficiencyRatio:   ratio(linesChanged, closed),
		AvgLinesPerCommit:       ratio(linesChanged, d.TotalCommits),
		StoryPointVelocity:      ratio(d.StoryPointsClosed, d.TotalSprints),
		DefectDensity:           ratio(d.TotalDefectsFound, d.TotalCodeBaseLines/1000),
		ReviewEffectiveness:     ratio(d.ReviewComments, d.PRReviewed),
		ReopenedRate:            100 * ratio(d.StoryReopenedCount, closed),
		PRCreationSpeedHrs:      d.PRSubmissionLeadTimeHrs,
		ImpactScore:             ratio(linesChanged*d.PRReviewed, d.TotalCommits),
	}
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Row is one formatted line of a metrics table.
type Row struct {
	Name  string
	Value string
	Unit  string
}

// Rows formats the metrics for display, with the number of decimals used
// on the dashboard cards.
func (m Metrics) Rows() []Row {
	f := func(x float64, prec int) string {
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
	return []Row{
		{"Copilot acceptance rate", f(m.CopilotAcceptanceRate, 1), "%"},
		{"Refactoring adoption rate", f(m.RefactoringAdoptionRate, 1), "%"},
		{"Commit efficiency ratio", f(m.CommitEfficiencyRatio, 2), "lines/story"},
		{"Average lines per commit", f(m.AvgLinesPerCommit, 0), "lines"},
		{"Story point velocity", f(m.StoryPointVelocity, 1), "points/sprint"},
		{"Defect density", f(m.DefectDensity, 2), "defects/KLOC"},
		{"Review effectiveness", f(m.ReviewEffectiveness, 1), "comments/PR"},
		{"Reopened rate", f(m.ReopenedRate, 1), "%"},
		{"PR creation speed", f(m.PRCreationSpeedHrs, 1), "hours"},
		{"Impact score", f(m.ImpactScore, 0), ""},
	}
}
