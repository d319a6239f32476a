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

// Package dashboard holds the figures shown on a user metrics dashboard and
// assembles the story status chart from them.
package dashboard

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/semidonut"
)

// StoryCount is the number of issue-tracker stories in one status.
type StoryCount struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

// UserData contains the raw figures for one user.
type UserData struct {
	UserName      string `yaml:"user_name"`
	GitHubStatus  string `yaml:"github_status"`
	CopilotStatus string `yaml:"copilot_status"`
	JiraStatus    string `yaml:"jira_status"`

	TotalCommits      float64 `yaml:"total_commits"`
	TotalAdditions    float64 `yaml:"total_additions"`
	TotalDeletions    float64 `yaml:"total_deletions"`
	StoryPointsClosed float64 `yaml:"story_points_closed"`
	TotalSprints      float64 `yaml:"total_sprints"`

	PRReviewed           float64 `yaml:"pr_reviewed"`
	ReviewComments       float64 `yaml:"review_comments"`
	TotalDefectsFound    float64 `yaml:"total_defects_found"`
	TotalCodeBaseLines   float64 `yaml:"total_code_base_lines"`
	TimeToFirstReviewHrs float64 `yaml:"time_to_first_review_hrs"`

	StoryReopenedCount             float64 `yaml:"story_reopened_count"`
	BlockedTimeHours               float64 `yaml:"blocked_time_hours"`
	PRSubmissionLeadTimeHrs        float64 `yaml:"pr_submission_lead_time_hrs"`
	RefactoringSuggestionsAccepted float64 `yaml:"refactoring_suggestions_accepted"`

	CopilotLastActivity        string  `yaml:"copilot_last_activity"`
	CopilotSuggestionsAccepted float64 `yaml:"copilot_suggestions_accepted"`
	CopilotSuggestionsOffered  float64 `yaml:"copilot_suggestions_offered"`

	AvgCycleTimeDays float64 `yaml:"avg_cycle_time_days"`

	Stories []StoryCount `yaml:"stories"`
}

// Sample returns the demonstration data set.
func Sample() UserData {
	return UserData{
		UserName:      "Nivi",
		GitHubStatus:  "Active",
		CopilotStatus: "Active",
		JiraStatus:    "Active",

		TotalCommits:      58,
		TotalAdditions:    4200,
		TotalDeletions:    1800,
		StoryPointsClosed: 120,
		TotalSprints:      2,

		PRReviewed:           15,
		ReviewComments:       78,
		TotalDefectsFound:    3,
		TotalCodeBaseLines:   15000,
		TimeToFirstReviewHrs: 4.2,

		StoryReopenedCount:             2,
		BlockedTimeHours:               15,
		PRSubmissionLeadTimeHrs:        8.5,
		RefactoringSuggestionsAccepted: 150,

		CopilotLastActivity:        "2 days ago",
		CopilotSuggestionsAccepted: 2500,
		CopilotSuggestionsOffered:  4500,

		AvgCycleTimeDays: 3.5,

		Stories: []StoryCount{
			{Label: "Open", Value: 5, Color: "#ef5350"},
			{Label: "In Progress", Value: 12, Color: "#ffb300"},
			{Label: "Closed", Value: 45, Color: "#66bb6a"},
		},
	}
}

// Load reads user data in YAML format.  Unknown keys are rejected.
func Load(r io.Reader) (UserData, error) {
	var d UserData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return d, errors.New("dashboard: empty data file")
		}
		return d, fmt.Errorf("dashboard: %w", err)
	}
	return d, nil
}

// TotalStories returns the number of stories over all statuses.
func (d *UserData) TotalStories() float64 {
	var total float64
	for _, s := range d.Stories {
		total += s.Value
	}
	return total
}

// ClosedStories returns the number of stories with status "Closed".
func (d *UserData) ClosedStories() float64 {
	for _, s := range d.Stories {
		if s.Label == "Closed" {
			return s.Value
		}
	}
	return 0
}

// StoryChart assembles the story status chart.
// The inner edge of the ring is at half the outer radius.
func StoryChart(d UserData, outerRadius float64) semidonut.ChartInput {
	slices := make([]semidonut.Slice, len(d.Stories))
	for i, s := range d.Stories {
		slices[i] = semidonut.Slice{Label: s.Label, Value: s.Value, Color: s.Color}
	}
	return semidonut.ChartInput{
		Slices:      slices,
		TotalValue:  d.TotalStories(),
		OuterRadius: outerRadius,
		InnerRatio:  0.5,
		Center:      semidonut.DefaultCenter(outerRadius),
	}
}

// StatusColor returns the badge colour for an integration status.
func StatusColor(status string) string {
	switch status {
	case "Active":
		return "#66bb6a"
	case "Inactive":
		return "#ef5350"
	case "Unknown":
		return "#ffb300"
	default:
		return "#555"
	}
}
