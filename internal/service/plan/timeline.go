package plan

import "github.com/ruchita2103/ai-business-assistant/internal/domain"

// LaunchSchedule returns the fixed 4-week launch plan. The schedule is not
// derived from the generated summary; every request renders the same rows.
func LaunchSchedule() []domain.TimelineEntry {
	return []domain.TimelineEntry{
		{Week: "W1", Task: "Register + source ingredients", StartDay: 0, EndDay: 7},
		{Week: "W2", Task: "Set up kitchen + hire helpers", StartDay: 7, EndDay: 14},
		{Week: "W3", Task: "Test delivery + small batch launch", StartDay: 14, EndDay: 21},
		{Week: "W4", Task: "Full launch + social media marketing", StartDay: 21, EndDay: 28},
	}
}
