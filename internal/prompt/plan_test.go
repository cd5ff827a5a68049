package prompt

import (
	"strings"
	"testing"
)

func TestBuildPlanPromptContainsInputsVerbatim(t *testing.T) {
	idea := "vegan snack startup in Bangalore with $10k"
	searchText := "Bangalore snack market growing"

	got, err := BuildPlanPrompt(idea, searchText)
	if err != nil {
		t.Fatalf("BuildPlanPrompt returned error: %v", err)
	}

	if !strings.Contains(got, idea) {
		t.Errorf("prompt missing idea %q", idea)
	}
	if !strings.Contains(got, searchText) {
		t.Errorf("prompt missing search text %q", searchText)
	}
}

func TestBuildPlanPromptContainsRequiredSections(t *testing.T) {
	got, err := BuildPlanPrompt("idea", "results")
	if err != nil {
		t.Fatalf("BuildPlanPrompt returned error: %v", err)
	}

	sections := []string{
		"Idea",
		"Market overview",
		"Budget breakdown",
		"Step-by-step action plan with registration & setup",
		"4-week launch timeline",
		"Marketing plan",
		"Feasibility score & suggested KPIs",
		"name suggestions",
	}
	for _, section := range sections {
		if !strings.Contains(got, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}

	if !strings.Contains(got, "1-3 sentences or simple table format") {
		t.Error("prompt missing formatting constraint")
	}
}

func TestBuildPlanPromptPassesDelimitersThrough(t *testing.T) {
	// Inputs containing template-delimiter-like text are interpolated as
	// data, never re-evaluated.
	idea := "idea with {{.SearchResults}} inside"
	got, err := BuildPlanPrompt(idea, "plain")
	if err != nil {
		t.Fatalf("BuildPlanPrompt returned error: %v", err)
	}
	if !strings.Contains(got, idea) {
		t.Errorf("prompt should contain raw delimiter text, got:\n%s", got)
	}
}

func TestBuildPlanPromptDeterministic(t *testing.T) {
	a, err := BuildPlanPrompt("same idea", "same results")
	if err != nil {
		t.Fatalf("BuildPlanPrompt returned error: %v", err)
	}
	b, err := BuildPlanPrompt("same idea", "same results")
	if err != nil {
		t.Fatalf("BuildPlanPrompt returned error: %v", err)
	}
	if a != b {
		t.Error("expected identical output for identical inputs")
	}
}
