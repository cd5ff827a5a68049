package prompt

// BusinessPlanData feeds the consultant template. Idea and SearchResults are
// interpolated verbatim; no escaping is applied, so template-delimiter-like
// user text passes through unchanged.
type BusinessPlanData struct {
	Idea          string
	SearchResults string
}

// BuildPlanPrompt assembles the full instruction text sent to a provider.
// Deterministic, no side effects.
func BuildPlanPrompt(idea, searchResults string) (string, error) {
	return DefaultPromptBuilder().Render(TemplateBusinessPlan, BusinessPlanData{
		Idea:          idea,
		SearchResults: searchResults,
	})
}
