package domain

// PlanRequest is the single user interaction: a free-form startup description
// and the chosen text-generation backend. Nothing outlives the request.
type PlanRequest struct {
	Idea     string   `json:"idea"`
	Provider Provider `json:"provider"`
}

// Plan bundles everything the page renders for one generation request.
type Plan struct {
	Summary  string          `json:"summary"`
	Names    []string        `json:"names"`
	Timeline []TimelineEntry `json:"timeline"`
	MindMap  MindMap         `json:"mindMap"`
}

// TimelineEntry is one row of the fixed launch schedule. Offsets are days
// from launch start; the span covered is [StartDay, EndDay).
type TimelineEntry struct {
	Week     string `json:"week"`
	Task     string `json:"task"`
	StartDay int    `json:"startDay"`
	EndDay   int    `json:"endDay"`
}

// MindMap is a depth-1 star: one root, five fixed children. SVG is empty and
// Rendered false when the graphviz binary is unavailable.
type MindMap struct {
	Root     string   `json:"root"`
	Children []string `json:"children"`
	Rendered bool     `json:"rendered"`
	SVG      string   `json:"svg,omitempty"`
}
