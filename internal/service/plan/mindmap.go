package plan

import (
	"context"

	"github.com/ruchita2103/ai-business-assistant/internal/domain"
	"github.com/ruchita2103/ai-business-assistant/internal/util"
)

// mindMapTasks are the five fixed fan-out children of every mind map.
var mindMapTasks = []string{
	"Register",
	"Kitchen Setup",
	"Source Ingredients",
	"Marketing",
	"Launch",
}

// BuildMindMap constructs the static two-level star for an idea: the root
// label is the idea's first whitespace token plus " Idea", children are the
// fixed task labels. Content of the generated summary plays no part.
func BuildMindMap(ctx context.Context, idea string, renderer *GraphvizRenderer) domain.MindMap {
	root := util.FirstToken(idea) + " Idea"

	children := make([]string, len(mindMapTasks))
	copy(children, mindMapTasks)

	m := domain.MindMap{
		Root:     root,
		Children: children,
	}

	if renderer != nil {
		svg, rendered, _ := renderer.Render(ctx, m)
		m.SVG = svg
		m.Rendered = rendered
	}

	return m
}
