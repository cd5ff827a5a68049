package plan

import (
	"context"

	"github.com/ruchita2103/ai-business-assistant/internal/domain"
	"github.com/ruchita2103/ai-business-assistant/internal/prompt"
	"github.com/ruchita2103/ai-business-assistant/internal/util"
	"go.uber.org/zap"
)

// Searcher is the web search collaborator.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Generator is the provider dispatcher.
type Generator interface {
	Generate(ctx context.Context, prompt string, provider domain.Provider) (string, error)
}

// Service runs the whole generation pipeline for one request:
// search -> prompt -> generate -> extract names -> timeline -> mind map.
// Everything is synchronous within the request; a search or generation
// failure aborts with no partial result, while empty name extraction and an
// unavailable mind-map renderer degrade locally.
type Service struct {
	search    Searcher
	generator Generator
	graphviz  *GraphvizRenderer
	logger    *zap.Logger
}

func NewService(search Searcher, generator Generator, graphviz *GraphvizRenderer, logger *zap.Logger) *Service {
	return &Service{
		search:    search,
		generator: generator,
		graphviz:  graphviz,
		logger:    logger,
	}
}

func (s *Service) GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.Plan, error) {
	s.logger.Info("Generating startup plan",
		zap.String("provider", req.Provider.String()),
		zap.String("idea", util.TruncateString(req.Idea, 120)),
	)

	searchText, err := s.search.Search(ctx, req.Idea)
	if err != nil {
		return nil, err
	}

	planPrompt, err := prompt.BuildPlanPrompt(req.Idea, searchText)
	if err != nil {
		return nil, err
	}

	summary, err := s.generator.Generate(ctx, planPrompt, req.Provider)
	if err != nil {
		return nil, err
	}

	names := ExtractNames(summary)
	if len(names) == 0 {
		s.logger.Info("No name suggestions found in summary")
	}

	p := &domain.Plan{
		Summary:  summary,
		Names:    names,
		Timeline: LaunchSchedule(),
		MindMap:  BuildMindMap(ctx, req.Idea, s.graphviz),
	}

	s.logger.Info("Startup plan generated",
		zap.Int("summary_length", len(summary)),
		zap.Int("name_suggestions", len(names)),
		zap.Bool("mind_map_rendered", p.MindMap.Rendered),
	)

	return p, nil
}
