package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ruchita2103/ai-business-assistant/internal/config"
	"github.com/ruchita2103/ai-business-assistant/internal/constants"
	"github.com/ruchita2103/ai-business-assistant/internal/server"
	"github.com/ruchita2103/ai-business-assistant/internal/service/ai"
	"github.com/ruchita2103/ai-business-assistant/internal/service/plan"
	"github.com/ruchita2103/ai-business-assistant/internal/service/search"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the HTTP handler.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Dispatcher *ai.Dispatcher
	Planner    *plan.Service
	Handler    http.Handler
}

// Build assembles the search client, both generation providers, the pipeline
// and the HTTP surface. Credentials are not validated here: a missing key
// surfaces as a ConfigError on the first call that needs it.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	searchClient := search.NewClient(
		&http.Client{Timeout: constants.APIConfig.TavilyTimeout},
		cfg.Tavily.APIKey,
		cfg.Tavily.MaxResults,
		logger,
	)

	geminiProvider, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
	}
	groqProvider := ai.NewGroqProvider(cfg.Groq.APIKey, cfg.Groq.Model, logger)

	dispatcher := ai.NewDispatcher(geminiProvider, groqProvider, logger)

	graphviz := plan.NewGraphvizRenderer()
	if graphviz.Available() {
		logger.Info("Graphviz detected, mind map rendering enabled")
	} else {
		logger.Warn("Graphviz not installed, mind map rendering disabled")
	}

	planner := plan.NewService(searchClient, dispatcher, graphviz, logger)
	srv := server.New(planner, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: dispatcher,
		Planner:    planner,
		Handler:    srv.Routes(),
	}, nil
}

// PingProviders probes both generation backends and logs reachability.
// Informational only; an unreachable backend never blocks startup.
func (c *Container) PingProviders(ctx context.Context) {
	for name, ok := range c.Dispatcher.PingAll(ctx) {
		if ok {
			c.Logger.Info("Provider reachable", zap.String("provider", name))
		} else {
			c.Logger.Warn("Provider unreachable at startup", zap.String("provider", name))
		}
	}
}
