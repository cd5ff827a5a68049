package ai

import (
	"context"
	"fmt"
	"sync"

	"github.com/ruchita2103/ai-business-assistant/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Dispatcher routes a built prompt to the selected backend. The choice is an
// explicit two-way switch: there are exactly two fixed providers, a backend
// error aborts the request, and there is no fallback to the other provider.
type Dispatcher struct {
	gemini TextProvider
	groq   TextProvider
	logger *zap.Logger
}

func NewDispatcher(gemini, groq TextProvider, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		gemini: gemini,
		groq:   groq,
		logger: logger,
	}
}

func (d *Dispatcher) Generate(ctx context.Context, prompt string, provider domain.Provider) (string, error) {
	var backend TextProvider
	switch provider {
	case domain.ProviderGemini:
		backend = d.gemini
	case domain.ProviderGroq:
		backend = d.groq
	default:
		return "", fmt.Errorf("unknown provider: %s", provider)
	}

	d.logger.Info("Dispatching generation request",
		zap.String("provider", backend.Name()),
		zap.Int("prompt_length", len(prompt)),
	)

	text, err := backend.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	d.logger.Info("Generation completed",
		zap.String("provider", backend.Name()),
		zap.Int("summary_length", len(text)),
	)

	return text, nil
}

// PingAll probes both backends in parallel and reports reachability. Used
// for startup diagnostics only; an unreachable backend never blocks startup.
func (d *Dispatcher) PingAll(ctx context.Context) map[string]bool {
	var mu sync.Mutex
	status := make(map[string]bool, 2)

	p := pool.New().WithContext(ctx)
	for _, backend := range []TextProvider{d.gemini, d.groq} {
		backend := backend
		p.Go(func(ctx context.Context) error {
			ok := backend.Ping(ctx)
			mu.Lock()
			status[backend.Name()] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = p.Wait()

	return status
}
