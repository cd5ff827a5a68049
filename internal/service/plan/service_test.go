package plan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ruchita2103/ai-business-assistant/internal/domain"
	apperrors "github.com/ruchita2103/ai-business-assistant/pkg/errors"
	"go.uber.org/zap"
)

type fakeSearcher struct {
	text    string
	err     error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	return f.text, f.err
}

type fakeGenerator struct {
	summary   string
	err       error
	prompts   []string
	providers []domain.Provider
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, provider domain.Provider) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.providers = append(f.providers, provider)
	return f.summary, f.err
}

func TestGeneratePlanPipeline(t *testing.T) {
	searcher := &fakeSearcher{text: "Bangalore snack market growing"}
	generator := &fakeGenerator{summary: "## Summary\n- SnackCo\n- GreenMunch"}
	svc := NewService(searcher, generator, &GraphvizRenderer{available: false}, zap.NewNop())

	req := domain.PlanRequest{
		Idea:     "vegan snack startup in Bangalore with $10k",
		Provider: domain.ProviderGroq,
	}

	got, err := svc.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	if got.Summary != generator.summary {
		t.Errorf("summary = %q, want the generated text verbatim", got.Summary)
	}

	if len(searcher.queries) != 1 || searcher.queries[0] != req.Idea {
		t.Errorf("expected one search with the raw idea, got %v", searcher.queries)
	}

	if len(generator.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(generator.prompts))
	}
	if !strings.Contains(generator.prompts[0], req.Idea) {
		t.Error("prompt missing idea")
	}
	if !strings.Contains(generator.prompts[0], searcher.text) {
		t.Error("prompt missing search text")
	}
	if generator.providers[0] != domain.ProviderGroq {
		t.Errorf("provider = %s, want groq", generator.providers[0])
	}

	found := false
	for _, n := range got.Names {
		if n == "SnackCo" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected SnackCo in name suggestions, got %v", got.Names)
	}

	if len(got.Timeline) != 4 {
		t.Errorf("expected 4 timeline rows, got %d", len(got.Timeline))
	}

	if got.MindMap.Root != "vegan Idea" {
		t.Errorf("mind map root = %q, want %q", got.MindMap.Root, "vegan Idea")
	}
}

func TestGeneratePlanSearchFailureAborts(t *testing.T) {
	wantErr := apperrors.NewProviderError("search request failed", "tavily", "search", errors.New("boom"))
	searcher := &fakeSearcher{err: wantErr}
	generator := &fakeGenerator{summary: "should not be used"}
	svc := NewService(searcher, generator, nil, zap.NewNop())

	_, err := svc.GeneratePlan(context.Background(), domain.PlanRequest{Idea: "idea", Provider: domain.ProviderGemini})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected search error to propagate, got %v", err)
	}
	if len(generator.prompts) != 0 {
		t.Error("generation must not run when search fails")
	}
}

func TestGeneratePlanGenerationFailureAborts(t *testing.T) {
	searcher := &fakeSearcher{text: "results"}
	wantErr := apperrors.NewProviderError("Gemini generation failed", "gemini", "generate", errors.New("quota"))
	generator := &fakeGenerator{err: wantErr}
	svc := NewService(searcher, generator, nil, zap.NewNop())

	result, err := svc.GeneratePlan(context.Background(), domain.PlanRequest{Idea: "idea", Provider: domain.ProviderGemini})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected generation error to propagate, got %v", err)
	}
	if result != nil {
		t.Error("expected no partial result on generation failure")
	}
}

func TestGeneratePlanEmptyExtractionIsNonFatal(t *testing.T) {
	searcher := &fakeSearcher{text: "results"}
	generator := &fakeGenerator{summary: "all lowercase, no suggestions at all"}
	svc := NewService(searcher, generator, nil, zap.NewNop())

	got, err := svc.GeneratePlan(context.Background(), domain.PlanRequest{Idea: "idea", Provider: domain.ProviderGroq})
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	if len(got.Names) != 0 {
		t.Errorf("expected no names, got %v", got.Names)
	}
}
