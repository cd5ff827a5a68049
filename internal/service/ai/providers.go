package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/ruchita2103/ai-business-assistant/internal/constants"
	"github.com/ruchita2103/ai-business-assistant/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// groqSystemInstruction is the fixed system turn sent before the user prompt
// on the Groq path.
const groqSystemInstruction = "You are a helpful AI assistant."

// TextProvider is a text-generation backend: one prompt in, one plain-text
// response out.
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) bool
}

// GeminiProvider wraps the Gemini client. Each Generate opens a fresh
// single-turn chat session and returns the text of the first response.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiProvider, error) {
	p := &GeminiProvider{
		model:  model,
		logger: logger,
	}
	if apiKey == "" {
		// Deferred: the missing credential surfaces on first Generate.
		return p, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *GeminiProvider) Name() string {
	return "Gemini"
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", errors.NewConfigError("Gemini API key not configured", "GEMINI_API_KEY")
	}

	p.logger.Debug("Generating with Gemini",
		zap.String("model", p.model),
		zap.Int("prompt_length", len(prompt)),
	)

	chat, err := p.client.Chats.Create(ctx, p.model, nil, nil)
	if err != nil {
		p.logger.Error("Gemini chat creation failed", zap.Error(err))
		return "", errors.NewProviderError("failed to open Gemini chat", "gemini", "generate", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		p.logger.Error("Gemini generation failed", zap.Error(err))
		return "", errors.NewProviderError("Gemini generation failed", "gemini", "generate", err)
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		return "", errors.NewProviderError("empty response from Gemini", "gemini", "generate", nil)
	}

	p.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return text, nil
}

func (p *GeminiProvider) Ping(ctx context.Context) bool {
	if p.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, constants.PingConfig.Timeout)
	defer cancel()

	maxTokens := int32(10)
	resp, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: "ping"}}},
	}, &genai.GenerateContentConfig{MaxOutputTokens: maxTokens})

	if err != nil {
		p.logger.Debug("Gemini ping failed", zap.Error(err))
		return false
	}

	return extractTextFromGeminiResponse(resp) != ""
}

// GroqProvider wraps Groq's OpenAI-compatible chat completion endpoint.
type GroqProvider struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewGroqProvider(apiKey, model string, logger *zap.Logger) *GroqProvider {
	p := &GroqProvider{
		model:  model,
		logger: logger,
	}
	if apiKey == "" {
		return p
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(constants.APIConfig.GroqBaseURL),
	)
	p.client = &client
	return p
}

func (p *GroqProvider) Name() string {
	return "Groq"
}

func (p *GroqProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", errors.NewConfigError("Groq API key not configured", "GROQ_API_KEY")
	}

	p.logger.Debug("Generating with Groq",
		zap.String("model", p.model),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(groqSystemInstruction),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		p.logger.Error("Groq generation failed", zap.Error(err))
		return "", errors.NewProviderError("Groq generation failed", "groq", "generate", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewProviderError("no choices in Groq response", "groq", "generate", nil)
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.NewProviderError("empty response from Groq", "groq", "generate", nil)
	}

	p.logger.Debug("Groq response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

func (p *GroqProvider) Ping(ctx context.Context) bool {
	if p.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, constants.PingConfig.Timeout)
	defer cancel()

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("ping"),
		},
		MaxTokens:   openai.Int(10),
		Temperature: openai.Float(0),
	})

	if err != nil {
		p.logger.Debug("Groq ping failed", zap.Error(err))
		return false
	}

	return len(resp.Choices) > 0
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
