package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ruchita2103/ai-business-assistant/internal/constants"
	"github.com/ruchita2103/ai-business-assistant/pkg/errors"
	"go.uber.org/zap"
)

// Client queries the Tavily search API. Identical queries always re-hit the
// network: no caching, no retry. Any failure aborts the caller's request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxResults int
	logger     *zap.Logger
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type searchResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

func NewClient(httpClient *http.Client, apiKey string, maxResults int, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIConfig.TavilyTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    constants.APIConfig.TavilyBaseURL,
		apiKey:     apiKey,
		maxResults: maxResults,
		logger:     logger,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Search runs one web search and flattens the ranked snippets into a single
// text blob for prompt interpolation.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", errors.NewConfigError("Tavily API key not configured", "TAVILY_API_KEY")
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		MaxResults:  c.maxResults,
		SearchDepth: "basic",
	})
	if err != nil {
		return "", errors.NewProviderError("failed to encode search request", "tavily", "search", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return "", errors.NewProviderError("failed to build search request", "tavily", "search", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Tavily request failed", zap.Error(err))
		return "", errors.NewProviderError("search request failed", "tavily", "search", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewProviderError("failed to read search response", "tavily", "search", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Error("Tavily returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return "", errors.NewProviderError(fmt.Sprintf("search error: %d", resp.StatusCode), "tavily", "search", nil)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.NewProviderError("failed to decode search response", "tavily", "search", err)
	}

	text := flattenResults(&parsed)
	c.logger.Debug("Tavily search completed",
		zap.String("query", query),
		zap.Int("results", len(parsed.Results)),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func flattenResults(resp *searchResponse) string {
	var sb strings.Builder
	if resp.Answer != "" {
		sb.WriteString(resp.Answer)
		sb.WriteString("\n")
	}
	for _, r := range resp.Results {
		sb.WriteString(r.Title)
		sb.WriteString(": ")
		sb.WriteString(r.Content)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
