// Package provider implements EmbeddingProvider (C5): a raw-net/http
// client against the OpenAI embeddings endpoint, deliberately styled after
// services/llm/openai_llm.go's OpenAIClient (no SDK, env-var configuration
// with an explicit-config constructor for tests, slog logging, wrapped
// sentinel errors) but retargeted from chat completions to embeddings.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/redact"
)

const (
	defaultModel   = "text-embedding-3-small"
	defaultBaseURL = "https://api.openai.com/v1"
	// EmbeddingDimensions is the fixed vector length text-embedding-3-small
	// returns.
	EmbeddingDimensions = 1536
	// MaxBatchSize is the largest number of inputs a single embeddings call
	// accepts.
	MaxBatchSize = 2048
	// MaxInputChars truncates any single input text before sending it,
	// approximating the model's 8191-token cap.
	MaxInputChars = 8000
)

type openaiEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openaiEmbeddingResponse struct {
	Data  []openaiEmbeddingDatum `json:"data"`
	Error *openaiError           `json:"error,omitempty"`
}

type openaiEmbeddingDatum struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

type openaiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// OpenAIProvider implements EmbeddingProvider using OpenAI's embeddings
// endpoint directly, without the OpenAI SDK.
//
// Thread safety: OpenAIProvider is safe for concurrent use.
type OpenAIProvider struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	logger     *slog.Logger
}

// New creates an OpenAIProvider from environment variables
// (OPENAI_API_KEY, OPENAI_MODEL, OPENAI_BASE_URL), warning through logger
// if the API key is absent rather than failing construction — the same
// posture services/llm/openai_llm.go takes, since a provider with no key
// configured is a valid state until the first embed call is attempted.
func New(logger *slog.Logger) *OpenAIProvider {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" && logger != nil {
		logger.Warn("OPENAI_API_KEY not set; embedding calls will fail")
	}
	return NewWithConfig(apiKey, model, baseURL, logger)
}

// NewWithConfig creates an OpenAIProvider with explicit configuration,
// bypassing environment variables entirely — useful for tests against a
// mock server.
func NewWithConfig(apiKey, model, baseURL string, logger *slog.Logger) *OpenAIProvider {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenAIProvider{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// EmbedOne embeds a single text, truncating to MaxInputChars and
// rejecting empty/whitespace-only input with domain.ErrInvalidInput.
func (p *OpenAIProvider) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedMany embeds a batch of texts, preserving input order in the
// returned slice. Batches larger than MaxBatchSize are chunked and called
// sequentially by this method; callers needing concurrent chunk fan-out
// should use internal/embedding/indexer instead, which owns that policy.
func (p *OpenAIProvider) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("provider: embed many: %w", domain.ErrInvalidInput)
	}
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("provider: embedding input is empty: %w", domain.ErrInvalidInput)
		}
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("provider: no API key configured: %w", domain.ErrProviderError)
	}

	out := make([][]float32, len(texts))
	for start := 0; start < len(texts); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk := make([]string, end-start)
		for i, t := range texts[start:end] {
			chunk[i] = truncate(t, MaxInputChars)
		}

		vectors, err := p.callEmbeddings(ctx, chunk)
		if err != nil {
			return nil, err
		}
		copy(out[start:end], vectors)
	}
	return out, nil
}

func (p *OpenAIProvider) callEmbeddings(ctx context.Context, inputs []string) ([][]float32, error) {
	reqBody, err := json.Marshal(openaiEmbeddingRequest{Model: p.model, Input: inputs})
	if err != nil {
		return nil, fmt.Errorf("provider: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embeddings", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("provider: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider: call embeddings endpoint: %w: %s", domain.ErrTransientNetwork, redact.String(err.Error()))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("provider: read response body: %w", err)
	}

	var parsed openaiEmbeddingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("provider: decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("provider: %s: %w", redact.String(parsed.Error.Message), domain.ErrProviderError)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("provider: embeddings endpoint: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("provider: embeddings endpoint status %d: %w", resp.StatusCode, domain.ErrProviderError)
	}

	ordered := make([][]float32, len(inputs))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(ordered) {
			continue
		}
		ordered[d.Index] = d.Embedding
	}
	return ordered, nil
}

func truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars]
}
