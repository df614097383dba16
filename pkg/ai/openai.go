package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnquangdev/transcript-processor/pkg/config"
)

// OpenAIClient is a minimal client for OpenAI-compatible chat completions
// used for transcript analysis. One client is shared by all requests; it
// carries no per-request state beyond the reused HTTP connection pool.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIClient creates a client from the provided config. A missing API
// key is a construction error: the extractor must not start without its
// credential.
func NewOpenAIClient(cfg *config.OpenAIConfig) (*OpenAIClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	base := cfg.BaseURL
	if base == "" {
		base = "https://api.openai.com"
	}

	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system instruction plus a user prompt and returns the
// assistant content. Single round trip, no retries: the caller decides what
// a failure means.
func (o *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: o.model,
		Messages: []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return cr.Choices[0].Message.Content, nil
}

// HasAPIKey reports whether the client was configured with a credential
func (o *OpenAIClient) HasAPIKey() bool {
	return o.apiKey != ""
}
