package tokenizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPCounter counts tokens via the model server's tokenizer endpoint.
type HTTPCounter struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// HTTPConfig holds configuration options for the HTTP token counter.
type HTTPConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultHTTPConfig returns the default configuration for the token counter.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		BaseURL: "http://localhost:8001",
		Model:   "facebook/nllb-200-distilled-600M",
		Timeout: 10 * time.Second,
	}
}

// countRequest represents the request to the model server's /count_tokens endpoint.
type countRequest struct {
	Model            string `json:"model"`
	Text             string `json:"text"`
	SourceLang       string `json:"source_lang"`
	AddSpecialTokens bool   `json:"add_special_tokens"`
}

// countResponse represents the response from the /count_tokens endpoint.
type countResponse struct {
	TokenCount int `json:"token_count"`
}

// NewHTTPCounter creates a new token counter client with the given configuration.
func NewHTTPCounter(cfg HTTPConfig) *HTTPCounter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultHTTPConfig().BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultHTTPConfig().Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultHTTPConfig().Timeout
	}

	return &HTTPCounter{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CountTokens asks the model server to tokenize text and returns the token
// count with special tokens excluded. Callers are expected to recover from
// errors via the Oracle's heuristic fallback.
func (c *HTTPCounter) CountTokens(ctx context.Context, text, sourceLang string) (int, error) {
	reqBody := countRequest{
		Model:            c.model,
		Text:             text,
		SourceLang:       sourceLang,
		AddSpecialTokens: false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/count_tokens", bytes.NewReader(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("cannot reach tokenizer at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("token count request failed with status %d", resp.StatusCode)
	}

	var countResp countResponse
	if err := json.Unmarshal(body, &countResp); err != nil {
		return 0, fmt.Errorf("invalid tokenizer response: %w", err)
	}
	if countResp.TokenCount < 0 {
		return 0, fmt.Errorf("tokenizer returned negative count %d", countResp.TokenCount)
	}

	return countResp.TokenCount, nil
}
