package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NLLBClient translates text via an NLLB-200 model server's HTTP API.
// The server owns model loading, device placement and decoding; this client
// only submits per-chunk translation requests and forwards decoding options.
type NLLBClient struct {
	baseURL    string
	model      string
	options    DecodingOptions
	httpClient *http.Client
}

// DecodingOptions are forwarded to the model server's generate call.
type DecodingOptions struct {
	MaxOutputTokens   int     `json:"max_output_tokens,omitempty"`
	NumBeams          int     `json:"num_beams,omitempty"`
	LengthPenalty     float64 `json:"length_penalty,omitempty"`
	NoRepeatNgramSize int     `json:"no_repeat_ngram_size,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
}

// NLLBConfig holds configuration options for the model server client.
type NLLBConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	Options DecodingOptions
}

// DefaultNLLBConfig returns the default configuration for the NLLB client.
func DefaultNLLBConfig() NLLBConfig {
	return NLLBConfig{
		BaseURL: "http://localhost:8001",
		Model:   "facebook/nllb-200-distilled-600M",
		Timeout: 120 * time.Second,
		Options: DecodingOptions{
			MaxOutputTokens:   2048,
			NumBeams:          5,
			LengthPenalty:     1.2,
			NoRepeatNgramSize: 3,
			RepetitionPenalty: 1.1,
		},
	}
}

// translateRequest represents the request to the model server's /translate endpoint.
type translateRequest struct {
	Model      string          `json:"model"`
	Text       string          `json:"text"`
	SourceLang string          `json:"source_lang"`
	TargetLang string          `json:"target_lang"`
	Options    DecodingOptions `json:"options"`
}

// translateResponse represents the response from the /translate endpoint.
type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

// NewNLLBClient creates a new model server client with the given configuration.
func NewNLLBClient(cfg NLLBConfig) *NLLBClient {
	def := DefaultNLLBConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Options == (DecodingOptions{}) {
		cfg.Options = def.Options
	}

	return &NLLBClient{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		options: cfg.Options,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Health checks if the model server is up with the model loaded.
func (c *NLLBClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrModelNotReady.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrModelNotReady.WithCause(fmt.Errorf("model server health check returned status %d", resp.StatusCode))
	}

	return nil
}

// TranslateSingle translates one chunk of text. The chunk must already fit
// within the model's input window.
func (c *NLLBClient) TranslateSingle(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	reqBody := translateRequest{
		Model:      c.model,
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Options:    c.options,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", ErrModelNotReady.WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyStatus(resp.StatusCode, body)
	}

	var trResp translateResponse
	if err := json.Unmarshal(body, &trResp); err != nil {
		return "", ErrTranslationFailed.WithCause(fmt.Errorf("invalid model server response: %w", err))
	}

	return trResp.TranslatedText, nil
}

// classifyStatus maps a model server error response to a typed error.
func (c *NLLBClient) classifyStatus(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))

	switch {
	case status == http.StatusServiceUnavailable:
		return ErrModelNotReady.WithCause(fmt.Errorf("model server: %s", msg))
	case status == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "lang"):
		return ErrInvalidLanguage.WithCause(fmt.Errorf("model server: %s", msg))
	default:
		return ErrTranslationFailed.WithCause(fmt.Errorf("model server returned status %d: %s", status, msg))
	}
}

// ModelName returns the configured model name.
func (c *NLLBClient) ModelName() string {
	return c.model
}
