package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/transgate-dev/transgate/internal/api"
)

// Client provides methods to communicate with the transgated daemon
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new daemon client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// Health checks if the daemon and its model server are healthy
func (c *Client) Health() (*api.HealthResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return nil, fmt.Errorf("daemon not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var health api.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}

// Languages retrieves the supported language catalog
func (c *Client) Languages() (*api.LanguagesResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/languages")
	if err != nil {
		return nil, fmt.Errorf("daemon not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var languages api.LanguagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&languages); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &languages, nil
}

// Translate submits a translation request
func (c *Client) Translate(req api.TranslateRequest) (*api.TranslateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/translate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("daemon not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var trResp api.TranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&trResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &trResp, nil
}

// decodeAPIError turns a non-200 response into an error, preferring the
// daemon's structured error body.
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr api.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		return apiErr
	}
	return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
}
