// Package openai provides internal representations of the OpenAI
// chat-completions API contract and a client that issues single-attempt,
// bounded completion requests with classified failure outcomes.
package openai

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

// DefaultBaseURL is the OpenAI API origin.
const DefaultBaseURL = "https://api.openai.com"

// Generation parameters are fixed configuration for the chat assistant.
// There is no per-request override.
const (
	maxTokens   = 256
	temperature = 0.7
)

// DefaultTimeout bounds the single outbound round trip. An unbounded hang
// would block the serving request indefinitely.
const DefaultTimeout = 15 * time.Second

// Config holds the fixed parameters for a Client.
type Config struct {
	// APIKey is the bearer credential, read once at process start.
	APIKey string

	// BaseURL overrides the API origin (used by tests and proxies).
	BaseURL string

	// Model is the model identifier sent with every request.
	Model string

	// Timeout bounds each completion attempt end to end.
	Timeout time.Duration
}

// Client issues chat-completion requests. It makes exactly one attempt per
// invocation and never returns an unclassified failure: every error from
// Complete is an *UnavailableError, *ProviderError, or *EmptyResponseError.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a Client, filling in defaults for the base URL and
// timeout.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// Complete sends the given messages to the provider and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	req := ChatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &UnavailableError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &UnavailableError{Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &UnavailableError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", &UnavailableError{Err: fmt.Errorf("read response: %w", err)}
	}

	var resp ChatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &UnavailableError{
			Err: fmt.Errorf("upstream returned %d with unparseable body: %w", httpResp.StatusCode, err),
		}
	}

	// A provider error object wins over the status code: it carries the
	// message worth logging.
	if resp.Error != nil {
		return "", &ProviderError{Message: resp.Error.Message}
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", &UnavailableError{Err: fmt.Errorf("upstream returned %d", httpResp.StatusCode)}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &EmptyResponseError{}
	}

	return resp.Choices[0].Message.Content, nil
}
