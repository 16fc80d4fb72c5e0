// Package assistant sends templated prompts to an OpenAI-compatible
// chat-completion API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"carbontradle.org/internal/logging"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "o3-mini"
	DefaultTimeout = 60 * time.Second

	completionsPath = "/v1/chat/completions"
	maxErrorSnippet = 512
)

// Message roles. Instructions use the developer role.
const (
	RoleDeveloper = "developer"
	RoleUser      = "user"
)

var (
	// ErrNoChoices is returned when a completion response carries no choices.
	ErrNoChoices = errors.New("completion returned no choices")
	// ErrUnexpectedStatus is wrapped by errors for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected status from completion API")
)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces the reply text for a conversation.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client is a Completer backed by the chat-completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient builds a Client. logger may be nil.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		model:   model,
		http:    httpClient,
		logger:  logging.ForComponent(logger, "assistant"),
	}
}

// Model returns the model name sent with every request.
func (c *Client) Model() string {
	return c.model
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends messages and returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(completionRequest{Model: c.model, Messages: messages}); err != nil {
		return "", fmt.Errorf("encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, &buf)
	if err != nil {
		return "", fmt.Errorf("building completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting completion: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "completion_response_body")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))
		detail := strings.TrimSpace(string(body))
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		return "", fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, detail)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrNoChoices
	}

	c.logger.Debug("completion received",
		slog.String("model", c.model),
		slog.Duration("duration", time.Since(start)))

	return out.Choices[0].Message.Content, nil
}
