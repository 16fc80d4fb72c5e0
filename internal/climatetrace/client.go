// Package climatetrace retrieves emissions records from the Climate TRACE
// REST API.
package climatetrace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.climatetrace.org"
	DefaultTimeout = 60 * time.Second

	emissionsPath   = "/v6/assets/emissions"
	definitionsPath = "/v6/definitions/"

	maxResponseBytes = 256 << 20
	maxErrorSnippet  = 512
)

// ErrUnexpectedStatus is wrapped by errors for non-2xx API responses.
var ErrUnexpectedStatus = errors.New("unexpected status from emissions API")

// Config configures a Client.
type Config struct {
	BaseURL string
	// Token is sent as a bearer token when non-empty.
	Token   string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the emissions API. Requests are issued one at a time.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewClient builds a Client. logger and m may be nil.
func NewClient(cfg Config, logger *slog.Logger, m *metrics.Metrics) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
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
		token:   cfg.Token,
		http:    httpClient,
		logger:  logging.ForComponent(logger, "climatetrace"),
		metrics: m,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "emissions_response_body")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	return b, nil
}
