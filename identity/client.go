package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TokenSource yields the bearer token attached to outgoing requests.
type TokenSource interface {
	Token() string
}

// Client is the HTTP transport to the identity service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         zerolog.Logger
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a new identity service client.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: identity URL is required", ErrInvalidConfig)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     options.httpClient,
		logger:         logger,
		tokens:         options.tokens,
		onUnauthorized: options.onUnauthorized,
	}, nil
}

// Login authenticates against the identity service and returns the raw
// response body unmodified. Unlike the catalog read operations, failures
// here propagate: the caller must be able to tell invalid credentials from
// an empty result.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}

	c.logger.Info().Str("username", username).Msg("Login successful")
	return &resp, nil
}

// doRequest performs an HTTP request against the identity service. Like the
// catalog transport, a stored token is attached when present and any 401
// invokes the unauthorized handler, even mid-login.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", c.baseURL+endpoint).
		Int("status", resp.StatusCode).
		Msg("Identity API response")
	c.logger.Trace().
		Str("body", string(body)).
		Msg("Identity API response body")

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, fmt.Errorf("%w: status %d", ErrInvalidCredentials, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return body, nil
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

func defaultOptions() clientOptions {
	return clientOptions{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTokenSource sets the source of the bearer token attached to requests.
func WithTokenSource(tokens TokenSource) Option {
	return func(o *clientOptions) {
		o.tokens = tokens
	}
}

// WithUnauthorizedHandler sets the callback invoked on any 401 response.
func WithUnauthorizedHandler(handler func()) Option {
	return func(o *clientOptions) {
		o.onUnauthorized = handler
	}
}
