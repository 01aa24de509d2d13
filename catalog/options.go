package catalog

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
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

// WithUnauthorizedHandler sets the callback invoked whenever the service
// responds 401. The handler fires for every rejected request, including
// background ones; the hosting application decides what teardown means.
func WithUnauthorizedHandler(handler func()) Option {
	return func(o *clientOptions) {
		o.onUnauthorized = handler
	}
}
