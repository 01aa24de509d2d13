package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource yields the bearer token attached to outgoing requests.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the HTTP transport to the catalog service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         zerolog.Logger
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a new catalog service client.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: catalog URL is required", ErrInvalidConfig)
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

// doRequest performs an HTTP request against the catalog service. A stored
// bearer token is attached when available. Any 401 response invokes the
// unauthorized handler before the error is returned; the service has no
// refresh flow, so a 401 means the session is gone for good.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
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
		Str("url", requestURL).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("Catalog API response")
	c.logger.Trace().
		Str("request_id", requestID).
		Str("body", string(body)).
		Msg("Catalog API response body")

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn().
			Str("url", requestURL).
			Str("request_id", requestID).
			Msg("Token rejected, invalidating session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "unauthorized", Body: string(body)}
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

// Movies retrieves a page of raw movie records. A page value of zero or less
// fetches the full unpaginated list.
func (c *Client) Movies(ctx context.Context, page, size int) ([]RawMovie, error) {
	var params url.Values
	if page > 0 {
		params = url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("size", strconv.Itoa(size))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/movies/", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	var movies []RawMovie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse movies response: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d movies from catalog", len(movies))
	return movies, nil
}

// Movie retrieves one raw movie record. The service reports a missing movie
// via a sentinel message field in an otherwise-200 body rather than an HTTP
// 404; that case surfaces as ErrMovieNotFound.
func (c *Client) Movie(ctx context.Context, movieID int) (*RawMovie, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}

	var sentinel struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &sentinel); err == nil && sentinel.Message != "" {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrMovieNotFound)
	}

	var movie RawMovie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to parse movie response: %w", err)
	}

	return &movie, nil
}

// SimilarMovies retrieves the raw similar-movies list for a movie. The
// queried movie itself may appear in the result; excluding it is the
// caller's responsibility.
func (c *Client) SimilarMovies(ctx context.Context, movieID int) ([]RawMovie, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/movies/%d/similar", movieID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get similar movies for %d: %w", movieID, err)
	}

	var movies []RawMovie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse similar movies response: %w", err)
	}

	return movies, nil
}

// StreamURL builds the playback URL for a movie. No network call is made;
// the stream itself is consumed by an external player.
func (c *Client) StreamURL(movieID int) string {
	return fmt.Sprintf("%s/streaming/%d", c.baseURL, movieID)
}

// Ping checks connectivity to the catalog service.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.doRequest(ctx, http.MethodGet, "/movies/", nil); err != nil {
		return fmt.Errorf("failed to connect to catalog service: %w", err)
	}
	return nil
}
