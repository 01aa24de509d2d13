package catalog

import (
	"errors"
	"fmt"
)

// Common errors returned by the catalog client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid catalog configuration")

	// ErrMovieNotFound is returned when the service reports a movie as
	// missing via its not-found sentinel body.
	ErrMovieNotFound = errors.New("movie not found")
)

// APIError represents a catalog service error response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
