package identity

import (
	"errors"
	"fmt"
)

// Common errors returned by the identity client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid identity configuration")

	// ErrInvalidCredentials indicates the service rejected the login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// APIError represents an identity service error response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("identity API error: status %d: %s", e.StatusCode, e.Message)
}
