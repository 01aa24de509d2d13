package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoToken indicates there was no token to decode.
var ErrNoToken = errors.New("no token")

// DecodeError indicates a token that exists but cannot be decoded. It is
// distinct from ErrNoToken so callers can tell "never logged in" from
// "stored token is garbage"; both are treated as no session.
type DecodeError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token decode failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token decode failed: %s", e.Reason)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Claims is the decoded JWT payload. The identity service writes the user id
// into sub as a string; the remaining fields are optional display claims.
type Claims struct {
	Sub      string `json:"sub"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Login    string `json:"login"`
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}

// UserID returns the numeric user id carried by the claims, preferring sub.
func (c *Claims) UserID() int {
	if c.Sub != "" {
		if id, err := strconv.Atoi(c.Sub); err == nil {
			return id
		}
	}
	return c.ID
}

// DecodeClaims extracts the claims from the middle segment of a three-part
// dot-delimited token. This is a best-effort, non-verifying decode: the
// signature is never checked client-side, that stays the identity service's
// job. The claims are only used for display.
func DecodeClaims(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, &DecodeError{Reason: fmt.Sprintf("expected 3 segments, got %d", len(parts))}
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64 payload", Err: err}
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, &DecodeError{Reason: "invalid claims JSON", Err: err}
	}

	return &claims, nil
}
