package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("", zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogin(t *testing.T) {
	t.Run("returns the response body unmodified", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ann", req.Username)
			assert.Equal(t, "secret", req.Password)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok.en.value",
				"user_type":    "admin",
				"username":     "ann",
				"user_id":      7,
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		resp, err := client.Login(context.Background(), "ann", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok.en.value", resp.AccessToken)
		assert.Equal(t, "admin", resp.UserType)
		assert.Equal(t, "ann", resp.Username)
		assert.Equal(t, 7, resp.UserID)
	})

	t.Run("rejected credentials propagate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		var invalidations int
		client, err := NewClient(server.URL, zerolog.Nop(),
			WithUnauthorizedHandler(func() { invalidations++ }),
		)
		require.NoError(t, err)

		_, err = client.Login(context.Background(), "ann", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		// Even a failed login tears down any stale session
		assert.Equal(t, 1, invalidations)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Login(context.Background(), "ann", "secret")
		require.Error(t, err)
	})
}
