package session

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// User is the authenticated identity the UI renders.
type User struct {
	ID    int
	Name  string
	Email string
	Role  string
	Login string
}

// Profile carries the optional enrichment fields a login response may
// supply. Where a profile field and a token claim overlap, the profile
// field wins.
type Profile struct {
	UserType string
	Username string
	UserID   int
}

// Manager owns the process-wide session state. It has exactly two states:
// anonymous (no user) and authenticated (user populated). The persisted
// store is a durable mirror; the Manager's memory is the source of truth.
//
// Manager implements the transports' TokenSource, and its HandleUnauthorized
// is what their 401 callback should be wired to.
type Manager struct {
	mu            sync.Mutex
	store         Store
	logger        zerolog.Logger
	token         string
	user          *User
	authenticated bool
	onInvalidated func()
}

// NewManager creates a Manager backed by the given store.
func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// OnInvalidated registers a hook fired when the session is torn down by a
// 401. The hosting application subscribes here to react (e.g. send the user
// back to a login view); the core performs no navigation itself.
func (m *Manager) OnInvalidated(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onInvalidated = fn
}

// Init attempts to restore a session from the store. A missing or malformed
// token leaves the session anonymous; that is not an error.
func (m *Manager) Init() error {
	rec, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	claims, err := DecodeClaims(rec.Token)
	if err != nil {
		if rec.Token != "" {
			m.logger.Debug().Err(err).Msg("Stored token did not decode, staying anonymous")
		}
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = rec.Token
	m.user = buildUser(claims, &Profile{
		UserType: rec.UserType,
		Username: rec.Username,
		UserID:   rec.UserID,
	})
	m.authenticated = true

	m.logger.Debug().Int("user_id", m.user.ID).Msg("Session restored")
	return nil
}

// Login transitions to the authenticated state. The token's claims are
// merged with the profile fields from the login response, profile fields
// winning for overlapping attributes, and the token plus supplied profile
// fields are persisted.
func (m *Manager) Login(token string, profile *Profile) error {
	claims, err := DecodeClaims(token)
	if err != nil && profile == nil {
		return err
	}
	if claims == nil {
		claims = &Claims{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.user = buildUser(claims, profile)
	m.authenticated = true

	rec := Record{Token: token}
	if profile != nil {
		rec.UserType = profile.UserType
		rec.Username = profile.Username
		rec.UserID = profile.UserID
	}
	if err := m.store.Save(rec); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.logger.Info().Int("user_id", m.user.ID).Str("login", m.user.Login).Msg("Logged in")
	return nil
}

// Logout transitions to the anonymous state unconditionally, clearing both
// memory and the persisted record.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset()
}

// HandleUnauthorized tears the session down after the backend rejected the
// token. It is invoked by the transport layer for every 401, including ones
// from background requests, and additionally fires the invalidation hook.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	wasAuthenticated := m.authenticated
	if err := m.reset(); err != nil {
		m.logger.Error().Err(err).Msg("Failed to clear session after 401")
	}
	hook := m.onInvalidated
	m.mu.Unlock()

	if wasAuthenticated {
		m.logger.Warn().Msg("Session invalidated by server")
	}
	if hook != nil {
		hook()
	}
}

// reset clears session state. Callers must hold mu.
func (m *Manager) reset() error {
	m.token = ""
	m.user = nil
	m.authenticated = false
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

// Token implements the transports' TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Current returns the current user and whether the session is
// authenticated.
func (m *Manager) Current() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.authenticated || m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// buildUser merges token claims with login-response profile fields. The
// profile's user_id, username and user_type take precedence over the
// token's claims; everything else falls back through the claim aliases the
// identity service has used over time.
func buildUser(claims *Claims, profile *Profile) *User {
	user := &User{
		ID:    claims.UserID(),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
		Login: claims.Login,
	}

	if user.Login == "" {
		user.Login = claims.Username
	}

	if profile != nil {
		if profile.UserID != 0 {
			user.ID = profile.UserID
		}
		if profile.Username != "" {
			user.Login = profile.Username
			if user.Name == "" {
				user.Name = profile.Username
			}
		}
		if profile.UserType != "" {
			user.Role = profile.UserType
		}
	}

	if user.Role == "" {
		user.Role = "user"
	}
	return user
}
