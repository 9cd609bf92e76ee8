// Package session holds the client-side authentication state: at most one
// active identity, kept in memory and mirrored to durable storage so it
// survives restarts. It is the single source of truth for "is the user
// logged in".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/models"
)

// Fallback messages shown when the server did not provide one.
const (
	loginFailedMsg    = "Falha no login. Verifique suas credenciais."
	registerFailedMsg = "Falha no registro. Tente novamente."
)

// RegisterData is the input to Register.
type RegisterData struct {
	Name     string
	Email    string
	Password string
}

// Manager owns the client session. The user and token are always set
// together and cleared together. A generation counter guards against a
// stale in-flight call mutating state after a logout: results only apply
// if the generation is unchanged since the call began.
type Manager struct {
	api   client.Client
	store Store

	mu        sync.Mutex
	gen       uint64
	user      *models.User
	token     string
	expiresAt time.Time
	loading   bool
	lastErr   string
}

func NewManager(api client.Client, store Store) *Manager {
	return &Manager{api: api, store: store}
}

// begin marks the session loading and returns the generation the caller
// must present to apply its result.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = true
	m.lastErr = ""
	return m.gen
}

// finish clears the loading flag. It runs on every exit path.
func (m *Manager) finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
}

// Login authenticates against the backend. On success the user and token
// are set atomically and persisted; on failure the session is cleared and
// the error surfaced through Err.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	gen := m.begin()
	defer m.finish()

	user, token, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.fail(gen, err, loginFailedMsg)
		return err
	}

	m.apply(gen, user, token)
	return nil
}

// Register creates an account and opens a session for it, with the same
// set/clear contract as Login. The backend does not issue a token at
// registration, so a login call follows the successful registration.
func (m *Manager) Register(ctx context.Context, data RegisterData) error {
	gen := m.begin()
	defer m.finish()

	if _, err := m.api.Register(ctx, data.Name, data.Email, data.Password); err != nil {
		m.fail(gen, err, registerFailedMsg)
		return err
	}

	user, token, err := m.api.Login(ctx, data.Email, data.Password)
	if err != nil {
		m.fail(gen, err, registerFailedMsg)
		return err
	}

	m.apply(gen, user, token)
	return nil
}

// Logout clears the in-memory and persisted session. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.clearLocked()
}

// Restore loads the persisted session at startup. Corrupted or partial
// state is wiped silently and the session starts unauthenticated; no
// error reaches the caller for that case. A token whose expiry has
// already passed is treated the same as no token.
func (m *Manager) Restore() error {
	userData, err := m.store.Get(KeyUser)
	if err != nil {
		return err
	}
	tokenData, err := m.store.Get(KeyToken)
	if err != nil {
		return err
	}

	if len(userData) == 0 || len(tokenData) == 0 {
		return m.store.Clear()
	}

	user := &models.User{}
	if err := json.Unmarshal(userData, user); err != nil || user.ID == "" {
		// Corrupted persisted state: recover silently.
		return m.store.Clear()
	}

	token := string(tokenData)
	expiresAt, ok := tokenExpiry(token)
	if ok && !expiresAt.After(time.Now()) {
		return m.store.Clear()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.token = token
	m.expiresAt = expiresAt
	return nil
}

// Authenticated reports whether a session is present and, when the token
// carries a readable expiry, still fresh.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil || m.token == "" {
		return false
	}
	if !m.expiresAt.IsZero() && !m.expiresAt.After(time.Now()) {
		return false
	}
	return true
}

// User returns a copy of the current identity, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the current session token, or "".
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Loading reports whether a login/register round trip is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the last operation's failure message, or "".
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// apply installs a successful result unless the session moved on.
func (m *Manager) apply(gen uint64, user *models.User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		// A logout (or another call) won; discard the late result.
		return
	}
	m.user = user
	m.token = token
	m.expiresAt, _ = tokenExpiry(token)

	userData, err := json.Marshal(user)
	if err == nil {
		_ = m.store.Set(KeyUser, userData)
		_ = m.store.Set(KeyToken, []byte(token))
	}
}

// fail clears the session and records a user-facing message unless the
// session moved on.
func (m *Manager) fail(gen uint64, err error, fallback string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return
	}
	m.clearLocked()

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		m.lastErr = apiErr.Message
		return
	}
	m.lastErr = fallback
}

func (m *Manager) clearLocked() {
	m.user = nil
	m.token = ""
	m.expiresAt = time.Time{}
	m.lastErr = ""
	_ = m.store.Clear()
}

// tokenExpiry reads the exp claim without verifying the signature. The
// client does not hold the signing secret; freshness here is a UX check,
// the server remains the authority.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
