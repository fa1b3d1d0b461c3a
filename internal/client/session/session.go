// Package session owns the bearer credential and user record for the
// current login, and the generation counter the data layer uses to
// discard responses that settle after the session they belong to has
// ended.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Manager is safe for concurrent use. A nil store keeps the session in
// memory only.
type Manager struct {
	mu    sync.Mutex
	store *Store
	token string
	user  *models.User
	gen   uint64
}

func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Restore loads a previously persisted session. It returns true when a
// token was found. An expired token is discarded rather than restored.
func (m *Manager) Restore() (bool, error) {
	if m.store == nil {
		return false, nil
	}
	token, user, err := m.store.Load()
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	if tokenExpired(token) {
		_ = m.store.Clear()
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
	m.gen++
	return true, nil
}

// Begin installs a fresh session and persists it. It returns the new
// generation.
func (m *Manager) Begin(token string, user *models.User) uint64 {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	if m.store != nil {
		_ = m.store.Save(token, user)
	}
	return gen
}

// End clears the session and its persisted copy. Bumping the
// generation here is what invalidates fetches still in flight.
func (m *Manager) End() uint64 {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	if m.store != nil {
		_ = m.store.Clear()
	}
	return gen
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

func (m *Manager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// SetUserEmail patches the email on the held user record after a
// successful profile update and re-persists the session.
func (m *Manager) SetUserEmail(email string) {
	m.mu.Lock()
	if m.user != nil {
		m.user.Email = email
	}
	token, user := m.token, m.user
	m.mu.Unlock()

	if m.store != nil && token != "" {
		_ = m.store.Save(token, user)
	}
}

// Expired reports whether the held token carries an exp claim in the
// past. Opaque (non-JWT) tokens are never considered expired locally;
// the server stays the authority.
func (m *Manager) Expired() bool {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token == "" {
		return false
	}
	return tokenExpired(token)
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
