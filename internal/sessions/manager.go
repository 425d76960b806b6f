package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"codeberg.org/pixelrave/server/internal/gallery"
	"codeberg.org/pixelrave/server/internal/quota"
)

// Auth is the session's authorization state: set by the external login
// collaborator, cleared on logout, never persisted beyond the session.
type Auth struct {
	Authenticated bool
	Identity      string
}

// Session holds all state owned by one interactive session: the daily
// quota, the recent-generation gallery, and the authorization flag.
// Nothing here survives a restart.
type Session struct {
	ID           string
	Quota        quota.State
	Gallery      *gallery.Store
	Auth         Auth
	LastActivity time.Time
	ExpiresAt    time.Time

	// guards every mutable field above and serializes the generation
	// pipeline: one submit per session at a time. The manager's own
	// mutex covers only the session map, so all field writes (Auth,
	// ExpiresAt, LastActivity) must go through this lock.
	mu sync.Mutex
}

// Lock acquires the session's state lock. Handlers distributing
// sessions across goroutines must hold it for the full submit.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// AuthState returns a snapshot of the session's authorization state.
func (s *Session) AuthState() Auth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Auth
}

// Manager keeps interactive sessions in memory.
type Manager struct {
	sessions        map[string]*Session
	mu              sync.RWMutex
	ttl             time.Duration
	dailyLimit      int
	galleryCapacity int
}

// returns a new session manager; new sessions start with the given
// daily limit and gallery capacity
func NewManager(ttl time.Duration, dailyLimit, galleryCapacity int) *Manager {
	m := &Manager{
		sessions:        make(map[string]*Session),
		ttl:             ttl,
		dailyLimit:      dailyLimit,
		galleryCapacity: galleryCapacity,
	}

	// start cleanup goroutine
	go m.cleanupExpiredSessions()

	return m
}

// returns a new random session ID
func GenerateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// creates a new unauthenticated session with a fresh quota and an
// empty gallery
func (m *Manager) CreateSession() (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &Session{
		ID:           id,
		Quota:        quota.State{Limit: m.dailyLimit},
		Gallery:      gallery.NewStore(m.galleryCapacity),
		LastActivity: now,
		ExpiresAt:    now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	return session, nil
}

// looks up a session pointer without touching its fields
func (m *Manager) lookup(sessionID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[sessionID]
	return session, exists
}

// retrieves a session by ID
func (m *Manager) GetSession(sessionID string) (*Session, bool) {
	session, exists := m.lookup(sessionID)
	if !exists {
		return nil, false
	}

	// check if expired; field access goes through the session lock
	session.mu.Lock()
	expired := time.Now().After(session.ExpiresAt)
	session.mu.Unlock()

	if expired {
		return nil, false
	}

	return session, true
}

// extends the session's lifetime after activity
func (m *Manager) Touch(sessionID string) error {
	session, exists := m.lookup(sessionID)
	if !exists {
		return ErrSessionNotFound
	}

	session.mu.Lock()
	now := time.Now()
	expired := now.After(session.ExpiresAt)

	if !expired {
		session.LastActivity = now
		session.ExpiresAt = now.Add(m.ttl)
	}
	session.mu.Unlock()

	// the map delete happens outside the session lock so the two
	// mutexes are never held together
	if expired {
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
		return ErrSessionExpired
	}

	return nil
}

// marks the session as authenticated with the given identity
func (m *Manager) SetAuth(sessionID, identity string) error {
	session, exists := m.lookup(sessionID)
	if !exists {
		return ErrSessionNotFound
	}

	session.mu.Lock()
	session.Auth = Auth{Authenticated: true, Identity: identity}
	session.mu.Unlock()

	return nil
}

// clears the session's authorization state
func (m *Manager) ClearAuth(sessionID string) error {
	session, exists := m.lookup(sessionID)
	if !exists {
		return ErrSessionNotFound
	}

	session.mu.Lock()
	session.Auth = Auth{}
	session.mu.Unlock()

	return nil
}

// removes a session
func (m *Manager) DeleteSession(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// runs periodically to remove expired sessions
func (m *Manager) cleanupExpiredSessions() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		// snapshot first so expiry checks never nest the two locks
		m.mu.RLock()
		candidates := make(map[string]*Session, len(m.sessions))
		for id, session := range m.sessions {
			candidates[id] = session
		}
		m.mu.RUnlock()

		now := time.Now()
		expired := make([]string, 0)

		for id, session := range candidates {
			session.mu.Lock()
			if now.After(session.ExpiresAt) {
				expired = append(expired, id)
			}
			session.mu.Unlock()
		}

		if len(expired) == 0 {
			continue
		}

		m.mu.Lock()
		for _, id := range expired {
			delete(m.sessions, id)
		}
		m.mu.Unlock()
	}
}

// returns the number of active sessions
func (m *Manager) GetSessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
