package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode"

	"airbnbes/pkg/api"
)

// State is the lifecycle phase of the client session.
type State string

const (
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// Backend is the part of the API surface the session lifecycle drives.
type Backend interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

// Manager owns the authenticated identity for the running process. It is
// constructed explicitly and handed to whatever needs it; there is no
// package-level session singleton.
type Manager struct {
	backend Backend
	store   *Store
	logger  *log.Logger

	mu      sync.Mutex
	state   State
	current Session
}

// NewManager creates a manager in the loading state; call Restore to
// resolve it.
func NewManager(backend Backend, store *Store, logger *log.Logger) (*Manager, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		backend: backend,
		store:   store,
		logger:  logger,
		state:   StateLoading,
	}, nil
}

// Restore loads a persisted session, if any. No network call validates the
// token here: it is assumed good until the backend answers a 401.
func (m *Manager) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok, err := m.store.Load()
	if err != nil {
		m.state = StateUnauthenticated
		return err
	}
	if !ok {
		m.state = StateUnauthenticated
		return nil
	}

	m.current = sess
	m.state = StateAuthenticated
	return nil
}

// Login exchanges credentials for a token, derives the user from the token
// payload, and persists both together. Any failure leaves the session
// unauthenticated.
func (m *Manager) Login(ctx context.Context, email, password string) (User, error) {
	m.setState(StateLoading)

	token, err := m.backend.Authenticate(ctx, email, password)
	if err != nil {
		m.setState(StateUnauthenticated)
		return User{}, fmt.Errorf("authenticate: %w", err)
	}

	user, err := UserFromToken(token)
	if err != nil {
		m.setState(StateUnauthenticated)
		return User{}, err
	}

	sess := Session{User: user, Token: token}
	if err := m.store.Save(sess); err != nil {
		m.setState(StateUnauthenticated)
		return User{}, err
	}

	m.mu.Lock()
	m.current = sess
	m.state = StateAuthenticated
	m.mu.Unlock()
	return user, nil
}

// Register creates an account without authenticating it. The display name
// splits at the first whitespace into the backend's name/lastname pair.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	first, last := splitName(name)
	return m.backend.Register(ctx, api.RegisterRequest{
		Name:     first,
		Lastname: last,
		Email:    email,
		Password: password,
	})
}

// Logout clears the persisted credentials and resets the session.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.Clear()
	m.current = Session{}
	m.state = StateUnauthenticated
	return err
}

// Invalidate drops credentials after the backend rejected the token. It is
// wired as the API client's unauthorized hook. The return value reports
// whether an active session was actually cleared, so callers can surface
// the expiry notice exactly once.
func (m *Manager) Invalidate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAuthenticated {
		return false
	}
	if err := m.store.Clear(); err != nil {
		m.logger.Printf("clear session: %v", err)
	}
	m.current = Session{}
	m.state = StateUnauthenticated
	return true
}

// Token returns the active bearer token, or empty when unauthenticated.
// Suitable as the API client's token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Token
}

// Current returns the authenticated user, if any.
func (m *Manager) Current() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.User, m.state == StateAuthenticated
}

// State returns the current lifecycle phase.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if i := strings.IndexFunc(full, unicode.IsSpace); i >= 0 {
		return full[:i], strings.TrimSpace(full[i:])
	}
	return full, ""
}
