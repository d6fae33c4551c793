// ABOUTME: Session store holding the authenticated contractor, if any
// ABOUTME: Guards the login state machine: checking -> logged out <-> logged in
package store

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
)

// SessionState is the login state machine position.
type SessionState int

const (
	// StateChecking is the transient startup state while the stored-session
	// check is in flight.
	StateChecking SessionState = iota
	StateLoggedOut
	StateAuthenticating
	StateLoggedIn
)

func (s SessionState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateLoggedOut:
		return "logged_out"
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged_in"
	}
	return "unknown"
}

// SessionStore owns the current session. At most one contractor is signed in
// at a time; a nil user means unauthenticated.
type SessionStore struct {
	mu    sync.Mutex
	state SessionState
	user  *models.User

	auth  Authenticator
	reset ResetDispatcher
	log   *zap.SugaredLogger
}

// NewSessionStore returns a store in the Checking state; call CheckAuth to
// settle it before presenting the login screen.
func NewSessionStore(auth Authenticator, reset ResetDispatcher, log *zap.SugaredLogger) *SessionStore {
	return &SessionStore{
		state: StateChecking,
		auth:  auth,
		reset: reset,
		log:   log,
	}
}

// CheckAuth runs the startup stored-session check and settles the state
// machine to LoggedIn or LoggedOut.
func (s *SessionStore) CheckAuth(ctx context.Context) SessionState {
	user, err := s.auth.RestoreSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateChecking {
		return s.state
	}
	if err != nil || user == nil {
		s.state = StateLoggedOut
		return s.state
	}
	s.user = user
	s.state = StateLoggedIn
	s.log.Infow("session restored", "username", user.Username)
	return s.state
}

// Login validates the credentials, runs them through the authentication
// boundary, and on success populates the session. A second call while one is
// already authenticating fails with ErrBusy rather than queueing.
func (s *SessionStore) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	if s.state == StateAuthenticating {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = StateAuthenticating
	s.mu.Unlock()

	user, err := s.auth.Authenticate(ctx, username, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateLoggedOut
		s.user = nil
		s.log.Infow("login failed", "username", username, "error", err.Error())
		return nil, err
	}

	s.user = user
	s.state = StateLoggedIn
	s.log.Infow("login", "username", user.Username)
	return user, nil
}

// Logout clears the session unconditionally.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.log.Infow("logout", "username", s.user.Username)
	}
	s.user = nil
	s.state = StateLoggedOut
}

// ForgotPassword asks the reset boundary to dispatch instructions for the
// given username or email. No mail is sent in this build; the stub always
// acknowledges.
func (s *SessionStore) ForgotPassword(ctx context.Context, identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ErrValidation
	}
	if err := s.reset.RequestReset(ctx, identifier); err != nil {
		return err
	}
	s.log.Infow("password reset requested", "identifier", identifier)
	return nil
}

// User returns the signed-in contractor, or nil.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// State returns the current state machine position.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
