// ABOUTME: Tests for the session store state machine
// ABOUTME: Covers validation, auth failure, busy rejection, and logout
package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
)

type fakeAuth struct {
	user    models.User
	err     error
	started chan struct{} // closed when Authenticate is entered, if set
	gate    chan struct{} // Authenticate blocks until closed, if set
}

func (f *fakeAuth) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	user := f.user
	user.Username = username
	return &user, nil
}

func (f *fakeAuth) RestoreSession(ctx context.Context) (*models.User, error) {
	return nil, nil
}

type fakeReset struct {
	err   error
	calls []string
}

func (f *fakeReset) RequestReset(ctx context.Context, identifier string) error {
	f.calls = append(f.calls, identifier)
	return f.err
}

func newTestSession(auth *fakeAuth, reset *fakeReset) *SessionStore {
	s := NewSessionStore(auth, reset, zap.NewNop().Sugar())
	s.CheckAuth(context.Background())
	return s
}

func TestCheckAuthSettlesToLoggedOut(t *testing.T) {
	s := NewSessionStore(&fakeAuth{}, &fakeReset{}, zap.NewNop().Sugar())
	require.Equal(t, StateChecking, s.State())

	state := s.CheckAuth(context.Background())

	assert.Equal(t, StateLoggedOut, state)
	assert.Nil(t, s.User())
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"empty password", "user", ""},
		{"whitespace username", "   ", "pw"},
		{"whitespace password", "user", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(&fakeAuth{}, &fakeReset{})

			_, err := s.Login(context.Background(), tt.username, tt.password)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, StateLoggedOut, s.State())
			assert.Nil(t, s.User())
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	s := newTestSession(&fakeAuth{user: models.User{Name: "John Smith"}}, &fakeReset{})

	user, err := s.Login(context.Background(), "sarah", "secret")

	require.NoError(t, err)
	assert.Equal(t, "sarah", user.Username)
	assert.Equal(t, StateLoggedIn, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, "sarah", s.User().Username)
}

func TestLoginTrimsUsername(t *testing.T) {
	s := newTestSession(&fakeAuth{}, &fakeReset{})

	user, err := s.Login(context.Background(), "  sarah  ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "sarah", user.Username)
}

func TestLoginAuthFailureLeavesLoggedOut(t *testing.T) {
	s := newTestSession(&fakeAuth{err: ErrAuthFailed}, &fakeReset{})

	_, err := s.Login(context.Background(), "sarah", "wrong")

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, StateLoggedOut, s.State())
	assert.Nil(t, s.User())
}

func TestConcurrentLoginRejectedWithBusy(t *testing.T) {
	auth := &fakeAuth{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	started := auth.started
	s := newTestSession(auth, &fakeReset{})

	type result struct {
		user *models.User
		err  error
	}
	done := make(chan result, 1)
	go func() {
		user, err := s.Login(context.Background(), "sarah", "secret")
		done <- result{user, err}
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first login never reached the authenticator")
	}
	assert.Equal(t, StateAuthenticating, s.State())

	_, err := s.Login(context.Background(), "other", "pw")
	assert.ErrorIs(t, err, ErrBusy)

	close(auth.gate)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, "sarah", first.user.Username)
	assert.Equal(t, StateLoggedIn, s.State())
}

func TestLogoutClearsSession(t *testing.T) {
	s := newTestSession(&fakeAuth{}, &fakeReset{})
	_, err := s.Login(context.Background(), "sarah", "secret")
	require.NoError(t, err)

	s.Logout()

	assert.Equal(t, StateLoggedOut, s.State())
	assert.Nil(t, s.User())
}

func TestForgotPassword(t *testing.T) {
	reset := &fakeReset{}
	s := newTestSession(&fakeAuth{}, reset)

	assert.ErrorIs(t, s.ForgotPassword(context.Background(), "   "), ErrValidation)
	assert.Empty(t, reset.calls)

	require.NoError(t, s.ForgotPassword(context.Background(), " sarah@example.com "))
	assert.Equal(t, []string{"sarah@example.com"}, reset.calls)
}
