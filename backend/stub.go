// ABOUTME: Stub backend simulating the OcalaRepair API over seeded data
// ABOUTME: Every call waits a fixed latency; no network or persistence exists
package backend

import (
	"context"
	"time"

	"github.com/ocalarepair/leadview/models"
	"github.com/ocalarepair/leadview/store"
)

// Stub satisfies every store boundary with in-memory seed data and a fixed
// simulated round-trip latency. It is the only load path for demo data.
type Stub struct {
	latency       time.Duration
	leads         []models.Lead
	notifications []models.Notification
	profile       models.User
}

// NewStub seeds the demo feed relative to the current time so the relative
// timestamps in the UI stay meaningful.
func NewStub(latency time.Duration) *Stub {
	now := time.Now().UTC()
	return &Stub{
		latency:       latency,
		leads:         seedLeads(now),
		notifications: seedNotifications(now),
		profile: models.User{
			ID:          "c7a9e6d2-4f13-4b8a-9c0d-5e2f8a1b3c4d",
			Name:        "John Smith",
			Email:       "john@example.com",
			Phone:       "(352) 555-0123",
			Specialties: []string{"Plumbing", "Electrical", "Drywall"},
		},
	}
}

// wait blocks for the simulated round-trip or until the context is done.
func (s *Stub) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Authenticate accepts any non-empty credentials and resolves the demo
// contractor profile under the given username.
func (s *Stub) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if username == "" || password == "" {
		return nil, store.ErrAuthFailed
	}
	user := s.profile
	user.Username = username
	return &user, nil
}

// RestoreSession reports no stored session; the app always starts at the
// login screen.
func (s *Stub) RestoreSession(ctx context.Context) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// RequestReset acknowledges without dispatching anything.
func (s *Stub) RequestReset(ctx context.Context, identifier string) error {
	return s.wait(ctx)
}

// FetchLeads returns a copy of the seeded feed.
func (s *Stub) FetchLeads(ctx context.Context) ([]models.Lead, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

// FetchNotifications returns a copy of the seeded alert feed.
func (s *Stub) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out, nil
}

// RequestNotificationPermission always grants; there is no platform prompt
// in a terminal build.
func (s *Stub) RequestNotificationPermission(ctx context.Context) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	return true, nil
}
