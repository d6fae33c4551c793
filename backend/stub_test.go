// ABOUTME: Tests for the stub backend
// ABOUTME: Seed shape, credential handling, and context cancellation
package backend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocalarepair/leadview/models"
	"github.com/ocalarepair/leadview/store"
)

func TestAuthenticateResolvesProfile(t *testing.T) {
	s := NewStub(0)

	user, err := s.Authenticate(context.Background(), "sarah", "secret")
	require.NoError(t, err)
	assert.Equal(t, "sarah", user.Username)
	assert.Equal(t, "John Smith", user.Name)
	assert.Contains(t, user.Specialties, "Plumbing")
}

func TestAuthenticateRejectsEmptyCredentials(t *testing.T) {
	s := NewStub(0)

	_, err := s.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, store.ErrAuthFailed)
}

func TestRestoreSessionReportsNone(t *testing.T) {
	s := NewStub(0)

	user, err := s.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFetchLeadsSeed(t *testing.T) {
	s := NewStub(0)

	leads, err := s.FetchLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 3)

	jobs := make(map[string]models.Lead, len(leads))
	for _, l := range leads {
		jobs[l.JobType] = l
	}
	faucet, ok := jobs["Kitchen Faucet Repair"]
	require.True(t, ok)
	assert.Equal(t, models.CategoryPlumbing, faucet.Category)
	assert.Equal(t, models.UrgencyUrgent, faucet.Urgency)
	assert.Equal(t, models.StatusNew, faucet.Status)
	assert.Equal(t, "Sarah Johnson", faucet.Resident.Name)
}

func TestFetchLeadsReturnsCopies(t *testing.T) {
	s := NewStub(0)

	first, err := s.FetchLeads(context.Background())
	require.NoError(t, err)
	first[0].Status = models.StatusContacted

	second, err := s.FetchLeads(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, models.StatusContacted, second[0].Status)
}

func TestFetchNotificationsSeed(t *testing.T) {
	s := NewStub(0)

	items, err := s.FetchNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	unread := 0
	for _, n := range items {
		assert.NotEmpty(t, n.ID)
		if !n.Read {
			unread++
		}
	}
	assert.Equal(t, 1, unread)
}

func TestRequestNotificationPermission(t *testing.T) {
	s := NewStub(0)

	granted, err := s.RequestNotificationPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestLatencyRespectsContext(t *testing.T) {
	s := NewStub(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FetchLeads(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
