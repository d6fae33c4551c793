// ABOUTME: Tests for the notification inbox
// ABOUTME: Ordering, forward-only read flags, and unread counting
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

type fakeNoteSource struct {
	items []models.Notification
}

func (f *fakeNoteSource) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out, nil
}

func newTestInbox(t *testing.T) *Inbox {
	t.Helper()
	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	source := &fakeNoteSource{items: []models.Notification{
		{ID: "n1", Title: "Weekly Reminder", Timestamp: base, Type: models.NotificationReminder, Read: true},
		{ID: "n2", Title: "New Lead Available", Timestamp: base.Add(6 * time.Hour), Type: models.NotificationNewLead},
		{ID: "n3", Title: "New Lead Available", Timestamp: base.Add(4 * time.Hour), Type: models.NotificationNewLead},
	}}
	b := NewInbox(source, zap.NewNop().Sugar())
	require.NoError(t, b.Load(context.Background()))
	return b
}

func TestInboxOrderNewestFirst(t *testing.T) {
	b := newTestInbox(t)

	items := b.List()
	require.Len(t, items, 3)
	assert.Equal(t, "n2", items[0].ID)
	assert.Equal(t, "n3", items[1].ID)
	assert.Equal(t, "n1", items[2].ID)
}

func TestMarkReadIsForwardOnly(t *testing.T) {
	b := newTestInbox(t)

	n, err := b.MarkRead("n2")
	require.NoError(t, err)
	assert.True(t, n.Read)

	// Marking again is a no-op, never a flip back.
	again, err := b.MarkRead("n2")
	require.NoError(t, err)
	assert.True(t, again.Read)
}

func TestMarkReadNotFound(t *testing.T) {
	b := newTestInbox(t)

	_, err := b.MarkRead("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnreadCount(t *testing.T) {
	b := newTestInbox(t)
	assert.Equal(t, 2, b.UnreadCount())

	_, err := b.MarkRead("n3")
	require.NoError(t, err)
	assert.Equal(t, 1, b.UnreadCount())
}
