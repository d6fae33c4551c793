// ABOUTME: Inbox store for the notification feed
// ABOUTME: Read flags only flip forward; unread count drives the tab badge
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
)

// Inbox owns the notification feed, newest first.
type Inbox struct {
	mu    sync.Mutex
	items []models.Notification
	index map[string]int

	source NotificationSource
	log    *zap.SugaredLogger
}

func NewInbox(source NotificationSource, log *zap.SugaredLogger) *Inbox {
	return &Inbox{
		index:  map[string]int{},
		source: source,
		log:    log,
	}
}

// Load fetches the feed and orders it newest-first.
func (b *Inbox) Load(ctx context.Context) error {
	items, err := b.source.FetchNotifications(ctx)
	if err != nil {
		return fmt.Errorf("fetching notifications: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = items
	b.index = make(map[string]int, len(items))
	for i, n := range items {
		b.index[n.ID] = i
	}
	b.log.Infow("notifications loaded", "count", len(items))
	return nil
}

// List returns the feed in order.
func (b *Inbox) List() []models.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Notification, len(b.items))
	copy(out, b.items)
	return out
}

// MarkRead flips the read flag. Idempotent; there is no way back to unread.
func (b *Inbox) MarkRead(id string) (models.Notification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.index[id]
	if !ok {
		return models.Notification{}, fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	if !b.items[i].Read {
		b.items[i].Read = true
		b.log.Infow("notification read", "id", id)
	}
	return b.items[i], nil
}

// UnreadCount returns how many entries are still unread.
func (b *Inbox) UnreadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for _, n := range b.items {
		if !n.Read {
			count++
		}
	}
	return count
}
