// ABOUTME: Notification settings store for the three channel toggles
// ABOUTME: Whole-record replace; a real build would sync the record server-side
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
)

// NotificationSettingsStore holds the push/email/sms toggles. The fields are
// independent booleans, so Update replaces the whole record without
// validation.
type NotificationSettingsStore struct {
	mu       sync.Mutex
	settings models.NotificationSettings

	perms PermissionRequester
	log   *zap.SugaredLogger
}

func NewNotificationSettingsStore(perms PermissionRequester, log *zap.SugaredLogger) *NotificationSettingsStore {
	return &NotificationSettingsStore{
		settings: models.DefaultNotificationSettings(),
		perms:    perms,
		log:      log,
	}
}

// Settings returns the current record.
func (s *NotificationSettingsStore) Settings() models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update replaces the settings record.
func (s *NotificationSettingsStore) Update(settings models.NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.log.Infow("notification settings updated",
		"push", settings.PushEnabled,
		"email", settings.EmailEnabled,
		"sms", settings.SMSEnabled)
}

// RequestPermission runs the platform push-permission prompt.
func (s *NotificationSettingsStore) RequestPermission(ctx context.Context) (bool, error) {
	granted, err := s.perms.RequestNotificationPermission(ctx)
	if err != nil {
		return false, err
	}
	s.log.Infow("push permission", "granted", granted)
	return granted, nil
}
