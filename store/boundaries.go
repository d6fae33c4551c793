// ABOUTME: Boundary interfaces the stores depend on
// ABOUTME: Implemented by the stub backend; a real API client would slot in here
package store

import (
	"context"

	"github.com/ocalarepair/leadview/models"
)

// Authenticator resolves credentials against the contractor account service.
type Authenticator interface {
	// Authenticate exchanges credentials for a contractor profile.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// RestoreSession checks for a previously stored session at app start.
	// A (nil, nil) result means no session exists.
	RestoreSession(ctx context.Context) (*models.User, error)
}

// ResetDispatcher asks the account service to send password reset instructions.
type ResetDispatcher interface {
	RequestReset(ctx context.Context, identifier string) error
}

// LeadSource fetches the lead feed for the signed-in contractor.
type LeadSource interface {
	FetchLeads(ctx context.Context) ([]models.Lead, error)
}

// NotificationSource fetches the alert feed.
type NotificationSource interface {
	FetchNotifications(ctx context.Context) ([]models.Notification, error)
}

// PermissionRequester wraps the platform push-permission prompt.
type PermissionRequester interface {
	RequestNotificationPermission(ctx context.Context) (bool, error)
}
