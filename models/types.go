// ABOUTME: Data models for the contractor lead-viewing app
// ABOUTME: Defines Lead, Resident, User, Notification, and settings types
package models

import "time"

// Category classifies the trade a lead belongs to.
type Category string

const (
	CategoryPlumbing   Category = "Plumbing"
	CategoryElectrical Category = "Electrical"
	CategoryDrywall    Category = "Drywall"
	CategoryPainting   Category = "Painting"
	CategoryRoofing    Category = "Roofing"
	CategoryHVAC       Category = "HVAC"
	CategoryOther      Category = "Other"
)

// Urgency is the binary priority classification on a lead.
type Urgency string

const (
	UrgencyUrgent   Urgency = "Urgent"
	UrgencyFlexible Urgency = "Flexible"
)

// Status is the progress marker on a lead. It only moves forward:
// new -> viewed -> contacted.
type Status string

const (
	StatusNew       Status = "new"
	StatusViewed    Status = "viewed"
	StatusContacted Status = "contacted"
)

// Rank orders statuses by progress. Higher rank means further along;
// transitions that would lower the rank are rejected by the catalog.
func (s Status) Rank() int {
	switch s {
	case StatusViewed:
		return 1
	case StatusContacted:
		return 2
	}
	return 0
}

// Resident is the homeowner who filed the service request.
type Resident struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Lead is a service request surfaced to a contractor.
type Lead struct {
	ID            string    `json:"id"`
	JobType       string    `json:"job_type"`
	Category      Category  `json:"category"`
	Location      string    `json:"location"`
	Urgency       Urgency   `json:"urgency"`
	DateRequested time.Time `json:"date_requested"`
	Description   string    `json:"description"`
	Resident      Resident  `json:"resident"`
	Budget        string    `json:"budget"`
	Timing        string    `json:"timing"`
	Status        Status    `json:"status"`
}

// User is the authenticated contractor profile.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
}

// NotificationType constants.
type NotificationType string

const (
	NotificationNewLead  NotificationType = "new_lead"
	NotificationSystem   NotificationType = "system"
	NotificationReminder NotificationType = "reminder"
)

// Notification is an entry in the alert feed. Read only flips false -> true.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
}

// NotificationSettings holds the three independent channel toggles.
type NotificationSettings struct {
	PushEnabled  bool `json:"push_enabled"`
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
}

// DefaultNotificationSettings returns the channel defaults applied at
// session start: push and email on, SMS off.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		PushEnabled:  true,
		EmailEnabled: true,
		SMSEnabled:   false,
	}
}
