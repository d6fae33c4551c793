// ABOUTME: Seed data for the stub backend
// ABOUTME: Timestamps are taken relative to app start so relative labels read naturally
package backend

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/ocalarepair/leadview/models"
)

func seedLeads(now time.Time) []models.Lead {
	return []models.Lead{
		{
			ID:            uuid.NewString(),
			JobType:       "Kitchen Faucet Repair",
			Category:      models.CategoryPlumbing,
			Location:      "SE Ocala",
			Urgency:       models.UrgencyUrgent,
			DateRequested: now.Add(-30 * time.Minute),
			Description: "Kitchen faucet has been dripping constantly for 2 days. Water pressure " +
				"seems low and the handle is loose. The drip is getting worse and I'm worried " +
				"about water damage. Looking for a qualified plumber who can come out as soon " +
				"as possible.",
			Resident: models.Resident{
				Name:    "Sarah Johnson",
				Phone:   "(352) 555-0198",
				Email:   "sarah.johnson@email.com",
				Address: "1234 Oak Street, Ocala, FL 34471",
			},
			Budget: "$150-300",
			Timing: "ASAP - urgent repair needed",
			Status: models.StatusNew,
		},
		{
			ID:            uuid.NewString(),
			JobType:       "Outlet Installation",
			Category:      models.CategoryElectrical,
			Location:      "Historic Downtown",
			Urgency:       models.UrgencyFlexible,
			DateRequested: now.Add(-2*time.Hour - 45*time.Minute),
			Description: "Need to install 3 new outlets in home office. Looking for licensed " +
				"electrician. The office currently doesn't have enough outlets for all " +
				"equipment. Need GFCI outlets installed properly.",
			Resident: models.Resident{
				Name:    "Mike Davis",
				Phone:   "(352) 555-0167",
				Email:   "mike.davis@email.com",
				Address: "5678 Pine Avenue, Ocala, FL 34475",
			},
			Budget: "$200-400",
			Timing: "Within next week",
			Status: models.StatusNew,
		},
		{
			ID:            uuid.NewString(),
			JobType:       "Drywall Patch",
			Category:      models.CategoryDrywall,
			Location:      "NW Ocala",
			Urgency:       models.UrgencyFlexible,
			DateRequested: now.Add(-4*time.Hour - 15*time.Minute),
			Description: "Small hole in living room wall from furniture move. Need professional " +
				"patch and paint match. The hole is about 2 inches in diameter. Wall has a " +
				"textured finish that needs to be matched.",
			Resident: models.Resident{
				Name:    "Lisa Rodriguez",
				Phone:   "(352) 555-0143",
				Email:   "lisa.rodriguez@email.com",
				Address: "9012 Maple Drive, Ocala, FL 34482",
			},
			Budget: "$75-150",
			Timing: "Flexible timing",
			Status: models.StatusViewed,
		},
	}
}

func seedNotifications(now time.Time) []models.Notification {
	entries := []struct {
		title   string
		message string
		ts      time.Time
		kind    models.NotificationType
		read    bool
	}{
		{
			title:   "New Lead Available",
			message: "Kitchen Faucet Repair in SE Ocala - Urgent",
			ts:      now.Add(-30 * time.Minute),
			kind:    models.NotificationNewLead,
			read:    false,
		},
		{
			title:   "New Lead Available",
			message: "Outlet Installation in Historic Downtown",
			ts:      now.Add(-2*time.Hour - 45*time.Minute),
			kind:    models.NotificationNewLead,
			read:    true,
		},
		{
			title:   "System Update",
			message: "App updated with improved notification features",
			ts:      now.Add(-30 * time.Hour),
			kind:    models.NotificationSystem,
			read:    true,
		},
		{
			title:   "Weekly Reminder",
			message: "Update your availability status",
			ts:      now.Add(-55 * time.Hour),
			kind:    models.NotificationReminder,
			read:    true,
		},
	}

	out := make([]models.Notification, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.Notification{
			// ULIDs keep the feed ids sortable by time.
			ID:        ulid.MustNew(ulid.Timestamp(e.ts), ulid.DefaultEntropy()).String(),
			Title:     e.title,
			Message:   e.message,
			Timestamp: e.ts,
			Type:      e.kind,
			Read:      e.read,
		})
	}
	return out
}
