// ABOUTME: Pure time-label helpers for list rows and the notification feed
// ABOUTME: Never read the clock; callers pass now so the rules stay testable
package tui

import (
	"fmt"
	"time"
)

// RelativeTime labels a lead timestamp relative to now. Under an hour it is
// "Just now"; under a day it is whole hours; older entries show the date.
// The one-hour boundary itself already falls in the hours branch.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return t.Format("1/2/2006")
}

// NotificationTime is RelativeTime with an extra "Yesterday" bucket for the
// feed, matching how the alerts screen labels day-old entries.
func NotificationTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "Yesterday"
	}
	return t.Format("1/2/2006")
}

// longDate is the full request-date line on the detail view.
func longDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006 3:04 PM")
}
