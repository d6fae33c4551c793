// ABOUTME: Tests for the pure relative-time labels
// ABOUTME: Pins the branch boundaries at exactly 1h, 24h, and 48h
package tui

import (
	"testing"
	"time"
)

var now = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds old", 45 * time.Second, "Just now"},
		{"just under an hour", 59*time.Minute + 59*time.Second, "Just now"},
		{"exactly one hour", time.Hour, "1h ago"},
		{"three and a half hours", 3*time.Hour + 30*time.Minute, "3h ago"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"exactly a day", 24 * time.Hour, "1/14/2024"},
		{"several days", 72 * time.Hour, "1/12/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTime(now.Add(-tt.age), now)
			if got != tt.want {
				t.Errorf("RelativeTime(-%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}

func TestNotificationTime(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds old", 30 * time.Second, "Just now"},
		{"exactly one hour", time.Hour, "1h ago"},
		{"same day", 5 * time.Hour, "5h ago"},
		{"exactly a day", 24 * time.Hour, "Yesterday"},
		{"just under two days", 47 * time.Hour, "Yesterday"},
		{"exactly two days", 48 * time.Hour, "1/13/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NotificationTime(now.Add(-tt.age), now)
			if got != tt.want {
				t.Errorf("NotificationTime(-%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}
