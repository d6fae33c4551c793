// ABOUTME: Tests for lead-viewing data models
// ABOUTME: Validates status ranking and notification settings defaults
package models

import "testing"

func TestStatusRankOrdering(t *testing.T) {
	if StatusNew.Rank() != 0 {
		t.Errorf("expected rank 0 for new, got %d", StatusNew.Rank())
	}
	if StatusViewed.Rank() != 1 {
		t.Errorf("expected rank 1 for viewed, got %d", StatusViewed.Rank())
	}
	if StatusContacted.Rank() != 2 {
		t.Errorf("expected rank 2 for contacted, got %d", StatusContacted.Rank())
	}
}

func TestStatusRankUnknownIsNew(t *testing.T) {
	// Anything outside the enum ranks with new so it can still advance.
	if Status("bogus").Rank() != 0 {
		t.Errorf("expected rank 0 for unknown status, got %d", Status("bogus").Rank())
	}
}

func TestDefaultNotificationSettings(t *testing.T) {
	s := DefaultNotificationSettings()

	if !s.PushEnabled {
		t.Error("expected push enabled by default")
	}
	if !s.EmailEnabled {
		t.Error("expected email enabled by default")
	}
	if s.SMSEnabled {
		t.Error("expected sms disabled by default")
	}
}
