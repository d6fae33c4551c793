// ABOUTME: Tests for the display projections
// ABOUTME: Category color/icon totality and the urgency tones
package tui

import (
	"testing"

	"github.com/ocalarepair/leadview/models"
)

func TestCategoryColorCoversEnum(t *testing.T) {
	categories := []models.Category{
		models.CategoryPlumbing,
		models.CategoryElectrical,
		models.CategoryDrywall,
		models.CategoryPainting,
		models.CategoryRoofing,
		models.CategoryHVAC,
		models.CategoryOther,
	}

	seen := map[string]bool{}
	for _, c := range categories {
		color := string(CategoryColor(c))
		if color == "" {
			t.Errorf("no color for category %s", c)
		}
		if seen[color] {
			t.Errorf("duplicate color %s for category %s", color, c)
		}
		seen[color] = true
	}
}

func TestUnknownCategoryFallsBackToOther(t *testing.T) {
	unknown := models.Category("Landscaping")

	if CategoryColor(unknown) != CategoryColor(models.CategoryOther) {
		t.Error("unknown category should use the Other color")
	}
	if CategoryIcon(unknown) != CategoryIcon(models.CategoryOther) {
		t.Error("unknown category should use the Other icon")
	}
}

func TestStatusIconPerStatus(t *testing.T) {
	icons := map[models.Status]string{
		models.StatusNew:       StatusIcon(models.StatusNew),
		models.StatusViewed:    StatusIcon(models.StatusViewed),
		models.StatusContacted: StatusIcon(models.StatusContacted),
	}

	if icons[models.StatusNew] == icons[models.StatusViewed] ||
		icons[models.StatusViewed] == icons[models.StatusContacted] {
		t.Error("status icons should be distinct")
	}
}

func TestUrgencyStyleTwoWay(t *testing.T) {
	urgent := UrgencyStyle(models.UrgencyUrgent)
	flexible := UrgencyStyle(models.UrgencyFlexible)

	if urgent.Badge.GetBackground() == flexible.Badge.GetBackground() {
		t.Error("urgent and flexible badges should differ")
	}
}
