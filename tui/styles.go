// ABOUTME: Lipgloss styles and the pure display projections
// ABOUTME: Category color/icon, urgency tones, and status glyphs for leads
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ocalarepair/leadview/models"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2563EB"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	appFrameStyle = lipgloss.NewStyle().
			Padding(1, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2563EB")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626"))

	statusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#059669")).
			Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563EB"))

	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#334155"))

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0F172A"))

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("#1E293B")).
				MarginTop(1)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("235")).
				Bold(true)

	unreadDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563EB")).
			Bold(true)

	budgetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#059669")).
			Bold(true)
)

// CategoryColor maps a lead category to its badge color. Anything outside
// the enumeration renders with the Other color.
func CategoryColor(c models.Category) lipgloss.Color {
	switch c {
	case models.CategoryPlumbing:
		return lipgloss.Color("#3B82F6")
	case models.CategoryElectrical:
		return lipgloss.Color("#F59E0B")
	case models.CategoryDrywall:
		return lipgloss.Color("#8B5CF6")
	case models.CategoryPainting:
		return lipgloss.Color("#EC4899")
	case models.CategoryHVAC:
		return lipgloss.Color("#06B6D4")
	case models.CategoryRoofing:
		return lipgloss.Color("#84CC16")
	}
	return lipgloss.Color("#6B7280")
}

// CategoryIcon maps a lead category to a glyph. Unknown values fall back to
// the Other glyph.
func CategoryIcon(c models.Category) string {
	switch c {
	case models.CategoryPlumbing:
		return "◉"
	case models.CategoryElectrical:
		return "⚡"
	case models.CategoryDrywall:
		return "⌂"
	case models.CategoryPainting:
		return "✎"
	case models.CategoryHVAC:
		return "≋"
	case models.CategoryRoofing:
		return "⌂"
	}
	return "✦"
}

// UrgencyTone is the badge/text style pair for an urgency level.
type UrgencyTone struct {
	Badge lipgloss.Style
	Text  lipgloss.Style
}

// UrgencyStyle returns the tone for the two-value urgency enum.
func UrgencyStyle(u models.Urgency) UrgencyTone {
	if u == models.UrgencyUrgent {
		return UrgencyTone{
			Badge: lipgloss.NewStyle().Background(lipgloss.Color("#FEE2E2")).Foreground(lipgloss.Color("#DC2626")).Padding(0, 1),
			Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true),
		}
	}
	return UrgencyTone{
		Badge: lipgloss.NewStyle().Background(lipgloss.Color("#F0F9FF")).Foreground(lipgloss.Color("#0284C7")).Padding(0, 1),
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0284C7")),
	}
}

// StatusIcon returns the progress glyph for a lead status.
func StatusIcon(s models.Status) string {
	switch s {
	case models.StatusViewed:
		return "◐"
	case models.StatusContacted:
		return "✓"
	}
	return "●"
}

// StatusColor returns the color matching StatusIcon.
func StatusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusViewed:
		return lipgloss.Color("#F59E0B")
	case models.StatusContacted:
		return lipgloss.Color("#10B981")
	}
	return lipgloss.Color("#EF4444")
}

// categoryBadge renders the colored category chip used on both the list and
// detail views.
func categoryBadge(c models.Category) string {
	return lipgloss.NewStyle().
		Background(CategoryColor(c)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Render(CategoryIcon(c) + " " + string(c))
}
