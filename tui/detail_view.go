// ABOUTME: Lead detail view with job, resident contact, and budget sections
// ABOUTME: Contacting the resident advances the lead to contacted
package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ocalarepair/leadview/store"
)

func (m Model) renderDetailView() string {
	lead, err := m.catalog.Get(m.selectedID)
	if err != nil {
		// Recoverable miss: show the affordance rather than a broken screen.
		return appFrameStyle.Render(
			errorStyle.Render("Lead not found") + "\n\n" +
				helpStyle.Render("Esc: Go back"))
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Lead Details"))
	s.WriteString("\n\n")

	s.WriteString(categoryBadge(lead.Category))
	s.WriteString("  ")
	tone := UrgencyStyle(lead.Urgency)
	s.WriteString(tone.Badge.Render(string(lead.Urgency)))
	s.WriteString("  ")
	s.WriteString(lipgloss.NewStyle().Foreground(StatusColor(lead.Status)).Render(StatusIcon(lead.Status) + " " + string(lead.Status)))
	s.WriteString("\n\n")

	s.WriteString(fieldValueStyle.Bold(true).Render(lead.JobType))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render(lead.Location + " • " + longDate(lead.DateRequested)))
	s.WriteString("\n")

	s.WriteString(sectionTitleStyle.Render("Job Description"))
	s.WriteString("\n")
	s.WriteString(fieldValueStyle.Width(m.width - 8).Render(lead.Description))
	s.WriteString("\n")

	s.WriteString(sectionTitleStyle.Render("Resident Contact"))
	s.WriteString("\n")
	s.WriteString(detailRow("Name", lead.Resident.Name))
	s.WriteString(detailRow("Phone", lead.Resident.Phone))
	s.WriteString(detailRow("Email", lead.Resident.Email))
	s.WriteString(detailRow("Address", lead.Resident.Address))

	s.WriteString(sectionTitleStyle.Render("Budget & Timing"))
	s.WriteString("\n")
	s.WriteString(detailRow("Budget", budgetStyle.Render(lead.Budget)))
	s.WriteString(detailRow("Timing", lead.Timing))
	s.WriteString("\n")

	if m.statusLine != "" {
		s.WriteString(statusLineStyle.Render(m.statusLine))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(strings.Join([]string{
		"c: Mark contacted",
		"Esc: Back",
		"q: Quit",
	}, " • ")))

	return appFrameStyle.Render(s.String())
}

func detailRow(label, value string) string {
	return fieldLabelStyle.Width(10).Render(label) + " " + fieldValueStyle.Render(value) + "\n"
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.statusLine = ""
		m.viewMode = ViewLeads
	case "c":
		lead, err := m.catalog.MarkContacted(m.selectedID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				m.statusLine = "Lead not found"
			}
			return m, nil
		}
		m.statusLine = "Marked as contacted — reach " + lead.Resident.Name + " at " + lead.Resident.Phone
	case "q":
		return m, tea.Quit
	}

	return m, nil
}
