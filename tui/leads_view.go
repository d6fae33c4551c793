// ABOUTME: Lead list view rendered as a table, newest requests first
// ABOUTME: Opening a lead marks it viewed through the catalog before the detail view
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderLeadsView() string {
	var s strings.Builder

	name := "Contractor"
	if user := m.session.User(); user != nil {
		name = user.Name
	}
	s.WriteString(titleStyle.Render("Welcome back, " + name))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render("New leads available"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" Loading leads...")
	} else {
		s.WriteString(m.renderLeadsTable())
	}
	s.WriteString("\n")

	if m.refreshing {
		s.WriteString(m.spinner.View())
		s.WriteString(" Refreshing...")
		s.WriteString("\n")
	}
	if m.statusLine != "" {
		s.WriteString(statusLineStyle.Render(m.statusLine))
		s.WriteString("\n")
	}

	s.WriteString(m.renderLeadsHelp())

	return appFrameStyle.Render(s.String())
}

func (m Model) renderTabs() string {
	labels := []string{"Leads", "Notifications", "Settings"}
	if unread := m.inbox.UnreadCount(); unread > 0 {
		labels[1] = fmt.Sprintf("Notifications (%d)", unread)
	}
	active := map[ViewMode]int{ViewLeads: 0, ViewNotifications: 1, ViewSettings: 2}

	var rendered []string
	for i, label := range labels {
		if active[m.viewMode] == i {
			rendered = append(rendered, tabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderLeadsTable() string {
	leads := m.catalog.List()
	if len(leads) == 0 {
		return subtitleStyle.Render("No leads right now. Press r to refresh.")
	}

	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Job", Width: 26},
		{Title: "Category", Width: 12},
		{Title: "Location", Width: 18},
		{Title: "When", Width: 10},
		{Title: "Urgency", Width: 9},
		{Title: "Budget", Width: 10},
	}

	now := time.Now()
	var rows []table.Row
	for _, lead := range leads {
		rows = append(rows, table.Row{
			StatusIcon(lead.Status),
			lead.JobType,
			string(lead.Category),
			lead.Location,
			RelativeTime(lead.DateRequested, now),
			string(lead.Urgency),
			lead.Budget,
		})
	}

	height := len(rows)
	if limit := m.height - 12; height > limit && limit > 0 {
		height = limit
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.leadRow < len(rows) {
		t.SetCursor(m.leadRow)
	}

	return t.View()
}

func (m Model) renderLeadsHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: View lead",
		"r: Refresh",
		"Tab: Switch tabs",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleLeadsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleTabKeys(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.leadRow > 0 {
			m.leadRow--
		}
	case "down", "j":
		if m.leadRow < len(m.catalog.List())-1 {
			m.leadRow++
		}
	case "enter":
		leads := m.catalog.List()
		if m.leadRow >= len(leads) {
			return m, nil
		}
		lead := leads[m.leadRow]
		// Opening the detail view is what advances new -> viewed.
		if _, err := m.catalog.MarkViewed(lead.ID); err != nil {
			m.statusLine = "Lead not found"
			return m, nil
		}
		m.selectedID = lead.ID
		m.statusLine = ""
		m.viewMode = ViewLeadDetail
	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.statusLine = ""
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
	}

	return m, nil
}
