// ABOUTME: Notification feed view with unread markers
// ABOUTME: Opening an entry marks it read; the read flag never flips back
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ocalarepair/leadview/models"
)

func (m Model) renderNotificationsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Notifications"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	items := m.inbox.List()
	if len(items) == 0 {
		s.WriteString(subtitleStyle.Render("No Notifications"))
		s.WriteString("\n")
		s.WriteString(subtitleStyle.Render("You'll see new lead alerts and updates here"))
		s.WriteString("\n")
	}

	now := time.Now()
	for i, n := range items {
		var row strings.Builder

		if i == m.noteRow {
			row.WriteString("▶ ")
		} else {
			row.WriteString("  ")
		}

		if n.Read {
			row.WriteString("  ")
		} else {
			row.WriteString(unreadDotStyle.Render("●") + " ")
		}

		row.WriteString(notificationIcon(n.Type))
		row.WriteString(" ")

		title := n.Title
		if !n.Read {
			title = fieldLabelStyle.Render(title)
		}
		row.WriteString(title)
		row.WriteString("  ")
		row.WriteString(subtitleStyle.Render(NotificationTime(n.Timestamp, now)))

		line := row.String()
		if i == m.noteRow {
			line = selectedRowStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
		s.WriteString("      " + subtitleStyle.Render(n.Message))
		s.WriteString("\n")
	}

	s.WriteString(m.renderNotificationsHelp())

	return appFrameStyle.Render(s.String())
}

func notificationIcon(t models.NotificationType) string {
	switch t {
	case models.NotificationNewLead:
		return "🔔"
	case models.NotificationSystem:
		return "⚠"
	}
	return "⏰"
}

func (m Model) renderNotificationsHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: Mark read",
		"Tab: Switch tabs",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleNotificationsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleTabKeys(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.noteRow > 0 {
			m.noteRow--
		}
	case "down", "j":
		if m.noteRow < len(m.inbox.List())-1 {
			m.noteRow++
		}
	case "enter":
		items := m.inbox.List()
		if m.noteRow < len(items) {
			_, _ = m.inbox.MarkRead(items[m.noteRow].ID)
		}
	}

	return m, nil
}
