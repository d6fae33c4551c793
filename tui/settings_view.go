// ABOUTME: Settings view: profile card, channel toggles, and sign out
// ABOUTME: Toggles replace the whole settings record through the store
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsRowPush = iota
	settingsRowEmail
	settingsRowSMS
	settingsRowSignOut
	settingsRowCount
)

func (m Model) renderSettingsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Settings"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(sectionTitleStyle.Render("Profile"))
	s.WriteString("\n")
	if user := m.session.User(); user != nil {
		s.WriteString(fieldLabelStyle.Render(initials(user.Name)) + "  " + fieldValueStyle.Bold(true).Render(user.Name))
		s.WriteString("\n")
		s.WriteString("    " + subtitleStyle.Render(user.Email))
		s.WriteString("\n")
		s.WriteString("    " + subtitleStyle.Render(strings.Join(user.Specialties, ", ")))
		s.WriteString("\n")
	} else {
		s.WriteString(subtitleStyle.Render("Not signed in"))
		s.WriteString("\n")
	}

	s.WriteString(sectionTitleStyle.Render("Notifications"))
	s.WriteString("\n")

	settings := m.settings.Settings()
	rows := []struct {
		title    string
		subtitle string
		enabled  bool
	}{
		{"Push Notifications", "Get instant alerts for new leads", settings.PushEnabled},
		{"Email Notifications", "Receive lead summaries via email", settings.EmailEnabled},
		{"SMS Notifications", "Text alerts for urgent leads", settings.SMSEnabled},
	}

	for i, row := range rows {
		var line strings.Builder
		if i == m.settingsRow {
			line.WriteString("▶ ")
		} else {
			line.WriteString("  ")
		}
		line.WriteString(toggleGlyph(row.enabled))
		line.WriteString(" ")
		line.WriteString(row.title)

		text := line.String()
		if i == m.settingsRow {
			text = selectedRowStyle.Render(text)
		}
		s.WriteString(text)
		s.WriteString("\n")
		s.WriteString("      " + subtitleStyle.Render(row.subtitle))
		s.WriteString("\n")
	}

	s.WriteString(sectionTitleStyle.Render("Account"))
	s.WriteString("\n")
	signOut := "  Sign Out"
	if m.settingsRow == settingsRowSignOut {
		signOut = selectedRowStyle.Render("▶ Sign Out")
	}
	s.WriteString(errorStyle.Render(signOut))
	s.WriteString("\n\n")

	if m.confirmingLogout {
		s.WriteString(errorStyle.Render("Are you sure you want to sign out? (y/n)"))
		s.WriteString("\n")
	}
	if m.statusLine != "" {
		s.WriteString(statusLineStyle.Render(m.statusLine))
		s.WriteString("\n")
	}

	s.WriteString(m.renderSettingsHelp())

	return appFrameStyle.Render(s.String())
}

func toggleGlyph(enabled bool) string {
	if enabled {
		return statusLineStyle.Render("[on] ")
	}
	return subtitleStyle.Render("[off]")
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	if b.Len() == 0 {
		return "C"
	}
	return b.String()
}

func (m Model) renderSettingsHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Space/Enter: Toggle / select",
		"Tab: Switch tabs",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingLogout {
		switch msg.String() {
		case "y", "Y", "enter":
			m.session.Logout()
			m.confirmingLogout = false
			m.viewMode = ViewLogin
			m.leadRow = 0
			m.noteRow = 0
			m.settingsRow = 0
			m.resetLoginForm()
		case "n", "N", "esc":
			m.confirmingLogout = false
		}
		return m, nil
	}

	if m.handleTabKeys(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.settingsRow > 0 {
			m.settingsRow--
		}
	case "down", "j":
		if m.settingsRow < settingsRowCount-1 {
			m.settingsRow++
		}
	case " ", "enter":
		if m.settingsRow == settingsRowSignOut {
			if msg.String() == "enter" {
				m.confirmingLogout = true
			}
			return m, nil
		}
		return m.toggleSetting(m.settingsRow)
	}

	return m, nil
}

// toggleSetting flips one channel and replaces the whole record, leaving the
// other toggles untouched.
func (m Model) toggleSetting(row int) (tea.Model, tea.Cmd) {
	settings := m.settings.Settings()
	requestPermission := false

	switch row {
	case settingsRowPush:
		settings.PushEnabled = !settings.PushEnabled
		requestPermission = settings.PushEnabled
	case settingsRowEmail:
		settings.EmailEnabled = !settings.EmailEnabled
	case settingsRowSMS:
		settings.SMSEnabled = !settings.SMSEnabled
	default:
		return m, nil
	}

	m.settings.Update(settings)

	if requestPermission {
		return m, m.permissionCmd()
	}
	return m, nil
}
