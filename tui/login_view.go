// ABOUTME: Login view with username/password inputs and forgot-password flow
// ABOUTME: Submission runs through the session store; errors surface inline
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFieldUsername = 0
	loginFieldPassword = 1
)

func (m Model) renderLoginView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("OcalaRepair"))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render("Contractor Portal"))
	s.WriteString("\n\n")

	s.WriteString(m.inputs[loginFieldUsername].View())
	s.WriteString("\n")
	s.WriteString(m.inputs[loginFieldPassword].View())
	s.WriteString("\n\n")

	if m.authenticating {
		s.WriteString(m.spinner.View())
		s.WriteString(" Signing in...")
		s.WriteString("\n")
	}
	if m.loginErr != "" {
		s.WriteString(errorStyle.Render(m.loginErr))
		s.WriteString("\n")
	}
	if m.statusLine != "" {
		s.WriteString(statusLineStyle.Render(m.statusLine))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(strings.Join([]string{
		"Tab: Next field",
		"Enter: Sign in",
		"Ctrl+R: Forgot password",
		"Ctrl+C: Quit",
	}, " • ")))

	s.WriteString("\n\n")
	s.WriteString(subtitleStyle.Render("For contractor registration, visit OcalaRepair.com"))

	return appFrameStyle.Render(s.String())
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}
		if m.focusIndex < 0 {
			m.focusIndex = len(m.inputs) - 1
		}
		if m.focusIndex >= len(m.inputs) {
			m.focusIndex = 0
		}
		return m.focusLoginField(m.focusIndex)

	case "enter":
		if m.authenticating {
			return m, nil
		}
		if m.focusIndex == loginFieldUsername {
			m.focusIndex = loginFieldPassword
			return m.focusLoginField(m.focusIndex)
		}
		username := m.inputs[loginFieldUsername].Value()
		password := m.inputs[loginFieldPassword].Value()
		if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
			m.loginErr = "Please enter both username and password"
			return m, nil
		}
		m.loginErr = ""
		m.statusLine = ""
		m.authenticating = true
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(username, password))

	case "ctrl+r":
		identifier := strings.TrimSpace(m.inputs[loginFieldUsername].Value())
		if identifier == "" {
			m.loginErr = "Please enter your username or email address first"
			return m, nil
		}
		m.loginErr = ""
		return m, m.resetCmd(identifier)
	}

	// Everything else is text entry for the focused field.
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) focusLoginField(index int) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for i := range m.inputs {
		if i == index {
			cmds = append(cmds, m.inputs[i].Focus())
			continue
		}
		m.inputs[i].Blur()
	}
	return m, tea.Batch(cmds...)
}

// resetLoginForm clears the form after a sign-out.
func (m *Model) resetLoginForm() {
	m.inputs[loginFieldUsername].SetValue("")
	m.inputs[loginFieldPassword].SetValue("")
	m.inputs[loginFieldUsername].Focus()
	m.inputs[loginFieldPassword].Blur()
	m.focusIndex = loginFieldUsername
	m.loginErr = ""
	m.statusLine = ""
}
