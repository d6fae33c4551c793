// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen contractor portal: login, leads, detail, alerts, settings
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
	"github.com/ocalarepair/leadview/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewSplash ViewMode = iota
	ViewLogin
	ViewLeads
	ViewLeadDetail
	ViewNotifications
	ViewSettings
)

// Messages emitted by async store calls.
type (
	sessionCheckedMsg struct{ state store.SessionState }
	loginResultMsg    struct {
		user *models.User
		err  error
	}
	resetResultMsg struct{ err error }
	dataLoadedMsg  struct{ err error }
	refreshDoneMsg struct{ err error }
	permissionMsg  struct {
		granted bool
		err     error
	}
)

// Model is the main bubbletea model
type Model struct {
	session  *store.SessionStore
	catalog  *store.LeadCatalog
	settings *store.NotificationSettingsStore
	inbox    *store.Inbox
	log      *zap.SugaredLogger

	viewMode ViewMode

	// Login view state
	inputs         []textinput.Model
	focusIndex     int
	authenticating bool
	loginErr       string

	// Leads view state
	leadRow    int
	selectedID string
	refreshing bool
	loading    bool

	// Notifications view state
	noteRow int

	// Settings view state
	settingsRow      int
	confirmingLogout bool

	// Shared UI state
	spinner    spinner.Model
	statusLine string
	width      int
	height     int
}

// NewModel creates a new TUI model wired to the stores.
func NewModel(session *store.SessionStore, catalog *store.LeadCatalog, settings *store.NotificationSettingsStore, inbox *store.Inbox, log *zap.SugaredLogger) Model {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		session:  session,
		catalog:  catalog,
		settings: settings,
		inbox:    inbox,
		log:      log,
		viewMode: ViewSplash,
		inputs:   []textinput.Model{username, password},
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.checkSessionCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionCheckedMsg:
		// No stored session exists in this build, so the check always lands
		// on the login screen.
		if msg.state == store.StateLoggedIn {
			m.viewMode = ViewLeads
			m.loading = true
			return m, m.loadDataCmd()
		}
		m.viewMode = ViewLogin
		return m, nil

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case resetResultMsg:
		if msg.err != nil {
			m.loginErr = "Unable to send reset instructions. Please try again."
			return m, nil
		}
		m.loginErr = ""
		m.statusLine = "Password reset instructions have been sent to your email"
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.statusLine = "Failed to load leads"
			m.log.Errorw("load", "error", msg.err.Error())
		}
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.statusLine = "Refresh failed"
		} else {
			m.statusLine = "Leads refreshed"
		}
		return m, nil

	case permissionMsg:
		if msg.err == nil && !msg.granted {
			m.statusLine = "Push permission denied by the platform"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewSplash:
		return m.renderSplashView()
	case ViewLogin:
		return m.renderLoginView()
	case ViewLeads:
		return m.renderLeadsView()
	case ViewLeadDetail:
		return m.renderDetailView()
	case ViewNotifications:
		return m.renderNotificationsView()
	case ViewSettings:
		return m.renderSettingsView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewLeads:
		return m.handleLeadsKeys(msg)
	case ViewLeadDetail:
		return m.handleDetailKeys(msg)
	case ViewNotifications:
		return m.handleNotificationsKeys(msg)
	case ViewSettings:
		return m.handleSettingsKeys(msg)
	}

	return m, nil
}

// handleTabKeys implements the shared tab-bar navigation of the three
// authenticated surfaces. Returns false when the key was not a tab motion.
func (m *Model) handleTabKeys(key string) bool {
	order := []ViewMode{ViewLeads, ViewNotifications, ViewSettings}
	pos := 0
	for i, v := range order {
		if v == m.viewMode {
			pos = i
		}
	}

	switch key {
	case "tab":
		m.switchTab(order[(pos+1)%len(order)])
	case "shift+tab":
		m.switchTab(order[(pos+len(order)-1)%len(order)])
	case "1":
		m.switchTab(ViewLeads)
	case "2":
		m.switchTab(ViewNotifications)
	case "3":
		m.switchTab(ViewSettings)
	default:
		return false
	}
	return true
}

func (m *Model) switchTab(v ViewMode) {
	m.viewMode = v
	m.statusLine = ""
	m.confirmingLogout = false
}

func (m Model) renderSplashView() string {
	return appFrameStyle.Render(
		titleStyle.Render("OcalaRepair") + "\n" +
			subtitleStyle.Render("Contractor Portal") + "\n\n" +
			m.spinner.View() + " Checking session...")
}

// Async store calls run off the UI goroutine as bubbletea commands.

func (m Model) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		state := m.session.CheckAuth(context.Background())
		return sessionCheckedMsg{state: state}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Login(context.Background(), username, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m Model) resetCmd(identifier string) tea.Cmd {
	return func() tea.Msg {
		return resetResultMsg{err: m.session.ForgotPassword(context.Background(), identifier)}
	}
}

func (m Model) loadDataCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.catalog.Load(context.Background()); err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{err: m.inbox.Load(context.Background())}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.catalog.Refresh(context.Background())
		return refreshDoneMsg{err: err}
	}
}

func (m Model) permissionCmd() tea.Cmd {
	return func() tea.Msg {
		granted, err := m.settings.RequestPermission(context.Background())
		return permissionMsg{granted: granted, err: err}
	}
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.authenticating = false
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, store.ErrValidation):
			m.loginErr = "Please enter both username and password"
		case errors.Is(msg.err, store.ErrBusy):
			m.loginErr = "Sign-in already in progress"
		default:
			m.loginErr = "Invalid username or password"
		}
		return m, nil
	}

	m.loginErr = ""
	m.statusLine = ""
	m.viewMode = ViewLeads
	m.loading = true
	return m, m.loadDataCmd()
}
