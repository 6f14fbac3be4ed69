package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "nshub/internal/modules/diary/dto"
	gradesdto "nshub/internal/modules/grades/dto"
	gradesin "nshub/internal/modules/grades/port/in"
	"nshub/internal/platform/config"
	apperrors "nshub/internal/platform/errors"
	"nshub/internal/ui/components"
	"nshub/internal/ui/theme"
	gradesview "nshub/internal/ui/views/grades"
	homeworkview "nshub/internal/ui/views/homework"
	scheduleview "nshub/internal/ui/views/schedule"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type diaryPort interface {
	CollectHomework(ctx context.Context) ([]diarydto.AssignmentOutput, error)
	TomorrowSchedule(ctx context.Context) (diarydto.ScheduleOutput, error)
}

type gradesPort interface {
	SubjectReport(ctx context.Context, input gradesin.ReportInput) (gradesdto.GradeReportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHomework tabID = iota
	tabSchedule
	tabGrades
	tabCount
)

var tabLabels = [tabCount]string{
	"Homework", "Schedule", "Grades",
}

// ─── async messages ───────────────────────────────────────────────────────────

type credsCheckedMsg struct {
	creds config.Credentials
	err   error
}

type credsSavedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Reload key.Binding
	Login  key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Login:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "re-login")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Reload},
		{k.Login, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the login overlay
// and the status bar. Business logic is delegated to port interfaces; all
// rendering is delegated to sub-views.
type Model struct {
	creds config.Provider

	homeworkView homeworkview.Model
	scheduleView scheduleview.Model
	gradesView   gradesview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	login     components.Login
	loggedIn  bool
	username  string
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(creds config.Provider, diary diaryPort, grades gradesPort) Model {
	return Model{
		creds:        creds,
		homeworkView: homeworkview.New(homeworkPortBridge{p: diary}),
		scheduleView: scheduleview.New(schedulePortBridge{p: diary}),
		gradesView:   gradesview.New(gradesPortBridge{p: grades}),
		activeTab:    tabHomework,
		keys:         defaultKeys(),
		help:         help.New(),
		login:        components.NewLogin(),
		status:       "checking credentials",
	}
}

func (m Model) Init() tea.Cmd {
	return m.checkCredsCmd()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The login form intercepts all input while open.
	if m.login.Visible() {
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.width = msg.Width
			m.height = msg.Height
			m.login.SetWidth(min(m.width-4, 56))
			m.propagateSize()
		case components.LoginSubmitMsg:
			return m, m.saveCredsCmd(msg)
		case components.LoginCancelMsg:
			if !m.loggedIn {
				return m, tea.Quit
			}
			m.status = "ready"
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login.SetWidth(min(m.width-4, 56))
		m.help.Width = m.width
		m.propagateSize()

	case credsCheckedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoConfig) {
				m.status = "config: " + msg.err.Error()
			}
			return m, m.login.Open("", "")
		}
		m.loggedIn = true
		m.username = msg.creds.Username
		m.status = "ready"
		return m, m.initViews()

	case credsSavedMsg:
		if msg.err != nil {
			m.status = "save credentials: " + msg.err.Error()
			return m, m.login.Open(m.username, "")
		}
		m.loggedIn = true
		m.status = "credentials saved"
		return m, m.initViews()

	case components.LoginSubmitMsg:
		return m, m.saveCredsCmd(msg)

	case components.LoginCancelMsg:
		m.status = "ready"

	case homeworkview.LoadedMsg:
		if cmd, handled := m.handleLoadErr(msg.Err); handled {
			return m, cmd
		}
		if msg.Err == nil {
			m.status = "homework loaded"
		}

	case scheduleview.LoadedMsg:
		if cmd, handled := m.handleLoadErr(msg.Err); handled {
			return m, cmd
		}

	case gradesview.LoadedMsg:
		if cmd, handled := m.handleLoadErr(msg.Err); handled {
			return m, cmd
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it consumes free-form typing.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "r":
			return m, m.reloadActive()
		case "L":
			return m, m.login.Open(m.username, "")
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHomework:
		m.homeworkView, tabCmd = m.homeworkView.Update(msg)
	case tabSchedule:
		m.scheduleView, tabCmd = m.scheduleView.Update(msg)
	case tabGrades:
		m.gradesView, tabCmd = m.gradesView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.login.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.login.View())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHomework:
		return m.homeworkView.View()
	case tabSchedule:
		return m.scheduleView.View()
	case tabGrades:
		return m.gradesView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "nshub  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.loggedIn {
		left = theme.Good.Render("● "+m.username) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  r:reload  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// handleLoadErr routes authentication failures from any tab into a fresh
// login: the stored password is stale, so it is dropped before re-prompting.
func (m *Model) handleLoadErr(err error) (tea.Cmd, bool) {
	if err == nil || !errors.Is(err, apperrors.ErrAuth) {
		return nil, false
	}
	_ = m.creds.Invalidate()
	m.loggedIn = false
	m.status = "login rejected; enter credentials again"
	return m.login.Open(m.username, ""), true
}

// subViewTyping reports whether the active tab consumes raw keystrokes,
// in which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabHomework:
		return m.homeworkView.Filtering()
	case tabGrades:
		return m.gradesView.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeworkView, _ = m.homeworkView.Update(sz)
	m.scheduleView, _ = m.scheduleView.Update(sz)
	m.gradesView, _ = m.gradesView.Update(sz)
}

func (m *Model) initViews() tea.Cmd {
	return tea.Batch(
		m.homeworkView.Init(),
		m.scheduleView.Init(),
		m.gradesView.Init(),
	)
}

func (m *Model) reloadActive() tea.Cmd {
	switch m.activeTab {
	case tabHomework:
		return m.homeworkView.Reload()
	case tabSchedule:
		return m.scheduleView.Reload()
	}
	return nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) checkCredsCmd() tea.Cmd {
	return func() tea.Msg {
		creds, err := m.creds.Load()
		return credsCheckedMsg{creds: creds, err: err}
	}
}

func (m Model) saveCredsCmd(msg components.LoginSubmitMsg) tea.Cmd {
	return func() tea.Msg {
		err := m.creds.Save(config.Credentials{
			Username: msg.Username,
			Password: msg.Password,
			School:   msg.School,
		})
		return credsSavedMsg{err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed
// by a specific sub-view.

type homeworkPortBridge struct{ p diaryPort }

func (b homeworkPortBridge) CollectHomework(ctx context.Context) ([]diarydto.AssignmentOutput, error) {
	return b.p.CollectHomework(ctx)
}

type schedulePortBridge struct{ p diaryPort }

func (b schedulePortBridge) TomorrowSchedule(ctx context.Context) (diarydto.ScheduleOutput, error) {
	return b.p.TomorrowSchedule(ctx)
}

type gradesPortBridge struct{ p gradesPort }

func (b gradesPortBridge) SubjectReport(ctx context.Context, input gradesin.ReportInput) (gradesdto.GradeReportOutput, error) {
	return b.p.SubjectReport(ctx, input)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
