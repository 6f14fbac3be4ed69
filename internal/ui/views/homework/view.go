package homework

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "nshub/internal/modules/diary/dto"
	"nshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HomeworkPort interface {
	CollectHomework(ctx context.Context) ([]diarydto.AssignmentOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Assignments []diarydto.AssignmentOutput
	Err         error
}

// ─── list item ───────────────────────────────────────────────────────────────

type assignmentItem struct {
	assignment diarydto.AssignmentOutput
}

func (i assignmentItem) Title() string {
	if i.assignment.IsDuty {
		return i.assignment.Subject + " ⚑"
	}
	return i.assignment.Subject
}

func (i assignmentItem) Description() string {
	return i.assignment.Deadline + "  " + firstLine(i.assignment.Content)
}

func (i assignmentItem) FilterValue() string {
	return i.assignment.Subject + " " + i.assignment.Content
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HomeworkPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	loadErr error
	width   int
	height  int
}

func New(port HomeworkPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Homework"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload refetches the homework list.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.loadErr = nil
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Assignments))
		for i, a := range msg.Assignments {
			items[i] = assignmentItem{assignment: a}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Collecting homework…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("homework: "+m.loadErr.Error())+
				"\n"+theme.Muted.Render("r: retry"))
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(assignmentItem)
	if !ok {
		return theme.Muted.Render("No pending homework. Enjoy the evening.")
	}
	a := item.assignment
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(a.Subject) + "\n\n")
	sb.WriteString(theme.Muted.Render("due:  ") + a.Deadline + "\n")
	if a.IsDuty {
		sb.WriteString(theme.Bad.Render("overdue duty assignment") + "\n")
	}
	sb.WriteString("\n" + a.Content + "\n")
	if a.Comment != "" {
		sb.WriteString("\n" + theme.Muted.Render("note: ") + a.Comment + "\n")
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		assignments, err := m.port.CollectHomework(context.Background())
		return LoadedMsg{Assignments: assignments, Err: err}
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
