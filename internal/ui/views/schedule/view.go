package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	diarydto "nshub/internal/modules/diary/dto"
	"nshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SchedulePort interface {
	TomorrowSchedule(ctx context.Context) (diarydto.ScheduleOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Schedule diarydto.ScheduleOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SchedulePort
	view    viewport.Model
	spinner spinner.Model
	loading bool
	loadErr error
	width   int
	height  int
}

func New(port SchedulePort) Model {
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
		view:    vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

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
		m.view.Width = m.width - 4
		m.view.Height = m.height - 4

	case LoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.view.SetContent(renderSchedule(msg.Schedule))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var vCmd tea.Cmd
		m.view, vCmd = m.view.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Fetching tomorrow's schedule…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("schedule: "+m.loadErr.Error())+
				"\n"+theme.Muted.Render("r: retry"))
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.view.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func renderSchedule(s diarydto.ScheduleOutput) string {
	if !s.Available {
		return theme.Warn.Render("Tomorrow's schedule has not been published yet.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Tomorrow · "+s.Date) + "\n\n")
	if len(s.Lessons) == 0 {
		sb.WriteString(theme.Good.Render("No lessons tomorrow."))
		return sb.String()
	}
	for _, lesson := range s.Lessons {
		span := lesson.Start
		if lesson.End != "" {
			span += "–" + lesson.End
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n",
			theme.Hot.Render(fmt.Sprintf("%2d.", lesson.Number)),
			theme.Muted.Render(span),
			lesson.Subject))
		if lesson.Room != "" || lesson.Teacher != "" {
			sb.WriteString("    " + theme.Muted.Render(strings.TrimSpace(lesson.Room+"  "+lesson.Teacher)) + "\n")
		}
		for _, hw := range lesson.Homework {
			marker := theme.Good.Render("✎")
			if hw.IsDuty {
				marker = theme.Bad.Render("⚑")
			}
			sb.WriteString("    " + marker + " " + hw.Content +
				"  " + theme.Muted.Render(hw.Deadline) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		schedule, err := m.port.TomorrowSchedule(context.Background())
		return LoadedMsg{Schedule: schedule, Err: err}
	}
}
