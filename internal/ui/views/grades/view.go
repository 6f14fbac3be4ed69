package grades

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gradesdto "nshub/internal/modules/grades/dto"
	gradesin "nshub/internal/modules/grades/port/in"
	"nshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GradesPort interface {
	SubjectReport(ctx context.Context, input gradesin.ReportInput) (gradesdto.GradeReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Report gradesdto.GradeReportOutput
	Err    error
}

// Reports are fetched over the trailing month by default.
const defaultRangeDays = 30

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    GradesPort
	input   textinput.Model
	items   table.Model
	report  gradesdto.GradeReportOutput
	spinner spinner.Model
	loading bool
	loaded  bool
	loadErr error
	width   int
	height  int
}

func New(port GradesPort) Model {
	ti := textinput.New()
	ti.Placeholder = "subject group id, e.g. 1634  (append \"terms\" for term reports)"
	ti.CharLimit = 64

	tbl := table.New(
		table.WithColumns(gradeColumns(60)),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Lavender).
		Background(theme.Surface0).
		Bold(false)
	tbl.SetStyles(styles)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		input:   ti,
		items:   tbl,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Typing reports whether the subject-group input has focus, so the app model
// leaves keystrokes alone.
func (m Model) Typing() bool {
	return m.input.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.items.SetColumns(gradeColumns(m.width - 6))
		m.items.SetHeight(maxInt(m.height-9, 3))

	case LoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.loaded = true
			m.report = msg.Report
			m.items.SetRows(gradeRows(msg.Report))
			m.items.Focus()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.input.Focused() {
				if cmd, ok := m.submit(); ok {
					m.input.Blur()
					cmds = append(cmds, cmd, m.spinner.Tick)
				}
				return m, tea.Batch(cmds...)
			}
		case "g":
			if !m.input.Focused() {
				m.items.Blur()
				cmds = append(cmds, m.input.Focus())
				return m, tea.Batch(cmds...)
			}
		}
	}

	if m.input.Focused() {
		var iCmd tea.Cmd
		m.input, iCmd = m.input.Update(msg)
		cmds = append(cmds, iCmd)
	} else if !m.loading {
		var tCmd tea.Cmd
		m.items, tCmd = m.items.Update(msg)
		cmds = append(cmds, tCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	prompt := theme.Muted.Render("subject group: ") + m.input.View()
	header := lipgloss.NewStyle().Width(m.width - 2).Padding(0, 1).Render(prompt)

	var body string
	switch {
	case m.loading:
		body = lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Fetching grade report…")
	case m.loadErr != nil:
		body = lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("grades: "+m.loadErr.Error()))
	case !m.loaded:
		body = lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Enter a subject group ID to fetch its report."))
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderSummary(),
			lipgloss.NewStyle().Padding(0, 1).Render(m.items.View()),
			lipgloss.NewStyle().Padding(0, 1).Render(theme.Muted.Render("g: new query")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) submit() (tea.Cmd, bool) {
	fields := strings.Fields(m.input.Value())
	if len(fields) == 0 {
		return nil, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		m.loadErr = fmt.Errorf("subject group ID must be numeric, got %q", fields[0])
		return nil, false
	}
	hasTerms := len(fields) > 1 && strings.EqualFold(fields[1], "terms")

	m.loading = true
	m.loadErr = nil
	return m.loadCmd(gradesin.ReportInput{
		SubjectGroupID: id,
		From:           time.Now().AddDate(0, 0, -defaultRangeDays),
		To:             time.Now(),
		HasTerms:       hasTerms,
	}), true
}

func (m Model) renderSummary() string {
	r := m.report
	var sb strings.Builder
	if r.Teacher != "" {
		sb.WriteString(theme.Muted.Render("teacher: ") + r.Teacher + "  ")
	}
	if r.RangeStart != "" || r.RangeEnd != "" {
		sb.WriteString(theme.Muted.Render("range: ") + shortDate(r.RangeStart) + " – " + shortDate(r.RangeEnd) + "  ")
	}
	sb.WriteString(theme.Muted.Render("average: ") +
		markStyle(r.Average).Render(fmt.Sprintf("%.2f", r.Average)))
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func gradeColumns(width int) []table.Column {
	dateW, markW, typeW := 10, 4, 22
	themeW := width - dateW - markW - typeW
	if themeW < 10 {
		themeW = 10
	}
	return []table.Column{
		{Title: "Date", Width: dateW},
		{Title: "Mark", Width: markW},
		{Title: "Type", Width: typeW},
		{Title: "Theme", Width: themeW},
	}
}

func gradeRows(r gradesdto.GradeReportOutput) []table.Row {
	rows := make([]table.Row, 0, len(r.Items))
	for _, item := range r.Items {
		mark := "—"
		if item.Mark > 0 {
			mark = fmt.Sprintf("%.0f", item.Mark)
		}
		rows = append(rows, table.Row{shortDate(item.Date), mark, item.Type, item.Theme})
	}
	return rows
}

func markStyle(mark float64) lipgloss.Style {
	switch {
	case mark >= 4:
		return theme.Good
	case mark >= 3:
		return theme.Warn
	default:
		return theme.Bad
	}
}

// shortDate trims an ISO timestamp down to its date part for display.
func shortDate(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}

func (m Model) loadCmd(input gradesin.ReportInput) tea.Cmd {
	return func() tea.Msg {
		report, err := m.port.SubjectReport(context.Background(), input)
		return LoadedMsg{Report: report, Err: err}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
