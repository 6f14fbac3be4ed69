package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nshub/internal/ui/theme"
)

// LoginSubmitMsg is emitted when all three fields are filled and confirmed.
type LoginSubmitMsg struct {
	Username string
	Password string
	School   string
}

// LoginCancelMsg is emitted when the user presses esc.
type LoginCancelMsg struct{}

var loginStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

const (
	fieldUsername = iota
	fieldPassword
	fieldSchool
	fieldCount
)

var fieldLabels = [fieldCount]string{"login", "password", "school"}

// Login is a credentials form overlay: portal login, password and the school
// name or numeric ID.
type Login struct {
	inputs  [fieldCount]textinput.Model
	focused int
	visible bool
	width   int
}

func NewLogin() Login {
	var l Login
	for i := range l.inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Prompt = ""
		l.inputs[i] = ti
	}
	l.inputs[fieldUsername].Placeholder = "ivanov.i"
	l.inputs[fieldPassword].Placeholder = "••••••"
	l.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	l.inputs[fieldSchool].Placeholder = "МБОУ СОШ № 10 or 482"
	return l
}

func (l Login) Visible() bool { return l.visible }

// Open shows the form with the username field focused. Prefilled values let
// a re-login keep everything but the rejected password.
func (l *Login) Open(username, school string) tea.Cmd {
	l.visible = true
	l.focused = fieldUsername
	l.inputs[fieldUsername].SetValue(username)
	l.inputs[fieldPassword].SetValue("")
	l.inputs[fieldSchool].SetValue(school)
	for i := range l.inputs {
		l.inputs[i].Blur()
	}
	return l.inputs[fieldUsername].Focus()
}

func (l *Login) SetWidth(w int) { l.width = w }

func (l Login) Update(msg tea.Msg) (Login, tea.Cmd) {
	if !l.visible {
		return l, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			l.visible = false
			return l, func() tea.Msg { return LoginCancelMsg{} }
		case "tab", "down":
			return l.focus((l.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return l.focus((l.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if l.focused < fieldCount-1 {
				return l.focus(l.focused + 1)
			}
			submit := LoginSubmitMsg{
				Username: strings.TrimSpace(l.inputs[fieldUsername].Value()),
				Password: l.inputs[fieldPassword].Value(),
				School:   strings.TrimSpace(l.inputs[fieldSchool].Value()),
			}
			if submit.Username == "" || submit.Password == "" || submit.School == "" {
				return l, nil
			}
			l.visible = false
			return l, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	l.inputs[l.focused], cmd = l.inputs[l.focused].Update(msg)
	return l, cmd
}

func (l Login) focus(idx int) (Login, tea.Cmd) {
	l.inputs[l.focused].Blur()
	l.focused = idx
	return l, l.inputs[l.focused].Focus()
}

func (l Login) View() string {
	if !l.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Portal Login") + "\n\n")
	for i := range l.inputs {
		label := fieldLabels[i]
		if i == l.focused {
			sb.WriteString(theme.Hot.Render("▸ "+label) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("  "+label) + "\n")
		}
		sb.WriteString("  " + l.inputs[i].View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: next/submit  esc: cancel"))

	w := l.width
	if w < 20 {
		w = 48
	}
	return loginStyle.Width(w - 2).Render(sb.String())
}
