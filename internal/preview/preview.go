// Package preview implements `tint preview`, an interactive editor that shows
// markup rendered as it is typed.
package preview

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/tint/pkg/ansi"
	"github.com/dkoosis/tint/pkg/markup"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#95B5FF")).Padding(0, 1)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#626262")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Run starts the preview program and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, r *markup.Renderer, initial string) error {
	program := tea.NewProgram(New(r, initial), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model behind the preview. Committed lines stay in
// the history above the line being edited.
type Model struct {
	renderer *markup.Renderer
	input    textinput.Model
	viewport viewport.Model
	history  []string
	raw      bool
	ready    bool
	width    int
}

// New creates a preview model with initial already typed.
func New(r *markup.Renderer, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "[b|#F08](type markup here)"
	ti.SetValue(initial)
	ti.Focus()
	return Model{renderer: r, input: ti, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.raw = !m.raw
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			m.history = append(m.history, m.input.Value())
			m.input.Reset()
			m.refresh()
			m.viewport.GotoBottom()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// title, input box and help line
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-7, 1)
		m.input.Width = max(msg.Width-8, 10)
		m.ready = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// Lines returns the rendered history followed by the rendered current input.
// In raw mode each line is shown as a quoted Go string so that the escape
// sequences are visible.
func (m Model) Lines() []string {
	src := append(append([]string(nil), m.history...), m.input.Value())
	out := make([]string, len(src))
	for i, line := range src {
		out[i] = m.renderer.Render(line)
		if m.raw {
			out[i] = strconv.Quote(out[i])
		}
	}
	return out
}

func (m *Model) refresh() {
	lines := m.Lines()
	if !m.raw {
		// open formats must not leak into the surrounding UI
		for i := range lines {
			lines[i] += ansi.Reset
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}
	mode := "rendered"
	if m.raw {
		mode = "escaped"
	}
	title := titleStyle.Render("tint preview · " + mode)
	body := boxStyle.Width(max(m.width-2, 10)).Render(m.viewport.View())
	help := helpStyle.Render("enter commit • ctrl+r toggle escapes • pgup/pgdn scroll • esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.input.View(), help)
}
