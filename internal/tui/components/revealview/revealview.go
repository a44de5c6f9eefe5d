package revealview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// Model is a scrollable pane for reveal and synthesis text. Long content
// (a celtic cross synthesis, a hexagram with many changing lines) scrolls
// instead of overflowing the terminal.
type Model struct {
	viewport viewport.Model
	header   string
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		width:    width,
		height:   height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// SetContent replaces the pane's text and scrolls back to the top.
func (m *Model) SetContent(header, body string) {
	m.header = header
	m.viewport.SetContent(bodyStyle.Render(body))
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.header == "" {
		return m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.header),
		"",
		m.viewport.View(),
	)
}
