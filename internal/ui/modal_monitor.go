package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worldmonitor/internal/monitor"
)

// MonitorModal edits a monitor's keywords and color. Tab switches fields,
// Enter saves, Esc cancels.
type MonitorModal struct {
	id       string
	keywords textinput.Model
	color    textinput.Model
	field    int
	err      string
}

var _ View = (*MonitorModal)(nil)

// NewMonitorModal opens the editor prefilled with m. An empty m.ID creates a
// new monitor.
func NewMonitorModal(m monitor.Monitor) *MonitorModal {
	kw := textinput.New()
	kw.Placeholder = "iran, strait of hormuz, tanker"
	kw.Width = 40
	kw.SetValue(strings.Join(m.Keywords, ", "))
	kw.Focus()

	c := textinput.New()
	c.Placeholder = "#44ff88"
	c.Width = 10
	c.CharLimit = 7
	c.SetValue(m.Color)

	return &MonitorModal{id: m.ID, keywords: kw, color: c}
}

// Editing reports whether the modal edits an existing monitor.
func (m *MonitorModal) Editing() bool {
	return m.id != ""
}

func (m *MonitorModal) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MonitorModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, dismiss
		case "tab", "shift+tab":
			m.field = 1 - m.field
			if m.field == 0 {
				m.color.Blur()
				return m, m.keywords.Focus()
			}
			m.keywords.Blur()
			return m, m.color.Focus()
		case "enter":
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	if m.field == 0 {
		m.keywords, cmd = m.keywords.Update(msg)
	} else {
		m.color, cmd = m.color.Update(msg)
	}
	return m, cmd
}

func (m *MonitorModal) submit() tea.Cmd {
	raw := m.keywords.Value()
	if len(monitor.ParseKeywords(raw)) == 0 {
		m.err = "enter at least one keyword"
		return nil
	}
	m.err = ""
	save := SaveMonitorMsg{ID: m.id, Keywords: raw, Color: strings.TrimSpace(m.color.Value())}
	return func() tea.Msg { return save }
}

func (m *MonitorModal) View() string {
	title := "Add monitor"
	if m.Editing() {
		title = "Edit monitor"
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.color.Value())).Render("●")
	content := Styles.Title.Render(title) + "\n\n"
	content += "Keywords (comma separated)\n" + m.keywords.View() + "\n\n"
	content += "Color " + swatch + "\n" + m.color.View()
	if m.err != "" {
		content += "\n\n" + Styles.Error.Render(m.err)
	}
	content += "\n\n" + Styles.Muted.Render("Enter: save  Tab: next field  Esc: cancel")
	return Styles.Box.Render(content)
}
