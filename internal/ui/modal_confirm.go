package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks a yes/no question. Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg

	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    Styles.BoxDanger,
		titleStyle:  Styles.TitleWarning,
		detailStyle: Styles.Details,
	}
}

// WithDetails adds a warning line.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteMonitorModal confirms removal of a monitor.
func NewDeleteMonitorModal(id, keywords string) *ConfirmModal {
	return NewConfirmModal(
		"Delete monitor?",
		"Keywords: "+keywords,
		func() tea.Msg { return DeleteMonitorMsg{ID: id} },
	).WithDetails("Its matches are discarded.")
}

func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, dismiss
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
			return m, dismiss
		}
	}
	return m, nil
}

func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n" + m.Label
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + Styles.Muted.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}

func dismiss() tea.Msg { return DismissModalMsg{} }
