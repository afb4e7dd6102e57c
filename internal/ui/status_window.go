package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worldmonitor/internal/refresh"
)

const (
	defaultStatusWidth  = 76
	defaultStatusHeight = 18
	// maxEvents bounds the refresh log kept by the app.
	maxEvents = 200
)

// StatusWindow shows per-source health and the refresh log with
// scrollback.
type StatusWindow struct {
	statuses map[string]refresh.Status
	events   []refresh.Event
	viewport viewport.Model
}

var _ View = (*StatusWindow)(nil)

// NewStatusWindow creates an empty status window.
func NewStatusWindow() *StatusWindow {
	vp := viewport.New(defaultStatusWidth, defaultStatusHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	w := &StatusWindow{viewport: vp}
	w.refreshContent()
	return w
}

// SetData replaces what the window shows.
func (w *StatusWindow) SetData(statuses map[string]refresh.Status, events []refresh.Event) {
	w.statuses = statuses
	w.events = events
	w.refreshContent()
}

func (w *StatusWindow) Init() tea.Cmd {
	return w.viewport.Init()
}

func (w *StatusWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return w, dismiss
		}
	case tea.WindowSizeMsg:
		w.viewport.Width = max(40, min(msg.Width-4, 100))
		w.viewport.Height = max(10, msg.Height/2+4)
		w.refreshContent()
		return w, nil
	}
	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return w, cmd
}

func (w *StatusWindow) View() string {
	header := Styles.Title.Render("Refresh status") + Styles.Muted.Render("  Esc: close  ↑/↓: scroll")
	return header + "\n" + w.viewport.View()
}

func (w *StatusWindow) refreshContent() {
	var lines []string
	keys := make([]string, 0, len(w.statuses))
	for k := range w.statuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s := w.statuses[k]
		line := fmt.Sprintf("%s %-12s %-11s", statusIcon(s.State), s.Key, s.Group)
		if !s.LastSuccess.IsZero() {
			line += " ok " + s.LastSuccess.Format("15:04:05")
		}
		if s.State == refresh.StateError {
			line += Styles.Error.Render(fmt.Sprintf(" (%d) %s", s.ConsecutiveErrors, s.LastError))
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	for _, ev := range w.events {
		lines = append(lines, fmt.Sprintf("[%s] %s %s: %s",
			ev.Timestamp.Format("15:04:05"), statusIcon(ev.State), ev.Key, ev.Message))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = "Waiting for the first refresh..."
	}
	w.viewport.SetContent(content)
	w.viewport.GotoBottom()
}

func statusIcon(s refresh.State) string {
	switch s {
	case refresh.StateRunning:
		return "●"
	case refresh.StateDone:
		return "✓"
	case refresh.StateError:
		return "✗"
	default:
		return "•"
	}
}
