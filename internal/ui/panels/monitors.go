package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"worldmonitor/internal/monitor"
	"worldmonitor/internal/ui/textutil"
)

// maxShownMatches is how many headlines are listed under each monitor.
const maxShownMatches = 3

// MonitorPanel lists keyword monitors and their latest matches. One monitor
// is selected for edit and delete.
type MonitorPanel struct {
	base
	monitors monitor.List
	results  monitor.Results
	selected int
}

// NewMonitorPanel returns an empty monitor panel.
func NewMonitorPanel(key, title string) *MonitorPanel {
	return &MonitorPanel{base: newBase(key, title)}
}

// SetMonitors replaces the monitor list, keeping the selection in range.
func (p *MonitorPanel) SetMonitors(list monitor.List) {
	p.monitors = list
	p.selected = max(0, min(p.selected, len(list)-1))
}

// SetResults replaces the per-monitor matches.
func (p *MonitorPanel) SetResults(r monitor.Results) {
	p.results = r
}

// Select moves the selection by delta, clamped.
func (p *MonitorPanel) Select(delta int) {
	if len(p.monitors) == 0 {
		return
	}
	p.selected = max(0, min(p.selected+delta, len(p.monitors)-1))
}

// Selected returns the selected monitor.
func (p *MonitorPanel) Selected() (monitor.Monitor, bool) {
	if p.selected < 0 || p.selected >= len(p.monitors) {
		return monitor.Monitor{}, false
	}
	return p.monitors[p.selected], true
}

func (p *MonitorPanel) View(width, height int) string {
	if len(p.monitors) == 0 {
		return p.body([]string{styles.Muted.Render("No monitors. Press m to add one.")}, width, height)
	}
	var lines []string
	for i, m := range p.monitors {
		matches := p.results[m.ID]
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Render("●")
		head := fmt.Sprintf("%s (%d)", strings.Join(m.Keywords, ", "), len(matches))
		style := styles.Text
		prefix := "  "
		if i == p.selected {
			style, prefix = styles.Selected, "> "
		}
		lines = append(lines, prefix+marker+" "+style.Render(textutil.Truncate(head, width-4)))
		for j, it := range matches {
			if j == maxShownMatches {
				break
			}
			lines = append(lines, styles.Muted.Render("    "+textutil.Truncate(it.Title, width-4)))
		}
	}
	return p.body(lines, width, height)
}
