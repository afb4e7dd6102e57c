// Package panels renders the dashboard's grid panels. Every panel shares
// the Panel capability set and takes its own typed payload.
package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"worldmonitor/internal/layout"
	"worldmonitor/internal/refresh"
	"worldmonitor/internal/ui/textutil"
)

// Panel is the common capability of every grid panel.
type Panel interface {
	Key() string
	Title() string
	SetEnabled(bool)
	Enabled() bool
	// SetStatus attaches the refresh status of the panel's data source.
	SetStatus(s refresh.Status, ok bool)
	// View renders the panel body (no frame) into width x height cells.
	View(width, height int) string
}

// base implements the shared part of Panel.
type base struct {
	key     string
	title   string
	enabled bool
	status  refresh.Status
	hasStat bool
}

func newBase(key, title string) base {
	return base{key: key, title: title, enabled: true}
}

func (b *base) Key() string        { return b.key }
func (b *base) Title() string      { return b.title }
func (b *base) SetEnabled(on bool) { b.enabled = on }
func (b *base) Enabled() bool      { return b.enabled }
func (b *base) SetStatus(s refresh.Status, ok bool) {
	b.status, b.hasStat = s, ok
}

// statusLine reports a failed latest fetch, or "" when healthy.
func (b *base) statusLine(width int) string {
	if !b.hasStat || b.status.State != refresh.StateError {
		return ""
	}
	msg := "fetch failed: " + b.status.LastError
	if !b.status.LastSuccess.IsZero() {
		msg = fmt.Sprintf("stale since %s: %s", b.status.LastSuccess.Format("15:04"), b.status.LastError)
	}
	return styles.Error.Render(textutil.Truncate(msg, width))
}

// loading reports whether no fetch has completed yet.
func (b *base) loading() bool {
	return !b.hasStat
}

// body joins lines, prepends the status line if any and pads to height.
func (b *base) body(lines []string, width, height int) string {
	if s := b.statusLine(width); s != "" {
		lines = append([]string{s}, lines...)
	}
	if len(lines) == 0 {
		if b.loading() {
			lines = []string{styles.Muted.Render("Loading...")}
		} else {
			lines = []string{styles.Muted.Render("No data")}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// New builds the panel for a definition. Unknown keys get a news panel.
func New(def layout.Definition) Panel {
	switch def.Key {
	case "markets":
		return NewMarketPanel(def.Key, def.Name)
	case "heatmap":
		return NewHeatmapPanel(def.Key, def.Name)
	case "commodities":
		return NewCommoditiesPanel(def.Key, def.Name)
	case "crypto":
		return NewCryptoPanel(def.Key, def.Name)
	case "polymarket":
		return NewPredictionPanel(def.Key, def.Name)
	case layout.KeyMonitors:
		return NewMonitorPanel(def.Key, def.Name)
	default:
		return NewNewsPanel(def.Key, def.Name)
	}
}

// NewSet builds one panel per grid definition, keyed by panel key. The map
// section is not a grid panel and is skipped.
func NewSet(defs []layout.Definition) map[string]Panel {
	out := make(map[string]Panel, len(defs))
	for _, d := range defs {
		if d.Key == layout.KeyMap {
			continue
		}
		out[d.Key] = New(d)
	}
	return out
}

// Frame draws p inside a rounded border with its title in the top edge.
// The title row doubles as the drag handle.
func Frame(p Panel, width, height int, focused, dragging bool) string {
	if width < 4 || height < 3 {
		return ""
	}
	border := styles.Border
	switch {
	case dragging:
		border = styles.BorderDrag
	case focused:
		border = styles.BorderFocus
	}
	innerW, innerH := width-2, height-2
	title := textutil.Truncate(" "+p.Title()+" ", innerW-2)
	top := "╭─" + styles.Title.Render(title) + strings.Repeat("─", max(0, innerW-1-textutil.VisualWidth(title))) + "╮"

	var rows []string
	rows = append(rows, border.Render(top))
	for _, line := range strings.Split(p.View(innerW, innerH), "\n") {
		line = lipgloss.NewStyle().MaxWidth(innerW).Render(line)
		pad := max(0, innerW-lipgloss.Width(line))
		rows = append(rows, border.Render("│")+line+strings.Repeat(" ", pad)+border.Render("│"))
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return strings.Join(rows, "\n")
}

// age formats how long ago t was, coarsely.
func age(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
