package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"worldmonitor/internal/geo"
	"worldmonitor/internal/ui/panels"
	"worldmonitor/internal/ui/textutil"
)

const appTitle = " WORLD MONITOR "

// viewButton is a clickable view preset in the header.
type viewButton struct {
	View   string
	Label  string
	X0, X1 int // [X0, X1) columns
}

func viewButtons() []viewButton {
	x := textutil.VisualWidth(appTitle) + 1
	var out []viewButton
	for i, v := range geo.Views() {
		label := fmt.Sprintf("[%d %s]", i+1, strings.ToUpper(v.Key))
		w := textutil.VisualWidth(label)
		out = append(out, viewButton{View: v.Key, Label: label, X0: x, X1: x + w})
		x += w + 1
	}
	return out
}

func viewButtonAt(x int) (string, bool) {
	for _, b := range viewButtons() {
		if x >= b.X0 && x < b.X1 {
			return b.View, true
		}
	}
	return "", false
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	g := a.geometry()
	lines := []string{a.renderHeader(g)}
	if g.mapVisible {
		lines = append(lines, a.renderMap(g)...)
	}
	lines = append(lines, a.renderGrid(g)...)
	lines = append(lines, a.renderStatus(g))

	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		helpLines := strings.Split(help, "\n")
		keep := max(0, a.height-len(helpLines))
		lines = append(textutil.FitLines(lines, keep), helpLines...)
	}
	return strings.Join(textutil.FitLines(lines, a.height), "\n")
}

func (a *App) renderHeader(g geometry) string {
	current := a.dash.Viewport().View
	var b strings.Builder
	b.WriteString(Styles.Title.Render(appTitle) + " ")
	for _, btn := range viewButtons() {
		style := Styles.Button
		if btn.View == current {
			style = Styles.ButtonActive
		}
		b.WriteString(style.Render(btn.Label) + " ")
	}
	clock := Styles.Muted.Render(a.now.UTC().Format("2006-01-02 15:04:05") + " UTC ")
	if a.pending > 0 {
		clock = a.spinner.View() + " " + clock
	}
	return textutil.Columns(b.String(), clock, g.width)
}

// renderMap draws the bordered map and the resize handle below it.
func (a *App) renderMap(g geometry) []string {
	style := Styles.MapBorder
	if a.Focus.Current == focusMap {
		style = Styles.MapFocus
	}
	inner := max(1, g.width-2)
	body := a.dash.RenderMap(inner, g.mapHeight)
	box := style.Width(inner).Render(strings.Join(textutil.FitLines(body, g.mapHeight), "\n"))

	handleStyle := Styles.Handle
	if a.dash.Resizing() {
		handleStyle = Styles.HandleActive
	}
	label := " drag or [ ] to resize "
	side := max(0, (g.width-textutil.VisualWidth(label))/2)
	handle := strings.Repeat("━", side) + label + strings.Repeat("━", max(0, g.width-side-textutil.VisualWidth(label)))

	return append(strings.Split(box, "\n"), handleStyle.Render(textutil.Truncate(handle, g.width)))
}

// renderGrid draws the visible panel rows into exactly gridHeight lines.
func (a *App) renderGrid(g geometry) []string {
	if g.gridHeight == 0 {
		return nil
	}
	keys := a.dash.VisiblePanels()
	if len(keys) == 0 {
		return textutil.FitLines([]string{Styles.Muted.Render("All panels are hidden. Press s to choose panels.")}, g.gridHeight)
	}
	dragging := a.dash.Dragging()

	var lines []string
	var row []string
	lastY := -1
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, row...), "\n")...)
			row = nil
		}
	}
	for _, c := range g.cells(keys) {
		if c.Y != lastY {
			flush()
			lastY = c.Y
		}
		row = append(row, a.renderCell(c, dragging))
	}
	flush()
	return textutil.FitLines(lines, g.gridHeight)
}

func (a *App) renderCell(c cell, dragging string) string {
	p, ok := a.Panels[c.Key]
	if !ok {
		return strings.Repeat("\n", c.H-1)
	}
	return panels.Frame(p, c.W, c.H, a.Focus.Current == c.Key, dragging == c.Key)
}

func (a *App) renderStatus(g geometry) string {
	left := Styles.Muted.Render(a.Status)
	if a.StatusIsError {
		left = Styles.Error.Render(a.Status)
	}
	hints := "SPC menu  tab focus  s settings  m monitor  q quit"
	if d := a.dash.Dragging(); d != "" {
		hints = "release to drop " + d
	}
	return textutil.Columns(left, Styles.Muted.Render(hints), g.width)
}
