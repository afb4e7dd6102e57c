package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/dashboard"
)

// handleMouse implements the pointer gestures: view buttons in the header,
// dragging the handle under the map to resize it, dragging a panel by its
// title row to reorder the grid, and the wheel for zoom and scroll.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	g := a.geometry()
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.wheel(g, msg.Y, -1)
		case tea.MouseButtonWheelDown:
			a.wheel(g, msg.Y, 1)
		case tea.MouseButtonLeft:
			a.press(g, msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		switch {
		case a.dash.Resizing():
			a.dash.ResizeTo(msg.Y, a.height)
		case a.dash.Dragging() != "":
			a.dash.DragOver(g.linearY(msg.X, msg.Y), linearRects(a.dash.VisiblePanels()))
		}
	case tea.MouseActionRelease:
		a.release()
	}
	return nil
}

func (a *App) press(g geometry, x, y int) {
	if y < headerHeight {
		if view, ok := viewButtonAt(x); ok {
			a.handleSetView(SetViewMsg{View: view})
		}
		return
	}
	if y == g.handleRow() {
		a.dash.BeginResize(y)
		return
	}
	if g.inMap(y) {
		a.Focus.SetFocus(focusMap)
		return
	}
	c, ok := g.cellAt(a.dash.VisiblePanels(), x, y)
	if !ok {
		return
	}
	a.Focus.SetFocus(c.Key)
	if y == c.Y {
		if err := a.dash.BeginDrag(c.Key); err != nil {
			a.setError(err)
			return
		}
		a.setStatus("Moving " + c.Key)
	}
}

func (a *App) release() {
	if a.dash.Resizing() {
		h, err := a.dash.EndResize()
		if err != nil {
			a.setError(err)
		} else {
			a.setStatus(fmt.Sprintf("Map height %d", h))
		}
	}
	if a.dash.Dragging() != "" {
		if _, err := a.dash.EndDrag(); err != nil && !errors.Is(err, dashboard.ErrNoDrag) {
			a.setError(err)
		} else {
			a.setStatus("Panel order saved")
		}
		a.syncFocusOrder()
	}
}

func (a *App) wheel(g geometry, y, delta int) {
	if g.inMap(y) {
		a.handleZoom(ZoomMsg{Delta: -delta})
		return
	}
	if y >= g.gridTop {
		a.scroll = g.clampScroll(a.scroll+delta, len(a.dash.VisiblePanels()))
	}
}
