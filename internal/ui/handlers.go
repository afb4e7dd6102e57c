package ui

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/layout"
	"worldmonitor/internal/monitor"
	"worldmonitor/internal/refresh"
	"worldmonitor/internal/ui/panels"
)

// apply folds a fetch result into the dashboard and the panels.
func (a *App) apply(r refresh.Result) {
	a.dash.Apply(r)
	if _, step := r.(refresh.NewsResult); !step && a.pending > 0 {
		a.pending--
	}
	ev := refresh.Event{Group: r.Group(), Key: r.Key(), State: refresh.StateDone, Message: describeResult(r)}
	if err := r.Failure(); err != nil {
		log.Printf("ui.apply: [%s] %s failed: %v", r.Group(), r.Key(), err)
		ev.State, ev.Message = refresh.StateError, err.Error()
	}
	a.logEvent(ev)
	a.syncPanels()
}

func describeResult(r refresh.Result) string {
	switch v := r.(type) {
	case refresh.NewsResult:
		return fmt.Sprintf("%d headlines", len(v.Items))
	case refresh.NewsPassResult:
		if len(v.Failed) > 0 {
			return fmt.Sprintf("pass done, %d headlines, failed: %s", len(v.Items), strings.Join(v.Failed, ", "))
		}
		return fmt.Sprintf("pass done, %d headlines", len(v.Items))
	case refresh.StocksResult:
		return fmt.Sprintf("%d quotes", len(v.Quotes))
	case refresh.SectorsResult:
		return fmt.Sprintf("%d sectors", len(v.Sectors))
	case refresh.CommoditiesResult:
		return fmt.Sprintf("%d quotes", len(v.Quotes))
	case refresh.CryptoResult:
		return fmt.Sprintf("%d coins", len(v.Coins))
	case refresh.PredictionsResult:
		return fmt.Sprintf("%d markets", len(v.Markets))
	case refresh.QuakesResult:
		return fmt.Sprintf("%d earthquakes", len(v.Quakes))
	}
	return "updated"
}

// logEvent appends to the bounded refresh log and updates an open status
// window.
func (a *App) logEvent(ev refresh.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = a.clock()
	}
	a.events = append(a.events, ev)
	if n := len(a.events); n > maxEvents {
		a.events = slices.Clone(a.events[n-maxEvents:])
	}
	if w, ok := topAs[*StatusWindow](&a.Overlays); ok {
		w.SetData(a.dash.Status(), a.events)
	}
}

// syncPanels copies dashboard state into the panel views.
func (a *App) syncPanels() {
	settings := a.dash.PanelSettings()
	md := a.dash.Markets()
	for key, p := range a.Panels {
		p.SetEnabled(settings[key].Enabled)
		statusKey := key
		if key == layout.KeyMonitors {
			statusKey = refresh.KeyNewsPass
		}
		st, ok := a.dash.StatusFor(statusKey)
		p.SetStatus(st, ok)

		switch p := p.(type) {
		case *panels.NewsPanel:
			p.SetItems(a.dash.News(key))
		case *panels.MarketPanel:
			p.SetQuotes(md.Stocks)
		case *panels.HeatmapPanel:
			p.SetSectors(md.Sectors)
		case *panels.CommoditiesPanel:
			p.SetCommodities(md.Commodities)
		case *panels.CryptoPanel:
			p.SetCoins(md.Crypto)
		case *panels.PredictionPanel:
			p.SetMarkets(a.dash.Predictions())
		case *panels.MonitorPanel:
			p.SetMonitors(a.dash.Monitors())
			p.SetResults(a.dash.MonitorResults())
		}
	}
}

// syncFocusOrder rebuilds the tab order from the visible sections.
func (a *App) syncFocusOrder() {
	var order []string
	if a.dash.MapVisible() {
		order = append(order, focusMap)
	}
	order = append(order, a.dash.VisiblePanels()...)
	a.Focus.SetOrder(order)
	a.ensureFocusVisible()
}

// geometry lays out the current frame.
func (a *App) geometry() geometry {
	g := newGeometry(a.width, a.height, a.dash.MapVisible(), a.dash.MapHeight(), a.scroll)
	g.scroll = g.clampScroll(a.scroll, len(a.dash.VisiblePanels()))
	return g
}

// ensureFocusVisible scrolls the grid so the focused panel is on screen.
func (a *App) ensureFocusVisible() {
	if a.width == 0 {
		return
	}
	g := a.geometry()
	a.scroll = g.scroll
	i := slices.Index(a.dash.VisiblePanels(), a.Focus.Current)
	if i < 0 {
		return
	}
	row := i / g.cols
	switch {
	case row < a.scroll:
		a.scroll = row
	case row >= a.scroll+g.visibleRows():
		a.scroll = row - g.visibleRows() + 1
	}
}

func (a *App) setStatus(msg string) {
	a.Status, a.StatusIsError = msg, false
}

func (a *App) setError(err error) {
	a.Status, a.StatusIsError = err.Error(), true
}

func (a *App) handleRefresh() tea.Cmd {
	a.setStatus("Refreshing all sources")
	var cmds []tea.Cmd
	for _, g := range refresh.Groups() {
		cmds = append(cmds, a.runGroup(g))
	}
	cmds = append(cmds, a.startSpinner())
	return tea.Batch(cmds...)
}

func (a *App) handleSetView(msg SetViewMsg) {
	if err := a.dash.SetView(msg.View); err != nil {
		a.setError(err)
		return
	}
	a.setStatus("View: " + strings.ToUpper(msg.View))
}

func (a *App) handleZoom(msg ZoomMsg) {
	a.setStatus(fmt.Sprintf("Zoom x%d", a.dash.Zoom(msg.Delta)))
}

// handleNavigate pans the map when it has focus, moves the monitor
// selection in the monitor panel and scrolls the grid otherwise.
func (a *App) handleNavigate(msg NavigateMsg) {
	switch a.Focus.Current {
	case focusMap:
		a.dash.Pan(-msg.DY, msg.DX)
	case layout.KeyMonitors:
		if p, ok := a.Panels[layout.KeyMonitors].(*panels.MonitorPanel); ok {
			p.Select(msg.DY)
		}
	default:
		if msg.DY != 0 {
			a.scroll = a.geometry().clampScroll(a.scroll+msg.DY, len(a.dash.VisiblePanels()))
		}
	}
}

func (a *App) handleFocus(msg FocusMsg) {
	if msg.Delta < 0 {
		a.Focus.Prev()
	} else {
		a.Focus.Next()
	}
	a.ensureFocusVisible()
}

func (a *App) handleMovePanel(msg MovePanelMsg) {
	key := a.Focus.Current
	if key == "" || key == focusMap {
		a.setStatus("Focus a panel to move it")
		return
	}
	moved, err := a.dash.MovePanel(key, msg.Delta)
	if err != nil {
		a.setError(err)
	} else if !moved {
		a.setStatus("Panel is already at the edge")
	}
	a.syncFocusOrder()
}

func (a *App) handleMapHeight(msg MapHeightMsg) {
	if msg.Fit {
		a.setStatus(fmt.Sprintf("Map height %d", a.dash.FitMapHeight(a.height)))
		return
	}
	h, err := a.dash.NudgeMapHeight(msg.Delta, a.height)
	if err != nil {
		a.setError(err)
		return
	}
	a.setStatus(fmt.Sprintf("Map height %d", h))
}

func (a *App) handleToggleLayer(msg ToggleLayerMsg) {
	on, err := a.dash.ToggleLayer(msg.Layer)
	if err != nil {
		a.setError(err)
	} else {
		a.setStatus(fmt.Sprintf("Layer %s: %s", msg.Layer, onOff(on)))
	}
	a.syncSettingsModal()
}

func (a *App) handleTogglePanel(msg TogglePanelMsg) {
	on, err := a.dash.TogglePanel(msg.Key)
	if err != nil {
		a.setError(err)
	} else {
		a.setStatus(fmt.Sprintf("Panel %s: %s", msg.Key, onOff(on)))
	}
	a.syncPanels()
	a.syncFocusOrder()
	a.syncSettingsModal()
}

func (a *App) syncSettingsModal() {
	if m, ok := topAs[*SettingsModal](&a.Overlays); ok {
		m.Sync(a.dash.PanelSettings(), a.dash.Layers())
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// selectedMonitor is the monitor highlighted in the monitor panel.
func (a *App) selectedMonitor() (monitor.Monitor, bool) {
	p, ok := a.Panels[layout.KeyMonitors].(*panels.MonitorPanel)
	if !ok {
		return monitor.Monitor{}, false
	}
	return p.Selected()
}

func (a *App) handleShowAddMonitor() tea.Cmd {
	return a.push(NewMonitorModal(monitor.Monitor{Color: a.dash.Monitors().NextColor()}))
}

func (a *App) handleShowEditMonitor() tea.Cmd {
	m, ok := a.selectedMonitor()
	if !ok {
		a.setStatus("No monitor selected")
		return nil
	}
	return a.push(NewMonitorModal(m))
}

func (a *App) handleShowDeleteMonitor() tea.Cmd {
	m, ok := a.selectedMonitor()
	if !ok {
		a.setStatus("No monitor selected")
		return nil
	}
	return a.push(NewDeleteMonitorModal(m.ID, strings.Join(m.Keywords, ", ")))
}

// handleSaveMonitor adds or updates a monitor. Invalid input keeps the
// editor open; a persistence failure closes it but is reported.
func (a *App) handleSaveMonitor(msg SaveMonitorMsg) {
	var err error
	if msg.ID == "" {
		_, err = a.dash.AddMonitor(msg.Keywords, msg.Color)
	} else {
		_, err = a.dash.UpdateMonitor(msg.ID, msg.Keywords, msg.Color)
	}
	if errors.Is(err, monitor.ErrEmptyKeywords) {
		a.setError(err)
		return
	}
	if _, ok := topAs[*MonitorModal](&a.Overlays); ok {
		a.Overlays.Pop()
	}
	if err != nil {
		a.setError(err)
	} else {
		a.setStatus("Monitor saved")
	}
	a.syncPanels()
}

func (a *App) handleDeleteMonitor(msg DeleteMonitorMsg) {
	if _, ok := topAs[*ConfirmModal](&a.Overlays); ok {
		a.Overlays.Pop()
	}
	if err := a.dash.RemoveMonitor(msg.ID); err != nil {
		a.setError(err)
	} else {
		a.setStatus("Monitor deleted")
	}
	a.syncPanels()
}
