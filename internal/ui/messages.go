package ui

import (
	"time"

	"worldmonitor/internal/news"
	"worldmonitor/internal/refresh"
)

// clockMsg advances the header clock.
type clockMsg time.Time

// groupTickMsg is due when a group's refresh interval elapses.
type groupTickMsg struct {
	Group refresh.Group
}

// resultMsg carries one finished fetch.
type resultMsg struct {
	Result refresh.Result
}

// newsStepMsg carries one category of a sequential news pass plus the
// pass state accumulated so far.
type newsStepMsg struct {
	Result refresh.NewsResult
	acc    []news.Item
	failed []string
}

// RefreshMsg re-runs every group now.
type RefreshMsg struct{}

// SetViewMsg switches the map preset.
type SetViewMsg struct {
	View string
}

// ZoomMsg zooms the map.
type ZoomMsg struct {
	Delta int
}

// NavigateMsg is an arrow key: pans the map or moves a selection,
// depending on focus.
type NavigateMsg struct {
	DX, DY int
}

// FocusMsg rotates focus forward (+1) or backward (-1).
type FocusMsg struct {
	Delta int
}

// MovePanelMsg shifts the focused panel in the grid order.
type MovePanelMsg struct {
	Delta int
}

// MapHeightMsg grows or shrinks the map section. Fit snaps it back within
// bounds instead.
type MapHeightMsg struct {
	Delta int
	Fit   bool
}

// ToggleLayerMsg flips one map layer.
type ToggleLayerMsg struct {
	Layer string
}

// TogglePanelMsg flips one panel's visibility.
type TogglePanelMsg struct {
	Key string
}

// ShowSettingsMsg opens the panel and layer settings modal.
type ShowSettingsMsg struct{}

// ShowStatusMsg opens the refresh log.
type ShowStatusMsg struct{}

// ShowAddMonitorMsg opens the monitor editor for a new monitor.
type ShowAddMonitorMsg struct{}

// ShowEditMonitorMsg opens the editor for the selected monitor.
type ShowEditMonitorMsg struct{}

// ShowDeleteMonitorMsg asks to delete the selected monitor.
type ShowDeleteMonitorMsg struct{}

// SaveMonitorMsg is sent by the monitor editor. An empty ID adds a new
// monitor.
type SaveMonitorMsg struct {
	ID       string
	Keywords string
	Color    string
}

// DeleteMonitorMsg is sent when a delete is confirmed.
type DeleteMonitorMsg struct {
	ID string
}

// DismissModalMsg closes the top modal.
type DismissModalMsg struct{}
