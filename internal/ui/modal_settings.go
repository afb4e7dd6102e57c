package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
)

// settingKind tells panel rows from layer rows.
type settingKind int

const (
	settingPanel settingKind = iota
	settingLayer
)

type settingRow struct {
	kind  settingKind
	key   string
	label string
	on    bool
}

// SettingsModal lists panels and map layers with checkboxes. Space or Enter
// toggles the selected row; Esc closes.
type SettingsModal struct {
	rows     []settingRow
	selected int
}

var _ View = (*SettingsModal)(nil)

// NewSettingsModal builds the rows from the current state.
func NewSettingsModal(panels layout.Settings, layers map[string]bool) *SettingsModal {
	m := &SettingsModal{}
	for _, d := range layout.Definitions() {
		m.rows = append(m.rows, settingRow{kind: settingPanel, key: d.Key, label: d.Name})
	}
	for _, k := range geo.LayerKeys() {
		m.rows = append(m.rows, settingRow{kind: settingLayer, key: k, label: k})
	}
	m.Sync(panels, layers)
	return m
}

// Sync refreshes the checkboxes from persisted state.
func (m *SettingsModal) Sync(panels layout.Settings, layers map[string]bool) {
	for i, r := range m.rows {
		switch r.kind {
		case settingPanel:
			m.rows[i].on = panels[r.key].Enabled
		case settingLayer:
			m.rows[i].on = layers[r.key]
		}
	}
}

func (m *SettingsModal) Init() tea.Cmd {
	return nil
}

func (m *SettingsModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "q":
		return m, dismiss
	case "up", "k":
		m.selected = max(0, m.selected-1)
	case "down", "j":
		m.selected = min(len(m.rows)-1, m.selected+1)
	case " ", "enter":
		r := m.rows[m.selected]
		if r.kind == settingLayer {
			return m, func() tea.Msg { return ToggleLayerMsg{Layer: r.key} }
		}
		return m, func() tea.Msg { return TogglePanelMsg{Key: r.key} }
	}
	return m, nil
}

func (m *SettingsModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Panels") + "\n")
	for i, r := range m.rows {
		if i > 0 && r.kind != m.rows[i-1].kind {
			b.WriteString("\n" + Styles.Title.Render("Map layers") + "\n")
		}
		box := "[ ]"
		if r.on {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, r.label)
		if i == m.selected {
			b.WriteString(Styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(Styles.Normal.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + Styles.Muted.Render("Space: toggle  j/k: move  Esc: close"))
	return Styles.Box.Padding(0, 2).Render(b.String())
}
