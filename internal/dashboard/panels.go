package dashboard

import (
	"fmt"

	"worldmonitor/internal/layout"
)

// PanelSettings returns a copy of the per-panel settings.
func (d *Dashboard) PanelSettings() layout.Settings {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.Clone()
}

// TogglePanel flips a panel's enabled flag, persists the full settings map
// and returns the new value.
func (d *Dashboard) TogglePanel(key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	enabled, err := d.settings.Toggle(key)
	if err != nil {
		return false, err
	}
	return enabled, saveErr("panel settings", d.store.SavePanelSettings(d.settings))
}

// MapVisible reports whether the map section is enabled.
func (d *Dashboard) MapVisible() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.Enabled(layout.KeyMap)
}

// Order returns the grid order, including disabled panels.
func (d *Dashboard) Order() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.order.Keys()
}

// VisiblePanels returns the enabled grid panels in order.
func (d *Dashboard) VisiblePanels() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.Visible(d.order.Keys())
}

// MovePanel shifts key by delta positions and persists the order. It fails
// with ErrDragInProgress during a drag.
func (d *Dashboard) MovePanel(key string, delta int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.order.Index(key) < 0 {
		return false, fmt.Errorf("%w: %q", layout.ErrUnknownPanel, key)
	}
	if d.drag != nil {
		return false, fmt.Errorf("move %q: %w", key, ErrDragInProgress)
	}
	if !d.order.MoveKey(key, delta) {
		return false, nil
	}
	return true, d.commitOrder()
}

// SetOrder replaces the grid order with keys, merged against the canonical
// order, and persists it. It fails with ErrDragInProgress during a drag.
func (d *Dashboard) SetOrder(keys []string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.drag != nil {
		return d.order.Keys(), ErrDragInProgress
	}
	d.order = layout.NewOrder(keys)
	err := d.commitOrder()
	return d.order.Keys(), err
}

// BeginDrag marks key as the panel being dragged.
func (d *Dashboard) BeginDrag(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	drag, err := layout.StartDrag(d.order, key)
	if err != nil {
		return err
	}
	d.drag = drag
	return nil
}

// Dragging returns the key being dragged, or "".
func (d *Dashboard) Dragging() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.drag == nil {
		return ""
	}
	return d.drag.Source()
}

// DragOver moves the dragged panel for a pointer at y over the given panel
// rectangles. It reports whether the order changed.
func (d *Dashboard) DragOver(y int, rects []layout.Rect) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.drag == nil {
		return false
	}
	return d.drag.Over(y, rects)
}

// EndDrag finishes the drag and persists the resulting order.
func (d *Dashboard) EndDrag() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.drag == nil {
		return nil, ErrNoDrag
	}
	d.drag.End()
	d.drag = nil
	err := d.commitOrder()
	return d.order.Keys(), err
}

// commitOrder normalizes the order the way a fresh load would, so what is
// shown matches what a reload restores, then persists it. Callers hold mu.
func (d *Dashboard) commitOrder() error {
	d.order = layout.NewOrder(layout.MergeOrder(d.order.Keys(), layout.CanonicalOrder()))
	return saveErr("panel order", d.store.SavePanelOrder(d.order.Keys()))
}
