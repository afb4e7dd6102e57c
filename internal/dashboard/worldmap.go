package dashboard

import (
	"fmt"
	"maps"

	"worldmonitor/internal/geo"
)

// MapHeight returns the map section height.
func (d *Dashboard) MapHeight() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.resizer.Height
}

// SetMapHeight clamps h for the viewport, persists and returns it.
func (d *Dashboard) SetMapHeight(h, viewport int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resizer.Height = h
	got := d.resizer.Fit(viewport)
	return got, saveErr("map height", d.store.SaveMapHeight(got))
}

// NudgeMapHeight grows or shrinks the map by delta and persists.
func (d *Dashboard) NudgeMapHeight(delta, viewport int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	got := d.resizer.Nudge(delta, viewport)
	return got, saveErr("map height", d.store.SaveMapHeight(got))
}

// FitMapHeight re-clamps the height after a viewport change. Nothing is
// persisted.
func (d *Dashboard) FitMapHeight(viewport int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resizer.Fit(viewport)
}

// BeginResize starts a handle drag at pointer y.
func (d *Dashboard) BeginResize(y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resizer.Start(y)
}

// Resizing reports whether a handle drag is in progress.
func (d *Dashboard) Resizing() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.resizer.Active()
}

// ResizeTo applies a pointer move during a handle drag.
func (d *Dashboard) ResizeTo(y, viewport int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resizer.Move(y, viewport)
}

// EndResize finishes a handle drag and persists the final height.
func (d *Dashboard) EndResize() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.resizer.End()
	if !ok {
		return h, ErrNoDrag
	}
	return h, saveErr("map height", d.store.SaveMapHeight(h))
}

// Viewport returns the map view, zoom and center.
func (d *Dashboard) Viewport() geo.Viewport {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Viewport()
}

// SetView switches the map to a preset view.
func (d *Dashboard) SetView(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.world.SetView(key)
}

// Zoom changes the map zoom by delta and returns the new level.
func (d *Dashboard) Zoom(delta int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.world.Zoom(delta)
}

// Pan moves the map center by dLat/dLon steps.
func (d *Dashboard) Pan(dLat, dLon int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.world.Pan(dLat, dLon)
}

// Layers returns the map layer flags.
func (d *Dashboard) Layers() map[string]bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Layers()
}

// SetLayers updates the given layer flags and persists the full set.
// Unknown layer keys are rejected before anything changes.
func (d *Dashboard) SetLayers(changes map[string]bool) (map[string]bool, error) {
	for k := range changes {
		if !geo.IsLayer(k) {
			return nil, fmt.Errorf("unknown layer %q", k)
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	layers := d.world.Layers()
	maps.Copy(layers, changes)
	d.world.SetLayers(layers)
	return d.world.Layers(), saveErr("map layers", d.store.SaveMapLayers(layers))
}

// ToggleLayer flips one layer and persists.
func (d *Dashboard) ToggleLayer(key string) (bool, error) {
	on := !d.Layers()[key]
	layers, err := d.SetLayers(map[string]bool{key: on})
	if layers == nil {
		return false, err
	}
	return on, err
}

// RenderMap draws the map as text lines.
func (d *Dashboard) RenderMap(width, height int) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.world.Render(width, height)
}
