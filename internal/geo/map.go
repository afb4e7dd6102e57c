package geo

import (
	"fmt"
	"maps"
	"slices"

	"worldmonitor/internal/news"
	"worldmonitor/internal/quakes"
)

// Map is the map component's state. It is not safe for concurrent use;
// the owner serializes access.
type Map struct {
	viewport    Viewport
	layers      map[string]bool
	hotspots    []Hotspot
	earthquakes []quakes.Quake
}

// New returns a map on the global view with the given layers.
func New(layers map[string]bool) *Map {
	vp, _ := NewViewport(ViewGlobal)
	m := &Map{viewport: vp, hotspots: DefaultHotspots()}
	m.SetLayers(layers)
	return m
}

// Viewport returns the current view, zoom and center.
func (m *Map) Viewport() Viewport {
	return m.viewport
}

// SetView switches to a preset, resetting zoom and pan.
func (m *Map) SetView(key string) error {
	vp, err := NewViewport(key)
	if err != nil {
		return err
	}
	m.viewport = vp
	return nil
}

// Zoom changes the zoom level by delta and returns the new level.
func (m *Map) Zoom(delta int) int {
	m.viewport = m.viewport.WithZoom(delta)
	return m.viewport.Zoom
}

// Pan moves the center by dLat/dLon steps.
func (m *Map) Pan(dLat, dLon int) {
	m.viewport = m.viewport.WithPan(dLat, dLon)
}

// Layers returns a copy of the layer flags.
func (m *Map) Layers() map[string]bool {
	return maps.Clone(m.layers)
}

// SetLayers replaces the layer flags. Unknown keys are kept and ignored
// when drawing.
func (m *Map) SetLayers(layers map[string]bool) {
	if layers == nil {
		layers = DefaultLayers()
	}
	m.layers = maps.Clone(layers)
}

// SetLayer flips a single layer.
func (m *Map) SetLayer(key string, on bool) error {
	if !IsLayer(key) {
		return fmt.Errorf("unknown layer %q", key)
	}
	m.layers[key] = on
	return nil
}

// UpdateHotspots recomputes hotspot activity from items.
func (m *Map) UpdateHotspots(items []news.Item) {
	m.hotspots = ScoreHotspots(m.hotspots, items)
}

// Hotspots returns the hotspots, busiest first.
func (m *Map) Hotspots() []Hotspot {
	out := slices.Clone(m.hotspots)
	slices.SortStableFunc(out, func(a, b Hotspot) int { return b.Count - a.Count })
	return out
}

// SetEarthquakes replaces the earthquake overlay.
func (m *Map) SetEarthquakes(q []quakes.Quake) {
	m.earthquakes = slices.Clone(q)
}

// Earthquakes returns the earthquake overlay.
func (m *Map) Earthquakes() []quakes.Quake {
	return slices.Clone(m.earthquakes)
}
