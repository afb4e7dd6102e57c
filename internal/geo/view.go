// Package geo holds the world map state: view, zoom, pan, overlay layers,
// hotspot activity and earthquakes, plus an ASCII renderer.
package geo

import (
	"errors"
	"fmt"
)

// View keys.
const (
	ViewGlobal = "global"
	ViewUS     = "us"
	ViewMENA   = "mena"
)

// Zoom limits.
const (
	MinZoom = 1
	MaxZoom = 8
)

// ErrUnknownView is returned for view keys outside the presets.
var ErrUnknownView = errors.New("unknown view")

// View is a preset viewport.
type View struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	LatSpan float64 `json:"latSpan"`
	LonSpan float64 `json:"lonSpan"`
}

var views = []View{
	{ViewGlobal, "Global", 10, 0, 160, 360},
	{ViewUS, "US", 38, -97, 34, 64},
	{ViewMENA, "MENA", 27, 40, 34, 60},
}

// Views returns the presets in header order.
func Views() []View {
	return append([]View(nil), views...)
}

// LookupView returns the preset for key.
func LookupView(key string) (View, error) {
	for _, v := range views {
		if v.Key == key {
			return v, nil
		}
	}
	return View{}, fmt.Errorf("%w: %q", ErrUnknownView, key)
}

// Bounds is a lat/lon rectangle.
type Bounds struct {
	South float64 `json:"south"`
	North float64 `json:"north"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

// Contains reports whether the point lies inside b.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}

// Viewport is the active view with zoom and pan applied.
type Viewport struct {
	View string  `json:"view"`
	Zoom int     `json:"zoom"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// NewViewport starts at the given preset with zoom 1.
func NewViewport(key string) (Viewport, error) {
	v, err := LookupView(key)
	if err != nil {
		return Viewport{}, err
	}
	return Viewport{View: v.Key, Zoom: MinZoom, Lat: v.Lat, Lon: v.Lon}, nil
}

func (vp Viewport) preset() View {
	v, err := LookupView(vp.View)
	if err != nil {
		return views[0]
	}
	return v
}

func (vp Viewport) spans() (lat, lon float64) {
	v := vp.preset()
	z := float64(max(MinZoom, vp.Zoom))
	return v.LatSpan / z, v.LonSpan / z
}

// Bounds returns the visible rectangle, kept inside the world.
func (vp Viewport) Bounds() Bounds {
	latSpan, lonSpan := vp.spans()
	lat := clamp(vp.Lat, -90+latSpan/2, 90-latSpan/2)
	lon := clamp(vp.Lon, -180+lonSpan/2, 180-lonSpan/2)
	return Bounds{
		South: lat - latSpan/2,
		North: lat + latSpan/2,
		West:  lon - lonSpan/2,
		East:  lon + lonSpan/2,
	}
}

// WithZoom returns vp zoomed by delta, clamped to [MinZoom, MaxZoom].
func (vp Viewport) WithZoom(delta int) Viewport {
	vp.Zoom = min(MaxZoom, max(MinZoom, vp.Zoom+delta))
	return vp.clamped()
}

// WithPan shifts the center by a fraction of the visible span per step.
// Positive dLat moves north, positive dLon moves east.
func (vp Viewport) WithPan(dLat, dLon int) Viewport {
	latSpan, lonSpan := vp.spans()
	vp.Lat += float64(dLat) * latSpan / 5
	vp.Lon += float64(dLon) * lonSpan / 5
	return vp.clamped()
}

// clamped pulls the center back so the bounds stay inside the world.
func (vp Viewport) clamped() Viewport {
	latSpan, lonSpan := vp.spans()
	vp.Lat = clamp(vp.Lat, -90+latSpan/2, 90-latSpan/2)
	vp.Lon = clamp(vp.Lon, -180+lonSpan/2, 180-lonSpan/2)
	return vp
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return min(hi, max(lo, v))
}
