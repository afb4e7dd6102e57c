package geo

import (
	"strings"

	"worldmonitor/internal/news"
)

// Activity levels.
const (
	LevelLow      = "low"
	LevelElevated = "elevated"
	LevelHigh     = "high"
)

// Hotspot is a watched location whose activity follows news volume.
type Hotspot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
	Level    string   `json:"level"`
}

// ConflictZone is a static area of ongoing conflict.
type ConflictZone struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

var hotspots = []Hotspot{
	{ID: "kyiv", Name: "Kyiv", Lat: 50.45, Lon: 30.52, Keywords: []string{"ukraine", "kyiv", "zelensky"}},
	{ID: "moscow", Name: "Moscow", Lat: 55.75, Lon: 37.62, Keywords: []string{"russia", "kremlin", "putin", "moscow"}},
	{ID: "gaza", Name: "Gaza", Lat: 31.5, Lon: 34.47, Keywords: []string{"gaza", "hamas", "west bank"}},
	{ID: "telaviv", Name: "Tel Aviv", Lat: 32.08, Lon: 34.78, Keywords: []string{"israel", "idf", "netanyahu"}},
	{ID: "tehran", Name: "Tehran", Lat: 35.69, Lon: 51.39, Keywords: []string{"iran", "tehran", "irgc"}},
	{ID: "sanaa", Name: "Sanaa", Lat: 15.37, Lon: 44.19, Keywords: []string{"yemen", "houthi", "red sea"}},
	{ID: "beirut", Name: "Beirut", Lat: 33.89, Lon: 35.5, Keywords: []string{"lebanon", "hezbollah", "beirut"}},
	{ID: "taipei", Name: "Taipei", Lat: 25.03, Lon: 121.56, Keywords: []string{"taiwan", "taipei"}},
	{ID: "beijing", Name: "Beijing", Lat: 39.9, Lon: 116.4, Keywords: []string{"china", "beijing", "xi jinping"}},
	{ID: "pyongyang", Name: "Pyongyang", Lat: 39.02, Lon: 125.75, Keywords: []string{"north korea", "pyongyang", "kim jong"}},
	{ID: "dc", Name: "Washington", Lat: 38.9, Lon: -77.04, Keywords: []string{"white house", "pentagon", "congress"}},
	{ID: "brussels", Name: "Brussels", Lat: 50.85, Lon: 4.35, Keywords: []string{"nato", "european union", "brussels"}},
	{ID: "khartoum", Name: "Khartoum", Lat: 15.5, Lon: 32.56, Keywords: []string{"sudan", "khartoum", "darfur"}},
	{ID: "caracas", Name: "Caracas", Lat: 10.48, Lon: -66.9, Keywords: []string{"venezuela", "maduro", "caracas"}},
}

var conflictZones = []ConflictZone{
	{"Eastern Ukraine", 48.0, 37.8},
	{"Gaza Strip", 31.4, 34.4},
	{"Sudan", 13.5, 30.0},
	{"Sahel", 14.5, 0.0},
	{"Myanmar", 21.0, 96.0},
	{"Yemen", 15.5, 47.5},
	{"Eastern DRC", -1.5, 29.0},
}

// DefaultHotspots returns the watched locations with no activity.
func DefaultHotspots() []Hotspot {
	out := make([]Hotspot, len(hotspots))
	for i, h := range hotspots {
		h.Keywords = append([]string(nil), h.Keywords...)
		h.Level = LevelLow
		out[i] = h
	}
	return out
}

// ConflictZones returns the static conflict layer.
func ConflictZones() []ConflictZone {
	return append([]ConflictZone(nil), conflictZones...)
}

// LevelFor maps a matching-item count to an activity level.
func LevelFor(count int) string {
	switch {
	case count >= 3:
		return LevelHigh
	case count >= 1:
		return LevelElevated
	default:
		return LevelLow
	}
}

// Matches reports whether title mentions any of the hotspot's keywords.
func (h Hotspot) Matches(title string) bool {
	t := strings.ToLower(title)
	for _, k := range h.Keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// ScoreHotspots returns a copy of spots with Count and Level derived from
// the number of items whose title matches each hotspot.
func ScoreHotspots(spots []Hotspot, items []news.Item) []Hotspot {
	out := make([]Hotspot, len(spots))
	for i, h := range spots {
		h.Count = 0
		for _, it := range items {
			if h.Matches(it.Title) {
				h.Count++
			}
		}
		h.Level = LevelFor(h.Count)
		out[i] = h
	}
	return out
}
