package geo

import (
	"fmt"
	"math"
	"strings"
)

// Glyphs drawn by Render.
const (
	GlyphGraticule = '.'
	GlyphEquator   = '-'
	GlyphConflict  = 'x'
	GlyphLow       = 'o'
	GlyphElevated  = '*'
	GlyphHigh      = '@'
)

// Project maps a point to a cell in a width x height grid over b. ok is
// false when the point is outside b.
func Project(b Bounds, lat, lon float64, width, height int) (x, y int, ok bool) {
	if width <= 0 || height <= 0 || !b.Contains(lat, lon) {
		return 0, 0, false
	}
	fx := (lon - b.West) / (b.East - b.West)
	fy := (b.North - lat) / (b.North - b.South)
	x = min(width-1, int(fx*float64(width)))
	y = min(height-1, int(fy*float64(height)))
	return x, y, true
}

// Render draws the map as width x height lines of text: an equirectangular
// grid with a 30 degree graticule, markers for the enabled layers and a
// legend on the last line when height allows.
func (m *Map) Render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	gridH := height
	if height >= 4 {
		gridH = height - 1
	}
	b := m.viewport.Bounds()
	grid := make([][]rune, gridH)
	for y := range grid {
		grid[y] = make([]rune, width)
		lat := b.North - (float64(y)+0.5)*(b.North-b.South)/float64(gridH)
		cellLat := (b.North - b.South) / float64(gridH)
		for x := range grid[y] {
			lon := b.West + (float64(x)+0.5)*(b.East-b.West)/float64(width)
			cellLon := (b.East - b.West) / float64(width)
			grid[y][x] = background(lat, lon, cellLat, cellLon)
		}
	}

	put := func(lat, lon float64, r rune) (int, int, bool) {
		x, y, ok := Project(b, lat, lon, width, gridH)
		if ok {
			grid[y][x] = r
		}
		return x, y, ok
	}

	if m.layers[LayerConflicts] {
		for _, c := range conflictZones {
			put(c.Lat, c.Lon, GlyphConflict)
		}
	}
	if m.layers[LayerEarthquakes] {
		for _, q := range m.earthquakes {
			put(q.Lat, q.Lon, QuakeGlyph(q.Magnitude))
		}
	}
	if m.layers[LayerHotspots] {
		for _, h := range m.hotspots {
			x, y, ok := put(h.Lat, h.Lon, HotspotGlyph(h.Level))
			if ok && h.Level == LevelHigh {
				label(grid[y], x+1, h.Name)
			}
		}
	}

	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, string(row))
	}
	if gridH < height {
		lines = append(lines, fit(m.legend(), width))
	}
	return lines
}

// HotspotGlyph returns the marker for an activity level.
func HotspotGlyph(level string) rune {
	switch level {
	case LevelHigh:
		return GlyphHigh
	case LevelElevated:
		return GlyphElevated
	default:
		return GlyphLow
	}
}

// QuakeGlyph returns the integer magnitude as a digit, capped at 9.
func QuakeGlyph(mag float64) rune {
	d := int(math.Floor(mag))
	return rune('0' + min(9, max(0, d)))
}

func background(lat, lon, cellLat, cellLon float64) rune {
	if crosses(lat, cellLat/2, 180) {
		return GlyphEquator
	}
	if crosses(lat, cellLat/2, 30) || crosses(lon, cellLon/2, 30) {
		return GlyphGraticule
	}
	return ' '
}

// crosses reports whether a multiple of step lies in [v-half, v+half).
// Exactly one cell along an axis satisfies it for each multiple.
func crosses(v, half, step float64) bool {
	return math.Floor((v-half)/step) != math.Floor((v+half)/step)
}

// label writes text into row starting at x, stopping at the row end or at
// the first non-background cell.
func label(row []rune, x int, text string) {
	for _, r := range text {
		if x >= len(row) {
			return
		}
		switch row[x] {
		case ' ', GlyphGraticule, GlyphEquator:
			row[x] = r
			x++
		default:
			return
		}
	}
}

func (m *Map) legend() string {
	var parts []string
	if m.layers[LayerHotspots] {
		parts = append(parts, fmt.Sprintf("%c high %c elevated %c low", GlyphHigh, GlyphElevated, GlyphLow))
	}
	if m.layers[LayerConflicts] {
		parts = append(parts, fmt.Sprintf("%c conflict", GlyphConflict))
	}
	if m.layers[LayerEarthquakes] {
		parts = append(parts, fmt.Sprintf("# quake M# (%d)", len(m.earthquakes)))
	}
	vp := m.viewport
	parts = append(parts, fmt.Sprintf("%s x%d", strings.ToUpper(vp.View), vp.Zoom))
	return strings.Join(parts, "  ")
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
