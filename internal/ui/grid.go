package ui

import (
	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/layout"
)

// Screen layout, in rows and columns.
const (
	headerHeight  = 1
	statusHeight  = 1
	mapChrome     = 3 // map border top and bottom plus the resize handle
	panelHeight   = 10
	minPanelWidth = 44
)

// focusMap is the focus ID of the map section.
const focusMap = layout.KeyMap

// DashboardOptions sizes the map section in terminal rows.
func DashboardOptions() dashboard.Options {
	return dashboard.Options{
		MinMapHeight:     6,
		MaxMapFraction:   layout.DefaultMaxMapFraction,
		DefaultMapHeight: 14,
	}
}

// geometry is the screen layout for one frame.
type geometry struct {
	width, height int
	mapVisible    bool
	mapHeight     int // map content rows, without chrome
	cols          int
	colWidth      int
	gridTop       int
	gridHeight    int
	scroll        int // first visible grid row
}

func newGeometry(width, height int, mapVisible bool, mapHeight, scroll int) geometry {
	g := geometry{width: width, height: height, mapVisible: mapVisible, scroll: scroll}
	g.gridTop = headerHeight
	if mapVisible {
		g.mapHeight = max(1, min(mapHeight, height-headerHeight-statusHeight-mapChrome))
		g.gridTop += g.mapHeight + mapChrome
	}
	g.gridHeight = max(0, height-g.gridTop-statusHeight)
	g.cols = max(1, width/minPanelWidth)
	g.colWidth = max(1, width/g.cols)
	return g
}

// handleRow is the screen row of the map resize handle, or -1.
func (g geometry) handleRow() int {
	if !g.mapVisible {
		return -1
	}
	return headerHeight + g.mapHeight + 2
}

// inMap reports whether row y is inside the map box.
func (g geometry) inMap(y int) bool {
	return g.mapVisible && y >= headerHeight && y < g.handleRow()
}

// visibleRows is how many grid rows fit on screen.
func (g geometry) visibleRows() int {
	return max(1, g.gridHeight/panelHeight)
}

// totalRows is the number of grid rows n panels need.
func (g geometry) totalRows(n int) int {
	return (n + g.cols - 1) / g.cols
}

// clampScroll keeps scroll within the rows n panels occupy.
func (g geometry) clampScroll(scroll, n int) int {
	return max(0, min(scroll, g.totalRows(n)-g.visibleRows()))
}

// cell is one panel's on-screen box.
type cell struct {
	Key        string
	X, Y, W, H int
}

// cellWidth gives the last column the leftover columns.
func (g geometry) cellWidth(col int) int {
	if col == g.cols-1 {
		return g.width - col*g.colWidth
	}
	return g.colWidth
}

// cells places the keys in the visible part of the grid.
func (g geometry) cells(keys []string) []cell {
	var out []cell
	for i, k := range keys {
		row, col := i/g.cols, i%g.cols
		if row < g.scroll || row >= g.scroll+g.visibleRows() {
			continue
		}
		out = append(out, cell{
			Key: k,
			X:   col * g.colWidth,
			Y:   g.gridTop + (row-g.scroll)*panelHeight,
			W:   g.cellWidth(col),
			H:   panelHeight,
		})
	}
	return out
}

// cellAt returns the panel under the pointer.
func (g geometry) cellAt(keys []string, x, y int) (cell, bool) {
	for _, c := range g.cells(keys) {
		if x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H && y < g.gridTop+g.gridHeight {
			return c, true
		}
	}
	return cell{}, false
}

// linearY flattens a grid position to one axis: panel i occupies
// [i*panelHeight, (i+1)*panelHeight). Drop targets are resolved on this axis
// so dragging works across columns.
func (g geometry) linearY(x, y int) int {
	if y < g.gridTop {
		return 0
	}
	dy := y - g.gridTop
	row := dy/panelHeight + g.scroll
	col := min(max(0, x)/g.colWidth, g.cols-1)
	return (row*g.cols+col)*panelHeight + dy%panelHeight
}

// linearRects lays keys out on the linearY axis.
func linearRects(keys []string) []layout.Rect {
	rects := make([]layout.Rect, len(keys))
	for i, k := range keys {
		rects[i] = layout.Rect{Key: k, Top: i * panelHeight, Height: panelHeight}
	}
	return rects
}
