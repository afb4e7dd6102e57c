package ui

import (
	"testing"

	"worldmonitor/internal/layout"
)

func TestGeometry_Sections(t *testing.T) {
	g := newGeometry(100, 50, true, 14, 0)
	if g.cols != 2 || g.colWidth != 50 {
		t.Errorf("cols=%d colWidth=%d, want 2/50", g.cols, g.colWidth)
	}
	if g.handleRow() != 1+14+2 {
		t.Errorf("handle row = %d", g.handleRow())
	}
	if g.gridTop != 1+14+3 {
		t.Errorf("grid top = %d", g.gridTop)
	}
	if g.gridHeight != 50-g.gridTop-1 {
		t.Errorf("grid height = %d", g.gridHeight)
	}
	if !g.inMap(5) || g.inMap(g.handleRow()) || g.inMap(0) {
		t.Error("inMap bounds are wrong")
	}

	hidden := newGeometry(100, 50, false, 14, 0)
	if hidden.handleRow() != -1 || hidden.gridTop != 1 || hidden.inMap(5) {
		t.Errorf("hidden map should leave the grid at the top: %+v", hidden)
	}
}

func TestGeometry_MapNeverExceedsScreen(t *testing.T) {
	g := newGeometry(80, 20, true, 500, 0)
	if g.mapHeight != 20-1-1-3 {
		t.Errorf("map height = %d", g.mapHeight)
	}
	if g.gridHeight != 0 {
		t.Errorf("grid height = %d, want 0", g.gridHeight)
	}
}

func TestGeometry_CellsAndScroll(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	g := newGeometry(90, 1+10*2+1, false, 0, 0)
	cells := g.cells(keys)
	if len(cells) != 4 {
		t.Fatalf("expected 4 visible cells, got %d", len(cells))
	}
	if cells[1].X != 45 || cells[1].Y != 1 || cells[2].Y != 11 {
		t.Errorf("unexpected placement: %+v", cells)
	}
	if c, ok := g.cellAt(keys, 50, 12); !ok || c.Key != "d" {
		t.Errorf("cellAt(50,12) = %+v %v", c, ok)
	}

	if got := g.clampScroll(10, len(keys)); got != 1 {
		t.Errorf("clampScroll = %d, want 1", got)
	}
	g.scroll = 1
	cells = g.cells(keys)
	if len(cells) != 3 || cells[0].Key != "c" || cells[0].Y != 1 {
		t.Errorf("scrolled cells = %+v", cells)
	}
}

func TestGeometry_LinearDrop(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	g := newGeometry(90, 30, false, 0, 0)
	rects := linearRects(keys)

	// Upper half of d's cell (row 1, col 1) drops before d.
	y := g.linearY(60, g.gridTop+10+2)
	if got := layout.DropTarget(y, rects, "a"); got != "d" {
		t.Errorf("drop target = %q, want d", got)
	}
	// Above the grid drops at the front.
	if got := layout.DropTarget(g.linearY(0, 0), rects, "d"); got != "a" {
		t.Errorf("drop target above grid = %q, want a", got)
	}
	// Lower half of the last cell appends.
	if got := layout.DropTarget(g.linearY(60, g.gridTop+10+8), rects, "a"); got != "" {
		t.Errorf("drop target past end = %q, want append", got)
	}
}
