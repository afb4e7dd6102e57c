package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacked lays keys out top to bottom, each h rows tall.
func stacked(keys []string, h int) []Rect {
	rects := make([]Rect, len(keys))
	for i, k := range keys {
		rects[i] = Rect{Key: k, Top: i * h, Height: h}
	}
	return rects
}

func TestDropTarget(t *testing.T) {
	rects := stacked([]string{"a", "b", "c"}, 10) // midpoints 5, 15, 25

	tests := []struct {
		name string
		y    int
		skip string
		want string
	}{
		{"above first midpoint", 2, "", "a"},
		{"between a and b midpoints", 9, "", "b"},
		{"exactly on midpoint is not below", 15, "", "c"},
		{"past last midpoint appends", 29, "", ""},
		{"dragged rect is ignored", 9, "b", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropTarget(tt.y, rects, tt.skip))
		})
	}
}

func TestDropTarget_GridRowTiePicksFirst(t *testing.T) {
	rects := []Rect{
		{Key: "a", Top: 0, Height: 10}, {Key: "b", Top: 0, Height: 10},
		{Key: "c", Top: 10, Height: 10}, {Key: "d", Top: 10, Height: 10},
	}
	assert.Equal(t, "c", DropTarget(12, rects, "a"))
}

func TestDrag_ReordersInPlace(t *testing.T) {
	o := NewOrder([]string{"a", "b", "c", "d"})
	d, err := StartDrag(o, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", d.Source())

	// Pointer moves down past c's midpoint: a goes before d.
	assert.True(t, d.Over(27, stacked(o.Keys(), 10)))
	assert.Equal(t, []string{"b", "c", "a", "d"}, o.Keys())

	// Below everything: append.
	assert.True(t, d.Over(100, stacked(o.Keys(), 10)))
	assert.Equal(t, []string{"b", "c", "d", "a"}, o.Keys())

	// Same position again is not a change.
	assert.False(t, d.Over(100, stacked(o.Keys(), 10)))

	assert.Equal(t, []string{"b", "c", "d", "a"}, d.End())
}

func TestStartDrag_UnknownKey(t *testing.T) {
	_, err := StartDrag(NewOrder([]string{"a"}), "nope")
	assert.ErrorIs(t, err, ErrUnknownPanel)
}
