package layout

import "fmt"

// Rect is the vertical extent of a rendered panel.
type Rect struct {
	Key    string
	Top    int
	Height int
}

// Drag reorders an Order while a panel is being dragged. The Order is
// mutated in place on every Over; End returns the order to persist.
type Drag struct {
	order  *Order
	source string
}

// StartDrag marks key as the dragged panel.
func StartDrag(o *Order, key string) (*Drag, error) {
	if o.Index(key) < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPanel, key)
	}
	return &Drag{order: o, source: key}, nil
}

// Source returns the key being dragged.
func (d *Drag) Source() string {
	return d.source
}

// Over moves the dragged panel before the nearest sibling whose vertical
// midpoint lies below pointerY, or to the end when there is none. It reports
// whether the order changed.
func (d *Drag) Over(pointerY int, rects []Rect) bool {
	after := DropTarget(pointerY, rects, d.source)
	return d.order.MoveBefore(d.source, after)
}

// End finishes the drag and returns the resulting order.
func (d *Drag) End() []string {
	return d.order.Keys()
}

// DropTarget returns the key of the sibling the dragged panel should be
// inserted before, or "" to append. Among rects (excluding skip) it picks
// the one whose midpoint is below pointerY and closest to it; ties go to
// the earlier rect.
func DropTarget(pointerY int, rects []Rect, skip string) string {
	best := ""
	// Offsets are doubled to keep midpoints integral: 2y - 2top - height.
	bestOffset := 0
	found := false
	for _, r := range rects {
		if r.Key == skip {
			continue
		}
		offset := 2*pointerY - 2*r.Top - r.Height
		if offset < 0 && (!found || offset > bestOffset) {
			best, bestOffset, found = r.Key, offset, true
		}
	}
	return best
}
