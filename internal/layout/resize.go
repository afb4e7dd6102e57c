package layout

// Map section bounds, in pixels.
const (
	DefaultMinMapHeight   = 400
	DefaultMaxMapFraction = 0.85
)

// ClampHeight bounds h to [lo, maxFraction*viewport]. When the viewport is
// too small for both bounds the minimum wins.
func ClampHeight(h, viewport, lo int, maxFraction float64) int {
	hi := int(maxFraction * float64(viewport))
	if h > hi {
		h = hi
	}
	if h < lo {
		h = lo
	}
	return h
}

// Resizer tracks a pointer drag on the map section's resize handle.
type Resizer struct {
	Min         int
	MaxFraction float64
	Height      int

	active      bool
	startY      int
	startHeight int
}

// NewResizer returns a resizer starting at height.
func NewResizer(lo int, maxFraction float64, height int) *Resizer {
	return &Resizer{Min: lo, MaxFraction: maxFraction, Height: height}
}

// Active reports whether a drag is in progress.
func (r *Resizer) Active() bool {
	return r.active
}

// Start begins a drag at pointer position y.
func (r *Resizer) Start(y int) {
	r.active = true
	r.startY = y
	r.startHeight = r.Height
}

// Move applies the pointer delta since Start and returns the clamped height.
// It is a no-op outside a drag.
func (r *Resizer) Move(y, viewport int) int {
	if !r.active {
		return r.Height
	}
	r.Height = ClampHeight(r.startHeight+(y-r.startY), viewport, r.Min, r.MaxFraction)
	return r.Height
}

// End finishes the drag and returns the final height. ok is false when no
// drag was in progress.
func (r *Resizer) End() (height int, ok bool) {
	if !r.active {
		return r.Height, false
	}
	r.active = false
	return r.Height, true
}

// Nudge changes the height by delta outside of a pointer drag.
func (r *Resizer) Nudge(delta, viewport int) int {
	r.Height = ClampHeight(r.Height+delta, viewport, r.Min, r.MaxFraction)
	return r.Height
}

// Fit re-clamps the current height after a viewport change.
func (r *Resizer) Fit(viewport int) int {
	r.Height = ClampHeight(r.Height, viewport, r.Min, r.MaxFraction)
	return r.Height
}
