package ui

import "slices"

// FocusManager tracks which section has keyboard focus and rotates it in
// Order.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// Next moves focus forward, wrapping around, and returns the new ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping around.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id and reports whether it is in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// SetOrder replaces the rotation. Focus stays put when the current ID
// survives, else it moves to the first entry.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if slices.Contains(order, f.Current) {
		return
	}
	next := ""
	if len(order) > 0 {
		next = order[0]
	}
	f.set(next)
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
