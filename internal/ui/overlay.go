package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a modal or window drawn over the dashboard. Update returns the
// view itself so overlays can swap in a replacement.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Overlay is a modal view with the key that dismisses it.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey reports whether key closes the overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack holds the open modals; the topmost receives input.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the top overlay and stores the updated view. The
// caller runs the returned command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}

// topAs returns the top overlay's view as a T.
func topAs[T View](s *OverlayStack) (T, bool) {
	var zero T
	top, ok := s.Peek()
	if !ok {
		return zero, false
	}
	v, ok := top.View.(T)
	return v, ok
}
