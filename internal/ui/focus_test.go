package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	var changes []string
	f := &FocusManager{
		Order:    []string{"map", "politics", "markets"},
		OnChange: func(from, to string) { changes = append(changes, from+">"+to) },
	}
	if got := f.Next(); got != "map" {
		t.Errorf("first Next = %q, want map", got)
	}
	f.Next()
	f.Next()
	if got := f.Next(); got != "map" {
		t.Errorf("Next should wrap to map, got %q", got)
	}
	if got := f.Prev(); got != "markets" {
		t.Errorf("Prev should wrap to markets, got %q", got)
	}
	if len(changes) != 5 {
		t.Errorf("expected 5 change callbacks, got %d: %v", len(changes), changes)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	if !f.SetFocus("b") || f.Current != "b" {
		t.Errorf("SetFocus(b) failed, current %q", f.Current)
	}
	if f.SetFocus("zzz") {
		t.Error("SetFocus on unknown id should fail")
	}
	if f.Current != "b" {
		t.Errorf("failed SetFocus must not move focus, got %q", f.Current)
	}
}

func TestFocusManager_SetOrder(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b", "c"}, Current: "b"}
	f.SetOrder([]string{"c", "b"})
	if f.Current != "b" {
		t.Errorf("focus should survive reorder, got %q", f.Current)
	}
	f.SetOrder([]string{"x", "y"})
	if f.Current != "x" {
		t.Errorf("focus should fall back to first, got %q", f.Current)
	}
	f.SetOrder(nil)
	if f.Current != "" || f.Next() != "" {
		t.Errorf("empty order should clear focus")
	}
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should fail")
	}
	s.Push(Overlay{View: NewConfirmModal("a", "", nil), Dismiss: "esc"})
	s.Push(Overlay{View: NewStatusWindow(), Dismiss: "esc"})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if _, ok := topAs[*StatusWindow](&s); !ok {
		t.Error("top should be the status window")
	}
	if _, ok := topAs[*ConfirmModal](&s); ok {
		t.Error("topAs must only look at the top overlay")
	}
	top, _ := s.Pop()
	if !top.IsDismissKey("esc") {
		t.Error("esc should dismiss")
	}
	if s.Len() != 1 {
		t.Errorf("Len after Pop = %d, want 1", s.Len())
	}
}
