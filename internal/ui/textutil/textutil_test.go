package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := VisualWidth(Truncate(tt.in, tt.width)); w > tt.width {
			t.Errorf("Truncate(%q, %d) width %d exceeds limit", tt.in, tt.width, w)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight overflow = %q", got)
	}
}

func TestColumns(t *testing.T) {
	got := Columns("left", "R", 10)
	if got != "left     R" {
		t.Errorf("Columns = %q", got)
	}
	if VisualWidth(Columns("a very long left side", "right", 12)) != 12 {
		t.Errorf("Columns should fill exactly the width")
	}
}

func TestFitLines(t *testing.T) {
	if got := FitLines([]string{"a", "b", "c"}, 2); len(got) != 2 || got[1] != "b" {
		t.Errorf("FitLines clip = %v", got)
	}
	if got := FitLines([]string{"a"}, 3); len(got) != 3 || got[0] != "a" || got[2] != "" {
		t.Errorf("FitLines pad = %v", got)
	}
	if got := FitLines([]string{"a"}, 0); got != nil {
		t.Errorf("FitLines zero = %v", got)
	}
}
