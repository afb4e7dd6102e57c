// Package textutil measures and fits text to terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisualWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight pads s with spaces to exactly width columns, truncating if it
// is wider.
func PadRight(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in width columns.
func PadLeft(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft(s, width)
}

// Columns lays out left and right in width columns with right flush to the
// edge. Both may carry ANSI styling; left is cut first when they do not fit.
func Columns(left, right string, width int) string {
	rw := lipgloss.Width(right)
	if rw >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(right)
	}
	lw := width - rw - 1
	left = lipgloss.NewStyle().MaxWidth(lw).Render(left)
	return left + strings.Repeat(" ", max(0, lw-lipgloss.Width(left))) + " " + right
}

// FitLines clips or pads lines to exactly height entries.
func FitLines(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		return lines[:height]
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}

// Block joins lines after fitting them to height.
func Block(lines []string, height int) string {
	return strings.Join(FitLines(lines, height), "\n")
}
