package panels

import "github.com/charmbracelet/lipgloss"

// Colors shared with the app shell.
const (
	ColorAccent   = "86"
	ColorFocus    = "205"
	ColorBorder   = "240"
	ColorUp       = "42"
	ColorDown     = "196"
	ColorMuted    = "241"
	ColorText     = "252"
	ColorAlert    = "203"
	ColorElevated = "214"
)

var styles = struct {
	Title       lipgloss.Style
	Border      lipgloss.Style
	BorderFocus lipgloss.Style
	BorderDrag  lipgloss.Style
	Up          lipgloss.Style
	Down        lipgloss.Style
	Muted       lipgloss.Style
	Text        lipgloss.Style
	Alert       lipgloss.Style
	Error       lipgloss.Style
	Selected    lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)),
	BorderFocus: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFocus)),
	BorderDrag:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorElevated)),
	Up:          lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUp)),
	Down:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDown)),
	Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Alert:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAlert)),
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDown)),
	Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorFocus)),
}

// changeStyle colors a signed change.
func changeStyle(v float64) lipgloss.Style {
	if v < 0 {
		return styles.Down
	}
	return styles.Up
}
