package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors.
const (
	ColorAccent    = "86"  // titles
	ColorHighlight = "205" // selection, focus
	ColorDanger    = "196" // errors
	ColorMuted     = "241" // hints
	ColorText      = "252"
	ColorWarning   = "208"
	ColorBorder    = "240"
)

// Styles are shared by the app shell and its modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Box          lipgloss.Style
	BoxDanger    lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	Normal       lipgloss.Style
	Error        lipgloss.Style
	Details      lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	MapBorder    lipgloss.Style
	MapFocus     lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
}{
	Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)),
	Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Normal:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	Details:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
	Button:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	ButtonActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	MapBorder:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorBorder)),
	MapFocus:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorHighlight)),
	Handle:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)),
	HandleActive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
}
