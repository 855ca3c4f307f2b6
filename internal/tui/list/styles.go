package listview

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorCursor    = lipgloss.Color("205") //nolint:gochecknoglobals // Shared palette.
	ColorHeader    = lipgloss.Color("39")  //nolint:gochecknoglobals // Shared palette.
	ColorMuted     = lipgloss.Color("241") //nolint:gochecknoglobals // Shared palette.
	ColorThumb     = lipgloss.Color("252") //nolint:gochecknoglobals // Shared palette.
	ColorSeparator = lipgloss.Color("238") //nolint:gochecknoglobals // Shared palette.
)

// Styles controls how the model renders.
type Styles struct {
	Item      lipgloss.Style
	Cursor    lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style
	Track     lipgloss.Style
	Thumb     lipgloss.Style
	Status    lipgloss.Style
	Spinner   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Item:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Foreground(ColorCursor).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Reverse(true),
		Separator: lipgloss.NewStyle().Foreground(ColorSeparator),
		Track:     lipgloss.NewStyle().Foreground(ColorMuted),
		Thumb:     lipgloss.NewStyle().Foreground(ColorThumb),
		Status:    lipgloss.NewStyle().Foreground(ColorMuted),
		Spinner:   lipgloss.NewStyle().Foreground(ColorCursor),
	}
}
