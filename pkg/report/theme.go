package report

import "github.com/charmbracelet/lipgloss"

// Curve colors of the energy plot.
const (
	ColorMembrane = "#4C832C"
	ColorVesicle  = "#963932"
	ColorCombined = "#362B67"
)

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Membrane lipgloss.Style
	Vesicle  lipgloss.Style
	Combined lipgloss.Style
	Marker   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Faint(true),
		Membrane: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMembrane)),
		Vesicle:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorVesicle)),
		Combined: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCombined)).Bold(true),
		Marker:   lipgloss.NewStyle().Bold(true),
	}
}

// PlainTheme renders without any styling, for pipes and tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Label:    plain,
		Membrane: plain,
		Vesicle:  plain,
		Combined: plain,
		Marker:   plain,
	}
}
