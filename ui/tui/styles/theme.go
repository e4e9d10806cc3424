package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sysdash/ui/tui/components"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	Warning   = lipgloss.Color("#E2C541")
	Critical  = lipgloss.Color("#E25041")

	TitleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	WarnStyle = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	CritStyle = lipgloss.NewStyle().Bold(true).Foreground(Critical)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Highlight)

	GaugeFilled = lipgloss.NewStyle().Foreground(Highlight)
	GaugeEmpty  = lipgloss.NewStyle().Foreground(Subtle)
)

// Card returns the widget border style, highlighted when the widget has
// focus.
func Card(selected bool) lipgloss.Style {
	if selected {
		return cardSelectedStyle
	}
	return cardStyle
}

// Table returns the style sheet shared by all table widgets.
func Table() components.StyleSheet {
	return components.StyleSheet{
		Text:         lipgloss.NewStyle(),
		SelectedText: lipgloss.NewStyle().Reverse(true),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(Highlight),
	}
}
