package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in internal/app.
var (
	// ColorGreen for bookmarked items and success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for tags and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for the selection cursor and search highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleBookmark = lipgloss.NewStyle().Foreground(ColorGreen)

	StyleTag = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleMeta = lipgloss.NewStyle().Foreground(ColorGray)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
