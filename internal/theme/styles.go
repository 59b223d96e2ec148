package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Option list styles
var (
	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorMarker).
			Bold(true)

	OptionSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Text input styles
var (
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	InputBoxFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	InputCursorStyle = lipgloss.NewStyle().
				Foreground(ColorCursor)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	InputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// Outcome styles
var (
	AnsweredStyle = lipgloss.NewStyle().
			Foreground(ColorAnswered).
			Bold(true)

	CancelledStyle = lipgloss.NewStyle().
			Foreground(ColorCancelled).
			Bold(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
