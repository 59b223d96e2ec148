package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - question title
	ColorSecondary Color = "86" // Cyan - section headers
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Prompt colors
const (
	ColorAnswered  Color = "2"   // Green - submitted answer
	ColorCancelled Color = "1"   // Red - cancelled notice
	ColorCursor    Color = "205" // Pink - text input cursor
	ColorMarker    Color = "226" // Yellow - selection marker
	ColorSelected  Color = "237" // Dark gray background - selected option
)
