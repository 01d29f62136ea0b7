package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer status colors
const (
	ColorIdle     Color = "8"   // Gray - idle
	ColorRunning  Color = "2"   // Green - running
	ColorStopping Color = "3"   // Yellow - start or stop in flight
	ColorFailed   Color = "196" // Bright red - error
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

// Banner colors
const (
	ColorRecovery Color = "33"  // Blue
	ColorWarning  Color = "214" // Orange
	ColorAutoStop Color = "160" // Red
)

// Accent colors
const (
	ColorSuggestion Color = "178" // Gold
	ColorInput      Color = "226" // Yellow - input prompt
)
