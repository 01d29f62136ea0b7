package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(10)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)
)

// Status icon styles
var (
	IdleIconStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	RunningIconStyle = lipgloss.NewStyle().
				Foreground(ColorRunning)

	StoppingIconStyle = lipgloss.NewStyle().
				Foreground(ColorStopping)

	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)
)

// Banner styles
var (
	RecoveryBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorRecovery).
				Foreground(ColorNormal).
				Padding(0, 1)

	WarningBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorWarning).
				Foreground(ColorWarning).
				Bold(true).
				Padding(0, 1)

	AutoStopBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAutoStop).
				Foreground(ColorAutoStop).
				Bold(true).
				Padding(0, 1)
)

// Accent styles
var (
	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorSuggestion).
			Italic(true)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorInput)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
