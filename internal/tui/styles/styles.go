// Package styles defines the lipgloss styles shared by the titlesift TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Title styles the header line
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	// RuleBox frames the rule input
	RuleBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	// RuleBoxActive is RuleBox while a pass is pending (debounce running)
	RuleBoxActive = RuleBox.BorderForeground(WarningColor)

	// Row styles a visible listing row
	Row = lipgloss.NewStyle().Foreground(TextColor)

	// StatusBar styles the visible/total count line
	StatusBar = lipgloss.NewStyle().Foreground(MutedColor)
)
