package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the themetokens CLI
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#5C6AC4") // Indigo - main accent
	ColorSecondary = lipgloss.Color("#47C1BF") // Teal - secondary accent

	// Status colors
	ColorSuccess = lipgloss.Color("#50B83C") // Green
	ColorError   = lipgloss.Color("#DE3618") // Red
	ColorWarning = lipgloss.Color("#EEC200") // Yellow

	// Text colors
	ColorText   = lipgloss.Color("#F4F6F8") // Sky lighter
	ColorMuted  = lipgloss.Color("#919EAB") // Ink lightest
	ColorSubtle = lipgloss.Color("#637381") // Ink lighter
)
