package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles for themetokens CLI output
var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Success style for positive feedback
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning style for warnings
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

const logoASCII = `
 _   _                        _        _                  
| |_| |__   ___ _ __ ___   __| |_ ___ | | _____ _ __  ___ 
| __| '_ \ / _ \ '_ ' _ \ / _ \ __/ _ \| |/ / _ \ '_ \/ __|
| |_| | | |  __/ | | | | |  __/ || (_) |   <  __/ | | \__ \
 \__|_| |_|\___|_| |_| |_|\___|\__\___/|_|\_\___|_| |_|___/`

// Logo returns the themetokens ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}
