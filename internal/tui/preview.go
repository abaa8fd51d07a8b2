package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/themetokens/internal/color"
	"github.com/leonardotrapani/themetokens/internal/theme"
	"github.com/muesli/termenv"
)

// Swatch text colors, picked by the swatch background's variant.
const (
	swatchInk   = "#212B36"
	swatchWhite = "#FFFFFF"
)

// ColorProfile maps a --color flag value to a termenv profile.
func ColorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case "always":
		return termenv.TrueColor, nil
	case "never":
		return termenv.Ascii, nil
	case "", "auto":
		return termenv.NewOutput(w).EnvColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", mode)
	}
}

// Preview writes one line per token: a swatch, the token name and its value.
// Values that are not plain colors are listed without a swatch.
func Preview(w io.Writer, tokens []theme.Token, profile termenv.Profile) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	nameWidth := 0
	for _, t := range tokens {
		nameWidth = max(nameWidth, lipgloss.Width(t.Name))
	}

	nameStyle := r.NewStyle().Bold(true).Width(nameWidth + 2)
	mutedStyle := r.NewStyle().Foreground(ColorMuted)

	for _, t := range tokens {
		hsl, ok := color.Parse(color.Text(t.Value))
		if !ok {
			line := lipgloss.JoinHorizontal(lipgloss.Top,
				mutedStyle.Render("  ??  "), " ",
				nameStyle.Render(t.Name),
				mutedStyle.Render(t.Value+" (unresolved)"),
			)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}

		text := swatchWhite
		if color.Classify(hsl) == color.Light {
			text = swatchInk
		}
		swatch := r.NewStyle().
			Background(lipgloss.Color(hsl.Hex())).
			Foreground(lipgloss.Color(text)).
			Render("  Aa  ")

		line := lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", nameStyle.Render(t.Name), t.Value)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}
