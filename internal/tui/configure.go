package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/themetokens/internal/color"
	"github.com/leonardotrapani/themetokens/internal/config"
)

// ConfigureResult holds the configuration result from the TUI
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// configureValues are the form fields, kept as strings where the form
// edits free text.
type configureValues struct {
	needsVariant  string
	ink           string
	white         string
	format        string
	selector      string
	prefix        string
	path          string
	notifications bool
	notifyType    string
}

func newConfigureValues(cfg *config.Config) *configureValues {
	notifyType := cfg.Notifications.Type
	if notifyType == "" {
		notifyType = "log"
	}
	return &configureValues{
		needsVariant:  strings.Join(cfg.Derive.NeedsVariant, ", "),
		ink:           cfg.Brand.Ink,
		white:         cfg.Brand.White,
		format:        cfg.Output.Format,
		selector:      cfg.Output.Selector,
		prefix:        cfg.Output.Prefix,
		path:          cfg.Output.Path,
		notifications: cfg.Notifications.Enabled,
		notifyType:    notifyType,
	}
}

// apply copies the form values into a copy of cfg.
func (v *configureValues) apply(cfg *config.Config) *config.Config {
	out := *cfg
	out.Derive.NeedsVariant = splitList(v.needsVariant)
	out.Brand.Ink = strings.TrimSpace(v.ink)
	out.Brand.White = strings.TrimSpace(v.white)
	out.Output.Format = v.format
	out.Output.Selector = strings.TrimSpace(v.selector)
	out.Output.Prefix = v.prefix
	out.Output.Path = strings.TrimSpace(v.path)
	out.Notifications.Enabled = v.notifications
	out.Notifications.Type = v.notifyType
	return &out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateColor(s string) error {
	if _, ok := color.Parse(color.Text(strings.TrimSpace(s))); !ok {
		return fmt.Errorf("%q is not a hex, rgb or hsl color", s)
	}
	return nil
}

func buildConfigureForm(v *configureValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Variant groups").
				Description("Comma separated groups that get text and lighter tokens").
				Value(&v.needsVariant),
			huh.NewInput().
				Title("Ink").
				Description("Text color used on light surfaces").
				Validate(validateColor).
				Value(&v.ink),
			huh.NewInput().
				Title("White").
				Description("Text color used on dark surfaces").
				Validate(validateColor).
				Value(&v.white),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(
					huh.NewOption("CSS custom properties", "css"),
					huh.NewOption("SCSS variables", "scss"),
					huh.NewOption("JSON pairs", "json"),
				).
				Value(&v.format),
			huh.NewInput().
				Title("CSS selector").
				Value(&v.selector),
			huh.NewInput().
				Title("Custom property prefix").
				Value(&v.prefix),
			huh.NewInput().
				Title("Output file").
				Description("Leave empty to write to stdout").
				Value(&v.path),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Notify when watch mode rewrites the theme?").
				Value(&v.notifications),
			huh.NewSelect[string]().
				Title("Notification Type").
				Options(
					huh.NewOption("Desktop notifications (notify-send)", "desktop"),
					huh.NewOption("Log to console only", "log"),
					huh.NewOption("None (silent)", "none"),
				).
				Value(&v.notifyType),
		),
	).WithTheme(getTheme())
}

// Configure runs the configuration form on top of cfg.
func Configure(cfg *config.Config) (*ConfigureResult, error) {
	clearScreen()
	fmt.Println(Logo())
	fmt.Println()

	values := newConfigureValues(cfg)
	if err := buildConfigureForm(values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return &ConfigureResult{Cancelled: true}, nil
		}
		return nil, err
	}

	return &ConfigureResult{Config: values.apply(cfg)}, nil
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
