package config

import (
	"time"

	"github.com/leonardotrapani/themetokens/internal/theme"
)

type Config struct {
	Derive        DeriveConfig        `toml:"derive"`
	Brand         BrandConfig         `toml:"brand"`
	Output        OutputConfig        `toml:"output"`
	Watch         WatchConfig         `toml:"watch"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// DeriveConfig controls which groups get text and lighter tokens
type DeriveConfig struct {
	NeedsVariant []string `toml:"needs_variant"`
}

// BrandConfig holds the fixed text colors put on top of derived surfaces
type BrandConfig struct {
	Ink   string `toml:"ink"`   // text on light colors
	White string `toml:"white"` // text on dark colors
}

type OutputConfig struct {
	Format   string `toml:"format"` // "css", "scss", "json"
	Selector string `toml:"selector"`
	Prefix   string `toml:"prefix"`
	Path     string `toml:"path"` // empty = stdout
}

type WatchConfig struct {
	Debounce time.Duration `toml:"debounce"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}

// DeriverOptions returns the options for building a theme.Deriver
func (c *Config) DeriverOptions() theme.Options {
	needsVariant := make([]string, len(c.Derive.NeedsVariant))
	copy(needsVariant, c.Derive.NeedsVariant)
	return theme.Options{
		NeedsVariant: needsVariant,
		Ink:          c.Brand.Ink,
		White:        c.Brand.White,
	}
}

// NotifierKind returns the notifier to use, "none" when disabled
func (c *Config) NotifierKind() string {
	if !c.Notifications.Enabled {
		return "none"
	}
	return c.Notifications.Type
}
