package config

import (
	"time"

	"github.com/leonardotrapani/themetokens/internal/theme"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Derive: DeriveConfig{
			NeedsVariant: append([]string(nil), theme.DefaultNeedsVariant...),
		},
		Brand: BrandConfig{
			Ink:   theme.DefaultInk,
			White: theme.DefaultWhite,
		},
		Output: OutputConfig{
			Format:   "css",
			Selector: ":root",
			Prefix:   "--",
			Path:     "",
		},
		Watch: WatchConfig{
			Debounce: 40 * time.Millisecond,
		},
		Notifications: NotificationsConfig{
			Enabled: false,
			Type:    "log",
		},
	}
}
