package config

import (
	"fmt"
	"strings"

	"github.com/leonardotrapani/themetokens/internal/color"
)

var validFormats = map[string]bool{"css": true, "scss": true, "json": true}

var validNotificationTypes = map[string]bool{"desktop": true, "log": true, "none": true}

func (c *Config) Validate() error {
	for _, name := range c.Derive.NeedsVariant {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid derive.needs_variant: empty group name")
		}
	}

	if c.Brand.Ink == "" {
		return fmt.Errorf("invalid brand.ink: empty")
	}
	if c.Brand.White == "" {
		return fmt.Errorf("invalid brand.white: empty")
	}
	if _, ok := color.Parse(color.Text(c.Brand.Ink)); !ok {
		return fmt.Errorf("invalid brand.ink: %q is not a hex, rgb or hsl color", c.Brand.Ink)
	}
	if _, ok := color.Parse(color.Text(c.Brand.White)); !ok {
		return fmt.Errorf("invalid brand.white: %q is not a hex, rgb or hsl color", c.Brand.White)
	}

	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be css, scss, or json)", c.Output.Format)
	}
	if c.Output.Format == "css" && strings.TrimSpace(c.Output.Selector) == "" {
		return fmt.Errorf("invalid output.selector: empty")
	}

	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("invalid watch.debounce: %v", c.Watch.Debounce)
	}

	if c.Notifications.Enabled && !validNotificationTypes[c.Notifications.Type] {
		return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
	}

	return nil
}
