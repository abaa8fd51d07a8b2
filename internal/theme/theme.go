package theme

import "github.com/leonardotrapani/themetokens/internal/color"

// TopBarGroup is the group whose sub-keys are emitted verbatim when it has
// more than one of them.
const TopBarGroup = "topBar"

// Theme is a color configuration as read from a theme file.
// A nil Colors slice means no colors were configured at all.
type Theme struct {
	Logo   *Logo
	Colors []Group
}

// Group is one named color group with its entries in file order.
type Group struct {
	Name    string
	Entries []Entry
}

// Entry is a single color key within a group.
type Entry struct {
	Key   string
	Value color.Raw
}

// Logo describes the brand image shown in the top bar.
type Logo struct {
	TopBarSource       string `toml:"top_bar_source" yaml:"top_bar_source" json:"topBarSource,omitempty"`
	URL                string `toml:"url" yaml:"url" json:"url,omitempty"`
	AccessibilityLabel string `toml:"accessibility_label" yaml:"accessibility_label" json:"accessibilityLabel,omitempty"`
	Width              int    `toml:"width" yaml:"width" json:"width,omitempty"`
}

// Token is one derived (name, value) pair.
type Token struct {
	Name  string
	Value string
}

// Context is what a theme exposes besides its color tokens.
type Context struct {
	Logo *Logo `json:"logo"`
}

// NewContext returns the context for t. The logo is nil when t is nil or
// has no logo.
func NewContext(t *Theme) Context {
	if t == nil || t.Logo == nil {
		return Context{}
	}
	logo := *t.Logo
	return Context{Logo: &logo}
}
