package theme

import "github.com/leonardotrapani/themetokens/internal/color"

// Brand text colors used on top of light and dark surfaces.
const (
	DefaultInk   = "rgb(33, 43, 54)"
	DefaultWhite = "rgb(255, 255, 255)"
)

// DefaultNeedsVariant is the set of groups that get text and lighter tokens
// when nothing else is configured.
var DefaultNeedsVariant = []string{TopBarGroup}

// Options configures a Deriver.
type Options struct {
	NeedsVariant []string
	Ink          string
	White        string
}

// Deriver expands a theme into tokens. It holds no mutable state and is safe
// for concurrent use.
type Deriver struct {
	needsVariant map[string]struct{}
	ink          string
	white        string
}

// NewDeriver builds a Deriver. Empty brand colors fall back to the defaults;
// a nil NeedsVariant means no group gets variant tokens.
func NewDeriver(opts Options) *Deriver {
	d := &Deriver{
		needsVariant: make(map[string]struct{}, len(opts.NeedsVariant)),
		ink:          opts.Ink,
		white:        opts.White,
	}
	for _, name := range opts.NeedsVariant {
		d.needsVariant[name] = struct{}{}
	}
	if d.ink == "" {
		d.ink = DefaultInk
	}
	if d.white == "" {
		d.white = DefaultWhite
	}
	return d
}

// Derive returns the tokens for t in group order, then entry order.
// It returns false when t has no colors configured.
func (d *Deriver) Derive(t *Theme) ([]Token, bool) {
	if t == nil || t.Colors == nil {
		return nil, false
	}

	tokens := []Token{}
	for _, g := range t.Colors {
		if g.Name == TopBarGroup && len(g.Entries) > 1 {
			for _, e := range g.Entries {
				tokens = append(tokens, Token{Name: Name(g.Name, e.Key, ""), Value: e.Value.String()})
			}
			continue
		}
		tokens = append(tokens, d.parseGroup(g)...)
	}
	return tokens, true
}

// NeedsVariant reports whether group gets text and lighter tokens.
func (d *Deriver) NeedsVariant(group string) bool {
	_, ok := d.needsVariant[group]
	return ok
}

// parseGroup emits one token per entry plus the variant tokens for groups
// that need them. The first value that does not parse ends the group: later
// entries are not emitted at all.
func (d *Deriver) parseGroup(g Group) []Token {
	tokens := make([]Token, 0, len(g.Entries))
	for _, e := range g.Entries {
		tokens = append(tokens, Token{Name: Name(g.Name, e.Key, ""), Value: e.Value.String()})

		if !d.NeedsVariant(g.Name) {
			continue
		}

		hsl, ok := color.Parse(e.Value)
		if !ok {
			return tokens
		}

		variant := color.Dark
		if color.IsLight(hsl.RGB()) {
			variant = color.Light
		}
		tokens = append(tokens, d.VariantTokens(hsl, g.Name, e.Key, variant)...)
	}
	return tokens
}

// VariantTokens returns the text color token for base and the lighter
// accent token for base and key. Unknown variants yield nothing.
func (d *Deriver) VariantTokens(c color.HSL, base, key string, v color.Variant) []Token {
	switch v {
	case color.Light:
		return []Token{
			d.TextColor(Name(base, "", "color"), color.Light),
			{Name: Name(base, key, "lighter"), Value: color.Lighten(c, 7, -10).String()},
		}
	case color.Dark:
		return []Token{
			d.TextColor(Name(base, "", "color"), color.Dark),
			{Name: Name(base, key, "lighter"), Value: color.Lighten(c, 15, 15).String()},
		}
	default:
		return nil
	}
}

// TextColor returns a token named name holding the ink color for light
// variants and white for everything else.
func (d *Deriver) TextColor(name string, v color.Variant) Token {
	if v == color.Light {
		return Token{Name: name, Value: d.ink}
	}
	return Token{Name: name, Value: d.white}
}
