package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is the perceptual representation used for lightening and classification.
// Hue is in degrees [0,360), Saturation and Lightness in percent [0,100],
// Alpha in [0,1].
type HSL struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// RGB is the display representation, only used to decide light vs dark.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// Variant selects the contrasting text color and the lightening parameters.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// Raw is a color as written in a theme file: either text in some CSS
// notation or an HSL value that was already structured in the source.
type Raw struct {
	text   string
	hsl    HSL
	parsed bool
}

// Text wraps a color string.
func Text(s string) Raw {
	return Raw{text: s}
}

// Parsed wraps an already structured color.
func Parsed(c HSL) Raw {
	return Raw{hsl: c, parsed: true}
}

// IsParsed reports whether r holds a structured color.
func (r Raw) IsParsed() bool {
	return r.parsed
}

// String returns the value as it should appear in a stylesheet.
func (r Raw) String() string {
	if r.parsed {
		return r.hsl.String()
	}
	return r.text
}

// RGB converts c to display channels.
func (c HSL) RGB() RGB {
	r, g, b := c.colorful().Clamped().RGB255()
	return RGB{Red: r, Green: g, Blue: b}
}

// Hex returns c as #rrggbb, dropping alpha.
func (c HSL) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c HSL) String() string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		formatChannel(c.Hue),
		formatChannel(c.Saturation),
		formatChannel(c.Lightness),
		formatChannel(c.Alpha),
	)
}

func (c HSL) colorful() colorful.Color {
	return colorful.Hsl(c.Hue, c.Saturation/100, c.Lightness/100)
}

func fromColorful(col colorful.Color, alpha float64) HSL {
	h, s, l := col.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{Hue: h, Saturation: s * 100, Lightness: l * 100, Alpha: alpha}
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// IsLight classifies a display color with the YIQ brightness formula.
func IsLight(c RGB) bool {
	brightness := (int(c.Red)*299 + int(c.Green)*587 + int(c.Blue)*114) / 1000
	return brightness > 125
}

// Classify returns the variant for c.
func Classify(c HSL) Variant {
	if IsLight(c.RGB()) {
		return Light
	}
	return Dark
}

// Lighten shifts lightness and saturation by the given amounts, clamped to
// [0,100]. Hue and alpha are kept.
func Lighten(c HSL, lightness, saturation float64) HSL {
	return HSL{
		Hue:        c.Hue,
		Saturation: clamp(c.Saturation+saturation, 0, 100),
		Lightness:  clamp(c.Lightness+lightness, 0, 100),
		Alpha:      c.Alpha,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
