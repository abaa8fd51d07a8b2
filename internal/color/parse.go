package color

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*(?:,\s*([\d.]+)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*([\d.]+)\s*)?\)$`)
)

// Parse converts a raw color to HSL. It returns false when the value is not
// in a notation it understands (CSS variables, keywords, gradients); callers
// then keep the original text as is.
func Parse(r Raw) (HSL, bool) {
	if r.parsed {
		return r.hsl, true
	}

	s := strings.ToLower(strings.TrimSpace(r.text))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	default:
		return HSL{}, false
	}
}

func parseHex(s string) (HSL, bool) {
	// colorful.Hex stops scanning at the first non-hex rune.
	if len(s) > 9 {
		return HSL{}, false
	}
	if _, err := strconv.ParseUint(s[1:], 16, 64); err != nil {
		return HSL{}, false
	}

	alpha := 1.0
	switch len(s) {
	case 5:
		a, err := strconv.ParseUint(s[4:], 16, 8)
		if err != nil {
			return HSL{}, false
		}
		alpha = float64(a) / 15
		s = s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return HSL{}, false
		}
		alpha = float64(a) / 255
		s = s[:7]
	case 4, 7:
	default:
		return HSL{}, false
	}

	col, err := colorful.Hex(s)
	if err != nil {
		return HSL{}, false
	}
	return fromColorful(col, alpha), true
}

func parseRGB(s string) (HSL, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil || v > 255 {
			return HSL{}, false
		}
		channels[i] = v / 255
	}

	alpha, ok := parseAlpha(m[4])
	if !ok {
		return HSL{}, false
	}

	col := colorful.Color{R: channels[0], G: channels[1], B: channels[2]}
	return fromColorful(col, alpha), true
}

func parseHSL(s string) (HSL, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return HSL{}, false
		}
		channels[i] = v
	}
	if channels[1] > 100 || channels[2] > 100 {
		return HSL{}, false
	}

	alpha, ok := parseAlpha(m[4])
	if !ok {
		return HSL{}, false
	}

	hue := channels[0]
	for hue >= 360 {
		hue -= 360
	}
	return HSL{Hue: hue, Saturation: channels[1], Lightness: channels[2], Alpha: alpha}, true
}

func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil || a > 1 {
		return 0, false
	}
	return a, true
}
