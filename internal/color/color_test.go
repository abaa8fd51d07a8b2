package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input Raw
		want  HSL
		ok    bool
	}{
		{name: "short hex", input: Text("#fff"), want: HSL{Hue: 0, Saturation: 0, Lightness: 100, Alpha: 1}, ok: true},
		{name: "long hex", input: Text("#FF0000"), want: HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1}, ok: true},
		{name: "hex with alpha", input: Text("#ff000080"), want: HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 128.0 / 255}, ok: true},
		{name: "short hex with alpha", input: Text("#f00f"), want: HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1}, ok: true},
		{name: "rgb", input: Text("rgb(255, 0, 0)"), want: HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1}, ok: true},
		{name: "rgba", input: Text("rgba(0,0,0,0.25)"), want: HSL{Alpha: 0.25}, ok: true},
		{name: "hsla", input: Text("hsla(120, 50%, 25%, 0.5)"), want: HSL{Hue: 120, Saturation: 50, Lightness: 25, Alpha: 0.5}, ok: true},
		{name: "hsl wraps hue", input: Text("hsl(480, 10%, 10%)"), want: HSL{Hue: 120, Saturation: 10, Lightness: 10, Alpha: 1}, ok: true},
		{name: "already parsed", input: Parsed(HSL{Hue: 10, Saturation: 20, Lightness: 30, Alpha: 0.4}), want: HSL{Hue: 10, Saturation: 20, Lightness: 30, Alpha: 0.4}, ok: true},
		{name: "css variable", input: Text("var(--top-bar)"), ok: false},
		{name: "keyword", input: Text("red"), ok: false},
		{name: "bad hex length", input: Text("#12345"), ok: false},
		{name: "bad hex digits", input: Text("#ggg"), ok: false},
		{name: "trailing non-hex digit", input: Text("#12345g"), ok: false},
		{name: "non-hex alpha", input: Text("#1234567z"), ok: false},
		{name: "bare hash", input: Text("#"), ok: false},
		{name: "rgb out of range", input: Text("rgb(300, 0, 0)"), ok: false},
		{name: "hsl saturation out of range", input: Text("hsl(0, 150%, 50%)"), ok: false},
		{name: "empty", input: Text(""), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.InDelta(t, tt.want.Hue, got.Hue, 0.01)
			assert.InDelta(t, tt.want.Saturation, got.Saturation, 0.01)
			assert.InDelta(t, tt.want.Lightness, got.Lightness, 0.01)
			assert.InDelta(t, tt.want.Alpha, got.Alpha, 0.01)
		})
	}
}

func TestParse_IndigoChannels(t *testing.T) {
	got, ok := Parse(Text("#3f51b5"))
	require.True(t, ok)
	assert.InDelta(t, 230.85, got.Hue, 0.01)
	assert.InDelta(t, 48.36, got.Saturation, 0.01)
	assert.InDelta(t, 47.84, got.Lightness, 0.01)
	assert.Equal(t, RGB{Red: 63, Green: 81, Blue: 181}, got.RGB())
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want bool
	}{
		{"white", RGB{255, 255, 255}, true},
		{"black", RGB{0, 0, 0}, false},
		{"red", RGB{255, 0, 0}, false},
		{"yellow", RGB{255, 235, 59}, true},
		{"indigo", RGB{63, 81, 181}, false},
		{"threshold is exclusive", RGB{125, 125, 125}, false},
		{"just above threshold", RGB{126, 126, 126}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLight(tt.rgb))
		})
	}
}

func TestClassify(t *testing.T) {
	white, _ := Parse(Text("#ffffff"))
	indigo, _ := Parse(Text("#3f51b5"))

	assert.Equal(t, Light, Classify(white))
	assert.Equal(t, Dark, Classify(indigo))
}

func TestLighten(t *testing.T) {
	base := HSL{Hue: 200, Saturation: 40, Lightness: 50, Alpha: 0.8}

	t.Run("light parameters", func(t *testing.T) {
		got := Lighten(base, 7, -10)
		assert.Equal(t, HSL{Hue: 200, Saturation: 30, Lightness: 57, Alpha: 0.8}, got)
	})

	t.Run("dark parameters", func(t *testing.T) {
		got := Lighten(base, 15, 15)
		assert.Equal(t, HSL{Hue: 200, Saturation: 55, Lightness: 65, Alpha: 0.8}, got)
	})

	t.Run("clamps upper bound", func(t *testing.T) {
		got := Lighten(HSL{Saturation: 95, Lightness: 90, Alpha: 1}, 15, 15)
		assert.Equal(t, 100.0, got.Saturation)
		assert.Equal(t, 100.0, got.Lightness)
	})

	t.Run("clamps lower bound", func(t *testing.T) {
		got := Lighten(HSL{Saturation: 5, Lightness: 90, Alpha: 1}, 7, -10)
		assert.Equal(t, 0.0, got.Saturation)
		assert.Equal(t, 97.0, got.Lightness)
	})
}

func TestHSL_String(t *testing.T) {
	assert.Equal(t, "hsla(0, 100%, 65%, 1)", HSL{Hue: 0, Saturation: 100, Lightness: 65, Alpha: 1}.String())
	assert.Equal(t, "hsla(230.85, 63.36%, 62.84%, 0.5)", HSL{Hue: 230.8474, Saturation: 63.3607, Lightness: 62.8431, Alpha: 0.5}.String())
}

func TestHSL_Hex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1}.Hex())
	assert.Equal(t, "#ffffff", HSL{Lightness: 100, Alpha: 1}.Hex())
}

func TestRaw_String(t *testing.T) {
	assert.Equal(t, "var(--x)", Text("var(--x)").String())
	assert.False(t, Text("#000").IsParsed())

	parsed := Parsed(HSL{Hue: 10, Saturation: 20, Lightness: 30, Alpha: 1})
	assert.True(t, parsed.IsParsed())
	assert.Equal(t, "hsla(10, 20%, 30%, 1)", parsed.String())
}
