package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonardotrapani/themetokens/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryKeys(g Group) []string {
	keys := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func groupNames(t *Theme) []string {
	names := make([]string, 0, len(t.Colors))
	for _, g := range t.Colors {
		names = append(names, g.Name)
	}
	return names
}

func TestDecode_TOMLKeepsOrder(t *testing.T) {
	input := `
[logo]
top_bar_source = "https://cdn.example.com/logo.svg"
url = "https://example.com"
accessibility_label = "Example"
width = 124

[colors.topBar]
color = "#000"
background = "#fff"

[colors.primary]
zeta = "#3f51b5"
alpha = { hue = 10, saturation = 20.5, lightness = 30 }
`
	th, err := Decode(strings.NewReader(input), FormatTOML)
	require.NoError(t, err)

	require.NotNil(t, th.Logo)
	assert.Equal(t, Logo{
		TopBarSource:       "https://cdn.example.com/logo.svg",
		URL:                "https://example.com",
		AccessibilityLabel: "Example",
		Width:              124,
	}, *th.Logo)

	assert.Equal(t, []string{"topBar", "primary"}, groupNames(th))
	assert.Equal(t, []string{"color", "background"}, entryKeys(th.Colors[0]))
	assert.Equal(t, []string{"zeta", "alpha"}, entryKeys(th.Colors[1]))

	assert.Equal(t, color.Text("#000"), th.Colors[0].Entries[0].Value)
	assert.Equal(t, color.Parsed(color.HSL{Hue: 10, Saturation: 20.5, Lightness: 30, Alpha: 1}), th.Colors[1].Entries[1].Value)
}

func TestDecode_TOMLWithoutColors(t *testing.T) {
	th, err := Decode(strings.NewReader("[logo]\nurl = \"x\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Nil(t, th.Colors)
	require.NotNil(t, th.Logo)
}

func TestDecode_TOMLEmptyColors(t *testing.T) {
	th, err := Decode(strings.NewReader("[colors]\n"), FormatTOML)
	require.NoError(t, err)
	assert.NotNil(t, th.Colors)
	assert.Empty(t, th.Colors)
}

func TestDecode_TOMLInvalidValue(t *testing.T) {
	_, err := Decode(strings.NewReader("[colors.primary]\nbase = 12\n"), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colors.primary.base")
}

func TestDecode_TOMLMissingChannel(t *testing.T) {
	_, err := Decode(strings.NewReader("[colors.primary]\nbase = { hue = 10, lightness = 30 }\n"), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saturation: missing value")
}

func TestDecode_TOMLSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("[colors.primary\n"), FormatTOML)
	require.Error(t, err)
}

func TestDecode_YAMLKeepsOrder(t *testing.T) {
	input := `
colors:
  surface:
    raised: "#fafafa"
    base: "#ffffff"
  primary:
    base:
      hue: 230
      saturation: 48
      lightness: 47
      alpha: 0.5
logo:
  url: https://example.com
  width: 80
`
	th, err := Decode(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"surface", "primary"}, groupNames(th))
	assert.Equal(t, []string{"raised", "base"}, entryKeys(th.Colors[0]))
	assert.Equal(t, color.Parsed(color.HSL{Hue: 230, Saturation: 48, Lightness: 47, Alpha: 0.5}), th.Colors[1].Entries[0].Value)
	require.NotNil(t, th.Logo)
	assert.Equal(t, 80, th.Logo.Width)
}

func TestDecode_JSON(t *testing.T) {
	input := `{"colors": {"topBar": {"background": "#fff", "color": "#000"}}}`
	th, err := Decode(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	tokens, ok := NewDeriver(Options{NeedsVariant: DefaultNeedsVariant}).Derive(th)
	require.True(t, ok)
	assert.Equal(t, []Token{
		{Name: "topBar-background", Value: "#fff"},
		{Name: "topBar-color", Value: "#000"},
	}, tokens)
}

func TestDecode_YAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"root is a list", "- a\n- b\n"},
		{"colors is a list", "colors:\n  - a\n"},
		{"group is a scalar", "colors:\n  primary: \"#fff\"\n"},
		{"unquoted hex becomes a comment", "colors:\n  primary:\n    base: #fff\n"},
		{"value is a list", "colors:\n  primary:\n    base: [1, 2]\n"},
		{"hsl mapping without lightness", "colors:\n  primary:\n    base: {hue: 10, saturation: 20}\n"},
		{"json hsl object without hue", `{"colors": {"primary": {"base": {"saturation": 20, "lightness": 30}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	th, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, th.Colors)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"theme.toml", FormatTOML},
		{"theme.YAML", FormatYAML},
		{"theme.yml", FormatYAML},
		{"theme.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatFromPath("theme.css")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "theme.toml")
		require.NoError(t, os.WriteFile(path, []byte("[colors.primary]\nbase = \"#3f51b5\"\n"), 0644))

		th, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"primary"}, groupNames(th))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "theme.txt"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
