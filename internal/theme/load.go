package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/leonardotrapani/themetokens/internal/color"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported theme format")

// Format is the encoding of a theme file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s (use .toml, .yaml, .yml or .json)", ErrUnsupportedFormat, path)
	}
}

// Load reads a theme file. Group and key order follow the file.
func Load(path string) (*Theme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme file %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return t, nil
}

// Decode reads a theme in the given format.
func Decode(r io.Reader, format Format) (*Theme, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(r)
	case FormatYAML, FormatJSON:
		// JSON documents are valid YAML and the node API keeps key order.
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

type tomlTheme struct {
	Logo   *Logo                     `toml:"logo"`
	Colors map[string]map[string]any `toml:"colors"`
}

func decodeTOML(r io.Reader) (*Theme, error) {
	var raw tomlTheme
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}

	t := &Theme{Logo: raw.Logo}
	if !meta.IsDefined("colors") {
		return t, nil
	}

	t.Colors = []Group{}
	groupIndex := make(map[string]int)
	seen := make(map[string]bool)

	// Keys come back in the order they were defined.
	for _, key := range meta.Keys() {
		if len(key) < 2 || key[0] != "colors" {
			continue
		}

		name := key[1]
		idx, ok := groupIndex[name]
		if !ok {
			idx = len(t.Colors)
			groupIndex[name] = idx
			t.Colors = append(t.Colors, Group{Name: name})
		}

		if len(key) < 3 {
			continue
		}
		entryKey := name + "." + key[2]
		if seen[entryKey] {
			continue
		}
		seen[entryKey] = true

		value, err := rawFromTOML(raw.Colors[name][key[2]])
		if err != nil {
			return nil, fmt.Errorf("colors.%s.%s: %w", name, key[2], err)
		}
		t.Colors[idx].Entries = append(t.Colors[idx].Entries, Entry{Key: key[2], Value: value})
	}

	return t, nil
}

func rawFromTOML(v any) (color.Raw, error) {
	switch v := v.(type) {
	case string:
		return color.Text(v), nil
	case map[string]any:
		var in hslInput
		for field, dst := range map[string]**float64{
			"hue":        &in.Hue,
			"saturation": &in.Saturation,
			"lightness":  &in.Lightness,
			"alpha":      &in.Alpha,
		} {
			a, ok := v[field]
			if !ok {
				continue
			}
			f, err := toFloat(a)
			if err != nil {
				return color.Raw{}, fmt.Errorf("%s: %w", field, err)
			}
			*dst = &f
		}
		return in.raw()
	default:
		return color.Raw{}, fmt.Errorf("expected a color string or an hsl table, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

type hslInput struct {
	Hue        *float64 `yaml:"hue"`
	Saturation *float64 `yaml:"saturation"`
	Lightness  *float64 `yaml:"lightness"`
	Alpha      *float64 `yaml:"alpha"`
}

// raw requires every channel except alpha, which defaults to 1.
func (in hslInput) raw() (color.Raw, error) {
	switch {
	case in.Hue == nil:
		return color.Raw{}, errors.New("hue: missing value")
	case in.Saturation == nil:
		return color.Raw{}, errors.New("saturation: missing value")
	case in.Lightness == nil:
		return color.Raw{}, errors.New("lightness: missing value")
	}

	alpha := 1.0
	if in.Alpha != nil {
		alpha = *in.Alpha
	}
	return color.Parsed(color.HSL{
		Hue:        *in.Hue,
		Saturation: *in.Saturation,
		Lightness:  *in.Lightness,
		Alpha:      alpha,
	}), nil
}

func decodeYAML(r io.Reader) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Theme{}, nil
		}
		return nil, err
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: theme must be a mapping", root.Line)
	}

	t := &Theme{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, resolve(root.Content[i+1])
		switch key {
		case "logo":
			if isNull(value) {
				continue
			}
			var logo Logo
			if err := value.Decode(&logo); err != nil {
				return nil, fmt.Errorf("logo: %w", err)
			}
			t.Logo = &logo
		case "colors":
			if isNull(value) {
				continue
			}
			groups, err := groupsFromYAML(value)
			if err != nil {
				return nil, err
			}
			t.Colors = groups
		}
	}
	return t, nil
}

func groupsFromYAML(n *yaml.Node) ([]Group, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: colors must be a mapping", n.Line)
	}

	groups := []Group{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, body := n.Content[i].Value, resolve(n.Content[i+1])
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: colors.%s must be a mapping", body.Line, name)
		}

		g := Group{Name: name}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, value := body.Content[j].Value, resolve(body.Content[j+1])
			raw, err := rawFromYAML(value)
			if err != nil {
				return nil, fmt.Errorf("colors.%s.%s: %w", name, key, err)
			}
			g.Entries = append(g.Entries, Entry{Key: key, Value: raw})
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func rawFromYAML(n *yaml.Node) (color.Raw, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return color.Raw{}, fmt.Errorf("line %d: missing color value", n.Line)
		}
		return color.Text(n.Value), nil
	case yaml.MappingNode:
		var in hslInput
		if err := n.Decode(&in); err != nil {
			return color.Raw{}, err
		}
		raw, err := in.raw()
		if err != nil {
			return color.Raw{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return raw, nil
	default:
		return color.Raw{}, fmt.Errorf("line %d: expected a color string or an hsl mapping", n.Line)
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
