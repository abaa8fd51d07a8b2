package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonardotrapani/themetokens/internal/theme"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSS, FormatSCSS, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be css, scss, or json)", ErrUnknownFormat, s)
	}
}

type Options struct {
	Format   Format
	Selector string // css only
	Prefix   string // css custom property prefix, usually "--"
}

// Write renders tokens in order. Duplicate names are written as they come,
// so the last one wins in the stylesheet.
func Write(w io.Writer, tokens []theme.Token, opts Options) error {
	switch opts.Format {
	case FormatCSS:
		return writeCSS(w, tokens, opts)
	case FormatSCSS:
		return writeSCSS(w, tokens)
	case FormatJSON:
		return writeJSON(w, tokens)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

func writeCSS(w io.Writer, tokens []theme.Token, opts Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s {\n", opts.Selector)
	for _, t := range tokens {
		fmt.Fprintf(bw, "  %s%s: %s;\n", opts.Prefix, t.Name, t.Value)
	}
	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}

func writeSCSS(w io.Writer, tokens []theme.Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		fmt.Fprintf(bw, "$%s: %s;\n", t.Name, t.Value)
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, tokens []theme.Token) error {
	pairs := make([][2]string, 0, len(tokens))
	for _, t := range tokens {
		pairs = append(pairs, [2]string{t.Name, t.Value})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(pairs)
}
