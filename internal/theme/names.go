package theme

import "strings"

// Name builds a token name from a group, an optional key and an optional
// suffix: Name("primary", "base", "lighter") is "primary-base-lighter".
func Name(group, key, suffix string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{group, key, suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}
