// Package validation holds value checks shared by config and theme code.
package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is a #rgb or #rrggbb color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color and returns one message per
// invalid entry, ordered by name. prefix is prepended to each key.
func ValidatePaletteHex(prefix string, colors map[string]string) []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []string
	for _, name := range names {
		if !IsHexColor(colors[name]) {
			errs = append(errs, fmt.Sprintf("%s must be a hex color like #rrggbb (got %q)",
				strings.TrimPrefix(prefix+"."+name, "."), colors[name]))
		}
	}
	return errs
}
