package md2site

import (
	"fmt"
	"strings"
)

// namedColors is the fixed set of accepted CSS color names.
var namedColors = map[string]bool{
	"red": true, "orange": true, "yellow": true, "green": true, "blue": true,
	"purple": true, "pink": true, "brown": true, "black": true, "white": true,
	"gray": true, "grey": true, "cyan": true, "magenta": true, "lime": true,
	"navy": true, "teal": true, "maroon": true, "olive": true, "silver": true,
	"aqua": true, "fuchsia": true, "indigo": true, "violet": true, "gold": true,
	"coral": true, "salmon": true, "crimson": true, "tomato": true,
}

// ValidateColor checks that color is either a hex token ("#" followed by
// 3, 4, 6, or 8 hex digits) or a case-insensitive match against the fixed
// named-color set. It validates only; the token is never normalized or
// mutated. Anything else fails with one of the color sentinel errors
// wrapped around the offending token.
func ValidateColor(color string) error {
	if hex, ok := strings.CutPrefix(color, "#"); ok {
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidColorLength, color)
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return fmt.Errorf("%w: %q", ErrInvalidColorDigit, color)
			}
		}
		return nil
	}

	if !namedColors[strings.ToLower(color)] {
		return fmt.Errorf("%w: %q (use hex codes like #ff0000 or names like red, blue)", ErrUnknownColorName, color)
	}
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
