package util

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/drawtx/drawable"
)

// ParseColour reads "#rrggbb" or "#rrggbbaa". Colours without an alpha pair
// are fully opaque.
func ParseColour(s string) (drawable.Colour, error) {
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return drawable.Colour{}, fmt.Errorf("colour %q: bad alpha: %w", s, err)
		}
		alpha = float64(a) / 255.0
		s = s[:7]
	default:
		return drawable.Colour{}, fmt.Errorf("colour %q: expected #rrggbb or #rrggbbaa", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return drawable.Colour{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return drawable.Colour{Color: c, A: alpha}, nil
}

// FormatColour is the inverse of ParseColour, always including alpha.
func FormatColour(c drawable.Colour) string {
	a := int(c.A*255.0 + 0.5)
	if a < 0 {
		a = 0
	} else if a > 255 {
		a = 255
	}
	return fmt.Sprintf("%s%02x", c.Clamped().Hex(), a)
}
