package misc

import (
	"image/color"
	"strconv"
	"strings"
)

// HexColor converts a hex color string like "#4B0082" or "#4B0082FF" to NRGBA.
// Invalid input yields the zero color.
func HexColor(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}
	}

	c := color.NRGBA{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
