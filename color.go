package calgrid

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack  = Color{ARGB: "FF000000"}
	ColorWhite  = Color{ARGB: "FFFFFFFF"}
	ColorGray50 = Color{ARGB: "FF808080"}
	ColorGray70 = Color{ARGB: "FFB3B3B3"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 {
	return parseHexByte(c.ARGB, 2)
}

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 {
	return parseHexByte(c.ARGB, 4)
}

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 {
	return parseHexByte(c.ARGB, 6)
}

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 {
	return parseHexByte(c.ARGB, 0)
}

// Shade returns the color with delta added to each RGB channel, clamped to
// [0, 255]. Negative deltas darken; the alpha channel is preserved.
func (c Color) Shade(delta int) Color {
	shift := func(v uint8) int {
		n := int(v) + delta
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return Color{ARGB: fmt.Sprintf("%02X%02X%02X%02X",
		c.GetAlpha(), shift(c.GetRed()), shift(c.GetGreen()), shift(c.GetBlue()))}
}

// RGBA converts the color to the standard library representation.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

// CSS returns the color as a #RRGGBB string for SVG styling.
func (c Color) CSS() string {
	if len(c.ARGB) != 8 {
		return "#000000"
	}
	return "#" + c.ARGB[2:]
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}
