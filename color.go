package pixelcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for values that are neither a
// hex color nor a known color name.
var ErrInvalidColor = errors.New("pixelcanvas: invalid color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
// Returns alpha-premultiplied values in [0, 0xffff].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(to8(c.A)) * 0x101
	r = uint32(to8(c.R*c.A)) * 0x101
	g = uint32(to8(c.G*c.A)) * 0x101
	b = uint32(to8(c.B*c.A)) * 0x101
	return r, g, b, a
}

// Color converts RGBA to the standard color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fromNRGBA(n)
}

func fromNRGBA(n color.NRGBA) RGBA {
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black; use ParseColor when the
// caller needs to know.
func Hex(hex string) RGBA {
	c, err := parseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a hex color ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA")
// or an SVG 1.1 color name such as "cornflowerblue". Names are matched
// case-insensitively.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("pixelcanvas: empty color: %w", ErrInvalidColor)
	}
	if s[0] == '#' {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}
	return parseHex(s)
}

// Hex returns the canonical upper-case "#RRGGBB" form of c, with an "AA"
// suffix when c is not fully opaque.
func (c RGBA) Hex() string {
	n := c.Color()
	if n.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return c.Hex()
}

func parseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("pixelcanvas: %q: %w", s, ErrInvalidColor)
		}
		digits[i] = d
	}

	n := color.NRGBA{A: 0xff}
	switch len(hex) {
	case 3: // RGB
		n.R, n.G, n.B = digits[0]*17, digits[1]*17, digits[2]*17
	case 4: // RGBA
		n.R, n.G, n.B, n.A = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6: // RRGGBB
		n.R = digits[0]<<4 | digits[1]
		n.G = digits[2]<<4 | digits[3]
		n.B = digits[4]<<4 | digits[5]
	case 8: // RRGGBBAA
		n.R = digits[0]<<4 | digits[1]
		n.G = digits[2]<<4 | digits[3]
		n.B = digits[4]<<4 | digits[5]
		n.A = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("pixelcanvas: %q: %w", s, ErrInvalidColor)
	}
	return fromNRGBA(n), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Over composites c over dst (source-over, straight alpha).
func (c RGBA) Over(dst RGBA) RGBA {
	a := c.A + dst.A*(1-c.A)
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: (c.R*c.A + dst.R*dst.A*(1-c.A)) / a,
		G: (c.G*c.A + dst.G*dst.A*(1-c.A)) / a,
		B: (c.B*c.A + dst.B*dst.A*(1-c.A)) / a,
		A: a,
	}
}

// to8 maps a [0, 1] component to [0, 255], clamping and rounding.
func to8(x float64) uint8 {
	x *= 255
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(math.Round(x))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
