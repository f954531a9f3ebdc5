// Package color converts between the color notations accepted by tint markup
// (HEX strings, RGB triples, palette names) and adjusts color lightness.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color values that cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// String returns the canonical hex form.
func (c RGB) String() string {
	return RGBToHex(c)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// IsValidRGB reports whether every channel lies in 0..255.
func IsValidRGB(r, g, b int) bool {
	return validChannel(r) && validChannel(g) && validChannel(b)
}

func validChannel(v int) bool {
	return v >= 0 && v <= 255
}

// trimHexPrefix strips an optional "#" or "0x" prefix.
func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "#") {
		return s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// IsValidHex reports whether s is a 3- or 6-digit hex color with an optional
// "#" or "0x" prefix.
func IsValidHex(s string) bool {
	digits := trimHexPrefix(strings.TrimSpace(s))
	return (len(digits) == 3 || len(digits) == 6) && isHexDigits(digits)
}

// HexToRGB parses a 3- or 6-digit hex color. The 3-digit form doubles each
// digit ("F08" is "FF0088").
func HexToRGB(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidColor, s)
	}
	digits := trimHexPrefix(strings.TrimSpace(s))
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return fromColorful(c), nil
}

// RGBToHex formats c as "#RRGGBB".
func RGBToHex(c RGB) string {
	return strings.ToUpper(c.colorful().Hex())
}

// AdjustLightness shifts the HSL lightness of c by delta (a fraction, so 0.2
// is twenty percent). The result lightness is clamped to [0,1].
func AdjustLightness(c RGB, delta float64) RGB {
	h, s, l := c.colorful().Hsl()
	l = math.Max(0, math.Min(1, l+delta))
	return fromColorful(colorful.Hsl(h, s, l))
}

// ParseValue parses a caller supplied color: a palette name, a hex color, or
// an RGB triple written as "rgb(r, g, b)", "rgba(r, g, b, a)", "(r, g, b)" or
// "r, g, b[, a]". An alpha component is validated and then ignored.
func ParseValue(s string) (RGB, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return RGB{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if c, ok := Lookup(v); ok {
		return c, nil
	}
	if IsValidHex(v) {
		return HexToRGB(v)
	}
	return parseTriple(v)
}

func parseTriple(s string) (RGB, error) {
	v := strings.ToLower(s)
	v = strings.TrimPrefix(v, "rgba")
	v = strings.TrimPrefix(v, "rgb")
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(strings.TrimPrefix(v, "("), ")")

	parts := strings.Split(v, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		ch[i] = n
	}
	if !IsValidRGB(ch[0], ch[1], ch[2]) {
		return RGB{}, fmt.Errorf("%w: %q: channel out of range", ErrInvalidColor, s)
	}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return RGB{}, fmt.Errorf("%w: %q: alpha must be within 0..1", ErrInvalidColor, s)
		}
	}
	return RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, nil
}
