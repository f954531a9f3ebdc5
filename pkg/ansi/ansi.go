// Package ansi holds the SGR escape sequence builders and the static table of
// markup keys understood by the markup compiler.
package ansi

import (
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Escape sequence building blocks.
const (
	Char  = "\x1b"
	Start = "["
	Sep   = ";"
	End   = "m"

	// CSI is the control sequence introducer every SGR sequence starts with.
	CSI = Char + Start

	// Reset clears every attribute and color. Unlike a bare "\x1b[m" it
	// spells out the 0 parameter.
	Reset = CSI + "0" + End
)

// Seq renders an SGR sequence for the given parameter codes, e.g. Seq(1) == "\x1b[1m".
func Seq(codes ...int) string {
	return xansi.SGR(codes...)
}

// FgRGB renders a 24-bit foreground color sequence.
func FgRGB(r, g, b uint8) string {
	return Seq(xansi.ExtendedForegroundColorAttr, 2, int(r), int(g), int(b))
}

// BgRGB renders a 24-bit background color sequence.
func BgRGB(r, g, b uint8) string {
	return Seq(xansi.ExtendedBackgroundColorAttr, 2, int(r), int(g), int(b))
}

// IsSGR reports whether s is a single well-formed SGR sequence.
func IsSGR(s string) bool {
	if !strings.HasPrefix(s, CSI) || !strings.HasSuffix(s, End) || len(s) <= len(CSI)+len(End) {
		return false
	}
	body := s[len(CSI) : len(s)-len(End)]
	for _, part := range strings.Split(body, Sep) {
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}
	return true
}
