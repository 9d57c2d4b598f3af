package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB" into an opaque colour. Malformed input yields
// opaque black.
func ParseHex(hex string) color.RGBA {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Foreground wraps s in a 24-bit ANSI foreground colour sequence.
func Foreground(hex, s string) string {
	c := ParseHex(hex)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, s)
}
