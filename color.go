package fbtext

import "github.com/ffnt/fbtext/internal/color"

// Color is an 8-bit RGBA color. Alpha is the blend weight used when the
// color is drawn.
type Color = color.RGBA8

// Common colors.
var (
	Black       = Color{A: 0xFF}
	White       = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = Color{}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA creates a color from all four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(s string) Color {
	c, ok := color.ParseHex(s)
	if !ok {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input.
func ParseHex(s string) (Color, bool) {
	return color.ParseHex(s)
}
