// Package color provides the 8-bit color type used by the framebuffer.
package color

import "image/color"

// RGBA8 is a color with four independent 8-bit channels. Alpha is straight
// (not premultiplied) and is used as the blend weight of the color.
type RGBA8 struct {
	R, G, B, A uint8
}

// Opaque returns c with alpha set to 255.
func (c RGBA8) Opaque() RGBA8 {
	c.A = 0xFF
	return c
}

// WithAlpha returns c with alpha replaced by a.
func (c RGBA8) WithAlpha(a uint8) RGBA8 {
	c.A = a
	return c
}

// Packed returns the color as a little-endian framebuffer word with the
// alpha byte forced to 0xFF.
func (c RGBA8) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | 0xFF<<24
}

// NRGBA converts c to the standard library color type.
func (c RGBA8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to RGBA8, un-premultiplying it.
func FromColor(c color.Color) RGBA8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the leading '#'
// is optional). It returns false for any other input.
func ParseHex(s string) (RGBA8, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	a := uint8(0xFF)
	ok := true

	switch len(s) {
	case 3, 4:
		r = parseHex(s[0:1], &ok) * 17
		g = parseHex(s[1:2], &ok) * 17
		b = parseHex(s[2:3], &ok) * 17
		if len(s) == 4 {
			a = parseHex(s[3:4], &ok) * 17
		}
	case 6, 8:
		r = parseHex(s[0:2], &ok)
		g = parseHex(s[2:4], &ok)
		b = parseHex(s[4:6], &ok)
		if len(s) == 8 {
			a = parseHex(s[6:8], &ok)
		}
	default:
		return RGBA8{}, false
	}
	if !ok {
		return RGBA8{}, false
	}
	return RGBA8{R: r, G: g, B: b, A: a}, true
}

func parseHex(s string, ok *bool) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case '0' <= c && c <= '9':
			v |= c - '0'
		case 'a' <= c && c <= 'f':
			v |= c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v |= c - 'A' + 10
		default:
			*ok = false
		}
	}
	return v
}
