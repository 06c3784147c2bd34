package fbtext

import (
	"github.com/ffnt/fbtext/ffnt"
	"github.com/ffnt/fbtext/internal/blend"
	"github.com/ffnt/fbtext/internal/image"
	"github.com/ffnt/fbtext/internal/runes"
)

// Align specifies horizontal text alignment relative to the x coordinate.
type Align uint8

const (
	// AlignLeft draws text starting at x.
	AlignLeft Align = iota
	// AlignCenter centers the text on x.
	AlignCenter
	// AlignRight ends the text at x.
	AlignRight
)

// String returns a string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// fallbackRune is drawn in place of codepoints the font has no glyph for.
const fallbackRune = '?'

// Text handling shared by the draw and measure paths:
//
//   - The baseline sits font.Baseline() pixels below y.
//   - '\n' returns to the starting x one line lower.
//   - Codepoints 0x01 to 0x08 draw the theme's button icons.
//   - Codepoints without a glyph are drawn as '?', or skipped if the font
//     has no '?' either.
//   - Text ends at the first NUL, so fixed-size name buffers can be passed
//     as they are.

// DrawText draws text with its top-left corner at (x, y) and returns the pen
// position after the last codepoint. Glyph coverage is used as the alpha of
// c; the alpha of c itself is ignored.
func (dc *Context) DrawText(f *Font, x, y int, c Color, text string) int {
	return drawText(dc, f, x, y, c, text, 0)
}

// DrawTextBytes is like DrawText for text held in a byte slice.
func (dc *Context) DrawTextBytes(f *Font, x, y int, c Color, text []byte) int {
	return drawText(dc, f, x, y, c, text, 0)
}

// DrawTextTruncate is like DrawText but stops before any codepoint that
// would start maxWidth or more pixels right of x. A newline also stops it.
func (dc *Context) DrawTextTruncate(f *Font, x, y int, c Color, text string, maxWidth int) int {
	return drawText(dc, f, x, y, c, text, maxWidth)
}

// DrawTextAligned draws text aligned on x according to a.
func (dc *Context) DrawTextAligned(f *Font, x, y int, c Color, text string, a Align) int {
	switch a {
	case AlignCenter:
		w, _ := MeasureText(f, text)
		x = int(float32(x) - float32(w)/2)
	case AlignRight:
		w, _ := MeasureText(f, text)
		x -= w
	}
	return drawText(dc, f, x, y, c, text, 0)
}

// MeasureText returns the extent of text as DrawText would lay it out. The
// width is the right-most pen position reached on any line. The height is
// the line height times the number of newlines; a single line measures 0.
func MeasureText(f *Font, text string) (w, h int) {
	return measureText(f, text)
}

// MeasureTextBytes is like MeasureText for text held in a byte slice.
func MeasureTextBytes(f *Font, text []byte) (w, h int) {
	return measureText(f, text)
}

func drawText[T string | []byte](dc *Context, f *Font, x, y int, c Color, text T, maxWidth int) int {
	s := dc.surface()
	y += f.Baseline()
	origX := x

	for len(text) > 0 {
		if maxWidth > 0 && x-origX >= maxWidth {
			break
		}

		cp, n := runes.Next(text)
		text = text[n:]
		if cp == 0 {
			break
		}

		if cp == '\n' {
			if maxWidth > 0 {
				break
			}
			x = origX
			y += f.LineHeight()
			continue
		}

		if icon, ok := iconForRune(cp); ok {
			if pix := dc.rc.icon(icon); pix != nil {
				image.Blit(s, x, y-iconRise, IconSize, IconSize, pix, IconFormat)
			}
			x += IconSize
			continue
		}

		g, ok := lookup(f, cp)
		if !ok {
			continue
		}
		drawGlyph(s, x, y, c, g)
		x += g.Advance
	}
	return x
}

func measureText[T string | []byte](f *Font, text T) (w, h int) {
	x := 0
	for len(text) > 0 {
		cp, n := runes.Next(text)
		text = text[n:]
		if cp == 0 {
			break
		}

		if cp == '\n' {
			x = 0
			h += f.LineHeight()
			continue
		}

		if _, ok := iconForRune(cp); ok {
			x += IconSize
		} else {
			g, ok := lookup(f, cp)
			if !ok {
				continue
			}
			x += g.Advance
		}
		w = max(w, x)
	}
	return w, h
}

// lookup resolves cp, falling back to '?'.
func lookup(f *Font, cp rune) (ffnt.Glyph, bool) {
	if g, ok := f.Glyph(cp); ok {
		return g, true
	}
	return f.Glyph(fallbackRune)
}

// drawGlyph blends the coverage bitmap of g with its origin at the pen
// position (x, y).
func drawGlyph(s *blend.Surface, x, y int, c Color, g ffnt.Glyph) {
	x += g.BearingX
	y += g.BearingY
	if g.Width == 0 {
		return
	}
	for j := range g.Height {
		row := g.Coverage[j*g.Width : (j+1)*g.Width]
		for i, a := range row {
			if a == 0 {
				continue
			}
			c.A = a
			s.Pixel(x+i, y+j, c)
		}
	}
}
