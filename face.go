package fbtext

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a Font to the golang.org/x/image/font.Face interface, so fFNT
// fonts can be drawn onto any image.Image with font.Drawer. Glyph masks are
// views into the font blob. Control codepoints have no glyphs here; icons
// are drawn only by Context.
type Face struct {
	f *Font
}

var _ font.Face = (*Face)(nil)

// NewFace returns a font.Face for f.
func NewFace(f *Font) *Face {
	return &Face{f: f}
}

// Close implements font.Face. It does nothing.
func (*Face) Close() error { return nil }

// Glyph implements font.Face.
func (fc *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := lookup(fc.f, r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round() + g.BearingX
	y := dot.Y.Round() + g.BearingY
	dr = image.Rect(x, y, x+g.Width, y+g.Height)
	mask = &image.Alpha{
		Pix:    g.Coverage,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
	return dr, mask, image.Point{}, fixed.I(g.Advance), true
}

// GlyphBounds implements font.Face.
func (fc *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := lookup(fc.f, r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(g.BearingX, g.BearingY, g.BearingX+g.Width, g.BearingY+g.Height)
	return bounds, fixed.I(g.Advance), true
}

// GlyphAdvance implements font.Face.
func (fc *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := lookup(fc.f, r)
	if !ok {
		return 0, false
	}
	return fixed.I(g.Advance), true
}

// Kern implements font.Face. fFNT fonts carry no kerning.
func (*Face) Kern(_, _ rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (fc *Face) Metrics() font.Metrics {
	lh, base := fc.f.LineHeight(), fc.f.Baseline()
	return font.Metrics{
		Height:    fixed.I(lh),
		Ascent:    fixed.I(base),
		Descent:   fixed.I(lh - base),
		CapHeight: fixed.I(base),
		XHeight:   fixed.I(base / 2),
	}
}
