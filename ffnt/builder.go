package ffnt

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrGlyphTooLarge is returned by SetGlyph for bitmaps wider or taller than
// 255 pixels or metrics outside the int8 range.
var ErrGlyphTooLarge = errors.New("ffnt: glyph does not fit the format")

// GlyphSpec is the input form of a glyph for Builder.
type GlyphSpec struct {
	Width    int
	Height   int
	Advance  int
	BearingX int
	BearingY int
	// Coverage holds Width*Height alpha bytes, row-major.
	Coverage []byte
}

// Builder assembles an fFNT blob from individual glyphs.
type Builder struct {
	lineHeight uint8
	baseline   uint8
	glyphs     map[rune]GlyphSpec
}

// NewBuilder returns a Builder for a font with the given line metrics.
func NewBuilder(lineHeight, baseline uint8) *Builder {
	return &Builder{
		lineHeight: lineHeight,
		baseline:   baseline,
		glyphs:     make(map[rune]GlyphSpec),
	}
}

// SetGlyph stores g for codepoint cp, replacing any previous glyph.
// Coverage is copied.
func (b *Builder) SetGlyph(cp rune, g GlyphSpec) error {
	if cp < 0 || cp > 0x10FFFF {
		return errors.Wrapf(ErrGlyphTooLarge, "codepoint %U", cp)
	}
	if g.Width < 0 || g.Width > 0xFF || g.Height < 0 || g.Height > 0xFF {
		return errors.Wrapf(ErrGlyphTooLarge, "%U bitmap %dx%d", cp, g.Width, g.Height)
	}
	if !fitsInt8(g.Advance) || !fitsInt8(g.BearingX) || !fitsInt8(g.BearingY) {
		return errors.Wrapf(ErrGlyphTooLarge, "%U metrics", cp)
	}
	if len(g.Coverage) < g.Width*g.Height {
		return errors.Errorf("ffnt: %U coverage has %d bytes, want %d", cp, len(g.Coverage), g.Width*g.Height)
	}
	g.Coverage = slices.Clone(g.Coverage[:g.Width*g.Height])
	b.glyphs[cp] = g
	return nil
}

// Len returns the number of glyphs added so far.
func (b *Builder) Len() int { return len(b.glyphs) }

// Bytes encodes the font. Pages without glyphs are written as absent
// entries; the page table ends at the last page holding a glyph.
func (b *Builder) Bytes() []byte {
	cps := make([]rune, 0, len(b.glyphs))
	for cp := range b.glyphs {
		cps = append(cps, cp)
	}
	slices.Sort(cps)

	pageCount := 0
	if len(cps) > 0 {
		pageCount = int(cps[len(cps)-1]>>8) + 1
	}

	out := make([]byte, HeaderSize+pageCount*PageEntrySize)
	copy(out[offMagic:], Magic)
	bo.PutUint32(out[offVersion:], Version)
	bo.PutUint16(out[offPageCount:], uint16(pageCount))
	out[offLineHeight] = b.lineHeight
	out[offBaseline] = b.baseline

	for len(cps) > 0 {
		id := int(cps[0] >> 8)
		n := 1
		for n < len(cps) && int(cps[n]>>8) == id {
			n++
		}
		page := b.encodePage(cps[:n])
		entry := out[HeaderSize+id*PageEntrySize:]
		bo.PutUint32(entry, uint32(len(page)))
		bo.PutUint32(entry[4:], uint32(len(out)))
		out = append(out, page...)
		cps = cps[n:]
	}
	return out
}

func (b *Builder) encodePage(cps []rune) []byte {
	page := make([]byte, PageHeaderSize)
	for i := range GlyphsPerPage {
		bo.PutUint32(page[offPos+4*i:], NoGlyph)
	}
	for _, cp := range cps {
		g := b.glyphs[cp]
		i := int(cp & 0xFF)
		if len(page)-PageHeaderSize == NoGlyph {
			page = append(page, 0)
		}
		bo.PutUint32(page[offPos+4*i:], uint32(len(page)-PageHeaderSize))
		page[offWidth+i] = uint8(g.Width)
		page[offHeight+i] = uint8(g.Height)
		page[offAdvance+i] = byte(int8(g.Advance))
		page[offBearingX+i] = byte(int8(g.BearingX))
		page[offBearingY+i] = byte(int8(g.BearingY))
		page = append(page, g.Coverage...)
	}
	return page
}

func fitsInt8(v int) bool {
	return v >= -128 && v <= 127
}
