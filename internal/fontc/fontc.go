// Package fontc compiles TrueType and OpenType fonts into fFNT bitmap
// fonts.
//
// Glyphs are rasterized at a fixed pixel size with golang.org/x/image's
// font.Drawer; the coverage bytes of each glyph's alpha mask become its
// fFNT bitmap. Codepoints are taken from a Unicode range table and only
// compiled when the source font maps them to a glyph.
package fontc

import (
	"bytes"
	"image"
	"unicode"

	gotext "github.com/go-text/typesetting/font"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/rangetable"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/ffnt"
)

// Errors returned by Compile.
var (
	ErrNotFont     = errors.New("fontc: input is not a font file")
	ErrMetrics     = errors.New("fontc: line metrics do not fit the format")
	ErrInvalidSize = errors.New("fontc: size must be positive")
)

// DefaultFont is compiled when no input font is given.
var DefaultFont = goregular.TTF

// DefaultCharset covers printable ASCII, Latin-1, Latin Extended-A, Greek,
// Cyrillic and common typographic punctuation.
var DefaultCharset = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0020, Hi: 0x007E, Stride: 1},
		{Lo: 0x00A0, Hi: 0x017F, Stride: 1},
		{Lo: 0x2010, Hi: 0x2027, Stride: 1},
		{Lo: 0x20AC, Hi: 0x20AC, Stride: 1},
	}},
	unicode.Greek,
	unicode.Cyrillic,
)

// Options control compilation.
type Options struct {
	// Size is the pixel size glyphs are rasterized at.
	Size float64

	// Charset selects the codepoints to compile. Nil means DefaultCharset.
	Charset *unicode.RangeTable

	// Hinting selects outline hinting. The zero value disables it.
	Hinting font.Hinting
}

// Stats describes a compiled font.
type Stats struct {
	Glyphs     int
	Skipped    int
	LineHeight int
	Baseline   int
}

// Compile rasterizes the font in data into an fFNT blob.
//
// Codepoints the font has no glyph for are left out, so text drawn with the
// result falls back to '?' for them. Glyphs whose bitmap or metrics do not
// fit the format are skipped and counted in Stats.Skipped.
func Compile(data []byte, opts Options) ([]byte, Stats, error) {
	var st Stats
	if opts.Size <= 0 {
		return nil, st, errors.Wrapf(ErrInvalidSize, "size %v", opts.Size)
	}
	if !filetype.IsFont(data) {
		return nil, st, ErrNotFont
	}
	charset := opts.Charset
	if charset == nil {
		charset = DefaultCharset
	}

	cmap, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, st, errors.Wrap(err, "fontc: parse cmap")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, st, errors.Wrap(err, "fontc: parse outlines")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: opts.Hinting,
	})
	if err != nil {
		return nil, st, errors.Wrap(err, "fontc: face")
	}
	defer func() {
		_ = face.Close()
	}()

	m := face.Metrics()
	st.LineHeight = m.Height.Ceil()
	st.Baseline = m.Ascent.Ceil()
	if st.LineHeight <= 0 || st.LineHeight > 0xFF || st.Baseline < 0 || st.Baseline > 0xFF {
		return nil, st, errors.Wrapf(ErrMetrics, "line height %d, baseline %d", st.LineHeight, st.Baseline)
	}

	b := ffnt.NewBuilder(uint8(st.LineHeight), uint8(st.Baseline))
	rangetable.Visit(charset, func(r rune) {
		if _, ok := cmap.NominalGlyph(r); !ok {
			return
		}
		g, ok := rasterize(face, r)
		if !ok {
			st.Skipped++
			return
		}
		if err := b.SetGlyph(r, g); err != nil {
			fbtext.Logger().Debug("glyph skipped", "rune", r, "err", err)
			st.Skipped++
			return
		}
		st.Glyphs++
	})

	fbtext.Logger().Debug("font compiled",
		"size", opts.Size,
		"glyphs", st.Glyphs,
		"skipped", st.Skipped,
		"lineHeight", st.LineHeight,
		"baseline", st.Baseline)
	return b.Bytes(), st, nil
}

// rasterize renders r into a coverage bitmap positioned relative to the
// pen on the baseline.
func rasterize(face font.Face, r rune) (ffnt.GlyphSpec, bool) {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return ffnt.GlyphSpec{}, false
	}

	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	g := ffnt.GlyphSpec{
		Width:    max(maxX-minX, 0),
		Height:   max(maxY-minY, 0),
		Advance:  advance.Round(),
		BearingX: minX,
		BearingY: minY,
	}
	if g.Width == 0 || g.Height == 0 {
		g.Width, g.Height, g.BearingX, g.BearingY = 0, 0, 0, 0
		return g, true
	}

	mask := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(string(r))
	g.Coverage = mask.Pix
	return g, true
}
