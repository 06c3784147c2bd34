package ffnt

import (
	"os"

	"github.com/pkg/errors"
)

// Font is a parsed fFNT blob.
type Font struct {
	data       []byte
	version    int32
	pageCount  int
	lineHeight int
	baseline   int
}

// Page is the descriptor block and coverage tail of one 256-codepoint block.
type Page struct {
	data []byte
}

// Glyph describes one character bitmap. Coverage is a row-major slice of
// Width*Height alpha bytes pointing into the font blob; it must not be
// modified.
type Glyph struct {
	Width    int
	Height   int
	Advance  int
	BearingX int
	BearingY int
	Coverage []byte
}

// Parse validates data as an fFNT blob and returns a Font viewing it.
// The slice is retained, not copied.
//
// Parse checks everything the lookup path relies on: the header, every page
// table entry and the bitmap range of every glyph. Lookups on a parsed Font
// do no further validation.
func Parse(data []byte) (*Font, error) {
	if len(data) < HeaderSize {
		return nil, errors.Wrapf(ErrTruncated, "header needs %d bytes, have %d", HeaderSize, len(data))
	}
	if string(data[offMagic:offMagic+4]) != Magic {
		return nil, errors.Wrapf(ErrBadMagic, "got %q", data[offMagic:offMagic+4])
	}

	f := &Font{
		data:       data,
		version:    int32(bo.Uint32(data[offVersion:])),
		pageCount:  int(bo.Uint16(data[offPageCount:])),
		lineHeight: int(data[offLineHeight]),
		baseline:   int(data[offBaseline]),
	}
	if f.version != Version {
		return nil, errors.Wrapf(ErrVersion, "version %d", f.version)
	}

	tableEnd := HeaderSize + f.pageCount*PageEntrySize
	if tableEnd > len(data) {
		return nil, errors.Wrapf(ErrTruncated, "page table of %d entries", f.pageCount)
	}

	for id := range f.pageCount {
		if err := f.validatePage(id); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Load reads the file at path and parses it.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // font path is caller-provided
	if err != nil {
		return nil, errors.Wrap(err, "ffnt: read font")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return f, nil
}

func (f *Font) validatePage(id int) error {
	size, off := f.entry(id)
	if size == 0 {
		return nil
	}
	if size < PageHeaderSize {
		return &PageError{Page: id, Reason: "smaller than descriptor block"}
	}
	if uint64(off)+uint64(size) > uint64(len(f.data)) {
		return &PageError{Page: id, Reason: "extends past end of font"}
	}

	p := Page{data: f.data[off : off+size]}
	tail := len(p.data) - PageHeaderSize
	for i := range GlyphsPerPage {
		pos := p.pos(i)
		if pos == NoGlyph {
			continue
		}
		n := uint64(p.data[offWidth+i]) * uint64(p.data[offHeight+i])
		if uint64(pos)+n > uint64(tail) {
			return &PageError{Page: id, Reason: "glyph bitmap extends past page"}
		}
	}
	return nil
}

func (f *Font) entry(id int) (size, off uint32) {
	e := f.data[HeaderSize+id*PageEntrySize:]
	return bo.Uint32(e), bo.Uint32(e[4:])
}

// Version returns the format version stored in the header.
func (f *Font) Version() int { return int(f.version) }

// PageCount returns the number of page table entries.
func (f *Font) PageCount() int { return f.pageCount }

// LineHeight returns the vertical distance between consecutive lines.
func (f *Font) LineHeight() int { return f.lineHeight }

// Baseline returns the distance from the top of a line to its baseline.
func (f *Font) Baseline() int { return f.baseline }

// Bytes returns the underlying blob.
func (f *Font) Bytes() []byte { return f.data }

// Page returns page id, or false if id is past the page table or the page
// is absent.
func (f *Font) Page(id int) (Page, bool) {
	if id < 0 || id >= f.pageCount {
		return Page{}, false
	}
	size, off := f.entry(id)
	if size == 0 {
		return Page{}, false
	}
	return Page{data: f.data[off : off+size]}, true
}

// Glyph resolves codepoint cp. It returns false if the codepoint's page is
// absent or its descriptor slot holds no glyph.
func (f *Font) Glyph(cp rune) (Glyph, bool) {
	if cp < 0 {
		return Glyph{}, false
	}
	p, ok := f.Page(int(cp >> 8))
	if !ok {
		return Glyph{}, false
	}
	return p.Glyph(uint8(cp))
}

// HasGlyph reports whether cp resolves to a glyph.
func (f *Font) HasGlyph(cp rune) bool {
	_, ok := f.Glyph(cp)
	return ok
}

func (p Page) pos(i int) uint32 {
	return bo.Uint32(p.data[offPos+4*i:])
}

// Glyph returns the glyph in slot i of the page.
func (p Page) Glyph(i uint8) (Glyph, bool) {
	pos := p.pos(int(i))
	if pos == NoGlyph {
		return Glyph{}, false
	}
	g := Glyph{
		Width:    int(p.data[offWidth+int(i)]),
		Height:   int(p.data[offHeight+int(i)]),
		Advance:  int(int8(p.data[offAdvance+int(i)])),
		BearingX: int(int8(p.data[offBearingX+int(i)])),
		BearingY: int(int8(p.data[offBearingY+int(i)])),
	}
	start := PageHeaderSize + int(pos)
	g.Coverage = p.data[start : start+g.Width*g.Height : start+g.Width*g.Height]
	return g, true
}
