package ffnt

import "encoding/binary"

// Magic is the four byte signature every fFNT blob starts with.
const Magic = "fFNT"

// Version is the only format version this package understands.
const Version = 1

// NoGlyph is the bitmap offset marking an empty descriptor slot.
const NoGlyph = 0xFFFF

// GlyphsPerPage is the number of codepoints covered by one page.
const GlyphsPerPage = 256

// Layout sizes in bytes.
const (
	HeaderSize     = 12
	PageEntrySize  = 8
	PageHeaderSize = GlyphsPerPage * (4 + 5)
)

// Offsets of the descriptor arrays inside a page.
const (
	offPos      = 0
	offWidth    = offPos + 4*GlyphsPerPage
	offHeight   = offWidth + GlyphsPerPage
	offAdvance  = offHeight + GlyphsPerPage
	offBearingX = offAdvance + GlyphsPerPage
	offBearingY = offBearingX + GlyphsPerPage
)

// Offsets of the header fields.
const (
	offMagic      = 0
	offVersion    = 4
	offPageCount  = 8
	offLineHeight = 10
	offBaseline   = 11
)

var bo = binary.LittleEndian
