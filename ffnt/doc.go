// Package ffnt reads and writes fFNT bitmap fonts.
//
// An fFNT blob is a small header followed by a table of pages. Each page
// covers a block of 256 consecutive codepoints and holds fixed-size glyph
// descriptors plus a tail of 8-bit coverage bitmaps:
//
//	header      "fFNT" | int32 version | uint16 pages | uint8 line height | uint8 baseline
//	page table  pages × { uint32 size | uint32 offset }
//	page        256 × uint32 bitmap offset (0xFFFF = no glyph)
//	            256 × uint8 width
//	            256 × uint8 height
//	            256 × int8 advance
//	            256 × int8 bearing x
//	            256 × int8 bearing y
//	            coverage bytes, addressed by bitmap offset
//
// All integers are little-endian. A page table entry of size zero marks the
// whole block as absent.
//
// A parsed [Font] is a read-only view over the blob. Glyph lookups return
// views into it and never copy or allocate, so a Font is safe for concurrent
// use once parsed.
package ffnt
