package fbtext

import (
	"bytes"
	"testing"

	"github.com/ffnt/fbtext/ffnt"
)

// Test font metrics.
const (
	testLineHeight = 16
	testBaseline   = 12
)

// newTestFont builds a small font:
//
//	'A'  8x10 solid, advance 9, bearing (0, -2)
//	'B'  2x2 partial coverage, advance 3, bearing (0, -2)
//	'?'  4x4 solid, advance 5, bearing (0, -4)
//	' '  empty, advance 4
//	U+0100 on page 1, 6x6 solid, advance 7, bearing (0, -6)
func newTestFont(t testing.TB, withFallback bool) *Font {
	t.Helper()
	b := ffnt.NewBuilder(testLineHeight, testBaseline)
	glyphs := map[rune]ffnt.GlyphSpec{
		'A':    {Width: 8, Height: 10, Advance: 9, BearingY: -2, Coverage: bytes.Repeat([]byte{0xFF}, 80)},
		'B':    {Width: 2, Height: 2, Advance: 3, BearingY: -2, Coverage: []byte{0x00, 0x80, 0xFF, 0x00}},
		' ':    {Advance: 4},
		0x0100: {Width: 6, Height: 6, Advance: 7, BearingY: -6, Coverage: bytes.Repeat([]byte{0xFF}, 36)},
	}
	if withFallback {
		glyphs['?'] = ffnt.GlyphSpec{Width: 4, Height: 4, Advance: 5, BearingY: -4, Coverage: bytes.Repeat([]byte{0xFF}, 16)}
	}
	for cp, g := range glyphs {
		if err := b.SetGlyph(cp, g); err != nil {
			t.Fatalf("SetGlyph(%U): %v", cp, err)
		}
	}
	f, err := ParseFont(b.Bytes())
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	return f
}

// newTestContext returns a w x h context cleared to black.
func newTestContext(t testing.TB, w, h int, opts ...ContextOption) *Context {
	t.Helper()
	opts = append([]ContextOption{WithSize(w, h)}, opts...)
	dc, err := NewContext(make([]byte, w*h*BytesPerPixel), opts...)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	dc.Clear(Black)
	return dc
}

func wantPixel(t *testing.T, dc *Context, x, y int, want Color) {
	t.Helper()
	if got := dc.Framebuffer().RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
	}
}

// solidIcon returns an opaque ABGR32 icon of one color.
func solidIcon(c Color) []byte {
	pix := make([]byte, IconBytes)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xFF, c.B, c.G, c.R
	}
	return pix
}
