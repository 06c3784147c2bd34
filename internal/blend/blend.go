package blend

import (
	"encoding/binary"

	"github.com/ffnt/fbtext/internal/color"
)

// BytesPerPixel is the framebuffer pixel size.
const BytesPerPixel = 4

// Surface is a view over a 4 bytes per pixel, row-major framebuffer. Pixels
// are stored r, g, b, a. The surface never reallocates Pix; every write is
// clipped to Width x Height and out-of-range pixels are silently dropped.
type Surface struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// NewSurface returns a surface over pix with a stride of width*4.
// pix must hold at least width*height*4 bytes.
func NewSurface(pix []byte, width, height int) Surface {
	return Surface{
		Pix:    pix[:width*height*BytesPerPixel],
		Width:  width,
		Height: height,
		Stride: width * BytesPerPixel,
	}
}

// In reports whether (x, y) lies on the surface.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// Pixel blends c over the pixel at (x, y) using c.A as the weight. The
// stored alpha byte is always 0xFF.
func (s *Surface) Pixel(x, y int, c color.RGBA8) {
	if !s.In(x, y) {
		return
	}
	off := y*s.Stride + x*BytesPerPixel
	p := s.Pix[off : off+BytesPerPixel : off+BytesPerPixel]
	p[0] = Channel(p[0], c.R, c.A)
	p[1] = Channel(p[1], c.G, c.A)
	p[2] = Channel(p[2], c.B, c.A)
	p[3] = 0xFF
}

// At returns the stored color at (x, y), or the zero color off the surface.
func (s *Surface) At(x, y int) color.RGBA8 {
	if !s.In(x, y) {
		return color.RGBA8{}
	}
	off := y*s.Stride + x*BytesPerPixel
	return color.RGBA8{R: s.Pix[off], G: s.Pix[off+1], B: s.Pix[off+2], A: s.Pix[off+3]}
}

// Fill4 stores four opaque copies of c starting at (x, y) without blending.
// The whole run is dropped unless all four pixels are on the surface.
func (s *Surface) Fill4(x, y int, c color.RGBA8) {
	if x < 0 || y < 0 || y >= s.Height || x > s.Width-4 {
		return
	}
	w := uint64(c.Packed())
	off := y*s.Stride + x*BytesPerPixel
	binary.LittleEndian.PutUint64(s.Pix[off:], w|w<<32)
	binary.LittleEndian.PutUint64(s.Pix[off+8:], w|w<<32)
}

// FillRect fills the rectangle with c. Opaque colors take the unblended
// store path; anything else is blended pixel by pixel like BlendRect.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA8) {
	if c.A != 0xFF {
		s.BlendRect(x, y, w, h, c)
		return
	}

	x0, y0, x1, y1, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	word := c.Packed()
	for j := y0; j < y1; j++ {
		i := x0
		for ; i+4 <= x1; i += 4 {
			s.Fill4(i, j, c)
		}
		row := s.Pix[j*s.Stride:]
		for ; i < x1; i++ {
			binary.LittleEndian.PutUint32(row[i*BytesPerPixel:], word)
		}
	}
}

// BlendRect blends c over every pixel of the rectangle.
func (s *Surface) BlendRect(x, y, w, h int, c color.RGBA8) {
	x0, y0, x1, y1, ok := s.clip(x, y, w, h)
	if !ok {
		return
	}
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			s.Pixel(i, j, c)
		}
	}
}

// Clear stores c over the whole surface without blending.
func (s *Surface) Clear(c color.RGBA8) {
	s.FillRect(0, 0, s.Width, s.Height, c.Opaque())
}

// clip intersects the rectangle with the surface.
func (s *Surface) clip(x, y, w, h int) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+w, s.Width), min(y+h, s.Height)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}
