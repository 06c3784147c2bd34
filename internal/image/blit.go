package image

import (
	"github.com/ffnt/fbtext/internal/blend"
	"github.com/ffnt/fbtext/internal/color"
)

// Pixel decodes the pixel starting at p through the channel table.
func (fi FormatInfo) Pixel(p []byte) color.RGBA8 {
	c := color.RGBA8{R: p[fi.R], G: p[fi.G], B: p[fi.B], A: 0xFF}
	if fi.A != opaque {
		c.A = p[fi.A]
	}
	return c
}

// Blit blends a width x height raw image in format f onto dst with its
// top-left corner at (x, y). Each source pixel goes through dst.Pixel, so
// alpha is honoured and off-surface pixels are dropped. Rows that are
// entirely off the surface are skipped. If pix is shorter than the image,
// drawing stops after the last complete pixel.
func Blit(dst *blend.Surface, x, y, width, height int, pix []byte, f Format) {
	fi := f.Info()
	bpp := fi.BytesPerPixel
	if bpp == 0 || width <= 0 || height <= 0 {
		return
	}
	n := min(width*height, len(pix)/bpp)

	for j := range height {
		if y+j < 0 {
			continue
		}
		if y+j >= dst.Height || j*width >= n {
			return
		}
		for i := range width {
			idx := j*width + i
			if idx >= n {
				return
			}
			off := idx * bpp
			dst.Pixel(x+i, y+j, fi.Pixel(pix[off:off+bpp]))
		}
	}
}
