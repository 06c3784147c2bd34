package blend

import "github.com/ffnt/fbtext/internal/color"

// Drop shadow parameters.
const (
	ShadowAlpha = 80
	ShadowSize  = 4
)

// Shadow draws a soft black shadow in the band directly below the rectangle
// (x, y, w, h). Row k of the band is blended with alpha ShadowAlpha*(1-k/ShadowSize)
// and inset by k pixels on both sides. Columns are emitted in runs of four.
// The band is at most ShadowSize rows and never taller than the rectangle.
func (s *Surface) Shadow(x, y, w, h int) {
	top := y + h
	for k := 0; k < ShadowSize && k < h; k++ {
		row := top + k
		c := color.RGBA8{A: uint8(ShadowAlpha * (ShadowSize - k) / ShadowSize)}
		for col := x; col < x+w; col += 4 {
			if col < x+k || col >= x+w-k {
				continue
			}
			for i := range 4 {
				s.Pixel(col+i, row, c)
			}
		}
	}
}
