// Package blend provides fast math utilities for alpha blending.
//
// The div255 family of functions avoid integer division by using bit shifts
// and addition. They are called for every channel of every blended pixel.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every sum the blend
// equation can produce (0 to 255*255), which keeps the alpha=0 and
// alpha=255 identities bit-exact.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// Channel blends one 8-bit channel of src over dst with weight alpha:
//
//	out = (src*alpha + dst*(255-alpha)) / 255
//
// alpha=0 returns dst and alpha=255 returns src.
func Channel(dst, src, alpha uint8) uint8 {
	a := uint32(alpha)
	return uint8(div255(uint32(src)*a + uint32(dst)*(255-a)))
}
