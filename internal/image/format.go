// Package image converts raw pixel buffers into framebuffer writes and
// resamples RGB images.
//
// Raw buffers carry no header: the caller supplies width, height and one of
// the fixed pixel layouts below. A buffer is read-only to this package.
package image

// Format is a raw pixel layout.
type Format uint8

const (
	// FormatRGB24 is r, g, b; alpha is implied 255.
	FormatRGB24 Format = iota

	// FormatRGBA32 is r, g, b, a.
	FormatRGBA32

	// FormatBGR24 is b, g, r; alpha is implied 255.
	FormatBGR24

	// FormatABGR32 is a, b, g, r. Theme icons use this layout.
	FormatABGR32

	formatCount
)

// opaque marks a layout without an alpha byte.
const opaque = -1

// FormatInfo maps the bytes of one pixel to its channels.
type FormatInfo struct {
	BytesPerPixel int

	// Byte index of each channel within a pixel. A is -1 for 24-bit layouts.
	R, G, B, A int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB24:  {BytesPerPixel: 3, R: 0, G: 1, B: 2, A: opaque},
	FormatRGBA32: {BytesPerPixel: 4, R: 0, G: 1, B: 2, A: 3},
	FormatBGR24:  {BytesPerPixel: 3, R: 2, G: 1, B: 0, A: opaque},
	FormatABGR32: {BytesPerPixel: 4, R: 3, G: 2, B: 1, A: 0},
}

// Info returns the channel table for f. Unknown formats return the zero
// FormatInfo.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the pixel stride of f.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha reports whether f stores an alpha byte.
func (f Format) HasAlpha() bool {
	return f.IsValid() && f.Info().A != opaque
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ImageBytes returns the buffer size of a width x height image.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatRGB24:
		return "RGB24"
	case FormatRGBA32:
		return "RGBA32"
	case FormatBGR24:
		return "BGR24"
	case FormatABGR32:
		return "ABGR32"
	default:
		return "Unknown"
	}
}

// ParseFormat returns the format named s (case-sensitive, as printed by
// String).
func ParseFormat(s string) (Format, bool) {
	for f := range formatCount {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}
