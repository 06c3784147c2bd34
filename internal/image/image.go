package image

import (
	"bytes"
	stdimage "image"
	_ "image/jpeg" // register JPEG for Decode
	_ "image/png"  // register PNG for Decode
	"io"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/ffnt/fbtext/internal/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Image is a raw pixel buffer together with its dimensions and layout.
// Pix is not copied by any function in this package.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Format Format
}

// New allocates a zeroed image.
func New(width, height int, f Format) (Image, error) {
	if width <= 0 || height <= 0 {
		return Image{}, ErrInvalidDimensions
	}
	if !f.IsValid() {
		return Image{}, ErrInvalidFormat
	}
	return Image{Pix: make([]byte, f.ImageBytes(width, height)), Width: width, Height: height, Format: f}, nil
}

// FromRaw wraps existing data without copying.
func FromRaw(data []byte, width, height int, f Format) (Image, error) {
	if width <= 0 || height <= 0 {
		return Image{}, ErrInvalidDimensions
	}
	if !f.IsValid() {
		return Image{}, ErrInvalidFormat
	}
	need := f.ImageBytes(width, height)
	if len(data) < need {
		return Image{}, errors.Wrapf(ErrDataTooSmall, "%s %dx%d needs %d bytes, have %d", f, width, height, need, len(data))
	}
	return Image{Pix: data[:need], Width: width, Height: height, Format: f}, nil
}

// At returns the color of pixel (x, y), or the zero color outside the image.
func (m Image) At(x, y int) color.RGBA8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.RGBA8{}
	}
	fi := m.Format.Info()
	off := (y*m.Width + x) * fi.BytesPerPixel
	return fi.Pixel(m.Pix[off : off+fi.BytesPerPixel])
}

// Convert returns a copy of m in format f. Converting to a 24-bit format
// drops alpha.
func (m Image) Convert(f Format) (Image, error) {
	out, err := New(m.Width, m.Height, f)
	if err != nil {
		return Image{}, err
	}
	fi := f.Info()
	bpp := fi.BytesPerPixel
	for y := range m.Height {
		for x := range m.Width {
			c := m.At(x, y)
			p := out.Pix[(y*m.Width+x)*bpp:]
			p[fi.R], p[fi.G], p[fi.B] = c.R, c.G, c.B
			if fi.A != opaque {
				p[fi.A] = c.A
			}
		}
	}
	return out, nil
}

// Resize scales an RGB24 image. Other formats return ErrInvalidFormat.
func (m Image) Resize(width, height int, opts ...ResizeOption) (Image, error) {
	if m.Format != FormatRGB24 {
		return Image{}, errors.Wrapf(ErrInvalidFormat, "resize needs RGB24, have %s", m.Format)
	}
	pix, err := Resize(m.Pix, m.Width, m.Height, width, height, opts...)
	if err != nil {
		return Image{}, err
	}
	return Image{Pix: pix, Width: width, Height: height, Format: FormatRGB24}, nil
}

// ToNRGBA converts m to a standard library image.
func (m Image) ToNRGBA() *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		for x := range m.Width {
			c := m.At(x, y)
			p := img.Pix[y*img.Stride+x*4:]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// FromStdImage converts any standard library image into format f.
func FromStdImage(src stdimage.Image, f Format) (Image, error) {
	b := src.Bounds()
	nrgba, ok := src.(*stdimage.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 || b.Min != (stdimage.Point{}) {
		nrgba = stdimage.NewNRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), src, b.Min, xdraw.Src)
	}
	rgba, err := FromRaw(nrgba.Pix, b.Dx(), b.Dy(), FormatRGBA32)
	if err != nil {
		return Image{}, err
	}
	if f == FormatRGBA32 {
		return Image{Pix: bytes.Clone(rgba.Pix), Width: rgba.Width, Height: rgba.Height, Format: f}, nil
	}
	return rgba.Convert(f)
}

// Decode reads a PNG or JPEG and converts it into format f.
func Decode(r io.Reader, f Format) (Image, error) {
	img, _, err := stdimage.Decode(r)
	if err != nil {
		return Image{}, errors.Wrap(err, "image: decode")
	}
	return FromStdImage(img, f)
}
