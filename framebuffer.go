package fbtext

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ffnt/fbtext/internal/blend"
)

// Device framebuffer geometry.
const (
	Width         = 1280
	Height        = 720
	BytesPerPixel = blend.BytesPerPixel

	// FramebufferSize is the byte size of a device framebuffer.
	FramebufferSize = Width * Height * BytesPerPixel
)

// ErrFramebufferSize is returned when a pixel buffer is too small for the
// requested canvas.
var ErrFramebufferSize = errors.New("fbtext: framebuffer too small")

// Framebuffer is a view over an externally owned pixel buffer: row-major,
// 4 bytes per pixel in r, g, b, a order, stride width*4. The buffer is
// written in place and never reallocated.
type Framebuffer struct {
	s blend.Surface
}

// NewFramebuffer wraps a device-sized buffer.
func NewFramebuffer(pix []byte) (*Framebuffer, error) {
	return NewFramebufferSize(pix, Width, Height)
}

// NewFramebufferSize wraps a buffer of arbitrary size. Off-device tools and
// tests use it for smaller canvases.
func NewFramebufferSize(pix []byte, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrFramebufferSize, "%dx%d", width, height)
	}
	if need := width * height * BytesPerPixel; len(pix) < need {
		return nil, errors.Wrapf(ErrFramebufferSize, "%dx%d needs %d bytes, have %d", width, height, need, len(pix))
	}
	return &Framebuffer{s: blend.NewSurface(pix, width, height)}, nil
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.s.Width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.s.Height
}

// Pix returns the underlying pixel buffer.
func (fb *Framebuffer) Pix() []byte {
	return fb.s.Pix
}

// RGBAAt returns the stored color of a single pixel.
func (fb *Framebuffer) RGBAAt(x, y int) Color {
	return fb.s.At(x, y)
}

// ToImage copies the framebuffer into an image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.s.Width, fb.s.Height))
	copy(img.Pix, fb.s.Pix)
	return img
}

// EncodePNG writes the framebuffer as PNG.
func (fb *Framebuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return errors.Wrap(err, "fbtext: create png")
	}
	defer func() {
		_ = f.Close()
	}()

	return fb.EncodePNG(f)
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.s.At(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.s.Width, fb.s.Height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
