package fbtext

import (
	"github.com/ffnt/fbtext/internal/image"
)

// ImageFormat is the pixel layout of a raw image buffer.
type ImageFormat = image.Format

// Raw image layouts accepted by DrawImage.
const (
	FormatRGB24  = image.FormatRGB24
	FormatRGBA32 = image.FormatRGBA32
	FormatBGR24  = image.FormatBGR24
	FormatABGR32 = image.FormatABGR32
)

// Image is a raw pixel buffer with its dimensions and layout.
type Image = image.Image

// EdgeMode selects how ResizeImage samples past the source edge.
type EdgeMode = image.EdgeMode

// Resampler edge modes.
const (
	EdgeZero  = image.EdgeZero
	EdgeClamp = image.EdgeClamp
)

// DefaultImageCacheBudget is the default byte budget of the scaled image
// cache: eight full-screen RGB24 images.
const DefaultImageCacheBudget = 8 * Width * Height * 3

// NewImage wraps a raw buffer after checking it is large enough.
func NewImage(pix []byte, width, height int, f ImageFormat) (Image, error) {
	return image.FromRaw(pix, width, height, f)
}

// DrawImage blends a width x height raw image onto the canvas with its
// top-left corner at (x, y).
func (dc *Context) DrawImage(x, y, width, height int, pix []byte, f ImageFormat) {
	image.Blit(dc.surface(), x, y, width, height, pix, f)
}

// Draw blends img onto the canvas with its top-left corner at (x, y).
func (dc *Context) Draw(img Image, x, y int) {
	image.Blit(dc.surface(), x, y, img.Width, img.Height, img.Pix, img.Format)
}

// ResizeImage scales an RGB24 image with bicubic interpolation.
func ResizeImage(src []byte, srcW, srcH, dstW, dstH int, edge EdgeMode) ([]byte, error) {
	return image.Resize(src, srcW, srcH, dstW, dstH, image.WithEdge(edge))
}

type scaledKey struct {
	name          string
	width, height int
}

// DrawImageScaled draws an RGB24 image scaled to width x height. Scaled
// copies are cached under name, so repeated frames resample only once.
func (dc *Context) DrawImageScaled(name string, src Image, x, y, width, height int) error {
	key := scaledKey{name: name, width: width, height: height}
	img, err := dc.images.GetOrCreate(key, func() (Image, int, error) {
		scaled, err := src.Resize(width, height)
		if err != nil {
			return Image{}, 0, err
		}
		Logger().Debug("scaled image", "name", name, "width", width, "height", height)
		return scaled, len(scaled.Pix), nil
	})
	if err != nil {
		return err
	}
	dc.Draw(img, x, y)
	return nil
}

// ForgetImage drops every cached scaled copy of the named image.
func (dc *Context) ForgetImage(name string) {
	dc.images.DeleteFunc(func(k scaledKey) bool {
		return k.name == name
	})
}
