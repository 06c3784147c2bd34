package image

import "github.com/pkg/errors"

// ErrResizeBuffer is returned when a resize buffer is too small for its
// declared dimensions.
var ErrResizeBuffer = errors.New("image: resize buffer too small")

// EdgeMode selects what the resampler reads outside the source image.
type EdgeMode uint8

const (
	// EdgeZero reads samples outside the source as 0. Pixels near the
	// border are pulled towards black. This is the default and matches the
	// output of existing asset pipelines bit for bit.
	EdgeZero EdgeMode = iota

	// EdgeClamp repeats the nearest border sample. Borders keep their
	// brightness.
	EdgeClamp
)

// String returns the name of the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeZero:
		return "Zero"
	case EdgeClamp:
		return "Clamp"
	default:
		return "Unknown"
	}
}

type resizeOptions struct {
	edge EdgeMode
}

// ResizeOption configures Resize.
type ResizeOption func(*resizeOptions)

// WithEdge sets how samples outside the source are read.
func WithEdge(m EdgeMode) ResizeOption {
	return func(o *resizeOptions) {
		o.edge = m
	}
}

// Resize scales an RGB24 image to dstW x dstH with separable bicubic
// interpolation and returns the new buffer.
func Resize(src []byte, srcW, srcH, dstW, dstH int, opts ...ResizeOption) ([]byte, error) {
	dst := make([]byte, FormatRGB24.ImageBytes(dstW, dstH))
	if err := ResizeInto(dst, src, srcW, srcH, dstW, dstH, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ResizeInto is Resize writing into a caller-provided buffer.
//
// Destination pixel (j, i) samples the source at (tx*j, ty*i) with
// tx = srcW/dstW and ty = srcH/dstH. Each of the four rows around the
// sample point is interpolated horizontally with a cubic through the
// neighbours x-1..x+2, then the four results are interpolated vertically
// with the same cubic. A scale of 1 reproduces the source exactly.
func ResizeInto(dst, src []byte, srcW, srcH, dstW, dstH int, opts ...ResizeOption) error {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "resize %dx%d to %dx%d", srcW, srcH, dstW, dstH)
	}
	if len(src) < FormatRGB24.ImageBytes(srcW, srcH) {
		return errors.Wrapf(ErrResizeBuffer, "source has %d bytes", len(src))
	}
	if len(dst) < FormatRGB24.ImageBytes(dstW, dstH) {
		return errors.Wrapf(ErrResizeBuffer, "destination has %d bytes", len(dst))
	}

	o := resizeOptions{edge: EdgeZero}
	for _, opt := range opts {
		opt(&o)
	}
	s := sampler{pix: src, w: srcW, h: srcH, edge: o.edge}

	const channels = 3
	tx := float32(srcW) / float32(dstW)
	ty := float32(srcH) / float32(dstH)
	rowStride := dstW * channels

	var c [4]float32
	for i := range dstH {
		fy := ty * float32(i)
		y := int(fy)
		dy := fy - float32(y)

		for j := range dstW {
			fx := tx * float32(j)
			x := int(fx)
			dx := fx - float32(x)

			for k := range channels {
				for jj := range 4 {
					z := y - 1 + jj
					a0 := s.at(x, z, k)
					c[jj] = cubic(a0, s.at(x-1, z, k)-a0, s.at(x+1, z, k)-a0, s.at(x+2, z, k)-a0, dx)
				}
				v := cubic(c[1], c[0]-c[1], c[2]-c[1], c[3]-c[1], dy)
				dst[i*rowStride+j*channels+k] = toByte(v)
			}
		}
	}
	return nil
}

// cubic evaluates the interpolating cubic through p(-1), p(0), p(1), p(2)
// at t in [0, 1). a0 is p(0) and d0, d2, d3 are p(-1), p(1), p(2) minus a0.
func cubic(a0, d0, d2, d3, t float32) float32 {
	a1 := -1.0/3*d0 + d2 - 1.0/6*d3
	a2 := 1.0/2*d0 + 1.0/2*d2
	a3 := -1.0/6*d0 - 1.0/2*d2 + 1.0/6*d3
	return a0 + a1*t + a2*t*t + a3*t*t*t
}

type sampler struct {
	pix  []byte
	w, h int
	edge EdgeMode
}

func (s *sampler) at(x, y, channel int) float32 {
	if s.edge == EdgeClamp {
		x = clamp(x, 0, s.w-1)
		y = clamp(y, 0, s.h-1)
	} else if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return float32(s.pix[(y*s.w+x)*3+channel])
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
