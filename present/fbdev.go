package present

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned when the framebuffer device presenter is not
// available on this platform.
var ErrUnsupported = errors.New("present: framebuffer devices are not supported on this platform")

// ErrDeviceFormat is returned for framebuffer devices that are not 32 bits
// per pixel or are smaller than the canvas.
var ErrDeviceFormat = errors.New("present: unsupported framebuffer device")

// FBDevOptions configures a framebuffer device presenter.
type FBDevOptions struct {
	// Device is the device node, "/dev/fb0" when empty.
	Device string

	// SwapRB stores pixels as b, g, r, a. Most Linux framebuffers use
	// that order.
	SwapRB bool

	// Width and Height size the canvas; zero selects fbtext.Width and
	// fbtext.Height.
	Width, Height int
}

// screenInfo is the geometry of a framebuffer device as reported in sysfs.
type screenInfo struct {
	width, height int
	stride        int
	bitsPerPixel  int
}

// parsePair parses sysfs values of the form "1280,720".
func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, errors.Errorf("present: malformed pair %q", s)
	}
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "present: pair %q", s)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "present: pair %q", s)
	}
	return x, y, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, errors.Wrapf(err, "present: value %q", s)
}

// copyFrame copies a width x height RGBA canvas into a device buffer with
// the given stride, optionally swapping red and blue.
func copyFrame(dst []byte, stride int, src []byte, width, height int, swapRB bool) {
	row := width * 4
	for y := range height {
		s := src[y*row : (y+1)*row]
		d := dst[y*stride : y*stride+row]
		if !swapRB {
			copy(d, s)
			continue
		}
		for i := 0; i < row; i += 4 {
			d[i], d[i+1], d[i+2], d[i+3] = s[i+2], s[i+1], s[i], s[i+3]
		}
	}
}
