//go:build linux

package present

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/ffnt/fbtext"
)

// FBDev presents frames on a Linux framebuffer device. Frames are drawn
// into a back buffer in process memory and copied into the mapped device
// memory on Present.
type FBDev struct {
	fd     int
	mem    []byte
	info   screenInfo
	back   []byte
	width  int
	height int
	swapRB bool
}

var _ fbtext.Presenter = (*FBDev)(nil)

// OpenFBDev maps the framebuffer device described by opts.
func OpenFBDev(opts FBDevOptions) (*FBDev, error) {
	dev := opts.Device
	if dev == "" {
		dev = "/dev/fb0"
	}
	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		w, h = fbtext.Width, fbtext.Height
	}

	info, err := readScreenInfo(filepath.Join("/sys/class/graphics", filepath.Base(dev)))
	if err != nil {
		return nil, err
	}
	if info.bitsPerPixel != 32 || info.width < w || info.height < h {
		return nil, errors.Wrapf(ErrDeviceFormat, "%s is %dx%d at %d bpp, need %dx%d at 32 bpp",
			dev, info.width, info.height, info.bitsPerPixel, w, h)
	}

	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "present: open %s", dev)
	}
	mem, err := unix.Mmap(fd, 0, info.stride*info.height, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, errors.Wrapf(err, "present: mmap %s", dev)
	}

	fbtext.Logger().Info("framebuffer device opened",
		"device", dev,
		"width", info.width,
		"height", info.height,
		"stride", info.stride)

	return &FBDev{
		fd:     fd,
		mem:    mem,
		info:   info,
		back:   make([]byte, w*h*fbtext.BytesPerPixel),
		width:  w,
		height: h,
		swapRB: opts.SwapRB,
	}, nil
}

func readScreenInfo(dir string) (screenInfo, error) {
	read := func(name string) (string, error) {
		b, err := os.ReadFile(filepath.Join(dir, name))
		return string(b), errors.Wrap(err, "present: screen info")
	}

	var info screenInfo
	s, err := read("virtual_size")
	if err != nil {
		return info, err
	}
	if info.width, info.height, err = parsePair(s); err != nil {
		return info, err
	}
	if s, err = read("stride"); err != nil {
		return info, err
	}
	if info.stride, err = parseInt(s); err != nil {
		return info, err
	}
	if s, err = read("bits_per_pixel"); err != nil {
		return info, err
	}
	info.bitsPerPixel, err = parseInt(s)
	return info, err
}

// Buffer returns the back buffer.
func (d *FBDev) Buffer() []byte { return d.back }

// Present copies the back buffer to the device.
func (d *FBDev) Present() error {
	if d.mem == nil {
		return errors.New("present: framebuffer device closed")
	}
	copyFrame(d.mem, d.info.stride, d.back, d.width, d.height, d.swapRB)
	return nil
}

// Close unmaps and closes the device.
func (d *FBDev) Close() error {
	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	fbtext.Logger().Info("framebuffer device closed")
	return errors.Wrap(err, "present: close")
}
