package present

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ffnt/fbtext"
)

// PNG presents frames by writing each one to a numbered PNG file.
type PNG struct {
	dir     string
	pattern string
	fb      *fbtext.Framebuffer
	next    int
}

var _ fbtext.Presenter = (*PNG)(nil)

// NewPNG returns a PNG presenter writing width x height frames into dir,
// named by pattern with the frame number, e.g. "frame-%04d.png". The
// directory is created if needed.
func NewPNG(dir, pattern string, width, height int) (*PNG, error) {
	if pattern == "" {
		pattern = "frame-%04d.png"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "present: png dir")
	}
	fb, err := fbtext.NewFramebufferSize(make([]byte, width*height*fbtext.BytesPerPixel), width, height)
	if err != nil {
		return nil, err
	}
	fbtext.Logger().Info("png presenter ready", "dir", dir, "width", width, "height", height)
	return &PNG{dir: dir, pattern: pattern, fb: fb}, nil
}

// Buffer returns the frame buffer. The same buffer is reused every frame.
func (p *PNG) Buffer() []byte { return p.fb.Pix() }

// Present writes the current frame to the next file.
func (p *PNG) Present() error {
	path := p.Path(p.next)
	if err := p.fb.SavePNG(path); err != nil {
		return errors.Wrapf(err, "present: frame %d", p.next)
	}
	fbtext.Logger().Debug("frame written", "path", path)
	p.next++
	return nil
}

// Path returns the file frame n is written to.
func (p *PNG) Path(n int) string {
	return filepath.Join(p.dir, fmt.Sprintf(p.pattern, n))
}

// Frames returns the number of frames written.
func (p *PNG) Frames() int { return p.next }
