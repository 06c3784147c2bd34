package fbtext

import (
	"github.com/pkg/errors"

	"github.com/ffnt/fbtext/internal/blend"
	"github.com/ffnt/fbtext/internal/cache"
	"github.com/ffnt/fbtext/internal/image"
)

// Context draws into one framebuffer with one render context.
//
// A Context is not safe for concurrent use. All drawing happens on the
// caller's goroutine and runs to completion before the call returns.
type Context struct {
	fb *Framebuffer
	rc *RenderContext

	images *cache.Cache[scaledKey, image.Image]
}

// NewContext creates a drawing context over pix.
func NewContext(pix []byte, opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := NewFramebufferSize(pix, o.width, o.height)
	if err != nil {
		return nil, err
	}
	if o.rc == nil {
		o.rc = NewRenderContext(nil)
	}

	dc := &Context{
		fb:     fb,
		rc:     o.rc,
		images: cache.New[scaledKey, image.Image](o.cacheBudget),
	}
	dc.images.OnEvict(func(k scaledKey, _ image.Image) {
		Logger().Debug("scaled image evicted", "name", k.name, "width", k.width, "height", k.height)
	})
	return dc, nil
}

// Framebuffer returns the framebuffer being drawn into.
func (dc *Context) Framebuffer() *Framebuffer {
	return dc.fb
}

// RenderContext returns the render context the Context draws with.
func (dc *Context) RenderContext() *RenderContext {
	return dc.rc
}

// Width returns the canvas width.
func (dc *Context) Width() int {
	return dc.fb.s.Width
}

// Height returns the canvas height.
func (dc *Context) Height() int {
	return dc.fb.s.Height
}

// rebind points the context at a new buffer of the same size. Double
// buffered presenters hand out a different buffer every frame.
func (dc *Context) rebind(pix []byte) error {
	if len(pix) < len(dc.fb.s.Pix) {
		return errors.Wrapf(ErrFramebufferSize, "buffer has %d bytes, want %d", len(pix), len(dc.fb.s.Pix))
	}
	dc.fb.s.Pix = pix[:len(dc.fb.s.Pix)]
	return nil
}

func (dc *Context) surface() *blend.Surface {
	return &dc.fb.s
}
