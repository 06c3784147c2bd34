package fbtext

// ContextOption configures a Context during creation.
//
// Example:
//
//	rc := fbtext.NewRenderContext(theme)
//	dc, err := fbtext.NewContext(pix, fbtext.WithRenderContext(rc))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	rc          *RenderContext
	width       int
	height      int
	cacheBudget int
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		width:       Width,
		height:      Height,
		cacheBudget: DefaultImageCacheBudget,
	}
}

// WithRenderContext sets the theme and animation state the Context draws
// with. Without it, a render context for DefaultTheme is created.
func WithRenderContext(rc *RenderContext) ContextOption {
	return func(o *contextOptions) {
		o.rc = rc
	}
}

// WithSize overrides the canvas size. The default is the device
// framebuffer, Width x Height.
func WithSize(width, height int) ContextOption {
	return func(o *contextOptions) {
		o.width = width
		o.height = height
	}
}

// WithImageCache sets the byte budget of the resized image cache used by
// DrawImageScaled. Zero means unlimited.
func WithImageCache(budget int) ContextOption {
	return func(o *contextOptions) {
		o.cacheBudget = budget
	}
}
