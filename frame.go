package fbtext

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Presenter owns the pixel buffer frames are drawn into and puts finished
// frames on screen.
type Presenter interface {
	// Buffer returns the buffer to draw the next frame into. It may return
	// a different buffer after each Present.
	Buffer() []byte

	// Present shows the frame drawn into the last buffer returned by
	// Buffer and waits for the display to accept it.
	Present() error
}

// Overlay draws on top of a frame after the main draw function. It returns
// false to remove itself from the loop.
type Overlay func(dc *Context) bool

// FrameOption configures a FrameLoop.
type FrameOption func(*frameOptions)

type frameOptions struct {
	reg     prometheus.Registerer
	now     func() time.Time
	ctxOpts []ContextOption
}

// WithRegisterer registers the loop's metrics on reg. Without it the
// metrics are collected but not registered anywhere.
//
// Metrics:
//   - fbtext_frames_total: frames presented
//   - fbtext_frame_draw_seconds: time spent drawing a frame
//   - fbtext_present_errors_total: failed presents
func WithRegisterer(reg prometheus.Registerer) FrameOption {
	return func(o *frameOptions) {
		o.reg = reg
	}
}

// WithClock replaces time.Now for draw time measurement.
func WithClock(now func() time.Time) FrameOption {
	return func(o *frameOptions) {
		o.now = now
	}
}

// WithContextOptions passes options to the Context the loop draws with,
// for example WithSize for presenters that are not device sized.
func WithContextOptions(opts ...ContextOption) FrameOption {
	return func(o *frameOptions) {
		o.ctxOpts = append(o.ctxOpts, opts...)
	}
}

// FrameLoop drives the draw and present cycle of one presenter.
//
// Each frame the loop computes the animated highlight, calls the draw
// function, runs the overlays, advances the animation phase and only then
// presents. A FrameLoop is not safe for concurrent use.
type FrameLoop struct {
	p        Presenter
	rc       *RenderContext
	dc       *Context
	overlays []Overlay
	now      func() time.Time

	frames      prometheus.Counter
	drawSeconds prometheus.Histogram
	presentErrs prometheus.Counter
}

// NewFrameLoop creates a frame loop for p. A nil rc selects a render
// context for DefaultTheme.
func NewFrameLoop(p Presenter, rc *RenderContext, opts ...FrameOption) (*FrameLoop, error) {
	if p == nil {
		return nil, errors.New("fbtext: nil presenter")
	}
	o := frameOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if rc == nil {
		rc = NewRenderContext(nil)
	}

	ctxOpts := append([]ContextOption{WithRenderContext(rc)}, o.ctxOpts...)
	dc, err := NewContext(p.Buffer(), ctxOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "fbtext: frame loop")
	}

	factory := promauto.With(o.reg)
	return &FrameLoop{
		p:   p,
		rc:  rc,
		dc:  dc,
		now: o.now,
		frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "fbtext_frames_total",
			Help: "The total number of frames presented",
		}),
		drawSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fbtext_frame_draw_seconds",
			Help:    "How long it takes to draw one frame, overlays included",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		presentErrs: factory.NewCounter(prometheus.CounterOpts{
			Name: "fbtext_present_errors_total",
			Help: "The total number of frames that failed to present",
		}),
	}, nil
}

// Context returns the drawing context frames are drawn with.
func (l *FrameLoop) Context() *Context {
	return l.dc
}

// RenderContext returns the render context of the loop.
func (l *FrameLoop) RenderContext() *RenderContext {
	return l.rc
}

// AddOverlay appends an overlay. Overlays run in the order they were added.
func (l *FrameLoop) AddOverlay(o Overlay) {
	l.overlays = append(l.overlays, o)
}

// Overlays returns the number of active overlays.
func (l *FrameLoop) Overlays() int {
	return len(l.overlays)
}

// Render draws and presents one frame.
func (l *FrameLoop) Render(draw func(dc *Context)) error {
	if err := l.dc.rebind(l.p.Buffer()); err != nil {
		return err
	}

	l.rc.Begin()
	start := l.now()
	if draw != nil {
		draw(l.dc)
	}
	l.runOverlays()
	l.drawSeconds.Observe(l.now().Sub(start).Seconds())
	l.rc.Advance()

	if err := l.p.Present(); err != nil {
		l.presentErrs.Inc()
		Logger().Warn("present failed", "err", err)
		return errors.Wrap(err, "fbtext: present")
	}
	l.frames.Inc()
	return nil
}

// Run renders frames until ctx is done or a frame fails to present. The
// context is checked between frames; a frame that has started is always
// drawn and presented. Run returns ctx.Err() after cancellation.
func (l *FrameLoop) Run(ctx context.Context, draw func(dc *Context)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Render(draw); err != nil {
			return err
		}
	}
}

func (l *FrameLoop) runOverlays() {
	kept := l.overlays[:0]
	for _, o := range l.overlays {
		if o(l.dc) {
			kept = append(kept, o)
		}
	}
	clear(l.overlays[len(kept):])
	l.overlays = kept
}
