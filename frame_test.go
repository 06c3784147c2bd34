package fbtext

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// swapPresenter double buffers like the device and records each presented
// frame's first pixel.
type swapPresenter struct {
	bufs  [2][]byte
	back  int
	shown [][4]byte
	err   error
}

func newSwapPresenter(w, h int) *swapPresenter {
	return &swapPresenter{bufs: [2][]byte{
		make([]byte, w*h*BytesPerPixel),
		make([]byte, w*h*BytesPerPixel),
	}}
}

func (p *swapPresenter) Buffer() []byte { return p.bufs[p.back] }

func (p *swapPresenter) Present() error {
	if p.err != nil {
		return p.err
	}
	b := p.bufs[p.back]
	p.shown = append(p.shown, [4]byte{b[0], b[1], b[2], b[3]})
	p.back ^= 1
	return nil
}

func newTestLoop(t *testing.T, p Presenter, opts ...FrameOption) *FrameLoop {
	t.Helper()
	opts = append([]FrameOption{WithContextOptions(WithSize(8, 8))}, opts...)
	l, err := NewFrameLoop(p, nil, opts...)
	if err != nil {
		t.Fatalf("NewFrameLoop: %v", err)
	}
	return l
}

func TestFrameLoopRender(t *testing.T) {
	p := newSwapPresenter(8, 8)
	l := newTestLoop(t, p)

	var highlights []Color
	for _, c := range []Color{RGB(1, 1, 1), RGB(2, 2, 2), RGB(3, 3, 3)} {
		err := l.Render(func(dc *Context) {
			highlights = append(highlights, dc.RenderContext().Highlight)
			dc.Clear(c)
		})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
	}

	// Each frame went to the buffer that was presented.
	want := [][4]byte{{1, 1, 1, 0xFF}, {2, 2, 2, 0xFF}, {3, 3, 3, 0xFF}}
	if len(p.shown) != len(want) {
		t.Fatalf("presented %d frames, want %d", len(p.shown), len(want))
	}
	for i := range want {
		if p.shown[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, p.shown[i], want[i])
		}
	}

	// Highlight at phase 0 is the middle of the ramp.
	if highlights[0] != RGB(87, 202, 219) {
		t.Errorf("first highlight = %+v", highlights[0])
	}
	if highlights[1] == highlights[0] {
		t.Error("highlight did not animate")
	}
	if got := l.RenderContext().Phase; got < 3*PhaseStep-1e-9 || got > 3*PhaseStep+1e-9 {
		t.Errorf("phase = %v, want %v", got, 3*PhaseStep)
	}
	if got := testutil.ToFloat64(l.frames); got != 3 {
		t.Errorf("frames_total = %v, want 3", got)
	}
}

func TestFrameLoopOverlays(t *testing.T) {
	l := newTestLoop(t, newSwapPresenter(8, 8))

	var order []string
	l.AddOverlay(func(dc *Context) bool {
		order = append(order, "once")
		return false
	})
	l.AddOverlay(func(dc *Context) bool {
		order = append(order, "always")
		return true
	})

	for range 2 {
		if err := l.Render(func(dc *Context) { order = append(order, "draw") }); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}

	want := []string{"draw", "once", "always", "draw", "always"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if l.Overlays() != 1 {
		t.Errorf("Overlays() = %d, want 1", l.Overlays())
	}
}

func TestFrameLoopPresentError(t *testing.T) {
	p := newSwapPresenter(8, 8)
	errBusy := errors.New("display busy")
	p.err = errBusy
	l := newTestLoop(t, p)

	err := l.Render(nil)
	if !errors.Is(err, errBusy) {
		t.Fatalf("Render error = %v, want display busy", err)
	}
	if got := testutil.ToFloat64(l.presentErrs); got != 1 {
		t.Errorf("present_errors_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(l.frames); got != 0 {
		t.Errorf("frames_total = %v, want 0", got)
	}
}

func TestFrameLoopRun(t *testing.T) {
	l := newTestLoop(t, newSwapPresenter(8, 8))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	err := l.Run(ctx, func(dc *Context) {
		n++
		if n == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	// The frame that cancelled still completes.
	if got := testutil.ToFloat64(l.frames); got != 3 {
		t.Errorf("frames_total = %v, want 3", got)
	}
}

func TestFrameLoopMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	var now time.Time
	clock := func() time.Time {
		now = now.Add(5 * time.Millisecond)
		return now
	}
	l := newTestLoop(t, newSwapPresenter(8, 8), WithRegisterer(reg), WithClock(clock))

	if err := l.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
		if mf.GetName() == "fbtext_frame_draw_seconds" {
			h := mf.GetMetric()[0].GetHistogram()
			if h.GetSampleCount() != 1 || h.GetSampleSum() != 0.005 {
				t.Errorf("draw histogram count = %d sum = %v, want 1, 0.005", h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	for _, name := range []string{"fbtext_frames_total", "fbtext_frame_draw_seconds", "fbtext_present_errors_total"} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestNewFrameLoopErrors(t *testing.T) {
	if _, err := NewFrameLoop(nil, nil); err == nil {
		t.Error("NewFrameLoop(nil) succeeded")
	}
	p := newSwapPresenter(4, 4)
	if _, err := NewFrameLoop(p, nil); !errors.Is(err, ErrFramebufferSize) {
		t.Errorf("NewFrameLoop with small buffer error = %v, want ErrFramebufferSize", err)
	}
}

func TestFrameLoopShrunkBuffer(t *testing.T) {
	p := newSwapPresenter(8, 8)
	l := newTestLoop(t, p)
	p.bufs[0] = make([]byte, 10)

	if err := l.Render(nil); !errors.Is(err, ErrFramebufferSize) {
		t.Errorf("Render error = %v, want ErrFramebufferSize", err)
	}
}
