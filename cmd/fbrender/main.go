// Command fbrender draws a scene file off-device and writes the frames as
// PNG files, or shows them on a Linux framebuffer device.
//
// Usage:
//
//	fbrender -scene menu.toml [-out frames] [-frames n] [-fbdev /dev/fb0]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/internal/config"
	"github.com/ffnt/fbtext/present"
)

type options struct {
	scene   string
	out     string
	pattern string
	frames  int
	fbdev   string
	swapRB  bool
	metrics bool
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "scene.toml", "scene file")
	flag.StringVar(&opts.out, "out", "frames", "output directory for PNG frames")
	flag.StringVar(&opts.pattern, "pattern", "frame-%04d.png", "frame file name pattern")
	flag.IntVar(&opts.frames, "frames", 0, "number of frames (default: from the scene)")
	flag.StringVar(&opts.fbdev, "fbdev", "", "framebuffer device to present on instead of PNG files")
	flag.BoolVar(&opts.swapRB, "bgr", true, "framebuffer device stores blue first")
	flag.BoolVar(&opts.metrics, "metrics", false, "log frame metrics when done")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fbtext.SetLogger(logger)

	if err := run(opts, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	sc, err := config.LoadScene(opts.scene)
	if err != nil {
		return err
	}
	if opts.frames > 0 {
		sc.Frames = opts.frames
	}

	r, err := newRenderer(sc)
	if err != nil {
		return err
	}

	var p fbtext.Presenter
	if opts.fbdev != "" {
		dev, err := present.OpenFBDev(present.FBDevOptions{
			Device: opts.fbdev,
			SwapRB: opts.swapRB,
			Width:  sc.Width,
			Height: sc.Height,
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = dev.Close()
		}()
		p = dev
	} else {
		png, err := present.NewPNG(opts.out, opts.pattern, sc.Width, sc.Height)
		if err != nil {
			return err
		}
		p = png
	}

	reg := prometheus.NewRegistry()
	loop, err := fbtext.NewFrameLoop(p, fbtext.NewRenderContext(r.theme),
		fbtext.WithRegisterer(reg),
		fbtext.WithContextOptions(fbtext.WithSize(sc.Width, sc.Height)))
	if err != nil {
		return err
	}

	for range sc.Frames {
		if err := loop.Render(r.draw); err != nil {
			return err
		}
	}
	logger.Info("scene rendered", "scene", opts.scene, "frames", sc.Frames)

	if opts.metrics {
		return logMetrics(reg, logger)
	}
	return nil
}

func logMetrics(g prometheus.Gatherer, logger *slog.Logger) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				logger.Info("metric", "name", mf.GetName(), "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
		}
	}
	return nil
}
