package main

import (
	"github.com/pkg/errors"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/internal/config"
	"github.com/ffnt/fbtext/internal/fontc"
)

// renderer holds a scene with all of its assets loaded.
type renderer struct {
	scene  *config.Scene
	font   *fbtext.Font
	theme  *fbtext.Theme
	texts  []string
	images []fbtext.Image
}

func newRenderer(sc *config.Scene) (*renderer, error) {
	r := &renderer{
		scene:  sc,
		texts:  make([]string, len(sc.Items)),
		images: make([]fbtext.Image, len(sc.Items)),
	}

	var err error
	if sc.Font != "" {
		r.font, err = fbtext.LoadFont(sc.Font)
	} else {
		r.font, err = compileDefaultFont(sc.FontSize)
	}
	if err != nil {
		return nil, err
	}

	r.theme = fbtext.DefaultTheme()
	if sc.Theme != "" {
		if r.theme, err = config.LoadTheme(sc.Theme); err != nil {
			return nil, err
		}
	}

	for i, it := range sc.Items {
		switch it.Kind {
		case config.KindText:
			r.texts[i] = it.Text
			if it.TextFile != "" {
				if r.texts[i], err = config.ReadText(it.TextFile); err != nil {
					return nil, err
				}
			}
		case config.KindImage:
			f, _ := it.ImageFormat()
			if r.images[i], err = config.LoadImage(it.Path, it.W, it.H, f); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func compileDefaultFont(size float64) (*fbtext.Font, error) {
	blob, _, err := fontc.Compile(fontc.DefaultFont, fontc.Options{Size: size})
	if err != nil {
		return nil, errors.Wrap(err, "built-in font")
	}
	return fbtext.ParseFont(blob)
}

// draw draws one frame of the scene.
func (r *renderer) draw(dc *fbtext.Context) {
	dc.ClearBackground()
	rc := dc.RenderContext()

	for i, it := range r.scene.Items {
		switch it.Kind {
		case config.KindRect:
			dc.DrawRectangle(it.X, it.Y, it.W, it.H, colorOr(it.Color, r.theme.SeparatorColor))
		case config.KindBlended:
			dc.DrawRectangleBlended(it.X, it.Y, it.W, it.H, colorOr(it.Color, r.theme.TooltipColor))
		case config.KindShadow:
			dc.DrawShadow(it.X, it.Y, it.W, it.H)
		case config.KindHighlight:
			dc.DrawRectangle(it.X, it.Y, it.W, it.H, rc.Highlight)
		case config.KindText:
			c := colorOr(it.Color, r.theme.TextColor)
			if it.MaxWidth > 0 {
				dc.DrawTextTruncate(r.font, it.X, it.Y, c, r.texts[i], it.MaxWidth)
			} else {
				dc.DrawTextAligned(r.font, it.X, it.Y, c, r.texts[i], it.Align)
			}
		case config.KindImage:
			r.drawImage(dc, it, r.images[i])
		}
	}
}

func (r *renderer) drawImage(dc *fbtext.Context, it config.Item, img fbtext.Image) {
	w, h := img.Width, img.Height
	if it.W > 0 && it.H > 0 {
		w, h = it.W, it.H
	}
	if it.Shadow {
		dc.DrawShadow(it.X, it.Y, w, h)
	}
	if (w == img.Width && h == img.Height) || img.Format != fbtext.FormatRGB24 {
		dc.Draw(img, it.X, it.Y)
		return
	}
	if err := dc.DrawImageScaled(it.Path, img, it.X, it.Y, w, h); err != nil {
		fbtext.Logger().Warn("image not drawn", "path", it.Path, "err", err)
	}
}

func colorOr(c *fbtext.Color, fallback fbtext.Color) fbtext.Color {
	if c == nil {
		return fallback
	}
	return *c
}
