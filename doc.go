// Package fbtext draws text and images straight into a raw framebuffer.
//
// # Overview
//
// fbtext targets small devices with a fixed 1280x720, 4 bytes per pixel
// framebuffer. Text is rendered from fFNT bitmap fonts (see package ffnt):
// each glyph is a block of 8-bit coverage bytes that are blended into the
// framebuffer with the text color. There is no outline rasterization or
// shaping at draw time.
//
// # Quick Start
//
//	font, err := fbtext.LoadFont("ui.ffnt")
//	if err != nil {
//	    return err
//	}
//
//	rc := fbtext.NewRenderContext(theme)
//	loop, err := fbtext.NewFrameLoop(presenter, rc)
//	if err != nil {
//	    return err
//	}
//
//	err = loop.Render(func(dc *fbtext.Context) {
//	    dc.Clear(theme.BackgroundColor)
//	    dc.DrawText(font, 40, 40, theme.TextColor, "Press \x01 to continue")
//	})
//
// # Inline Icons
//
// Control codepoints 0x01 to 0x08 are drawn as the 25x25 button icons of the
// current theme (A, B, X, Y, L, R, Plus, Minus) and advance the pen by 25
// pixels.
//
// # Render Context
//
// Theme colors and the animation phase live in a [RenderContext] owned by
// the caller and passed to every frame. There is no global drawing state
// apart from the logger.
//
// # Performance
//
// Drawing calls do not allocate. Every framebuffer write is clipped; pixels
// outside the canvas are dropped, never reported.
package fbtext
