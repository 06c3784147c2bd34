package fbtext

// SetPixel blends c onto the pixel at (x, y). Off-canvas pixels are ignored.
func (dc *Context) SetPixel(x, y int, c Color) {
	dc.surface().Pixel(x, y, c)
}

// DrawRectangle fills a rectangle. Opaque colors are stored four pixels at
// a time without blending; translucent colors are blended.
func (dc *Context) DrawRectangle(x, y, w, h int, c Color) {
	dc.surface().FillRect(x, y, w, h, c)
}

// DrawRectangleBlended blends c over every pixel of the rectangle.
func (dc *Context) DrawRectangleBlended(x, y, w, h int, c Color) {
	dc.surface().BlendRect(x, y, w, h, c)
}

// DrawShadow draws the drop shadow of a rectangle: a band of at most four
// rows below it, fading out and narrowing with each row.
func (dc *Context) DrawShadow(x, y, w, h int) {
	dc.surface().Shadow(x, y, w, h)
}

// Clear fills the whole canvas with c. The alpha of c is ignored.
func (dc *Context) Clear(c Color) {
	dc.surface().Clear(c)
}

// ClearBackground fills the canvas with the theme background color.
func (dc *Context) ClearBackground() {
	dc.Clear(dc.rc.Theme.BackgroundColor)
}
