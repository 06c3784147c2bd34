package fbtext

import (
	"math"

	"github.com/ffnt/fbtext/internal/image"
)

// Icon identifies one of the inline button icons.
type Icon uint8

// Button icons, in control codepoint order: IconA is drawn for 0x01 and
// IconMinus for 0x08.
const (
	IconA Icon = iota
	IconB
	IconX
	IconY
	IconL
	IconR
	IconPlus
	IconMinus

	IconCount
)

// Inline icon geometry.
const (
	// IconSize is the width and height of an icon in pixels.
	IconSize = 25

	// IconBytes is the size of one ABGR32 icon buffer.
	IconBytes = IconSize * IconSize * 4

	// iconRise lifts icons above the baseline.
	iconRise = 20
)

// IconFormat is the pixel layout of theme icons.
const IconFormat = image.FormatABGR32

var iconNames = [IconCount]string{"A", "B", "X", "Y", "L", "R", "Plus", "Minus"}

// String returns the button name of the icon.
func (i Icon) String() string {
	if i >= IconCount {
		return unknownStr
	}
	return iconNames[i]
}

// Rune returns the control codepoint that draws the icon.
func (i Icon) Rune() rune {
	return rune(i) + 1
}

// iconForRune maps control codepoints 0x01..0x08 to icons.
func iconForRune(cp rune) (Icon, bool) {
	if cp < 0x01 || cp > 0x08 {
		return 0, false
	}
	return Icon(cp - 1), true
}

// Theme is the set of colors and icons screens are drawn with. A Theme is
// plain data; it is never modified by drawing.
type Theme struct {
	// Icons holds one 25x25 ABGR32 image per button. A nil icon still
	// reserves its 25 pixels of advance.
	Icons [IconCount][]byte

	TextColor       Color
	BackgroundColor Color
	SeparatorColor  Color
	SelectedColor   Color
	TooltipColor    Color
}

// DefaultTheme returns the dark theme without icons.
func DefaultTheme() *Theme {
	return &Theme{
		TextColor:       RGB(0xFF, 0xFF, 0xFF),
		BackgroundColor: RGB(0x2D, 0x2D, 0x2D),
		SeparatorColor:  RGB(0x4D, 0x4D, 0x4D),
		SelectedColor:   RGB(0x5B, 0xED, 0xE0),
		TooltipColor:    RGB(0x22, 0x22, 0x22),
	}
}

// Highlight color ramp. The highlight oscillates between the base and
// base+range as the phase advances.
var (
	highlightBase  = [3]float64{0x27, 0xA3, 0xC7}
	highlightRange = [3]float64{0x61, 0x4F, 0x29}
)

// PhaseStep is how far the animation phase advances per presented frame.
const PhaseStep = 0.2

// RenderContext is the per-frame drawing state: the theme in use and the
// animation phase. It is owned by the caller and handed to each frame
// explicitly.
type RenderContext struct {
	Theme *Theme

	// Phase is the animation phase in radians. It only grows.
	Phase float64

	// Highlight is the animated selection color for the current frame,
	// computed by Begin.
	Highlight Color
}

// NewRenderContext returns a render context for theme at phase 0. A nil
// theme selects DefaultTheme.
func NewRenderContext(theme *Theme) *RenderContext {
	if theme == nil {
		theme = DefaultTheme()
	}
	rc := &RenderContext{Theme: theme}
	rc.Begin()
	return rc
}

// Begin prepares the context for drawing a frame by deriving the highlight
// color from the phase.
func (rc *RenderContext) Begin() {
	m := (math.Sin(rc.Phase) + 1) / 2
	rc.Highlight = Color{
		R: uint8(highlightBase[0] + highlightRange[0]*m),
		G: uint8(highlightBase[1] + highlightRange[1]*m),
		B: uint8(highlightBase[2] + highlightRange[2]*m),
		A: 0xFF,
	}
}

// Advance moves the animation phase forward by one frame.
func (rc *RenderContext) Advance() {
	rc.Phase += PhaseStep
}

// icon returns the image for i, or nil if there is none.
func (rc *RenderContext) icon(i Icon) []byte {
	if rc == nil || rc.Theme == nil {
		return nil
	}
	return rc.Theme.Icons[i]
}
