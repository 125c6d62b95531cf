package render

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font cell used when no face is available
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// Padding around a button label
type Padding struct {
	Left, Top, Right, Bottom float64
}

// UniformPadding pads every side by p
func UniformPadding(p float64) Padding {
	return Padding{Left: p, Top: p, Right: p, Bottom: p}
}

// ButtonStyle holds the look of a button
type ButtonStyle struct {
	Face       text.Face
	FontSize   float64
	Fill       color.RGBA
	HoverFill  color.RGBA
	Background color.RGBA
	Padding    Padding
}

// Button is a text label with a filled background that changes its fill
// color while hovered
type Button struct {
	Label string
	// X and Y locate the origin point of the button
	X, Y float64
	// OriginX and OriginY are normalized: 0,0 is the top left, .5,.5 the center
	OriginX, OriginY float64

	style   ButtonStyle
	width   float64
	height  float64
	hovered bool
}

// NewButton creates a button and measures its label
func NewButton(label string, x, y, originX, originY float64, style ButtonStyle) *Button {
	b := &Button{
		Label:   label,
		X:       x,
		Y:       y,
		OriginX: originX,
		OriginY: originY,
		style:   style,
	}
	tw, th := b.measure()
	b.width = tw + style.Padding.Left + style.Padding.Right
	b.height = th + style.Padding.Top + style.Padding.Bottom
	return b
}

func (b *Button) measure() (float64, float64) {
	if b.style.Face == nil {
		return float64(utf8.RuneCountInString(b.Label) * debugGlyphWidth), debugGlyphHeight
	}
	return text.Measure(b.Label, b.style.Face, b.lineSpacing())
}

func (b *Button) lineSpacing() float64 {
	if b.style.FontSize > 0 {
		return b.style.FontSize * 1.2
	}
	return debugGlyphHeight
}

// Size returns the button size including padding
func (b *Button) Size() (float64, float64) {
	return b.width, b.height
}

// Bounds returns the top left and bottom right corners
func (b *Button) Bounds() (x0, y0, x1, y1 float64) {
	x0 = b.X - b.width*b.OriginX
	y0 = b.Y - b.height*b.OriginY
	return x0, y0, x0 + b.width, y0 + b.height
}

// Contains reports whether (x, y) is on the button
func (b *Button) Contains(x, y float64) bool {
	x0, y0, x1, y1 := b.Bounds()
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// Hover updates the hover state from the cursor position
func (b *Button) Hover(x, y float64) bool {
	b.hovered = b.Contains(x, y)
	return b.hovered
}

// Hovered reports whether the cursor was over the button on the last Hover
func (b *Button) Hovered() bool {
	return b.hovered
}

// Fill returns the current label color
func (b *Button) Fill() color.RGBA {
	if b.hovered {
		return b.style.HoverFill
	}
	return b.style.Fill
}

// Draw renders the background and the label
func (b *Button) Draw(screen *ebiten.Image) {
	x0, y0, _, _ := b.Bounds()
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(b.width), float32(b.height), b.style.Background, false)

	tx := x0 + b.style.Padding.Left
	ty := y0 + b.style.Padding.Top
	if b.style.Face == nil {
		ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(tx, ty)
	op.ColorScale.ScaleWithColor(b.Fill())
	op.LineSpacing = b.lineSpacing()
	text.Draw(screen, b.Label, b.style.Face, op)
}
