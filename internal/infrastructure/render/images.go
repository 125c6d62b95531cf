package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BubbleImageSize is the side of the generated bubble texture
const BubbleImageSize = 256

// LoadImage decodes an image from fsys
func LoadImage(fsys fs.FS, p string) (*ebiten.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", p, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// NewBubbleImage draws a white bubble texture to be tinted per sprite
func NewBubbleImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2

	vector.DrawFilledCircle(img, c, c, c-1, color.RGBA{0xe6, 0xe6, 0xe6, 0xff}, true)
	vector.StrokeCircle(img, c, c, c-3, 4, color.White, true)
	// highlight
	vector.DrawFilledCircle(img, c*0.65, c*0.6, c*0.18, color.White, true)
	return img
}
