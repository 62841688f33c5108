package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fires OnClick once per press.
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	clicked bool
	OnClick func()

	BGColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

func (b *Button) over(mx, my int) bool {
	return inRect(float64(mx), float64(my), b.X, b.Y, b.Width, b.Height)
}

// press feeds one frame of mouse state and fires on the press edge.
func (b *Button) press(over, down bool) {
	if over && down {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
		}
		b.clicked = true
		return
	}
	b.clicked = false
}

func (b *Button) Update() {
	b.press(b.over(ebiten.CursorPosition()), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	if b.over(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+(b.Height-16)/2))
}

func (b *Button) GetHeight() float64 { return b.Height + 8 }

func (b *Button) SetY(y float64) { b.Y = y }
