package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable UI button
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()
	held    bool // button still down since the last click

	BGColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		W:          width,
		H:          height,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 30, G: 20, B: 60, A: 255},
		HoverColor: color.RGBA{R: 70, G: 30, B: 110, A: 255},
	}
}

// handle fires OnClick once per press while the cursor is over the button.
func (b *Button) handle(mx, my float64, pressed bool) bool {
	if pressed && inside(mx, my, b.X, b.Y, b.W, b.H) {
		if b.held {
			return false
		}
		b.held = true
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	b.held = false
	return false
}

func (b *Button) Update() {
	mx, my := cursor()
	b.handle(mx, my, leftPressed())
}

func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := cursor()
	bg := b.BGColor
	if inside(mx, my, b.X, b.Y, b.W, b.H) {
		bg = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H),
		bg, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H),
		2, ColorNeonMagenta, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+b.H/2-8))
}

func (b *Button) Height() float64 {
	return b.H + 6
}

func (b *Button) MoveTo(x, y float64) {
	b.X, b.Y = x, y
}
