// Package ui holds the few immediate-mode widgets drawn by the ebiten shell.
// Every widget polls the mouse in Update and paints itself in Draw.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Widget is anything the Panel can stack.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	MoveTo(x, y float64)
}

// Neon palette shared by the widgets.
var (
	ColorNeonCyan    = color.RGBA{R: 0, G: 240, B: 255, A: 255}
	ColorNeonMagenta = color.RGBA{R: 255, G: 0, B: 200, A: 255}
	ColorNeonGreen   = color.RGBA{R: 57, G: 255, B: 20, A: 255}
	ColorDim         = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	ColorText        = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// inside reports whether (mx, my) is within the box, edges included.
func inside(mx, my, x, y, w, h float64) bool {
	return mx >= x && mx <= x+w && my >= y && my <= y+h
}

func cursor() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}

func leftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
