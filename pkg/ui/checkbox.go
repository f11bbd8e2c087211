package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label    string
	Value    bool
	X, Y     float64
	Size     float64
	OnToggle func(bool)
	held     bool
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// handle toggles Value once per press over the box.
func (c *Checkbox) handle(mx, my float64, pressed bool) bool {
	if pressed && inside(mx, my, c.X, c.Y, c.Size, c.Size) {
		if c.held {
			return false
		}
		c.held = true
		c.Value = !c.Value
		if c.OnToggle != nil {
			c.OnToggle(c.Value)
		}
		return true
	}
	c.held = false
	return false
}

func (c *Checkbox) Update() {
	mx, my := cursor()
	c.handle(mx, my, leftPressed())
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, ColorNeonCyan, true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+3), float32(c.Y+3),
			float32(c.Size-6), float32(c.Size-6),
			ColorNeonGreen, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}

func (c *Checkbox) Height() float64 {
	return c.Size + 8
}

func (c *Checkbox) MoveTo(x, y float64) {
	c.X, c.Y = x, y
}
