package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelPadding  = 10
	sectionHeight = 25
)

type section struct {
	title string
	start int // index of its first widget
}

// Panel stacks widgets vertically under optional section headers.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []Widget

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []section
}

func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 12, G: 8, B: 28, A: 220},
		BorderColor: ColorNeonMagenta,
	}
}

// AddSection starts a header, the widgets added next belong to it.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{title: title, start: len(p.Widgets)})
}

func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(0, 0, p.Width-2*panelPadding, label, min, max, value)
	p.add(s)
	return s
}

func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(0, 0, label, value)
	p.add(c)
	return c
}

func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(0, 0, p.Width-2*panelPadding, 24, label, onClick)
	p.add(b)
	return b
}

func (p *Panel) add(w Widget) {
	p.Widgets = append(p.Widgets, w)
	p.layout()
}

// layout places every widget below the title, sections included.
func (p *Panel) layout() {
	y := p.Y + 25
	next := 0
	for i, w := range p.Widgets {
		for next < len(p.sections) && p.sections[next].start == i {
			y += sectionHeight
			next++
		}
		w.MoveTo(p.X+panelPadding, y)
		y += w.Height()
	}
}

// ContentHeight is the height needed to show every widget.
func (p *Panel) ContentHeight() float64 {
	h := 25.0 + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.Height()
	}
	return h + panelPadding
}

func (p *Panel) Update() {
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+5))

	y := p.Y + 25
	next := 0
	for i, w := range p.Widgets {
		for next < len(p.sections) && p.sections[next].start == i {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				ColorDim, true)
			ebitenutil.DebugPrintAt(screen, p.sections[next].title, int(p.X+panelPadding), int(y+3))
			y += sectionHeight
			next++
		}
		w.Draw(screen)
		y += w.Height()
	}
}
