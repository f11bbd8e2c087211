// Package viewport turns a window size into the safe rectangle the floating
// items are allowed to roam in.
package viewport

import (
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
)

// Margins reserved around the safe rectangle, in pixels.
// Right and Bottom include the footprint of an item card, since positions
// are the top-left corner of the card.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Layout holds the two margin presets and the width at which they switch.
type Layout struct {
	Desktop          Margins `json:"desktop"`
	Mobile           Margins `json:"mobile"`
	MobileBreakpoint float64 `json:"mobileBreakpoint"`
}

// DefaultLayout returns the margins of the Neon Task board: input controls on
// top, a card footprint of 200x200 plus a 20px gutter.
func DefaultLayout() Layout {
	return Layout{
		Desktop: Margins{
			Top:    200,
			Bottom: 220,
			Left:   0,
			Right:  220,
		},
		Mobile: Margins{
			Top:    260,
			Bottom: 160,
			Left:   0,
			Right:  160,
		},
		MobileBreakpoint: 768,
	}
}

// IsMobile reports whether a viewport of the given width uses the mobile preset.
func (l Layout) IsMobile(width float64) bool {
	return width <= l.MobileBreakpoint
}

// MarginsFor picks the preset matching the viewport width.
func (l Layout) MarginsFor(width float64) Margins {
	if l.IsMobile(width) {
		return l.Mobile
	}
	return l.Desktop
}

// SafeRect computes [Left, width-Right] x [Top, height-Bottom].
// When the viewport is smaller than its margins the axis collapses onto its
// minimum, so the result is always a valid motion bound.
func (l Layout) SafeRect(width, height float64) geometry.Rect {
	m := l.MarginsFor(width)
	r := geometry.Rect{
		MinX: m.Left,
		MaxX: width - m.Right,
		MinY: m.Top,
		MaxY: height - m.Bottom,
	}
	if r.MaxX < r.MinX {
		r.MaxX = r.MinX
	}
	if r.MaxY < r.MinY {
		r.MaxY = r.MinY
	}
	return r
}
