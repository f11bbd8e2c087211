package geometry

import "fmt"

// Rect is an axis aligned rectangle given by its inclusive bounds.
// It is used as the safe rectangle items are allowed to roam in.
type Rect struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// NewRect builds a Rect from its bounds.
func NewRect(minX, maxX, minY, maxY float64) Rect {
	return Rect{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f, %.2f]x[%.2f, %.2f]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns MaxY - MinY.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Contains reports whether p lies inside r, bounds included.
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// IsValid reports whether the rectangle is usable as motion bounds:
// both axes ordered (a zero width or height is allowed).
func (r Rect) IsValid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}
