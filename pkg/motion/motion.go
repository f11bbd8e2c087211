// Package motion advances floating items by one frame: Euler integration,
// pairwise repulsion and containment inside a safe rectangle.
//
// Step is a pure function of its inputs. The only randomness of the package
// lives in Spawner, which is used when an item is created.
package motion

import (
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
)

const (
	DefaultMinDistance    = 160.0 // closest two item centers may get after a tick
	DefaultBounceStrength = 0.5   // speed given to an item after a close encounter
	DefaultSpawnSpeed     = 0.4   // max speed per axis at creation
)

// Body is the part of an item the engine reads and writes.
type Body struct {
	ID  string
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Params holds the tunables of a tick.
type Params struct {
	MinDistance    float64 `json:"minDistance"`
	BounceStrength float64 `json:"bounceStrength"`
}

// DefaultParams returns the parameters used by the board out of the box.
func DefaultParams() Params {
	return Params{
		MinDistance:    DefaultMinDistance,
		BounceStrength: DefaultBounceStrength,
	}
}

// UpdatePhysics applies the velocity to the body position (one tick = one frame).
func (b *Body) UpdatePhysics() {
	b.Pos = b.Pos.Add(b.Vel)
}

// RepelFrom pushes b away from other when their centers are closer than
// p.MinDistance. The push is half the overlap along the direction going from
// other to b, and the velocity is replaced by BounceStrength along the same
// direction. Coincident centers are left alone. It reports whether b moved.
func (b *Body) RepelFrom(other geometry.Vector2D, p Params) bool {
	dist := b.Pos.DistanceTo(other)
	if dist == 0 || dist >= p.MinDistance {
		return false
	}
	angle := other.AngleTo(b.Pos)
	overlap := (p.MinDistance - dist) / 2
	b.Pos = b.Pos.Add(geometry.NewVectorPolar(overlap, angle))
	b.Vel = geometry.NewVectorPolar(p.BounceStrength, angle)
	return true
}

// BounceOffWalls clamps the body inside bounds and reverses the velocity of
// every axis that touched or crossed a wall. Both axes may trigger together.
func (b *Body) BounceOffWalls(bounds geometry.Rect) {
	if b.Pos.X <= bounds.MinX {
		b.Pos.X = bounds.MinX
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X >= bounds.MaxX {
		b.Pos.X = bounds.MaxX
		b.Vel.X = -b.Vel.X
	}

	if b.Pos.Y <= bounds.MinY {
		b.Pos.Y = bounds.MinY
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y >= bounds.MaxY {
		b.Pos.Y = bounds.MaxY
		b.Vel.Y = -b.Vel.Y
	}
}

// Step computes the next frame for bodies and returns it as a new slice; the
// input slice is not modified.
//
// Bodies are processed in slice order. Each one is integrated, then pushed
// away from every other body at that body's current position (earlier bodies
// already hold their new position, later ones still hold the previous one),
// then contained in bounds. The outcome therefore depends on the order of the
// slice.
//
// bounds must be ordered (see geometry.Rect.IsValid).
func Step(bounds geometry.Rect, bodies []Body, p Params) []Body {
	next := make([]Body, len(bodies))
	copy(next, bodies)
	StepInPlace(bounds, next, p)
	return next
}

// StepInPlace is Step writing its result back into bodies. It exists for
// callers that own a scratch buffer and want to avoid the allocation.
func StepInPlace(bounds geometry.Rect, bodies []Body, p Params) {
	for i := range bodies {
		me := &bodies[i]
		me.UpdatePhysics()

		for j := range bodies {
			if j == i {
				continue
			}
			me.RepelFrom(bodies[j].Pos, p)
		}

		me.BounceOffWalls(bounds)
	}
}
