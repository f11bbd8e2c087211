package motion

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
)

// Spawner hands out initial positions and velocities for new items.
// It is not safe for concurrent use, like the rand.Rand it wraps.
type Spawner struct {
	speed float64
	rng   *rand.Rand
}

// NewSpawner creates a Spawner giving velocities within ±speed on each axis.
// A nil src uses a randomly seeded PCG source.
func NewSpawner(speed float64, src rand.Source) *Spawner {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Spawner{
		speed: speed,
		rng:   rand.New(src),
	}
}

// Speed returns the maximum speed per axis.
func (s *Spawner) Speed() float64 {
	return s.speed
}

// Spawn returns a position uniformly distributed inside bounds and a velocity
// uniformly distributed in [-speed, speed) on each axis.
func (s *Spawner) Spawn(bounds geometry.Rect) (pos, vel geometry.Vector2D) {
	pos = geometry.Vector2D{
		X: bounds.MinX + s.rng.Float64()*bounds.Width(),
		Y: bounds.MinY + s.rng.Float64()*bounds.Height(),
	}
	vel = geometry.Vector2D{
		X: (s.rng.Float64()*2 - 1) * s.speed,
		Y: (s.rng.Float64()*2 - 1) * s.speed,
	}
	return pos, vel
}

// NewBody spawns a Body with the given id inside bounds.
func (s *Spawner) NewBody(id string, bounds geometry.Rect) Body {
	pos, vel := s.Spawn(bounds)
	return Body{ID: id, Pos: pos, Vel: vel}
}
