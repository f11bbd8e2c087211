// Package board holds the authoritative state of the floating items: for each
// live id its position, velocity and the payload owned by the caller.
package board

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrNotFound    = errors.New("not found")
	ErrEmptyID     = errors.New("empty id")
)

// Entity is one simulated item. Payload belongs to the caller, the store
// and the motion engine never look into it.
type Entity[P any] struct {
	ID      string
	Pos     geometry.Vector2D
	Vel     geometry.Vector2D
	Payload P
}

// Body returns the part of the entity the motion engine works on.
func (e Entity[P]) Body() motion.Body {
	return motion.Body{ID: e.ID, Pos: e.Pos, Vel: e.Vel}
}

// Store is an arena of entities kept in insertion order with an id index.
// It has no locking: it is meant to have a single owner (see simulation.BoardActor).
type Store[P any] struct {
	entities []Entity[P]
	index    map[string]int
	bodies   []motion.Body // scratch buffer reused by Tick
}

// New creates an empty store.
func New[P any]() *Store[P] {
	return &Store[P]{
		index: make(map[string]int),
	}
}

// Len returns the number of live entities.
func (s *Store[P]) Len() int {
	return len(s.entities)
}

// Insert adds e at the end of the sequence.
func (s *Store[P]) Insert(e Entity[P]) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if _, ok := s.index[e.ID]; ok {
		return fmt.Errorf("insert %q: %w", e.ID, ErrDuplicateID)
	}
	s.index[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
	return nil
}

// Remove deletes the entity with the given id, keeping the order of the others.
func (s *Store[P]) Remove(id string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	copy(s.entities[i:], s.entities[i+1:])
	var zero Entity[P]
	s.entities[len(s.entities)-1] = zero
	s.entities = s.entities[:len(s.entities)-1]
	delete(s.index, id)
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j].ID] = j
	}
	return nil
}

// ReplacePayload swaps the payload of id, position and velocity are kept.
func (s *Store[P]) ReplacePayload(id string, payload P) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("replace payload %q: %w", id, ErrNotFound)
	}
	s.entities[i].Payload = payload
	return nil
}

// Get returns a copy of the entity with the given id.
func (s *Store[P]) Get(id string) (Entity[P], bool) {
	i, ok := s.index[id]
	if !ok {
		var zero Entity[P]
		return zero, false
	}
	return s.entities[i], true
}

// Snapshot returns a copy of the ordered sequence of entities.
// Payloads are copied by value, a pointer payload is shared with the store.
func (s *Store[P]) Snapshot() []Entity[P] {
	out := make([]Entity[P], len(s.entities))
	copy(out, s.entities)
	return out
}

// Tick advances every entity by one frame with motion.StepInPlace and writes
// positions and velocities back. Payloads are left untouched.
func (s *Store[P]) Tick(bounds geometry.Rect, params motion.Params) {
	if len(s.entities) == 0 {
		return
	}
	s.bodies = s.bodies[:0]
	for _, e := range s.entities {
		s.bodies = append(s.bodies, e.Body())
	}

	motion.StepInPlace(bounds, s.bodies, params)

	for i, b := range s.bodies {
		s.entities[i].Pos = b.Pos
		s.entities[i].Vel = b.Vel
	}
}
