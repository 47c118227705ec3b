// Package entity defines the simulated objects of the game: the player
// ship, enemies, bullets, and power-ups. All entities share a common
// record (position, velocity, health, alive flag) and move linearly;
// variant behavior is dispatched over a kind tag rather than a type
// hierarchy.
package entity

import (
	"github.com/vovakirdan/voidrunner/internal/core"
)

// ID is an opaque handle identifying an entity within one session.
// IDs are allocated monotonically, so ascending ID order is creation
// order; collision resolution uses it as the deterministic tie-break.
type ID uint64

// IDSource hands out session-unique entity IDs.
type IDSource struct {
	next ID
}

// NewIDSource creates an allocator starting at 1. ID 0 is never issued.
func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

// Next returns a fresh ID.
func (s *IDSource) Next() ID {
	id := s.next
	s.next++
	return id
}

// Entity is the common record shared by every simulated object.
// Positions are centers, in screen cells.
type Entity struct {
	ID     ID
	Pos    core.Vec2
	Vel    core.Vec2
	Health int
	Alive  bool
}

// Advance applies linear motion: pos += vel * dt.
// Negative or zero dt is clamped to 0 so a bad clock can never move an
// entity backwards.
func (e *Entity) Advance(dt float64) {
	dt = ClampDT(dt)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// TakeDamage reduces health and clears the alive flag at zero.
// Returns true if this damage destroyed the entity.
func (e *Entity) TakeDamage(amount int) bool {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		return true
	}
	return false
}

// ClampDT clamps a frame delta to be non-negative. Cooldown and motion
// logic must never run backwards on a misbehaving clock.
func ClampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	return dt
}
