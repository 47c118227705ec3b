package entity

import (
	"github.com/vovakirdan/voidrunner/internal/core"
)

// Owner tags who fired a bullet. Collision resolution never tests a
// bullet against entities on the same side.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns a human-readable owner name.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Bullet is a projectile with a circular bounding shape.
type Bullet struct {
	Entity
	Owner  Owner
	Damage int
	Radius float64
}

// NewBullet creates a live bullet at pos moving with vel.
func NewBullet(id ID, pos, vel core.Vec2, owner Owner, damage int, radius float64) *Bullet {
	return &Bullet{
		Entity: Entity{
			ID:     id,
			Pos:    pos,
			Vel:    vel,
			Health: 1,
			Alive:  true,
		},
		Owner:  owner,
		Damage: damage,
		Radius: radius,
	}
}

// Shape returns the bullet's bounding circle.
func (b *Bullet) Shape() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Update moves the bullet and despawns it once it leaves the play bounds.
func (b *Bullet) Update(dt float64, bounds core.Rect) {
	if !b.Alive {
		return
	}
	b.Advance(dt)

	// A bullet only dies once fully outside; grazing the edge keeps it
	// alive so shots fired at the border still resolve.
	if b.Pos.X+b.Radius < bounds.X || b.Pos.X-b.Radius > bounds.Right() ||
		b.Pos.Y+b.Radius < bounds.Y || b.Pos.Y-b.Radius > bounds.Bottom() {
		b.Alive = false
	}
}
