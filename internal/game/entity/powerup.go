package entity

import (
	"github.com/vovakirdan/voidrunner/internal/core"
)

// PowerUpKind selects a power-up effect.
type PowerUpKind int

const (
	PowerUpRapidFire   PowerUpKind = iota // halves the fire cooldown for a duration
	PowerUpShieldBoost                    // instantly restores shield points
)

// String returns a human-readable kind name.
func (k PowerUpKind) String() string {
	if k == PowerUpRapidFire {
		return "rapid_fire"
	}
	return "shield_boost"
}

// PowerUp is a pickup dropped by a destroyed enemy. It falls straight
// down and despawns below the play area.
type PowerUp struct {
	Entity
	Kind PowerUpKind
	size float64
}

// NewPowerUp creates a falling pickup at pos.
func NewPowerUp(id ID, pos core.Vec2, kind PowerUpKind, fallSpeed float64) *PowerUp {
	return &PowerUp{
		Entity: Entity{
			ID:     id,
			Pos:    pos,
			Vel:    core.Vec2{Y: fallSpeed},
			Health: 1,
			Alive:  true,
		},
		Kind: kind,
		size: 1.5,
	}
}

// Bounds returns the pickup's bounding box.
func (p *PowerUp) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.size, p.size)
}

// Update moves the pickup and despawns it below the play area.
func (p *PowerUp) Update(dt float64, bounds core.Rect) {
	if !p.Alive {
		return
	}
	p.Advance(dt)
	if p.Pos.Y-p.size/2 > bounds.Bottom() {
		p.Alive = false
	}
}
