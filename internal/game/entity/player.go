package entity

import (
	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
)

// Player is the player ship. One instance per session, owned by the
// session and never shared.
type Player struct {
	Entity

	Shield     int
	Lives      int
	KillStreak int

	cfg     config.PlayerConfig
	bullets config.BulletConfig
	power   config.PowerUpConfig
	scoring config.ScoringConfig
	bounds  core.Rect // play area the ship is clamped to
	spawn   core.Vec2 // respawn point

	cooldown      float64 // seconds until the next shot is allowed
	invuln        float64 // invulnerability window remaining
	sinceDamage   float64 // seconds since the last hit, drives shield regen
	sinceKill     float64 // seconds since the last kill, drives streak timeout
	rapidFireLeft float64 // rapid-fire power-up time remaining
	shieldFrac    float64 // fractional shield regen accumulator
}

// NewPlayer creates the player ship at its spawn point.
func NewPlayer(id ID, cfg config.PlayerConfig, bullets config.BulletConfig, power config.PowerUpConfig, scoring config.ScoringConfig, bounds core.Rect) *Player {
	spawn := core.Vec2{
		X: bounds.X + bounds.W/2,
		Y: bounds.Bottom() - cfg.Height - 1,
	}
	return &Player{
		Entity: Entity{
			ID:     id,
			Pos:    spawn,
			Health: cfg.MaxHealth,
			Alive:  true,
		},
		Shield:      cfg.MaxShield,
		Lives:       cfg.Lives,
		cfg:         cfg,
		bullets:     bullets,
		power:       power,
		scoring:     scoring,
		bounds:      bounds,
		spawn:       spawn,
		sinceDamage: cfg.ShieldRegenDelay, // no artificial regen delay at spawn
	}
}

// Bounds returns the ship's bounding box.
func (p *Player) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.cfg.Width, p.cfg.Height)
}

// Invulnerable reports whether the post-hit grace window is active.
func (p *Player) Invulnerable() bool {
	return p.invuln > 0
}

// RapidFireActive reports whether the rapid-fire power-up is running.
func (p *Player) RapidFireActive() bool {
	return p.rapidFireLeft > 0
}

// MaxHealth returns the configured health pool size.
func (p *Player) MaxHealth() int { return p.cfg.MaxHealth }

// MaxShield returns the configured shield pool size.
func (p *Player) MaxShield() int { return p.cfg.MaxShield }

// Update advances the ship by dt seconds: movement from the input
// snapshot (diagonals normalized so diagonal speed equals axis speed),
// timers, shield regeneration, and bounds clamping. If the shoot action
// is set and the cooldown has elapsed, the fired bullet is returned.
func (p *Player) Update(dt float64, in core.InputFrame, ids *IDSource) *Bullet {
	dt = ClampDT(dt)

	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir.Y -= 1
	}
	if in.Has(core.ActionDown) {
		dir.Y += 1
	}
	if in.Has(core.ActionLeft) {
		dir.X -= 1
	}
	if in.Has(core.ActionRight) {
		dir.X += 1
	}

	// Normalize, then scale each axis separately: terminal cells are
	// roughly twice as tall as wide, so vertical speed is configured
	// lower to look uniform on screen.
	dir = dir.Normalized()
	p.Vel = core.Vec2{X: dir.X * p.cfg.SpeedX, Y: dir.Y * p.cfg.SpeedY}
	p.Advance(dt)
	p.clampToBounds()

	p.cooldown -= dt
	if p.cooldown < 0 {
		p.cooldown = 0
	}
	if p.invuln > 0 {
		p.invuln -= dt
	}
	if p.rapidFireLeft > 0 {
		p.rapidFireLeft -= dt
	}

	p.sinceDamage += dt
	p.regenShield(dt)

	if p.KillStreak > 0 {
		p.sinceKill += dt
		if p.sinceKill >= p.scoring.StreakTimeout {
			p.KillStreak = 0
		}
	}

	if in.Has(core.ActionShoot) && p.cooldown <= 0 {
		return p.shoot(ids)
	}
	return nil
}

// shoot creates an upward bullet at the muzzle and resets the cooldown.
func (p *Player) shoot(ids *IDSource) *Bullet {
	interval := p.cfg.ShootCooldown
	if p.RapidFireActive() {
		interval *= p.power.RapidFireFactor
	}
	p.cooldown = interval

	muzzle := core.Vec2{X: p.Pos.X, Y: p.Pos.Y - p.cfg.Height/2 - 0.5}
	vel := core.Vec2{X: 0, Y: -p.bullets.PlayerSpeed}
	return NewBullet(ids.Next(), muzzle, vel, OwnerPlayer, p.bullets.PlayerDamage, p.bullets.Radius)
}

// regenShield restores shield points after the configured delay since the
// last hit, carrying fractional progress between frames.
func (p *Player) regenShield(dt float64) {
	if p.Shield >= p.cfg.MaxShield || p.cfg.ShieldRegenRate <= 0 {
		return
	}
	if p.sinceDamage < p.cfg.ShieldRegenDelay {
		return
	}
	p.shieldFrac += p.cfg.ShieldRegenRate * dt
	for p.shieldFrac >= 1 && p.Shield < p.cfg.MaxShield {
		p.Shield++
		p.shieldFrac--
	}
}

func (p *Player) clampToBounds() {
	hw := p.cfg.Width / 2
	hh := p.cfg.Height / 2
	p.Pos.X = core.ClampF(p.Pos.X, p.bounds.X+hw, p.bounds.Right()-hw)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.bounds.Y+hh, p.bounds.Bottom()-hh)
}

// Hit applies damage with the shield absorbing before health, resets the
// kill streak, and opens the invulnerability window. When health is
// exhausted a life is consumed: with lives remaining the ship respawns
// at the spawn point with full pools; with none it is dead and the
// caller receives true.
func (p *Player) Hit(damage int) bool {
	if p.Invulnerable() {
		return false
	}

	p.KillStreak = 0
	p.sinceKill = 0
	p.sinceDamage = 0
	p.shieldFrac = 0

	absorbed := core.Min(p.Shield, damage)
	p.Shield -= absorbed
	damage -= absorbed
	p.Health -= damage

	if p.Health <= 0 {
		p.Lives--
		if p.Lives <= 0 {
			p.Lives = 0
			p.Health = 0
			p.Alive = false
			return true
		}
		p.Health = p.cfg.MaxHealth
		p.Shield = p.cfg.MaxShield
		p.Pos = p.spawn
	}

	p.invuln = p.cfg.InvulnDuration
	return false
}

// RecordKill bumps the kill streak and restarts the streak timeout.
func (p *Player) RecordKill() {
	p.KillStreak++
	p.sinceKill = 0
}

// StreakHot reports whether the streak bonus multiplier currently applies.
func (p *Player) StreakHot() bool {
	return p.KillStreak >= p.scoring.StreakThreshold
}

// ApplyPowerUp applies a picked-up power-up effect.
func (p *Player) ApplyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpRapidFire:
		p.rapidFireLeft = p.power.RapidFireDuration
	case PowerUpShieldBoost:
		p.Shield = core.Min(p.Shield+p.power.ShieldBoost, p.cfg.MaxShield)
	}
}
