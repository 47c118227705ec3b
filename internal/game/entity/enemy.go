package entity

import (
	"math"

	"github.com/vovakirdan/voidrunner/internal/core"
)

// EnemyKind selects an enemy's movement and fire behavior.
// New kinds are added as new cases in Enemy.steer and Enemy.fire without
// touching the Entity record or the collision manager.
type EnemyKind int

const (
	EnemyBasic  EnemyKind = iota // constant downward drift, fires straight down
	EnemyZigzag                  // descends on a sine path
	EnemyChaser                  // steers toward the player, rams instead of shooting
	EnemyBoss                    // locks near the top, tracks the player, fires a fan
)

// String returns a human-readable kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyZigzag:
		return "zigzag"
	case EnemyChaser:
		return "chaser"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Boss steering tuning. The boss chases a lagged target of the player's
// X so it always trails slightly behind.
const (
	bossTrackLag   = 2.5 // target approach rate, 1/s
	bossSteerGain  = 3.0 // velocity per cell of offset
	bossDescendVel = 4.0 // cells/s while moving into position
)

// Chaser oscillation, perpendicular to the pursuit direction.
const (
	chaserOscAmplitude = 4.0
	chaserOscFrequency = 4.0
)

// EnemyParams carries the spawn-time parameters of one enemy.
// The spawn manager computes these from configuration and the current
// wave's difficulty multiplier, so the entity itself stays config-free.
type EnemyParams struct {
	Kind         EnemyKind
	Health       int
	Speed        float64 // base movement speed, cells/s
	ScoreValue   int
	FireInterval float64 // difficulty-scaled, floored; 0 = never fires
	BulletSpeed  float64 // difficulty-scaled enemy bullet speed
	BulletDamage int
	BulletRadius float64
	Width        float64
	Height       float64

	// Zigzag path shape; unused by other kinds.
	ZigzagAmplitude float64
	ZigzagFrequency float64

	// Boss-only: the row it holds and which boss this is (1 = first).
	LockY     float64
	BossLevel int
}

// Enemy is a hostile ship. Variant behavior is selected by Kind.
type Enemy struct {
	Entity
	Kind       EnemyKind
	ScoreValue int

	params    EnemyParams
	fireLeft  float64 // seconds until the next shot
	timeAlive float64
	baseX     float64 // oscillation center for zigzag
	targetX   float64 // lagged tracking target for boss
}

// NewEnemy creates a live enemy at pos.
func NewEnemy(id ID, pos core.Vec2, params EnemyParams) *Enemy {
	e := &Enemy{
		Entity: Entity{
			ID:     id,
			Pos:    pos,
			Health: params.Health,
			Alive:  true,
		},
		Kind:       params.Kind,
		ScoreValue: params.ScoreValue,
		params:     params,
		fireLeft:   params.FireInterval,
		baseX:      pos.X,
		targetX:    pos.X,
	}
	switch params.Kind {
	case EnemyBasic:
		e.Vel = core.Vec2{Y: params.Speed}
	case EnemyZigzag:
		e.Vel = core.Vec2{Y: params.Speed}
	}
	return e
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() core.Rect {
	return core.RectAround(e.Pos, e.params.Width, e.params.Height)
}

// MaxHealth returns the health the enemy spawned with.
func (e *Enemy) MaxHealth() int {
	return e.params.Health
}

// Update advances the enemy by dt seconds: kind-specific steering, linear
// motion, fire cadence, and despawn on leaving the play bounds. Bullets
// fired this frame are returned (the boss fires a fan of five).
func (e *Enemy) Update(dt float64, playerPos core.Vec2, bounds core.Rect, ids *IDSource) []*Bullet {
	if !e.Alive {
		return nil
	}
	dt = ClampDT(dt)

	e.timeAlive += dt
	e.steer(dt, playerPos, bounds)
	e.Advance(dt)
	e.clampOrDespawn(bounds)
	if !e.Alive {
		return nil
	}

	return e.fire(dt, ids)
}

// steer sets velocity according to the kind's movement pattern.
func (e *Enemy) steer(dt float64, playerPos core.Vec2, bounds core.Rect) {
	switch e.Kind {
	case EnemyBasic:
		// Velocity fixed at construction.

	case EnemyZigzag:
		// Oscillate around the spawn column while descending.
		targetX := e.baseX + e.params.ZigzagAmplitude*math.Sin(e.timeAlive*e.params.ZigzagFrequency)
		e.Vel.Y = e.params.Speed
		e.Vel.X = (targetX - e.Pos.X) * 3.0

	case EnemyChaser:
		dir := playerPos.Sub(e.Pos).Normalized()
		vel := dir.Scale(e.params.Speed)
		// Perpendicular wobble makes the pursuit harder to lead.
		perp := core.Vec2{X: -dir.Y, Y: dir.X}
		wobble := chaserOscAmplitude * math.Sin(e.timeAlive*chaserOscFrequency)
		e.Vel = vel.Add(perp.Scale(wobble))

	case EnemyBoss:
		// Track a lagged copy of the player's column.
		e.targetX += (playerPos.X - e.targetX) * bossTrackLag * dt
		desired := (e.targetX - e.Pos.X) * bossSteerGain
		e.Vel.X = core.ClampF(desired, -e.params.Speed, e.params.Speed)

		if e.Pos.Y < e.params.LockY {
			e.Vel.Y = bossDescendVel
		} else {
			e.Vel.Y = 0
			e.Pos.Y = e.params.LockY
		}
	}
}

// clampOrDespawn handles bounds: the boss is clamped inside, everything
// else dies once fully below the play area (no score is awarded for
// enemies that escape).
func (e *Enemy) clampOrDespawn(bounds core.Rect) {
	if e.Kind == EnemyBoss {
		hw := e.params.Width / 2
		e.Pos.X = core.ClampF(e.Pos.X, bounds.X+hw, bounds.Right()-hw)
		return
	}
	if e.Pos.Y-e.params.Height/2 > bounds.Bottom() {
		e.Alive = false
	}
}

// fire runs the cooldown and emits this frame's bullets.
// The cadence interval was difficulty-scaled (with a floor) at spawn.
func (e *Enemy) fire(dt float64, ids *IDSource) []*Bullet {
	if e.params.FireInterval <= 0 {
		return nil
	}
	e.fireLeft -= dt
	if e.fireLeft > 0 {
		return nil
	}
	e.fireLeft += e.params.FireInterval

	muzzle := core.Vec2{X: e.Pos.X, Y: e.Pos.Y + e.params.Height/2 + 0.5}
	if e.Kind == EnemyBoss {
		return e.fanShot(muzzle, ids)
	}
	vel := core.Vec2{Y: e.params.BulletSpeed}
	return []*Bullet{
		NewBullet(ids.Next(), muzzle, vel, OwnerEnemy, e.params.BulletDamage, e.params.BulletRadius),
	}
}

// fanShot spreads five bullets at -30, -15, 0, 15 and 30 degrees from
// straight down.
func (e *Enemy) fanShot(muzzle core.Vec2, ids *IDSource) []*Bullet {
	angles := []float64{-math.Pi / 6, -math.Pi / 12, 0, math.Pi / 12, math.Pi / 6}
	bullets := make([]*Bullet, 0, len(angles))
	for _, a := range angles {
		vel := core.Vec2{
			X: math.Sin(a) * e.params.BulletSpeed,
			Y: math.Cos(a) * e.params.BulletSpeed,
		}
		bullets = append(bullets, NewBullet(ids.Next(), muzzle, vel, OwnerEnemy, e.params.BulletDamage, e.params.BulletRadius))
	}
	return bullets
}
