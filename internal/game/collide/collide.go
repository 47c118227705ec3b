// Package collide detects and resolves the frame's collisions between
// the player, enemies, bullets, and power-ups. It reads the entity
// collections, applies damage and destruction, and reports what
// happened; it never creates entities and never transitions session
// state (game over belongs to the orchestrator).
package collide

import (
	"sort"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game/entity"
)

// Kill records an enemy destroyed by player fire. The spawn position is
// kept so the orchestrator can roll a power-up drop there.
type Kill struct {
	ID    entity.ID
	Pos   core.Vec2
	Kind  entity.EnemyKind
	Score int // points awarded, streak bonus included
}

// Report is the outcome of one frame's resolution.
type Report struct {
	Destroyed  []entity.ID          // every entity destroyed this frame
	Kills      []Kill               // enemies destroyed by player bullets
	PickedUp   []entity.PowerUpKind // power-ups collected by the player
	ScoreDelta int
	PlayerHit  bool
	PlayerDied bool // lives exhausted; the caller owns the transition

	// Diagnostic counters, populated only in debug mode. They must
	// never influence gameplay outcomes.
	PairsTested int
	Collisions  int
}

// Manager resolves collisions with a fixed, deterministic phase order.
type Manager struct {
	contact config.EnemiesConfig
	scoring config.ScoringConfig
	debug   bool
}

// New creates a collision manager. With debug set, reports carry
// pair-test and collision counters.
func New(cfg config.Config, debug bool) *Manager {
	return &Manager{
		contact: cfg.Enemies,
		scoring: cfg.Scoring,
		debug:   debug,
	}
}

// Resolve detects and resolves all collisions for the frame.
//
// Phase order is fixed for determinism:
//  1. player bullets vs enemies
//  2. enemy bullets vs player
//  3. enemies vs player (ramming)
//  4. power-ups vs player
//
// Within each phase entities are visited in ascending creation ID, and
// a bullet resolves at most one collision per frame: the first overlap
// in ID order wins. Same-owner pairs are never tested. Overlap means
// non-zero intersection area; edge contact is not a collision.
func (m *Manager) Resolve(player *entity.Player, enemies []*entity.Enemy, bullets []*entity.Bullet, powerups []*entity.PowerUp) Report {
	var rep Report

	sortedEnemies := sortEnemies(enemies)
	sortedBullets := sortBullets(bullets)

	m.resolveBulletsVsEnemies(player, sortedEnemies, sortedBullets, &rep)
	m.resolveBulletsVsPlayer(player, sortedBullets, &rep)
	m.resolveRamming(player, sortedEnemies, &rep)
	m.resolvePickups(player, sortPowerUps(powerups), &rep)

	return rep
}

// resolveBulletsVsEnemies applies player fire. A killed enemy awards
// its score value, multiplied by the streak bonus once the player's
// kill streak is hot, and extends the streak.
func (m *Manager) resolveBulletsVsEnemies(player *entity.Player, enemies []*entity.Enemy, bullets []*entity.Bullet, rep *Report) {
	for _, b := range bullets {
		if !b.Alive || b.Owner != entity.OwnerPlayer {
			continue
		}
		for _, e := range enemies {
			if !e.Alive {
				continue
			}
			m.countPair(rep)
			if !b.Shape().IntersectsRect(e.Bounds()) {
				continue
			}
			m.countHit(rep)

			b.Alive = false
			rep.Destroyed = append(rep.Destroyed, b.ID)

			if e.TakeDamage(b.Damage) {
				score := e.ScoreValue
				if player.StreakHot() {
					score = int(float64(score) * m.scoring.StreakMultiplier)
				}
				rep.Destroyed = append(rep.Destroyed, e.ID)
				rep.Kills = append(rep.Kills, Kill{ID: e.ID, Pos: e.Pos, Kind: e.Kind, Score: score})
				rep.ScoreDelta += score
				player.RecordKill()
			}
			break // one collision per bullet per frame
		}
	}
}

// resolveBulletsVsPlayer applies enemy fire to the player, shield first.
func (m *Manager) resolveBulletsVsPlayer(player *entity.Player, bullets []*entity.Bullet, rep *Report) {
	for _, b := range bullets {
		if !player.Alive {
			return
		}
		if !b.Alive || b.Owner != entity.OwnerEnemy {
			continue
		}
		m.countPair(rep)
		if !b.Shape().IntersectsRect(player.Bounds()) {
			continue
		}
		if player.Invulnerable() {
			// Grace window: shots pass through, nothing is consumed.
			continue
		}
		m.countHit(rep)

		b.Alive = false
		rep.Destroyed = append(rep.Destroyed, b.ID)
		rep.PlayerHit = true
		if player.Hit(b.Damage) {
			rep.PlayerDied = true
		}
	}
}

// resolveRamming handles direct enemy contact: the enemy is destroyed
// without score and the player takes the configured contact damage.
func (m *Manager) resolveRamming(player *entity.Player, enemies []*entity.Enemy, rep *Report) {
	for _, e := range enemies {
		if !player.Alive {
			return
		}
		if !e.Alive {
			continue
		}
		m.countPair(rep)
		if !e.Bounds().Intersects(player.Bounds()) {
			continue
		}
		if player.Invulnerable() {
			continue
		}
		m.countHit(rep)

		e.Alive = false
		rep.Destroyed = append(rep.Destroyed, e.ID)
		rep.PlayerHit = true
		if player.Hit(m.contact.ContactDamage) {
			rep.PlayerDied = true
		}
	}
}

// resolvePickups collects power-ups the player overlaps.
func (m *Manager) resolvePickups(player *entity.Player, powerups []*entity.PowerUp, rep *Report) {
	for _, p := range powerups {
		if !player.Alive {
			return
		}
		if !p.Alive {
			continue
		}
		m.countPair(rep)
		if !p.Bounds().Intersects(player.Bounds()) {
			continue
		}
		m.countHit(rep)

		p.Alive = false
		rep.Destroyed = append(rep.Destroyed, p.ID)
		rep.PickedUp = append(rep.PickedUp, p.Kind)
		player.ApplyPowerUp(p.Kind)
	}
}

func (m *Manager) countPair(rep *Report) {
	if m.debug {
		rep.PairsTested++
	}
}

func (m *Manager) countHit(rep *Report) {
	if m.debug {
		rep.Collisions++
	}
}

// The sort helpers return copies ordered by ascending creation ID, the
// deterministic tie-break for simultaneous overlaps. Callers keep their
// own ordering.

func sortEnemies(s []*entity.Enemy) []*entity.Enemy {
	out := make([]*entity.Enemy, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortBullets(s []*entity.Bullet) []*entity.Bullet {
	out := make([]*entity.Bullet, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortPowerUps(s []*entity.PowerUp) []*entity.PowerUp {
	out := make([]*entity.PowerUp, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
