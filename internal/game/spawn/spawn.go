// Package spawn owns wave progression and enemy creation cadence.
// It decides when, where, and what to spawn; it never owns the live
// entity collection and never touches collision or scoring.
package spawn

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game/entity"
)

// Wave describes one batch of enemies. Waves are immutable once
// installed; progression replaces the value rather than mutating it.
type Wave struct {
	Number           int     // 1-based wave number
	RemainingToSpawn int     // enemies not yet emitted this wave
	SpawnInterval    float64 // seconds between spawns
	Difficulty       float64 // >= 1, scales enemy cadence and bullet speed
	Boss             bool    // whether this wave carries a boss
}

// Manager emits enemies on a timer and advances waves when the caller
// reports the field clear. All randomness comes from the injected
// source, so a fixed seed reproduces the exact spawn sequence.
type Manager struct {
	waves   config.WaveConfig
	enemies config.EnemiesConfig
	boss    config.BossConfig
	bullets config.BulletConfig

	rng    *rand.Rand
	ids    *entity.IDSource
	bounds core.Rect

	wave        Wave
	timer       float64 // accumulated time toward the next spawn
	clearLeft   float64 // pause remaining before the next wave installs
	clearing    bool
	bossPlaced  bool
	bossLevel   int
	totalSpawns int // diagnostic counter, never affects gameplay
}

// New creates a spawn manager with wave 1 installed.
func New(cfg config.Config, bounds core.Rect, rng *rand.Rand, ids *entity.IDSource) *Manager {
	m := &Manager{
		waves:   cfg.Waves,
		enemies: cfg.Enemies,
		boss:    cfg.Boss,
		bullets: cfg.Bullets,
		rng:     rng,
		ids:     ids,
		bounds:  bounds,
	}
	m.wave = m.makeWave(1)
	return m
}

// Wave returns the active wave.
func (m *Manager) Wave() Wave {
	return m.wave
}

// Clearing reports whether the between-wave pause is running.
func (m *Manager) Clearing() bool {
	return m.clearing
}

// TotalSpawned returns the number of enemies emitted this session.
// Diagnostic only.
func (m *Manager) TotalSpawned() int {
	return m.totalSpawns
}

// Advance accumulates dt and returns the enemies created this frame.
// liveEnemies is the caller's count of enemies still alive: the manager
// does not own the entity collection, so wave completion is signaled
// from outside. The spawn timer carries its remainder across calls, so
// variable frame time does not drift the spawn rate.
func (m *Manager) Advance(dt float64, liveEnemies int) []*entity.Enemy {
	dt = entity.ClampDT(dt)

	if m.clearing {
		m.clearLeft -= dt
		if m.clearLeft > 0 {
			return nil
		}
		m.clearing = false
		m.wave = m.makeWave(m.wave.Number + 1)
	}

	var spawned []*entity.Enemy

	// A boss wave opens with its boss, independent of the spawn timer.
	if m.wave.Boss && !m.bossPlaced {
		m.bossPlaced = true
		m.bossLevel++
		spawned = append(spawned, m.makeBoss())
	}

	if m.wave.RemainingToSpawn == 0 {
		if liveEnemies+len(spawned) == 0 {
			m.clearing = true
			m.clearLeft = m.waves.ClearDelay
		}
		return spawned
	}

	m.timer += dt
	for m.timer >= m.wave.SpawnInterval && m.wave.RemainingToSpawn > 0 {
		if liveEnemies+len(spawned) >= m.enemies.MaxAlive {
			// Cap reached: hold the timer at one interval so the next
			// opening spawns promptly without bursting.
			m.timer = m.wave.SpawnInterval
			break
		}
		m.timer -= m.wave.SpawnInterval
		spawned = append(spawned, m.makeEnemy())
		m.wave.RemainingToSpawn--
	}

	m.totalSpawns += len(spawned)
	return spawned
}

// makeWave computes wave n. The spawn interval shrinks geometrically
// with a floor; the difficulty multiplier grows linearly with a cap.
// Both are monotonic in the wave number.
func (m *Manager) makeWave(n int) Wave {
	interval := m.waves.BaseSpawnInterval / math.Pow(m.waves.SpawnIntervalGrowth, float64(n-1))
	if interval < m.waves.MinSpawnInterval {
		interval = m.waves.MinSpawnInterval
	}

	difficulty := 1 + m.waves.DifficultyPerWave*float64(n-1)
	if difficulty > m.waves.MaxDifficulty {
		difficulty = m.waves.MaxDifficulty
	}

	m.timer = 0
	m.bossPlaced = false

	return Wave{
		Number:           n,
		RemainingToSpawn: m.waves.BaseEnemies + m.waves.EnemiesPerWave*(n-1),
		SpawnInterval:    interval,
		Difficulty:       difficulty,
		Boss:             m.boss.WaveInterval > 0 && n%m.boss.WaveInterval == 0,
	}
}

// makeEnemy rolls a weighted kind and a spawn column, both from the
// seeded source, and builds the enemy just above the top edge.
func (m *Manager) makeEnemy() *entity.Enemy {
	kind := m.pickKind()
	kindCfg := m.kindConfig(kind)

	minX := m.bounds.X + m.waves.SpawnMargin
	maxX := m.bounds.Right() - m.waves.SpawnMargin
	if maxX < minX {
		minX, maxX = m.bounds.X, m.bounds.Right()
	}
	pos := core.Vec2{
		X: minX + m.rng.Float64()*(maxX-minX),
		Y: m.bounds.Y - m.enemies.Height,
	}

	params := entity.EnemyParams{
		Kind:            kind,
		Health:          kindCfg.Health,
		Speed:           kindCfg.Speed,
		ScoreValue:      kindCfg.Points,
		FireInterval:    m.scaleFireInterval(kindCfg.FireInterval),
		BulletSpeed:     m.scaleBulletSpeed(),
		BulletDamage:    m.bullets.EnemyDamage,
		BulletRadius:    m.bullets.Radius,
		Width:           m.enemies.Width,
		Height:          m.enemies.Height,
		ZigzagAmplitude: m.enemies.ZigzagAmplitude,
		ZigzagFrequency: m.enemies.ZigzagFrequency,
	}
	return entity.NewEnemy(m.ids.Next(), pos, params)
}

// makeBoss builds the boss for the current boss level at top-center.
func (m *Manager) makeBoss() *entity.Enemy {
	level := m.bossLevel
	health := int(float64(m.boss.BaseHealth) * math.Pow(m.boss.HealthGrowth, float64(level-1)))
	fire := m.boss.FireInterval * math.Pow(m.boss.FireGrowth, float64(level-1))
	if fire < m.enemies.MinFireInterval {
		fire = m.enemies.MinFireInterval
	}

	pos := core.Vec2{
		X: m.bounds.X + m.bounds.W/2,
		Y: m.bounds.Y - m.boss.Height,
	}
	params := entity.EnemyParams{
		Kind:         entity.EnemyBoss,
		Health:       health,
		Speed:        m.boss.Speed,
		ScoreValue:   m.boss.Points * level,
		FireInterval: fire,
		BulletSpeed:  m.scaleBulletSpeed(),
		BulletDamage: m.bullets.EnemyDamage,
		BulletRadius: m.bullets.Radius,
		Width:        m.boss.Width,
		Height:       m.boss.Height,
		LockY:        m.boss.LockY,
		BossLevel:    level,
	}
	return entity.NewEnemy(m.ids.Next(), pos, params)
}

// pickKind draws a weighted enemy kind from the seeded source.
func (m *Manager) pickKind() entity.EnemyKind {
	total := m.enemies.Basic.Weight + m.enemies.Zigzag.Weight + m.enemies.Chaser.Weight
	roll := m.rng.Intn(total)
	if roll < m.enemies.Basic.Weight {
		return entity.EnemyBasic
	}
	if roll < m.enemies.Basic.Weight+m.enemies.Zigzag.Weight {
		return entity.EnemyZigzag
	}
	return entity.EnemyChaser
}

func (m *Manager) kindConfig(kind entity.EnemyKind) config.EnemyKindConfig {
	switch kind {
	case entity.EnemyZigzag:
		return m.enemies.Zigzag
	case entity.EnemyChaser:
		return m.enemies.Chaser
	default:
		return m.enemies.Basic
	}
}

// scaleFireInterval shortens an enemy fire interval by the wave's
// difficulty, never below the configured floor. Non-firing kinds stay
// non-firing.
func (m *Manager) scaleFireInterval(base float64) float64 {
	if base <= 0 {
		return 0
	}
	scaled := base / m.wave.Difficulty
	if scaled < m.enemies.MinFireInterval {
		scaled = m.enemies.MinFireInterval
	}
	return scaled
}

// scaleBulletSpeed speeds up enemy bullets with difficulty, gently:
// a quarter of the difficulty surplus.
func (m *Manager) scaleBulletSpeed() float64 {
	return m.bullets.EnemySpeed * (1 + 0.25*(m.wave.Difficulty-1))
}
