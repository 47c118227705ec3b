// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable gameplay parameters.
// All speeds are in screen cells per second, all durations in seconds.
type Config struct {
	Player   PlayerConfig  `yaml:"player"`
	Bullets  BulletConfig  `yaml:"bullets"`
	Enemies  EnemiesConfig `yaml:"enemies"`
	Boss     BossConfig    `yaml:"boss"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Waves    WaveConfig    `yaml:"waves"`
	Scoring  ScoringConfig `yaml:"scoring"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	SpeedX           float64 `yaml:"speed_x"` // Horizontal speed
	SpeedY           float64 `yaml:"speed_y"` // Vertical speed (terminal cells are taller than wide)
	Width            float64 `yaml:"width"`   // Hitbox width in cells
	Height           float64 `yaml:"height"`  // Hitbox height in cells
	MaxHealth        int     `yaml:"max_health"`
	MaxShield        int     `yaml:"max_shield"`
	Lives            int     `yaml:"lives"`
	ShootCooldown    float64 `yaml:"shoot_cooldown"`     // Seconds between shots
	ShieldRegenRate  float64 `yaml:"shield_regen_rate"`  // Shield points per second
	ShieldRegenDelay float64 `yaml:"shield_regen_delay"` // Seconds after damage before regen
	InvulnDuration   float64 `yaml:"invuln_duration"`    // Invulnerability window after a hit
}

// BulletConfig defines projectile parameters for both owners.
type BulletConfig struct {
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerDamage int     `yaml:"player_damage"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	EnemyDamage  int     `yaml:"enemy_damage"`
	Radius       float64 `yaml:"radius"`
}

// EnemyKindConfig defines one enemy variant.
type EnemyKindConfig struct {
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Points       int     `yaml:"points"`
	FireInterval float64 `yaml:"fire_interval"` // Seconds between shots, 0 = never fires
	Weight       int     `yaml:"weight"`        // Relative spawn weight
}

// EnemiesConfig defines all regular enemy variants and shared parameters.
type EnemiesConfig struct {
	Basic  EnemyKindConfig `yaml:"basic"`
	Zigzag EnemyKindConfig `yaml:"zigzag"`
	Chaser EnemyKindConfig `yaml:"chaser"`

	Width           float64 `yaml:"width"`             // Hitbox width in cells
	Height          float64 `yaml:"height"`            // Hitbox height in cells
	ContactDamage   int     `yaml:"contact_damage"`    // Damage to the player on ramming
	MinFireInterval float64 `yaml:"min_fire_interval"` // Floor under difficulty-scaled cadence
	MaxAlive        int     `yaml:"max_alive"`         // On-screen enemy cap

	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"` // Horizontal oscillation range
	ZigzagFrequency float64 `yaml:"zigzag_frequency"` // Oscillations in radians per second
}

// BossConfig defines the boss that appears on every Nth wave.
type BossConfig struct {
	WaveInterval int     `yaml:"wave_interval"` // Boss appears every N waves
	BaseHealth   int     `yaml:"base_health"`
	HealthGrowth float64 `yaml:"health_growth"` // Health multiplier per boss level
	Points       int     `yaml:"points"`        // Score per boss level
	FireInterval float64 `yaml:"fire_interval"`
	FireGrowth   float64 `yaml:"fire_growth"` // Fire interval multiplier per level (<1 = faster)
	Speed        float64 `yaml:"speed"`       // Max horizontal tracking speed
	LockY        float64 `yaml:"lock_y"`      // Row where the boss holds position
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// PowerUpConfig defines power-up drops.
type PowerUpConfig struct {
	DropChance        float64 `yaml:"drop_chance"` // Chance per enemy kill, 0 disables drops
	FallSpeed         float64 `yaml:"fall_speed"`
	RapidFireDuration float64 `yaml:"rapid_fire_duration"`
	RapidFireFactor   float64 `yaml:"rapid_fire_factor"` // Cooldown multiplier while active
	ShieldBoost       int     `yaml:"shield_boost"`      // Shield points restored on pickup
}

// WaveConfig defines wave progression and spawn cadence.
type WaveConfig struct {
	BaseEnemies         int     `yaml:"base_enemies"`          // Enemies in wave 1
	EnemiesPerWave      int     `yaml:"enemies_per_wave"`      // Additional enemies per wave
	BaseSpawnInterval   float64 `yaml:"base_spawn_interval"`   // Seconds between spawns in wave 1
	SpawnIntervalGrowth float64 `yaml:"spawn_interval_growth"` // Interval divisor growth per wave
	MinSpawnInterval    float64 `yaml:"min_spawn_interval"`    // Floor under the spawn interval
	DifficultyPerWave   float64 `yaml:"difficulty_per_wave"`   // Difficulty multiplier increment per wave
	MaxDifficulty       float64 `yaml:"max_difficulty"`        // Cap on the difficulty multiplier
	ClearDelay          float64 `yaml:"clear_delay"`           // Pause between waves
	SpawnMargin         float64 `yaml:"spawn_margin"`          // Horizontal margin for spawn positions
}

// ScoringConfig defines kill-streak scoring.
type ScoringConfig struct {
	StreakThreshold  int     `yaml:"streak_threshold"`  // Kills needed before the bonus applies
	StreakMultiplier float64 `yaml:"streak_multiplier"` // Score multiplier once the streak is hot
	StreakTimeout    float64 `yaml:"streak_timeout"`    // Seconds without a kill before the streak resets
}

// Validate rejects invalid configuration at construction time.
// Out-of-range values are an error, never silently clamped.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.SpeedX > 0, "player.speed_x must be positive, got %v", c.Player.SpeedX)
	check(c.Player.SpeedY > 0, "player.speed_y must be positive, got %v", c.Player.SpeedY)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player hitbox must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.MaxHealth > 0, "player.max_health must be positive, got %d", c.Player.MaxHealth)
	check(c.Player.MaxShield >= 0, "player.max_shield must be non-negative, got %d", c.Player.MaxShield)
	check(c.Player.Lives > 0, "player.lives must be positive, got %d", c.Player.Lives)
	check(c.Player.ShootCooldown > 0, "player.shoot_cooldown must be positive, got %v", c.Player.ShootCooldown)
	check(c.Player.ShieldRegenRate >= 0, "player.shield_regen_rate must be non-negative, got %v", c.Player.ShieldRegenRate)
	check(c.Player.InvulnDuration >= 0, "player.invuln_duration must be non-negative, got %v", c.Player.InvulnDuration)

	check(c.Bullets.PlayerSpeed > 0, "bullets.player_speed must be positive, got %v", c.Bullets.PlayerSpeed)
	check(c.Bullets.PlayerDamage > 0, "bullets.player_damage must be positive, got %d", c.Bullets.PlayerDamage)
	check(c.Bullets.EnemySpeed > 0, "bullets.enemy_speed must be positive, got %v", c.Bullets.EnemySpeed)
	check(c.Bullets.EnemyDamage > 0, "bullets.enemy_damage must be positive, got %d", c.Bullets.EnemyDamage)
	check(c.Bullets.Radius > 0, "bullets.radius must be positive, got %v", c.Bullets.Radius)

	for _, kind := range []struct {
		name string
		k    EnemyKindConfig
	}{
		{"basic", c.Enemies.Basic},
		{"zigzag", c.Enemies.Zigzag},
		{"chaser", c.Enemies.Chaser},
	} {
		check(kind.k.Health > 0, "enemies.%s.health must be positive, got %d", kind.name, kind.k.Health)
		check(kind.k.Speed > 0, "enemies.%s.speed must be positive, got %v", kind.name, kind.k.Speed)
		check(kind.k.Points > 0, "enemies.%s.points must be positive, got %d", kind.name, kind.k.Points)
		check(kind.k.FireInterval >= 0, "enemies.%s.fire_interval must be non-negative, got %v", kind.name, kind.k.FireInterval)
		check(kind.k.Weight >= 0, "enemies.%s.weight must be non-negative, got %d", kind.name, kind.k.Weight)
	}
	check(c.Enemies.Basic.Weight+c.Enemies.Zigzag.Weight+c.Enemies.Chaser.Weight > 0,
		"enemy spawn weights must not all be zero")
	check(c.Enemies.Width > 0 && c.Enemies.Height > 0, "enemy hitbox must be positive, got %vx%v", c.Enemies.Width, c.Enemies.Height)
	check(c.Enemies.ContactDamage > 0, "enemies.contact_damage must be positive, got %d", c.Enemies.ContactDamage)
	check(c.Enemies.MinFireInterval > 0, "enemies.min_fire_interval must be positive, got %v", c.Enemies.MinFireInterval)
	check(c.Enemies.MaxAlive > 0, "enemies.max_alive must be positive, got %d", c.Enemies.MaxAlive)

	check(c.Boss.WaveInterval > 1, "boss.wave_interval must be greater than 1, got %d", c.Boss.WaveInterval)
	check(c.Boss.BaseHealth > 0, "boss.base_health must be positive, got %d", c.Boss.BaseHealth)
	check(c.Boss.HealthGrowth >= 1, "boss.health_growth must be at least 1, got %v", c.Boss.HealthGrowth)
	check(c.Boss.Points > 0, "boss.points must be positive, got %d", c.Boss.Points)
	check(c.Boss.FireInterval > 0, "boss.fire_interval must be positive, got %v", c.Boss.FireInterval)
	check(c.Boss.FireGrowth > 0 && c.Boss.FireGrowth <= 1, "boss.fire_growth must be in (0, 1], got %v", c.Boss.FireGrowth)
	check(c.Boss.Speed > 0, "boss.speed must be positive, got %v", c.Boss.Speed)
	check(c.Boss.Width > 0 && c.Boss.Height > 0, "boss hitbox must be positive, got %vx%v", c.Boss.Width, c.Boss.Height)

	check(c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 1, "powerups.drop_chance must be in [0, 1], got %v", c.PowerUps.DropChance)
	check(c.PowerUps.FallSpeed > 0, "powerups.fall_speed must be positive, got %v", c.PowerUps.FallSpeed)
	check(c.PowerUps.RapidFireDuration > 0, "powerups.rapid_fire_duration must be positive, got %v", c.PowerUps.RapidFireDuration)
	check(c.PowerUps.RapidFireFactor > 0 && c.PowerUps.RapidFireFactor < 1, "powerups.rapid_fire_factor must be in (0, 1), got %v", c.PowerUps.RapidFireFactor)
	check(c.PowerUps.ShieldBoost > 0, "powerups.shield_boost must be positive, got %d", c.PowerUps.ShieldBoost)

	check(c.Waves.BaseEnemies > 0, "waves.base_enemies must be positive, got %d", c.Waves.BaseEnemies)
	check(c.Waves.EnemiesPerWave >= 0, "waves.enemies_per_wave must be non-negative, got %d", c.Waves.EnemiesPerWave)
	check(c.Waves.BaseSpawnInterval > 0, "waves.base_spawn_interval must be positive, got %v", c.Waves.BaseSpawnInterval)
	check(c.Waves.SpawnIntervalGrowth >= 1, "waves.spawn_interval_growth must be at least 1, got %v", c.Waves.SpawnIntervalGrowth)
	check(c.Waves.MinSpawnInterval > 0, "waves.min_spawn_interval must be positive, got %v", c.Waves.MinSpawnInterval)
	check(c.Waves.MinSpawnInterval <= c.Waves.BaseSpawnInterval,
		"waves.min_spawn_interval %v must not exceed base_spawn_interval %v", c.Waves.MinSpawnInterval, c.Waves.BaseSpawnInterval)
	check(c.Waves.DifficultyPerWave >= 0, "waves.difficulty_per_wave must be non-negative, got %v", c.Waves.DifficultyPerWave)
	check(c.Waves.MaxDifficulty >= 1, "waves.max_difficulty must be at least 1, got %v", c.Waves.MaxDifficulty)
	check(c.Waves.ClearDelay >= 0, "waves.clear_delay must be non-negative, got %v", c.Waves.ClearDelay)
	check(c.Waves.SpawnMargin >= 0, "waves.spawn_margin must be non-negative, got %v", c.Waves.SpawnMargin)

	check(c.Scoring.StreakThreshold > 0, "scoring.streak_threshold must be positive, got %d", c.Scoring.StreakThreshold)
	check(c.Scoring.StreakMultiplier >= 1, "scoring.streak_multiplier must be at least 1, got %v", c.Scoring.StreakMultiplier)
	check(c.Scoring.StreakTimeout > 0, "scoring.streak_timeout must be positive, got %v", c.Scoring.StreakTimeout)

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a difficulty preset.
// "fixed" keeps wave counts growing but freezes spawn pressure and
// enemy cadence at their wave-1 values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.MaxShield = cfg.Player.MaxShield * 3 / 2
		cfg.Waves.DifficultyPerWave /= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.MaxShield /= 2
		cfg.Waves.DifficultyPerWave *= 2
		cfg.Waves.BaseSpawnInterval *= 0.75
	case DifficultyFixed:
		cfg.Waves.DifficultyPerWave = 0
		cfg.Waves.SpawnIntervalGrowth = 1
	}
}

// ParsePreset converts a CLI string into a preset.
// An empty string means no preset; unknown values are an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "":
		return "", nil
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	case "fixed":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}
