package config

import (
	_ "embed"
)

//go:embed defaults/voidrunner.yaml
var defaultYAML []byte

// Default returns the default VoidRunner configuration.
// Values are tuned for an 80x24 terminal at 60 ticks per second.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			SpeedX:           28.0,
			SpeedY:           14.0,
			Width:            3,
			Height:           2,
			MaxHealth:        100,
			MaxShield:        50,
			Lives:            3,
			ShootCooldown:    0.25,
			ShieldRegenRate:  5.0,
			ShieldRegenDelay: 3.0,
			InvulnDuration:   1.5,
		},
		Bullets: BulletConfig{
			PlayerSpeed:  36.0,
			PlayerDamage: 1,
			EnemySpeed:   14.0,
			EnemyDamage:  30,
			Radius:       0.5,
		},
		Enemies: EnemiesConfig{
			Basic: EnemyKindConfig{
				Health:       1,
				Speed:        5.0,
				Points:       10,
				FireInterval: 2.5,
				Weight:       50,
			},
			Zigzag: EnemyKindConfig{
				Health:       1,
				Speed:        6.0,
				Points:       20,
				FireInterval: 3.0,
				Weight:       30,
			},
			Chaser: EnemyKindConfig{
				Health:       2,
				Speed:        3.5,
				Points:       25,
				FireInterval: 0, // Chasers ram instead of shooting
				Weight:       20,
			},
			Width:           4,
			Height:          2,
			ContactDamage:   45,
			MinFireInterval: 0.8,
			MaxAlive:        12,
			ZigzagAmplitude: 10.0,
			ZigzagFrequency: 2.0,
		},
		Boss: BossConfig{
			WaveInterval: 5,
			BaseHealth:   40,
			HealthGrowth: 1.5,
			Points:       500,
			FireInterval: 1.6,
			FireGrowth:   0.85,
			Speed:        20.0,
			LockY:        4,
			Width:        8,
			Height:       3,
		},
		PowerUps: PowerUpConfig{
			DropChance:        0.15,
			FallSpeed:         5.0,
			RapidFireDuration: 10.0,
			RapidFireFactor:   0.5,
			ShieldBoost:       25,
		},
		Waves: WaveConfig{
			BaseEnemies:         5,
			EnemiesPerWave:      2,
			BaseSpawnInterval:   2.0,
			SpawnIntervalGrowth: 1.15,
			MinSpawnInterval:    0.5,
			DifficultyPerWave:   0.1,
			MaxDifficulty:       3.0,
			ClearDelay:          3.0,
			SpawnMargin:         5.0,
		},
		Scoring: ScoringConfig{
			StreakThreshold:  5,
			StreakMultiplier: 1.5,
			StreakTimeout:    6.0,
		},
	}
}
