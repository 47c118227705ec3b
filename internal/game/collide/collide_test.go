package collide

import (
	"testing"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game/entity"
)

func testBounds() core.Rect {
	return core.NewRect(0, 0, 80, 24)
}

func testPlayer(t *testing.T, cfg config.Config) *entity.Player {
	t.Helper()
	return entity.NewPlayer(1, cfg.Player, cfg.Bullets, cfg.PowerUps, cfg.Scoring, testBounds())
}

func testEnemy(id entity.ID, pos core.Vec2, health int) *entity.Enemy {
	return entity.NewEnemy(id, pos, entity.EnemyParams{
		Kind:       entity.EnemyBasic,
		Health:     health,
		Speed:      5,
		ScoreValue: 10,
		Width:      4,
		Height:     2,
	})
}

func playerBullet(id entity.ID, pos core.Vec2) *entity.Bullet {
	return entity.NewBullet(id, pos, core.Vec2{Y: -36}, entity.OwnerPlayer, 1, 0.5)
}

func enemyBullet(id entity.ID, pos core.Vec2, damage int) *entity.Bullet {
	return entity.NewBullet(id, pos, core.Vec2{Y: 14}, entity.OwnerEnemy, damage, 0.5)
}

func TestResolveNoOverlapEmptyReport(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	enemies := []*entity.Enemy{testEnemy(10, core.Vec2{X: 10, Y: 3}, 1)}
	bullets := []*entity.Bullet{
		playerBullet(11, core.Vec2{X: 60, Y: 20}),
		enemyBullet(12, core.Vec2{X: 5, Y: 5}, 10),
	}

	rep := m.Resolve(player, enemies, bullets, nil)
	if len(rep.Destroyed) != 0 || rep.ScoreDelta != 0 || rep.PlayerHit {
		t.Fatalf("expected empty report, got %+v", rep)
	}

	// Resolving again with no state change must be a no-op.
	rep2 := m.Resolve(player, enemies, bullets, nil)
	if len(rep2.Destroyed) != 0 || rep2.ScoreDelta != 0 {
		t.Fatalf("resolve is not idempotent on non-overlapping state: %+v", rep2)
	}
}

func TestResolveEdgeContactIsNotCollision(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	// Enemy box spans x in [8,12]. A radius-0.5 bullet at x=12.5 is
	// exactly tangent to the right edge.
	enemy := testEnemy(10, core.Vec2{X: 10, Y: 10}, 1)
	bullet := playerBullet(11, core.Vec2{X: 12.5, Y: 10})

	rep := m.Resolve(player, []*entity.Enemy{enemy}, []*entity.Bullet{bullet}, nil)
	if len(rep.Destroyed) != 0 {
		t.Fatalf("tangent contact resolved as collision: %+v", rep)
	}
	if !enemy.Alive || !bullet.Alive {
		t.Fatal("tangent contact destroyed an entity")
	}
}

func TestResolvePlayerBulletKillsEnemy(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	enemy := testEnemy(10, core.Vec2{X: 10, Y: 10}, 1)
	bullet := playerBullet(11, core.Vec2{X: 10, Y: 10})

	rep := m.Resolve(player, []*entity.Enemy{enemy}, []*entity.Bullet{bullet}, nil)

	if enemy.Alive || bullet.Alive {
		t.Fatal("overlapping bullet and enemy both survived")
	}
	if rep.ScoreDelta != enemy.ScoreValue {
		t.Fatalf("score delta = %d, want %d", rep.ScoreDelta, enemy.ScoreValue)
	}
	if len(rep.Kills) != 1 || rep.Kills[0].ID != enemy.ID {
		t.Fatalf("kills = %+v, want enemy %d", rep.Kills, enemy.ID)
	}
	if rep.Kills[0].Pos != (core.Vec2{X: 10, Y: 10}) {
		t.Fatalf("kill recorded at %v, want enemy position", rep.Kills[0].Pos)
	}
	if len(rep.Destroyed) != 2 {
		t.Fatalf("destroyed = %v, want bullet and enemy", rep.Destroyed)
	}
	if player.KillStreak != 1 {
		t.Fatalf("kill streak = %d, want 1", player.KillStreak)
	}
}

func TestResolveDamagedEnemySurvives(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	enemy := testEnemy(10, core.Vec2{X: 10, Y: 10}, 3)
	bullet := playerBullet(11, core.Vec2{X: 10, Y: 10})

	rep := m.Resolve(player, []*entity.Enemy{enemy}, []*entity.Bullet{bullet}, nil)

	if !enemy.Alive || enemy.Health != 2 {
		t.Fatalf("enemy health = %d alive = %v, want 2 alive", enemy.Health, enemy.Alive)
	}
	if bullet.Alive {
		t.Fatal("bullet survived its collision")
	}
	if rep.ScoreDelta != 0 || len(rep.Kills) != 0 {
		t.Fatalf("damage without kill awarded score: %+v", rep)
	}
}

func TestResolveOneCollisionPerBulletLowestIDWins(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	// Both enemies overlap the bullet. The lower ID must absorb it
	// regardless of slice order.
	first := testEnemy(10, core.Vec2{X: 10, Y: 10}, 1)
	second := testEnemy(20, core.Vec2{X: 11, Y: 10}, 1)
	bullet := playerBullet(30, core.Vec2{X: 10.5, Y: 10})

	rep := m.Resolve(player, []*entity.Enemy{second, first}, []*entity.Bullet{bullet}, nil)

	if first.Alive {
		t.Fatal("lower-ID enemy survived")
	}
	if !second.Alive {
		t.Fatal("single bullet destroyed two enemies")
	}
	if len(rep.Kills) != 1 || rep.Kills[0].ID != first.ID {
		t.Fatalf("kills = %+v, want only enemy %d", rep.Kills, first.ID)
	}
}

func TestResolveShieldAbsorbsBeforeHealth(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	player.Shield = 20
	player.Health = 100
	player.KillStreak = 3

	bullet := enemyBullet(10, player.Pos, 30)

	rep := m.Resolve(player, nil, []*entity.Bullet{bullet}, nil)

	if !rep.PlayerHit || rep.PlayerDied {
		t.Fatalf("report = %+v, want hit without death", rep)
	}
	if player.Shield != 0 || player.Health != 90 {
		t.Fatalf("shield/health = %d/%d, want 0/90", player.Shield, player.Health)
	}
	if player.KillStreak != 0 {
		t.Fatalf("kill streak = %d, want reset on hit", player.KillStreak)
	}
	if bullet.Alive {
		t.Fatal("enemy bullet survived hitting the player")
	}
}

func TestResolveLastLifeDeath(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	player.Lives = 1
	player.Shield = 0
	player.Health = 10

	bullet := enemyBullet(10, player.Pos, 30)

	rep := m.Resolve(player, nil, []*entity.Bullet{bullet}, nil)

	if !rep.PlayerDied {
		t.Fatal("last life lost but PlayerDied not reported")
	}
	if player.Alive {
		t.Fatal("player still alive after final death")
	}
	if player.Lives != 0 {
		t.Fatalf("lives = %d, want 0", player.Lives)
	}
}

func TestResolveRespawnConsumesLife(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	player.Shield = 0
	player.Health = 5
	startLives := player.Lives

	bullet := enemyBullet(10, player.Pos, 30)

	rep := m.Resolve(player, nil, []*entity.Bullet{bullet}, nil)

	if rep.PlayerDied {
		t.Fatal("death reported while lives remain")
	}
	if player.Lives != startLives-1 {
		t.Fatalf("lives = %d, want %d", player.Lives, startLives-1)
	}
	if player.Health != cfg.Player.MaxHealth || player.Shield != cfg.Player.MaxShield {
		t.Fatalf("respawn pools = %d/%d, want full", player.Health, player.Shield)
	}
	if !player.Invulnerable() {
		t.Fatal("respawned player is not invulnerable")
	}
}

func TestResolveInvulnerablePlayerIgnoresDamage(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	player.Shield = 0
	player.Health = 5

	// First hit triggers respawn and the grace window.
	m.Resolve(player, nil, []*entity.Bullet{enemyBullet(10, player.Pos, 30)}, nil)

	enemy := testEnemy(20, player.Pos, 1)
	bullet := enemyBullet(21, player.Pos, 30)
	rep := m.Resolve(player, []*entity.Enemy{enemy}, []*entity.Bullet{bullet}, nil)

	if rep.PlayerHit {
		t.Fatalf("invulnerable player reported hit: %+v", rep)
	}
	if player.Health != cfg.Player.MaxHealth {
		t.Fatalf("health = %d, want untouched %d", player.Health, cfg.Player.MaxHealth)
	}
	if !bullet.Alive || !enemy.Alive {
		t.Fatal("grace window consumed a bullet or enemy")
	}
}

func TestResolveRammingDestroysEnemyWithoutScore(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	startHealth := player.Health
	startShield := player.Shield

	enemy := testEnemy(10, player.Pos, 3)

	rep := m.Resolve(player, []*entity.Enemy{enemy}, nil, nil)

	if enemy.Alive {
		t.Fatal("ramming enemy survived contact")
	}
	if rep.ScoreDelta != 0 || len(rep.Kills) != 0 {
		t.Fatalf("ramming awarded score: %+v", rep)
	}
	if !rep.PlayerHit {
		t.Fatal("contact damage not reported")
	}
	lost := (startShield - player.Shield) + (startHealth - player.Health)
	if lost != cfg.Enemies.ContactDamage {
		t.Fatalf("player lost %d, want contact damage %d", lost, cfg.Enemies.ContactDamage)
	}
}

func TestResolveStreakBonusScore(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)
	for i := 0; i < cfg.Scoring.StreakThreshold; i++ {
		player.RecordKill()
	}
	if !player.StreakHot() {
		t.Fatal("streak not hot after threshold kills")
	}

	enemy := testEnemy(10, core.Vec2{X: 10, Y: 10}, 1)
	bullet := playerBullet(11, core.Vec2{X: 10, Y: 10})

	rep := m.Resolve(player, []*entity.Enemy{enemy}, []*entity.Bullet{bullet}, nil)

	want := int(float64(enemy.ScoreValue) * cfg.Scoring.StreakMultiplier)
	if rep.ScoreDelta != want {
		t.Fatalf("score delta = %d, want streak-boosted %d", rep.ScoreDelta, want)
	}
}

func TestResolvePowerUpPickup(t *testing.T) {
	cfg := config.Default()
	m := New(cfg, false)
	player := testPlayer(t, cfg)

	pu := entity.NewPowerUp(10, player.Pos, entity.PowerUpRapidFire, cfg.PowerUps.FallSpeed)

	rep := m.Resolve(player, nil, nil, []*entity.PowerUp{pu})

	if pu.Alive {
		t.Fatal("collected power-up still alive")
	}
	if len(rep.PickedUp) != 1 || rep.PickedUp[0] != entity.PowerUpRapidFire {
		t.Fatalf("picked up = %v, want rapid fire", rep.PickedUp)
	}
	if !player.RapidFireActive() {
		t.Fatal("rapid fire not applied on pickup")
	}
}

func TestResolveDebugCounters(t *testing.T) {
	cfg := config.Default()
	plain := New(cfg, false)
	debug := New(cfg, true)

	mk := func() (*entity.Player, []*entity.Enemy, []*entity.Bullet) {
		p := testPlayer(t, cfg)
		e := testEnemy(10, core.Vec2{X: 10, Y: 10}, 1)
		b := playerBullet(11, core.Vec2{X: 10, Y: 10})
		return p, []*entity.Enemy{e}, []*entity.Bullet{b}
	}

	p1, e1, b1 := mk()
	rep := plain.Resolve(p1, e1, b1, nil)
	if rep.PairsTested != 0 || rep.Collisions != 0 {
		t.Fatalf("counters populated without debug: %+v", rep)
	}

	p2, e2, b2 := mk()
	drep := debug.Resolve(p2, e2, b2, nil)
	if drep.PairsTested == 0 || drep.Collisions == 0 {
		t.Fatalf("debug counters empty: %+v", drep)
	}
	if drep.ScoreDelta != rep.ScoreDelta || len(drep.Destroyed) != len(rep.Destroyed) {
		t.Fatal("debug mode changed gameplay outcome")
	}
}
