package spawn

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game/entity"
)

func testBounds() core.Rect {
	return core.NewRect(0, 0, 80, 24)
}

// steadyConfig pins the spawn cadence to a flat one-second interval
// with no boss, so timer behavior can be asserted exactly.
func steadyConfig() config.Config {
	cfg := config.Default()
	cfg.Waves.BaseSpawnInterval = 1.0
	cfg.Waves.SpawnIntervalGrowth = 1.0
	cfg.Waves.MinSpawnInterval = 0.1
	cfg.Waves.ClearDelay = 0
	cfg.Boss.WaveInterval = 0
	cfg.Enemies.MaxAlive = 100
	return cfg
}

func newManager(cfg config.Config, seed int64) *Manager {
	return New(cfg, testBounds(), rand.New(rand.NewSource(seed)), entity.NewIDSource())
}

func TestAdvanceCarriesTimerRemainder(t *testing.T) {
	m := newManager(steadyConfig(), 1)

	// Three 0.4s frames against a 1.0s interval: nothing, nothing,
	// then one spawn with 0.2s carried toward the next.
	if got := m.Advance(0.4, 0); len(got) != 0 {
		t.Fatalf("t=0.4: spawned %d, want 0", len(got))
	}
	if got := m.Advance(0.4, 1); len(got) != 0 {
		t.Fatalf("t=0.8: spawned %d, want 0", len(got))
	}
	if got := m.Advance(0.4, 1); len(got) != 1 {
		t.Fatalf("t=1.2: spawned %d, want 1", len(got))
	}

	// The 0.2s remainder means the next spawn lands at t=2.0, not 2.2.
	if got := m.Advance(0.7, 1); len(got) != 0 {
		t.Fatalf("t=1.9: spawned %d, want 0", len(got))
	}
	if got := m.Advance(0.1, 1); len(got) != 1 {
		t.Fatalf("t=2.0: spawned %d, want 1", len(got))
	}
}

func TestAdvanceLargeFrameSpawnsMultiple(t *testing.T) {
	m := newManager(steadyConfig(), 1)

	got := m.Advance(3.5, 0)
	if len(got) != 3 {
		t.Fatalf("3.5s frame spawned %d, want 3", len(got))
	}
}

func TestAdvanceNonPositiveDTIsInert(t *testing.T) {
	m := newManager(steadyConfig(), 1)

	if got := m.Advance(0.9, 0); len(got) != 0 {
		t.Fatalf("warmup spawned %d", len(got))
	}
	if got := m.Advance(-5, 1); len(got) != 0 {
		t.Fatal("negative dt produced a spawn")
	}
	if got := m.Advance(0, 1); len(got) != 0 {
		t.Fatal("zero dt produced a spawn")
	}
	if got := m.Advance(0.1, 1); len(got) != 1 {
		t.Fatalf("t=1.0: spawned %d, want 1", len(got))
	}
}

func TestMaxAliveCapHoldsSpawns(t *testing.T) {
	cfg := steadyConfig()
	cfg.Enemies.MaxAlive = 2
	m := newManager(cfg, 1)

	got := m.Advance(10, 0)
	if len(got) != 2 {
		t.Fatalf("cap ignored: spawned %d, want 2", len(got))
	}

	// With the field still full nothing spawns.
	if got := m.Advance(1, 2); len(got) != 0 {
		t.Fatalf("spawned %d over the cap", len(got))
	}

	// As soon as a slot opens the held timer fires promptly.
	if got := m.Advance(0.05, 1); len(got) != 1 {
		t.Fatalf("freed slot not filled, spawned %d", len(got))
	}
}

func TestWaveSizeAndIntervalProgression(t *testing.T) {
	cfg := config.Default()
	cfg.Waves.ClearDelay = 0
	cfg.Boss.WaveInterval = 0
	cfg.Enemies.MaxAlive = 1000
	m := newManager(cfg, 1)

	prev := m.Wave()
	if prev.Number != 1 {
		t.Fatalf("initial wave = %d, want 1", prev.Number)
	}
	wantSize := cfg.Waves.BaseEnemies
	if prev.RemainingToSpawn != wantSize {
		t.Fatalf("wave 1 size = %d, want %d", prev.RemainingToSpawn, wantSize)
	}

	for i := 0; i < 10; i++ {
		installSpawns := drainWave(t, m)
		w := m.Wave()
		if w.Number != prev.Number+1 {
			t.Fatalf("wave advanced %d -> %d", prev.Number, w.Number)
		}
		wantSize += cfg.Waves.EnemiesPerWave
		if w.RemainingToSpawn+installSpawns != wantSize {
			t.Fatalf("wave %d size = %d (+%d on install), want %d",
				w.Number, w.RemainingToSpawn, installSpawns, wantSize)
		}
		if w.SpawnInterval > prev.SpawnInterval {
			t.Fatalf("interval grew: wave %d %.3f -> %.3f", w.Number, prev.SpawnInterval, w.SpawnInterval)
		}
		if w.SpawnInterval < cfg.Waves.MinSpawnInterval {
			t.Fatalf("interval %.3f under floor %.3f", w.SpawnInterval, cfg.Waves.MinSpawnInterval)
		}
		if w.Difficulty < prev.Difficulty {
			t.Fatalf("difficulty shrank: %.2f -> %.2f", prev.Difficulty, w.Difficulty)
		}
		if w.Difficulty > cfg.Waves.MaxDifficulty {
			t.Fatalf("difficulty %.2f over cap %.2f", w.Difficulty, cfg.Waves.MaxDifficulty)
		}
		prev = w
	}
}

// drainWave spawns out the active wave, reports the field clear, and
// steps the manager through the between-wave pause. It returns the
// number of enemies emitted by the Advance call that installed the next
// wave: once the spawn interval reaches the floor it equals the 0.5s
// step, so the installing call also fires the new wave's first spawn.
func drainWave(t *testing.T, m *Manager) int {
	t.Helper()
	start := m.Wave().Number
	for i := 0; i < 10000; i++ {
		spawned := m.Advance(0.5, 0)
		if m.Wave().Number != start {
			return len(spawned)
		}
	}
	t.Fatalf("wave %d never completed", start)
	return 0
}

func TestWaveInstallSpawnsWhenStepMatchesInterval(t *testing.T) {
	cfg := steadyConfig()
	cfg.Waves.BaseEnemies = 1
	cfg.Waves.EnemiesPerWave = 0
	cfg.Waves.BaseSpawnInterval = 0.5
	cfg.Waves.MinSpawnInterval = 0.5
	m := newManager(cfg, 1)

	if got := m.Advance(0.5, 0); len(got) != 1 {
		t.Fatalf("wave 1 spawned %d, want 1", len(got))
	}
	if got := m.Advance(0.5, 0); len(got) != 0 || !m.Clearing() {
		t.Fatalf("spawned %d clearing = %v, want the pause", len(got), m.Clearing())
	}

	// The new wave starts with a zero timer, so a step that exactly
	// matches the interval both installs the wave and fires its first
	// spawn. The remainder semantics hold right at the floor.
	got := m.Advance(0.5, 0)
	if m.Wave().Number != 2 {
		t.Fatalf("wave = %d, want 2", m.Wave().Number)
	}
	if len(got) != 1 {
		t.Fatalf("installing call spawned %d, want 1", len(got))
	}
	if m.Wave().RemainingToSpawn != 0 {
		t.Fatalf("remaining = %d, want 0", m.Wave().RemainingToSpawn)
	}
}

func TestClearDelayPausesBetweenWaves(t *testing.T) {
	cfg := steadyConfig()
	cfg.Waves.BaseEnemies = 1
	cfg.Waves.ClearDelay = 3.0
	m := newManager(cfg, 1)

	if got := m.Advance(1, 0); len(got) != 1 {
		t.Fatalf("spawned %d, want the wave's single enemy", len(got))
	}

	// Field clear: the pause starts instead of the next wave.
	m.Advance(0.1, 0)
	if !m.Clearing() {
		t.Fatal("clear pause did not start")
	}
	if got := m.Advance(2.0, 0); len(got) != 0 || m.Wave().Number != 1 {
		t.Fatal("wave advanced before the pause elapsed")
	}
	m.Advance(1.5, 0)
	if m.Clearing() || m.Wave().Number != 2 {
		t.Fatalf("wave = %d clearing = %v, want wave 2 running", m.Wave().Number, m.Clearing())
	}
}

func TestWaveWaitsForLiveEnemies(t *testing.T) {
	cfg := steadyConfig()
	cfg.Waves.BaseEnemies = 1
	m := newManager(cfg, 1)

	m.Advance(1, 0)
	// One enemy still alive: the wave must not complete.
	for i := 0; i < 20; i++ {
		m.Advance(1, 1)
	}
	if m.Clearing() || m.Wave().Number != 1 {
		t.Fatal("wave completed while enemies were alive")
	}
}

func TestBossWaveOpensWithBoss(t *testing.T) {
	cfg := steadyConfig()
	cfg.Boss.WaveInterval = 1
	m := newManager(cfg, 1)

	got := m.Advance(0.01, 0)
	if len(got) != 1 || got[0].Kind != entity.EnemyBoss {
		t.Fatalf("boss wave opened with %+v, want one boss", got)
	}
	boss := got[0]
	if boss.Health != cfg.Boss.BaseHealth {
		t.Fatalf("boss health = %d, want %d", boss.Health, cfg.Boss.BaseHealth)
	}
	if boss.ScoreValue != cfg.Boss.Points {
		t.Fatalf("boss score = %d, want %d", boss.ScoreValue, cfg.Boss.Points)
	}
	if boss.Pos.X != testBounds().W/2 {
		t.Fatalf("boss x = %.1f, want center", boss.Pos.X)
	}
}

func TestBossScalesPerLevel(t *testing.T) {
	cfg := steadyConfig()
	cfg.Boss.WaveInterval = 1
	cfg.Waves.BaseEnemies = 0
	cfg.Waves.EnemiesPerWave = 0
	m := newManager(cfg, 1)

	var bosses []*entity.Enemy
	for i := 0; i < 1000 && len(bosses) < 2; i++ {
		// Report the field clear so waves turn over immediately.
		bosses = append(bosses, m.Advance(0.5, 0)...)
	}
	if len(bosses) < 2 {
		t.Fatal("second boss never spawned")
	}
	first, second := bosses[0], bosses[1]

	if second.Health <= first.Health {
		t.Fatalf("boss health %d -> %d, want growth", first.Health, second.Health)
	}
	wantScore := cfg.Boss.Points * 2
	if second.ScoreValue != wantScore {
		t.Fatalf("level 2 boss score = %d, want %d", second.ScoreValue, wantScore)
	}
}

func TestEveryNthWaveCarriesBoss(t *testing.T) {
	cfg := config.Default()
	cfg.Waves.ClearDelay = 0
	cfg.Enemies.MaxAlive = 1000
	m := newManager(cfg, 1)

	for m.Wave().Number < cfg.Boss.WaveInterval {
		if m.Wave().Boss {
			t.Fatalf("wave %d flagged as boss wave", m.Wave().Number)
		}
		drainWave(t, m)
	}
	if !m.Wave().Boss {
		t.Fatalf("wave %d not flagged as boss wave", m.Wave().Number)
	}
}

func TestDeterministicWithFixedSeed(t *testing.T) {
	run := func() []core.Vec2 {
		m := newManager(steadyConfig(), 42)
		var positions []core.Vec2
		for i := 0; i < 200; i++ {
			for _, e := range m.Advance(0.37, 0) {
				positions = append(positions, e.Pos)
			}
		}
		return positions
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("no spawns recorded")
	}
	if len(a) != len(b) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d at %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSpawnPositionsRespectMargins(t *testing.T) {
	cfg := steadyConfig()
	cfg.Waves.BaseEnemies = 50
	m := newManager(cfg, 7)
	bounds := testBounds()

	for _, e := range m.Advance(60, 0) {
		minX := bounds.X + cfg.Waves.SpawnMargin
		maxX := bounds.Right() - cfg.Waves.SpawnMargin
		if e.Pos.X < minX || e.Pos.X > maxX {
			t.Fatalf("spawn x = %.2f outside [%.1f, %.1f]", e.Pos.X, minX, maxX)
		}
		if e.Pos.Y >= bounds.Y {
			t.Fatalf("spawn y = %.2f not above the top edge", e.Pos.Y)
		}
	}
}

func TestIDsAscendInSpawnOrder(t *testing.T) {
	m := newManager(steadyConfig(), 1)

	var last entity.ID
	for i := 0; i < 10; i++ {
		for _, e := range m.Advance(1, 0) {
			if e.ID <= last {
				t.Fatalf("id %d after %d", e.ID, last)
			}
			last = e.ID
		}
	}
}
