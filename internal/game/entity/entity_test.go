package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/voidrunner/internal/core"
)

func TestIDSourceMonotonic(t *testing.T) {
	ids := NewIDSource()
	var last ID
	for i := 0; i < 100; i++ {
		id := ids.Next()
		if id <= last {
			t.Fatalf("id %d after %d", id, last)
		}
		last = id
	}
	if last != 100 {
		t.Fatalf("last id = %d, want 100", last)
	}
}

func TestAdvanceLinearMotion(t *testing.T) {
	e := Entity{Pos: core.Vec2{X: 10, Y: 20}, Vel: core.Vec2{X: 4, Y: -2}}
	e.Advance(0.5)
	want := core.Vec2{X: 12, Y: 19}
	if e.Pos != want {
		t.Fatalf("pos = %v, want %v", e.Pos, want)
	}
}

func TestAdvanceAdditive(t *testing.T) {
	// Two half steps must land where one full step does.
	whole := Entity{Vel: core.Vec2{X: 3, Y: 7}}
	split := whole

	whole.Advance(1.0)
	split.Advance(0.5)
	split.Advance(0.5)

	if math.Abs(whole.Pos.X-split.Pos.X) > 1e-9 || math.Abs(whole.Pos.Y-split.Pos.Y) > 1e-9 {
		t.Fatalf("split steps drifted: %v vs %v", split.Pos, whole.Pos)
	}
}

func TestAdvanceClampsNonPositiveDT(t *testing.T) {
	e := Entity{Pos: core.Vec2{X: 5, Y: 5}, Vel: core.Vec2{X: 100, Y: 100}}
	e.Advance(0)
	e.Advance(-1)
	if e.Pos != (core.Vec2{X: 5, Y: 5}) {
		t.Fatalf("non-positive dt moved the entity to %v", e.Pos)
	}
}

func TestTakeDamage(t *testing.T) {
	e := Entity{Health: 5, Alive: true}

	if e.TakeDamage(3) {
		t.Fatal("non-lethal damage reported destruction")
	}
	if e.Health != 2 || !e.Alive {
		t.Fatalf("health = %d alive = %v, want 2 alive", e.Health, e.Alive)
	}

	if !e.TakeDamage(10) {
		t.Fatal("lethal damage not reported")
	}
	if e.Health != 0 || e.Alive {
		t.Fatalf("health = %d alive = %v, want 0 dead", e.Health, e.Alive)
	}
}

func TestBulletDespawnsFullyOutside(t *testing.T) {
	bounds := core.NewRect(0, 0, 80, 24)

	tests := []struct {
		name  string
		pos   core.Vec2
		vel   core.Vec2
		alive bool
	}{
		{"inside", core.Vec2{X: 40, Y: 12}, core.Vec2{}, true},
		{"grazing top", core.Vec2{X: 40, Y: 0.2}, core.Vec2{}, true},
		{"above", core.Vec2{X: 40, Y: -2}, core.Vec2{}, false},
		{"below", core.Vec2{X: 40, Y: 27}, core.Vec2{}, false},
		{"left", core.Vec2{X: -2, Y: 12}, core.Vec2{}, false},
		{"right", core.Vec2{X: 83, Y: 12}, core.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBullet(1, tt.pos, tt.vel, OwnerPlayer, 1, 0.5)
			b.Update(0.01, bounds)
			if b.Alive != tt.alive {
				t.Fatalf("alive = %v, want %v", b.Alive, tt.alive)
			}
		})
	}
}

func TestBulletFliesOffTop(t *testing.T) {
	bounds := core.NewRect(0, 0, 80, 24)
	b := NewBullet(1, core.Vec2{X: 40, Y: 2}, core.Vec2{Y: -36}, OwnerPlayer, 1, 0.5)

	for i := 0; i < 60 && b.Alive; i++ {
		b.Update(1.0/60, bounds)
	}
	if b.Alive {
		t.Fatal("upward bullet never left the play area")
	}
}

func TestPowerUpFallsAndDespawns(t *testing.T) {
	bounds := core.NewRect(0, 0, 80, 24)
	p := NewPowerUp(1, core.Vec2{X: 40, Y: 10}, PowerUpShieldBoost, 5.0)

	p.Update(1.0, bounds)
	if p.Pos.Y != 15 {
		t.Fatalf("pickup y = %.1f, want 15", p.Pos.Y)
	}
	for i := 0; i < 100 && p.Alive; i++ {
		p.Update(0.5, bounds)
	}
	if p.Alive {
		t.Fatal("pickup never despawned below the play area")
	}
}
