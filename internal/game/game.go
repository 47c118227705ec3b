// Package game implements Void Runner, a vertical space shooter.
// The player ship holds the bottom of the screen against descending
// enemy waves; difficulty ramps per wave and every fifth wave brings a
// boss. Game logic is pure: all platform concerns (input devices,
// timing, terminal rendering) live outside.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game/collide"
	"github.com/vovakirdan/voidrunner/internal/game/entity"
	"github.com/vovakirdan/voidrunner/internal/game/spawn"
	"github.com/vovakirdan/voidrunner/internal/registry"
)

// Visual characters for rendering
const (
	shipChar    = '▲'
	hullChar    = '█'
	basicChar   = '▼'
	zigzagChar  = '◊'
	chaserChar  = '҉'
	bossChar    = '▣'
	shotChar    = '•'
	enemyShot   = '▿'
	rapidChar   = 'R'
	shieldChar  = 'S'
	starChar    = '·'
	starFarChar = '.'
)

type star struct {
	x, y  float64
	speed float64
}

// The session config is installed by the CLI before the game is
// created; the registry factory takes no arguments.
var sessionCfg = config.Default()
var sessionDebug bool

// SetConfig installs the gameplay configuration used by subsequently
// created sessions.
func SetConfig(cfg config.Config) {
	sessionCfg = cfg
}

// SetDebug enables collision diagnostics on subsequently created
// sessions.
func SetDebug(enabled bool) {
	sessionDebug = enabled
}

// Game is one Void Runner session.
type Game struct {
	cfg    config.Config
	rt     core.RuntimeConfig
	bounds core.Rect
	debug  bool

	rng *rand.Rand
	ids *entity.IDSource

	player   *entity.Player
	enemies  []*entity.Enemy
	bullets  []*entity.Bullet
	powerups []*entity.PowerUp

	spawner  *spawn.Manager
	collider *collide.Manager

	stars []star

	score    int
	kills    int
	elapsed  float64
	gameOver bool
	paused   bool

	lastReport collide.Report
}

// New creates a session with the installed configuration.
func New() *Game {
	return &Game{cfg: sessionCfg, debug: sessionDebug}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "voidrunner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.rt = rt
	g.bounds = core.NewRect(0, 0, float64(rt.ScreenW), float64(rt.ScreenH))
	g.rng = rand.New(rand.NewSource(seed))
	g.ids = entity.NewIDSource()

	g.player = entity.NewPlayer(g.ids.Next(), g.cfg.Player, g.cfg.Bullets, g.cfg.PowerUps, g.cfg.Scoring, g.bounds)
	g.enemies = nil
	g.bullets = nil
	g.powerups = nil

	g.spawner = spawn.New(g.cfg, g.bounds, g.rng, g.ids)
	g.collider = collide.New(g.cfg, g.debug)

	g.makeStars()

	g.score = 0
	g.kills = 0
	g.elapsed = 0
	g.gameOver = false
	g.paused = false
	g.lastReport = collide.Report{}
}

// Step advances the session by dt seconds.
//
// The frame order is fixed: entities move, the spawner emits, collisions
// resolve, dead entities are swept. Everything downstream of the seeded
// source is deterministic, so equal seeds and input sequences replay the
// exact session.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.rt)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = entity.ClampDT(dt)
	g.elapsed += dt
	g.scrollStars(dt)

	// Move everything before resolving: entities act on the positions
	// of the previous frame, so update order between them cannot leak
	// into outcomes.
	playerPos := g.player.Pos
	if b := g.player.Update(dt, in, g.ids); b != nil {
		g.bullets = append(g.bullets, b)
	}
	for _, e := range g.enemies {
		g.bullets = append(g.bullets, e.Update(dt, playerPos, g.bounds, g.ids)...)
	}
	for _, b := range g.bullets {
		b.Update(dt, g.bounds)
	}
	for _, p := range g.powerups {
		p.Update(dt, g.bounds)
	}

	g.enemies = append(g.enemies, g.spawner.Advance(dt, g.liveEnemies())...)

	rep := g.collider.Resolve(g.player, g.enemies, g.bullets, g.powerups)
	g.lastReport = rep
	g.score += rep.ScoreDelta
	g.kills += len(rep.Kills)
	g.rollDrops(rep.Kills)
	if rep.PlayerDied {
		g.gameOver = true
	}

	g.sweep()
	return core.StepResult{State: g.State()}
}

// rollDrops gives each kill a chance to leave a power-up behind.
func (g *Game) rollDrops(kills []collide.Kill) {
	if g.cfg.PowerUps.DropChance <= 0 {
		return
	}
	for _, k := range kills {
		if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
			continue
		}
		kind := entity.PowerUpRapidFire
		if g.rng.Intn(2) == 1 {
			kind = entity.PowerUpShieldBoost
		}
		g.powerups = append(g.powerups, entity.NewPowerUp(g.ids.Next(), k.Pos, kind, g.cfg.PowerUps.FallSpeed))
	}
}

func (g *Game) liveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// sweep drops dead entities from the collections.
func (g *Game) sweep() {
	g.enemies = sweepEnemies(g.enemies)
	g.bullets = sweepBullets(g.bullets)
	g.powerups = sweepPowerUps(g.powerups)
}

func sweepEnemies(s []*entity.Enemy) []*entity.Enemy {
	out := s[:0]
	for _, e := range s {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

func sweepBullets(s []*entity.Bullet) []*entity.Bullet {
	out := s[:0]
	for _, b := range s {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

func sweepPowerUps(s []*entity.PowerUp) []*entity.PowerUp {
	out := s[:0]
	for _, p := range s {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Wave:       g.spawner.Wave().Number,
		Lives:      g.player.Lives,
		Health:     g.player.Health,
		Shield:     g.player.Shield,
		KillStreak: g.player.KillStreak,
		Kills:      g.kills,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// makeStars lays out the scrolling background from the session's seed.
func (g *Game) makeStars() {
	count := g.rt.ScreenW * g.rt.ScreenH / 40
	g.stars = make([]star, count)
	for i := range g.stars {
		g.stars[i] = star{
			x:     g.rng.Float64() * g.bounds.W,
			y:     g.rng.Float64() * g.bounds.H,
			speed: 1 + g.rng.Float64()*3,
		}
	}
}

func (g *Game) scrollStars(dt float64) {
	for i := range g.stars {
		g.stars[i].y += g.stars[i].speed * dt
		if g.stars[i].y > g.bounds.H {
			g.stars[i].y -= g.bounds.H
			g.stars[i].x = g.rng.Float64() * g.bounds.W
		}
	}
}

// Render draws the session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, s := range g.stars {
		ch := starChar
		if s.speed < 2 {
			ch = starFarChar
		}
		dst.SetColored(cell(s.x), cell(s.y), ch, core.ColorGray)
	}

	for _, p := range g.powerups {
		ch := rapidChar
		color := core.ColorYellow
		if p.Kind == entity.PowerUpShieldBoost {
			ch = shieldChar
			color = core.ColorCyan
		}
		dst.SetColored(cell(p.Pos.X), cell(p.Pos.Y), ch, color)
	}

	for _, b := range g.bullets {
		if b.Owner == entity.OwnerPlayer {
			dst.SetColored(cell(b.Pos.X), cell(b.Pos.Y), shotChar, core.ColorCyan)
		} else {
			dst.SetColored(cell(b.Pos.X), cell(b.Pos.Y), enemyShot, core.ColorRed)
		}
	}

	for _, e := range g.enemies {
		g.drawEnemy(dst, e)
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.score, g.spawner.Wave().Number))
	}
}

// drawPlayer renders the ship hull with the cannon tip on top. While
// the grace window is active the hull blinks.
func (g *Game) drawPlayer(dst *core.Screen) {
	if !g.player.Alive {
		return
	}
	if g.player.Invulnerable() && int(g.elapsed*10)%2 == 0 {
		return
	}

	b := g.player.Bounds()
	x0, y0 := cell(b.X), cell(b.Y)
	w, h := cell(b.W), cell(b.H)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := hullChar
			if dy == 0 && dx == w/2 {
				ch = shipChar
			}
			dst.SetColored(x0+dx, y0+dy, ch, core.ColorGreen)
		}
	}
}

func (g *Game) drawEnemy(dst *core.Screen, e *entity.Enemy) {
	if !e.Alive {
		return
	}
	var ch rune
	var color core.Color
	switch e.Kind {
	case entity.EnemyZigzag:
		ch, color = zigzagChar, core.ColorMagenta
	case entity.EnemyChaser:
		ch, color = chaserChar, core.ColorYellow
	case entity.EnemyBoss:
		ch, color = bossChar, core.ColorRed
	default:
		ch, color = basicChar, core.ColorRed
	}

	b := e.Bounds()
	x0, y0 := cell(b.X), cell(b.Y)
	w, h := cell(b.W), cell(b.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x0+dx, y0+dy, ch, color)
		}
	}

	if e.Kind == entity.EnemyBoss {
		g.drawBossHealth(dst, e)
	}
}

// drawBossHealth renders a health bar across the top row.
func (g *Game) drawBossHealth(dst *core.Screen, boss *entity.Enemy) {
	w := dst.Width()
	barW := w / 2
	x0 := (w - barW) / 2
	filled := 0
	if max := boss.MaxHealth(); max > 0 {
		filled = barW * boss.Health / max
	}
	for i := 0; i < barW; i++ {
		ch := '░'
		if i < filled {
			ch = '▓'
		}
		dst.SetColored(x0+i, 1, ch, core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Wave: %d  Lives: %d  HP: %d  SH: %d ",
		g.score, g.spawner.Wave().Number, g.player.Lives, g.player.Health, g.player.Shield)
	dst.DrawText(1, 0, hud)

	if g.player.StreakHot() {
		dst.DrawTextColored(len(hud)+2, 0, fmt.Sprintf("STREAK x%d!", g.player.KillStreak), core.ColorYellow)
	}
	if g.player.RapidFireActive() {
		dst.DrawTextColored(dst.Width()-8, 0, "RAPID", core.ColorCyan)
	}
	if g.spawner.Clearing() && !g.gameOver {
		dst.DrawTextCentered(2, fmt.Sprintf("Wave %d cleared!", g.spawner.Wave().Number))
	}

	if g.debug {
		diag := fmt.Sprintf(" pairs: %d hits: %d entities: %d ",
			g.lastReport.PairsTested, g.lastReport.Collisions,
			1+len(g.enemies)+len(g.bullets)+len(g.powerups))
		dst.DrawText(1, dst.Height()-1, diag)
	}
}

// drawCenteredMessage draws a boxed two-line message mid-screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillBox(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// cell converts a simulation coordinate to a screen cell.
func cell(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Register the game with the registry
func init() {
	registry.Register("voidrunner", func() registry.Game {
		return New()
	})
}
