package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only view of the session exposed to the platform
// and the HUD. Returned by Game.State().
type GameState struct {
	Score      int  // Current score
	Wave       int  // Current wave number (1-based)
	Lives      int  // Player lives remaining
	Health     int  // Player health
	Shield     int  // Player shield
	KillStreak int  // Consecutive kills without taking damage
	Kills      int  // Total kills this session
	GameOver   bool // Whether the session has ended
	Paused     bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
