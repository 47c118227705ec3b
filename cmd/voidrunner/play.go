package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voidrunner/internal/config"
	"github.com/vovakirdan/voidrunner/internal/core"
	"github.com/vovakirdan/voidrunner/internal/game"
	"github.com/vovakirdan/voidrunner/internal/platform/tui"
	"github.com/vovakirdan/voidrunner/internal/registry"
	"github.com/vovakirdan/voidrunner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Void Runner session directly, skipping the title menu.

Controls:
  WASD/Arrows - Move
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Gentler wave pacing and enemy health
  normal - Default tuning
  hard   - Faster waves, tougher enemies
  fixed  - No wave-to-wave escalation

Examples:
  voidrunner play
  voidrunner play --difficulty hard
  voidrunner play --config ./my-tuning.yaml
  voidrunner play --seed 42 --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show collision diagnostics in the HUD")
}

// prepareGameConfig loads tuning, applies the difficulty preset and
// installs the result for subsequently created sessions. Returns the
// difficulty name actually in effect.
func prepareGameConfig() (string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return "", err
	}

	difficulty := "normal"
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return "", presetErr
		}
		config.ApplyPreset(&cfg, preset)
		difficulty = flagDifficulty
	}

	game.SetConfig(cfg)
	game.SetDebug(flagDebug)
	return difficulty, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty, err := prepareGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, err := registry.Create("voidrunner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, difficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
