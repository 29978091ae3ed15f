package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game starts paused.

Controls:
  Left/A, Right/D  - Move the paddle
  P/Space          - Pause / resume
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options (applied on top of the config):
  easy   - 5 lives, slower ball, wider paddle
  normal - Config values as they are
  hard   - 2 lives, faster ball and paddle, narrower paddle

Examples:
  arkanoid play
  arkanoid play arkanoid_hard
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{fullscreenAnnotation: "true"},
	RunE:        runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

// addGameConfigFlags registers the flags that shape the game rules.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// gameIDFromArgs returns the requested game, defaulting to the standard one.
func gameIDFromArgs(args []string) (string, error) {
	gameID := "arkanoid"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q (run 'arkanoid list' to see available games)", gameID)
	}
	return gameID, nil
}

// applyGameConfig loads and validates the game configuration.
// Any problem here is fatal: a game never starts with broken settings.
func applyGameConfig() error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return err
	}
	if err := arkanoid.SetConfig(cfg); err != nil {
		return err
	}
	arkanoid.SetDifficultyPreset(preset)

	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset)
	return nil
}

// openStore opens the runs database. Failure is not fatal; the game runs
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFromArgs(args)
	if err != nil {
		return err
	}
	if err := applyGameConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store := openStore()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open runs database; scores will not be saved")
	} else {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Player: os.Getenv("USER"),
	})
}
