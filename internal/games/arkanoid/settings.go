// Package arkanoid implements an Arkanoid-style brick breaker built on the
// entity manager: a paddle, a ball and a grid of bricks that take one to
// three hits.
package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Settings holds every constant the entities and rules need.
// It is built once from config and shared read-only by all entities.
type Settings struct {
	WindowW, WindowH float64

	BallRadius   float64
	BallVelocity float64
	BallColor    core.Color

	PaddleW, PaddleH   float64
	PaddleVelocity     float64
	PaddleBottomOffset float64
	PaddleColor        core.Color

	BrickW, BrickH   float64
	BrickColumns     int
	BrickRows        int
	BrickStartColumn int
	BrickStartRow    int
	BrickSpacing     float64
	BrickOffsetX     float64
	BrickColors      [3]core.Color // Indexed by remaining hits - 1

	Lives     int
	HitPoints int
}

// DefaultSettings returns the settings of the built-in configuration.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultArkanoidConfig())
	if err != nil {
		panic(fmt.Sprintf("arkanoid: default config is invalid: %v", err))
	}
	return s
}

// SettingsFromConfig validates cfg and converts it to Settings.
func SettingsFromConfig(cfg config.ArkanoidConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	ballColor, err := parseColor("ball.color", cfg.Ball.Color)
	if err != nil {
		return Settings{}, err
	}
	paddleColor, err := parseColor("paddle.color", cfg.Paddle.Color)
	if err != nil {
		return Settings{}, err
	}

	var brickColors [3]core.Color
	if len(cfg.Bricks.Colors) == 0 {
		return Settings{}, fmt.Errorf("config: bricks.colors must list at least one color")
	}
	for i := range brickColors {
		// Short lists repeat their last shade
		name := cfg.Bricks.Colors[core.Min(i, len(cfg.Bricks.Colors)-1)]
		c, err := parseColor(fmt.Sprintf("bricks.colors[%d]", i), name)
		if err != nil {
			return Settings{}, err
		}
		brickColors[i] = c
	}

	return Settings{
		WindowW: cfg.Window.Width,
		WindowH: cfg.Window.Height,

		BallRadius:   cfg.Ball.Radius,
		BallVelocity: cfg.Ball.Velocity,
		BallColor:    ballColor,

		PaddleW:            cfg.Paddle.Width,
		PaddleH:            cfg.Paddle.Height,
		PaddleVelocity:     cfg.Paddle.Velocity,
		PaddleBottomOffset: cfg.Paddle.BottomOffset,
		PaddleColor:        paddleColor,

		BrickW:           cfg.Bricks.Width,
		BrickH:           cfg.Bricks.Height,
		BrickColumns:     cfg.Bricks.Columns,
		BrickRows:        cfg.Bricks.Rows,
		BrickStartColumn: cfg.Bricks.StartColumn,
		BrickStartRow:    cfg.Bricks.StartRow,
		BrickSpacing:     cfg.Bricks.Spacing,
		BrickOffsetX:     cfg.Bricks.OffsetX,
		BrickColors:      brickColors,

		Lives:     cfg.Gameplay.Lives,
		HitPoints: cfg.Gameplay.HitPoints,
	}, nil
}

func parseColor(field, name string) (core.Color, error) {
	c, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: %s: unknown color %q", field, name)
	}
	return c, nil
}
