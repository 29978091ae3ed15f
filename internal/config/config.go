// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all configuration for the Arkanoid game.
// Sizes and velocities are in world units; the world is rendered scaled
// to whatever terminal it runs in.
type ArkanoidConfig struct {
	Window   ArkanoidWindow   `yaml:"window"`
	Ball     ArkanoidBall     `yaml:"ball"`
	Paddle   ArkanoidPaddle   `yaml:"paddle"`
	Bricks   ArkanoidBricks   `yaml:"bricks"`
	Gameplay ArkanoidGameplay `yaml:"gameplay"`
}

// ArkanoidWindow defines the size of the playfield.
type ArkanoidWindow struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidBall defines the ball.
type ArkanoidBall struct {
	Radius   float64 `yaml:"radius"`
	Velocity float64 `yaml:"velocity"` // Per-axis speed, constant for the whole game
	Color    string  `yaml:"color"`
}

// ArkanoidPaddle defines the player's paddle.
type ArkanoidPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Velocity     float64 `yaml:"velocity"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the paddle center from the bottom edge
	Color        string  `yaml:"color"`
}

// ArkanoidBricks defines the brick grid.
type ArkanoidBricks struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	Columns     int      `yaml:"columns"`
	Rows        int      `yaml:"rows"`
	StartColumn int      `yaml:"start_column"`
	StartRow    int      `yaml:"start_row"`
	Spacing     float64  `yaml:"spacing"`
	OffsetX     float64  `yaml:"offset_x"`
	Colors      []string `yaml:"colors"` // Shade per remaining hit count: 1, 2, 3+
}

// ArkanoidGameplay defines rules outside of the physics.
type ArkanoidGameplay struct {
	Lives     int `yaml:"lives"`
	HitPoints int `yaml:"hit_points"` // Score per brick hit
}

// Validate reports the first setting that would make the game unplayable.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.velocity", c.Ball.Velocity)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.velocity", c.Paddle.Velocity)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)

	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Paddle.BottomOffset < 0 || c.Paddle.BottomOffset > c.Window.Height {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset %v is outside the window", c.Paddle.BottomOffset))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arkanoid settings: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means "keep the config as is".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
