package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Window: ArkanoidWindow{
			Width:  800,
			Height: 600,
		},
		Ball: ArkanoidBall{
			Radius:   10,
			Velocity: 8,
			Color:    "red",
		},
		Paddle: ArkanoidPaddle{
			Width:        60,
			Height:       20,
			Velocity:     8,
			BottomOffset: 50,
			Color:        "red",
		},
		Bricks: ArkanoidBricks{
			Width:       60,
			Height:      20,
			Columns:     11,
			Rows:        4,
			StartColumn: 1,
			StartRow:    2,
			Spacing:     3,
			OffsetX:     22,
			Colors:      []string{"dim_yellow", "yellow", "bright_yellow"},
		},
		Gameplay: ArkanoidGameplay{
			Lives:     3,
			HitPoints: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arkanoid", "arkanoid_hard":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
