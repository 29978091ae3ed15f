package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Phase    string // Game-specific state name
	GameOver bool   // Whether the game has ended (lost or won)
	Paused   bool   // Whether the game is paused

	Remaining int // Targets left to clear
	Ticks     int // Frames simulated since the last restart
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
