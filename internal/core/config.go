package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games simulate in their own world units; the screen size only affects rendering.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional game config YAML; empty uses the search path
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

// GameState is the externally visible state of a game after a tick.
type GameState struct {
	// Scores holds one entry per side. Single-player games report one score.
	Scores []int
	// Running is false once the game has halted its frame loop.
	Running bool
	// Tick is the number of simulation steps taken since Reset.
	Tick int
}

// Score returns the first side's score, or 0 if there is none.
func (s GameState) Score() int {
	if len(s.Scores) == 0 {
		return 0
	}
	return s.Scores[0]
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
