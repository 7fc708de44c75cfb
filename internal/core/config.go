package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Width int           // Board width in cells
	Lanes int           // Number of rows including start and finish
	Tick  time.Duration // Delay between simulation ticks (default 100ms)
	Seed  int64         // RNG seed for the session
}

// DefaultConfig returns a RuntimeConfig with the classic board size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width: 30,
		Lanes: 5,
		Tick:  DefaultTick,
		Seed:  0, // 0 means use current time in the session layer
	}
}

// DefaultTick is the classic 100ms tick.
const DefaultTick = 100 * time.Millisecond

// TickInterval returns the delay between simulation ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.Tick <= 0 {
		return DefaultTick
	}
	return c.Tick
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Crossings completed
	GameOver bool     // Termination flag; never reset within a session
	Player   Position // Current player position
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Collided bool // The player was hit during this tick
	Scored   bool // The player reached the finish lane during this tick
}
