// Package config provides YAML-based game configuration loading and
// validation for the lane-crossing game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// LanesConfig contains all configuration for the lane-crossing game.
type LanesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Traffic TrafficConfig `yaml:"traffic"`
	Player  PlayerConfig  `yaml:"player"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Width int `yaml:"width"` // Cells per row
	Lanes int `yaml:"lanes"` // Rows including start and finish
}

// TrafficConfig defines obstacle generation.
type TrafficConfig struct {
	SpawnChance      float64 `yaml:"spawn_chance"`       // Chance a shift inserts an obstacle
	DoubleStepChance float64 `yaml:"double_step_chance"` // Chance an obstacle lane shifts twice
}

// PlayerConfig defines movement rules.
type PlayerConfig struct {
	EdgePolicy EdgePolicy `yaml:"edge_policy"`
}

// ScoringConfig defines what happens when the finish lane is reached.
type ScoringConfig struct {
	OnFinish FinishPolicy `yaml:"on_finish"`
}

// SessionConfig defines the session loop cadence.
type SessionConfig struct {
	TickMS    int `yaml:"tick_ms"`    // Delay between ticks in milliseconds
	QueueSize int `yaml:"queue_size"` // Key presses buffered between ticks
	LogLines  int `yaml:"log_lines"`  // Lines kept in the diagnostics pane
}

// EdgePolicy decides how moves past the board edge are handled.
type EdgePolicy string

const (
	EdgeClamp EdgePolicy = "clamp" // Stay on the board
	EdgeWrap  EdgePolicy = "wrap"  // Wrap horizontally, clamp vertically
	EdgeNone  EdgePolicy = "none"  // Unbounded, off-board positions never collide
)

// FinishPolicy decides where the player goes after scoring.
type FinishPolicy string

const (
	FinishBounce  FinishPolicy = "bounce"  // One step back towards the start
	FinishRestart FinishPolicy = "restart" // Back to the start lane
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TickInterval returns the configured delay between ticks, 100ms if unset.
func (c LanesConfig) TickInterval() time.Duration {
	if c.Session.TickMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Session.TickMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable board.
func (c LanesConfig) Validate() error {
	if c.Board.Width < 3 {
		return fmt.Errorf("%w: board.width must be at least 3, got %d", ErrInvalidConfig, c.Board.Width)
	}
	if c.Board.Lanes < 2 {
		return fmt.Errorf("%w: board.lanes must be at least 2, got %d", ErrInvalidConfig, c.Board.Lanes)
	}
	if c.Traffic.SpawnChance < 0 || c.Traffic.SpawnChance > 1 {
		return fmt.Errorf("%w: traffic.spawn_chance must be in [0,1], got %v", ErrInvalidConfig, c.Traffic.SpawnChance)
	}
	if c.Traffic.DoubleStepChance < 0 || c.Traffic.DoubleStepChance > 1 {
		return fmt.Errorf("%w: traffic.double_step_chance must be in [0,1], got %v", ErrInvalidConfig, c.Traffic.DoubleStepChance)
	}
	switch c.Player.EdgePolicy {
	case EdgeClamp, EdgeWrap, EdgeNone:
	default:
		return fmt.Errorf("%w: unknown player.edge_policy %q", ErrInvalidConfig, c.Player.EdgePolicy)
	}
	switch c.Scoring.OnFinish {
	case FinishBounce, FinishRestart:
	default:
		return fmt.Errorf("%w: unknown scoring.on_finish %q", ErrInvalidConfig, c.Scoring.OnFinish)
	}
	if c.Session.TickMS <= 0 {
		return fmt.Errorf("%w: session.tick_ms must be positive, got %d", ErrInvalidConfig, c.Session.TickMS)
	}
	return nil
}
