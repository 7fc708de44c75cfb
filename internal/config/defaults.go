package config

import (
	_ "embed"
)

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultLanesConfig returns the default lane-crossing configuration.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Board: BoardConfig{
			Width: 30,
			Lanes: 5,
		},
		Traffic: TrafficConfig{
			SpawnChance:      0.1,
			DoubleStepChance: 0.5,
		},
		Player: PlayerConfig{
			EdgePolicy: EdgeClamp,
		},
		Scoring: ScoringConfig{
			OnFinish: FinishBounce,
		},
		Session: SessionConfig{
			TickMS:    100,
			QueueSize: 8,
			LogLines:  6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanesYAML
}
