package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Gameplay: CrossingGameplay{
			MaxLives:     3,
			HitTolerance: 0.1,
		},
		Enemies: CrossingEnemies{
			MinSpeed:     1,
			MaxSpeed:     5,
			RampPerLevel: 1,
		},
		Effects: CrossingEffects{
			DurationMS:  1000,
			SlowDivisor: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
