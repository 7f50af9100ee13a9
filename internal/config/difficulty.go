package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty maps a CLI value onto a preset. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxLives = 5
		cfg.Enemies.MinSpeed = 1
		cfg.Enemies.MaxSpeed = 3
		cfg.Effects.DurationMS = 2000
	case DifficultyHard:
		cfg.Gameplay.MaxLives = 2
		cfg.Enemies.MinSpeed = 2
		cfg.Enemies.MaxSpeed = 7
		cfg.Effects.DurationMS = 700
	case DifficultyFixed:
		cfg.Enemies.RampPerLevel = 0
	}
}

// SpeedBoundsAt returns the bug speed range used on level k (0-based)
// when the level is reached by clearing every level before it.
func (c CrossingConfig) SpeedBoundsAt(k int) (lo, hi int) {
	ramp := (k + 1) * c.Enemies.RampPerLevel
	return c.Enemies.MinSpeed + ramp, c.Enemies.MaxSpeed + ramp
}
