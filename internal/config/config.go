// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Gameplay CrossingGameplay `yaml:"gameplay"`
	Enemies  CrossingEnemies  `yaml:"enemies"`
	Effects  CrossingEffects  `yaml:"effects"`
}

// CrossingGameplay defines lives and collision parameters.
type CrossingGameplay struct {
	MaxLives     int     `yaml:"max_lives"`
	HitTolerance float64 `yaml:"hit_tolerance"` // in columns
}

// CrossingEnemies defines bug speed bounds and their per-level ramp.
type CrossingEnemies struct {
	MinSpeed     int `yaml:"min_speed"` // columns per second
	MaxSpeed     int `yaml:"max_speed"`
	RampPerLevel int `yaml:"ramp_per_level"`
}

// CrossingEffects defines timed item effect parameters.
type CrossingEffects struct {
	DurationMS  int     `yaml:"duration_ms"`
	SlowDivisor float64 `yaml:"slow_divisor"`
}

// Duration returns the effect duration as a time.Duration.
func (e CrossingEffects) Duration() time.Duration {
	return time.Duration(e.DurationMS) * time.Millisecond
}

// Validate reports configuration values the game cannot run with.
func (c CrossingConfig) Validate() error {
	var errs []error

	if c.Gameplay.MaxLives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.max_lives must be positive, got %d", c.Gameplay.MaxLives))
	}
	if c.Gameplay.HitTolerance <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.hit_tolerance must be positive, got %g", c.Gameplay.HitTolerance))
	}
	if c.Enemies.MinSpeed < 0 {
		errs = append(errs, fmt.Errorf("enemies.min_speed must not be negative, got %d", c.Enemies.MinSpeed))
	}
	if c.Enemies.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enemies.max_speed must be positive, got %d", c.Enemies.MaxSpeed))
	} else if c.Enemies.MaxSpeed < c.Enemies.MinSpeed {
		errs = append(errs, fmt.Errorf("enemies.max_speed %d is below min_speed %d", c.Enemies.MaxSpeed, c.Enemies.MinSpeed))
	}
	if c.Enemies.RampPerLevel < 0 {
		errs = append(errs, fmt.Errorf("enemies.ramp_per_level must not be negative, got %d", c.Enemies.RampPerLevel))
	}
	if c.Effects.DurationMS <= 0 {
		errs = append(errs, fmt.Errorf("effects.duration_ms must be positive, got %d", c.Effects.DurationMS))
	}
	if c.Effects.SlowDivisor <= 0 {
		errs = append(errs, fmt.Errorf("effects.slow_divisor must be positive, got %g", c.Effects.SlowDivisor))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables the per-level speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
