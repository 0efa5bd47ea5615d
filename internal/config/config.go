// Package config provides YAML-based tuning for the catch engine, the
// difficulty curves derived from it, and the presets exposed on the CLI.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for values the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// CatchConfig is the immutable tuning passed to the engine at construction.
type CatchConfig struct {
	Playfield Playfield    `yaml:"playfield"`
	Actor     ActorConfig  `yaml:"actor"`
	Objects   ObjectConfig `yaml:"objects"`
	Spawn     SpawnConfig  `yaml:"spawn"`
	Gameplay  Gameplay     `yaml:"gameplay"`
	Loading   Loading      `yaml:"loading"`
}

// Playfield is the fixed virtual coordinate space shared with the renderer.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player-controlled catcher.
type ActorConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per tick
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between actor and playfield bottom
}

// ObjectConfig defines falling objects and their fall speed curve.
type ObjectConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BaseFallSpeed     float64 `yaml:"base_fall_speed"`
	FallSpeedVariance float64 `yaml:"fall_speed_variance"`
	FallSpeedPerLevel float64 `yaml:"fall_speed_per_level"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
}

// SpawnConfig defines the spawn interval curve.
type SpawnConfig struct {
	BaseInterval    int     `yaml:"base_interval"`
	MinInterval     int     `yaml:"min_interval"`
	DifficultyCoeff float64 `yaml:"difficulty_coeff"`
}

// Gameplay defines lives, leveling and input handling.
type Gameplay struct {
	StartLives       int `yaml:"start_lives"`
	LevelUpThreshold int `yaml:"level_up_threshold"`
	HoldTicks        int `yaml:"hold_ticks"` // Ticks a move key stays asserted after a press
}

// Loading defines the loading screen behavior.
type Loading struct {
	DisplayDelay time.Duration `yaml:"display_delay"`
}

// ActorY returns the fixed vertical position of the actor.
func (c CatchConfig) ActorY() float64 {
	return c.Playfield.Height - c.Actor.Height - c.Actor.BottomMargin
}

// Validate checks that the config describes a playable game.
func (c CatchConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return fmt.Errorf("%w: actor size must be positive", ErrInvalidConfig)
	case c.Actor.Width > c.Playfield.Width:
		return fmt.Errorf("%w: actor width %v exceeds playfield width %v", ErrInvalidConfig, c.Actor.Width, c.Playfield.Width)
	case c.ActorY() < 0:
		return fmt.Errorf("%w: actor does not fit vertically", ErrInvalidConfig)
	case c.Actor.Speed < 0:
		return fmt.Errorf("%w: actor speed must not be negative", ErrInvalidConfig)
	case c.Objects.Width <= 0 || c.Objects.Height <= 0:
		return fmt.Errorf("%w: object size must be positive", ErrInvalidConfig)
	case c.Objects.Width > c.Playfield.Width:
		return fmt.Errorf("%w: object width %v exceeds playfield width %v", ErrInvalidConfig, c.Objects.Width, c.Playfield.Width)
	case c.Objects.BaseFallSpeed <= 0:
		return fmt.Errorf("%w: base fall speed must be positive", ErrInvalidConfig)
	case c.Objects.FallSpeedVariance < 0 || c.Objects.FallSpeedPerLevel < 0:
		return fmt.Errorf("%w: fall speed variance and per-level step must not be negative", ErrInvalidConfig)
	case c.Objects.MaxFallSpeed < c.Objects.BaseFallSpeed:
		return fmt.Errorf("%w: max fall speed %v below base %v", ErrInvalidConfig, c.Objects.MaxFallSpeed, c.Objects.BaseFallSpeed)
	case c.Spawn.MinInterval < 1:
		return fmt.Errorf("%w: min spawn interval must be at least 1", ErrInvalidConfig)
	case c.Spawn.BaseInterval < c.Spawn.MinInterval:
		return fmt.Errorf("%w: base spawn interval %d below min %d", ErrInvalidConfig, c.Spawn.BaseInterval, c.Spawn.MinInterval)
	case c.Spawn.DifficultyCoeff < 0:
		return fmt.Errorf("%w: difficulty coefficient must not be negative", ErrInvalidConfig)
	case c.Gameplay.StartLives < 1:
		return fmt.Errorf("%w: start lives must be at least 1", ErrInvalidConfig)
	case c.Gameplay.LevelUpThreshold < 1:
		return fmt.Errorf("%w: level up threshold must be at least 1", ErrInvalidConfig)
	case c.Gameplay.HoldTicks < 1:
		return fmt.Errorf("%w: hold ticks must be at least 1", ErrInvalidConfig)
	case c.Loading.DisplayDelay < 0:
		return fmt.Errorf("%w: loading delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
