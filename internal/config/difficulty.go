package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartLives = 5
		cfg.Objects.BaseFallSpeed *= 0.75
		cfg.Spawn.BaseInterval += 15
	case DifficultyHard:
		cfg.Gameplay.StartLives = 2
		cfg.Objects.BaseFallSpeed *= 1.5
		cfg.Objects.MaxFallSpeed = math.Max(cfg.Objects.MaxFallSpeed, cfg.Objects.BaseFallSpeed)
		cfg.Spawn.BaseInterval = max(cfg.Spawn.BaseInterval-15, cfg.Spawn.MinInterval)
	}
}

// Curve derives per-level spawn and fall parameters from the config.
type Curve struct {
	spawn   SpawnConfig
	objects ObjectConfig
}

// NewCurve creates a difficulty curve for the given config.
func NewCurve(cfg CatchConfig) Curve {
	return Curve{
		spawn:   cfg.Spawn,
		objects: cfg.Objects,
	}
}

// SpawnInterval returns the number of ticks between spawns at a level:
// max(min, base - floor(level * coeff)).
func (c Curve) SpawnInterval(level int) int {
	reduction := int(math.Floor(float64(level) * c.spawn.DifficultyCoeff))
	interval := c.spawn.BaseInterval - reduction
	if interval < c.spawn.MinInterval {
		interval = c.spawn.MinInterval
	}
	return interval
}

// BaseFallSpeed returns the minimum fall speed at a level.
// It grows with level and saturates at MaxFallSpeed.
func (c Curve) BaseFallSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	speed := c.objects.BaseFallSpeed + c.objects.FallSpeedPerLevel*float64(level-1)
	return math.Min(speed, c.objects.MaxFallSpeed)
}

// FallSpeed returns base speed plus a variance sample in [0, 1).
func (c Curve) FallSpeed(level int, sample float64) float64 {
	return c.BaseFallSpeed(level) + sample*c.objects.FallSpeedVariance
}
