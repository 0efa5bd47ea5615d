package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the hard-coded default tuning.
// It mirrors defaults/catch.yaml and is the fallback if the embed is unreadable.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Actor: ActorConfig{
			Width:        64,
			Height:       64,
			Speed:        8,
			BottomMargin: 20,
		},
		Objects: ObjectConfig{
			Width:             40,
			Height:            40,
			BaseFallSpeed:     3,
			FallSpeedVariance: 2,
			FallSpeedPerLevel: 0.5,
			MaxFallSpeed:      12,
		},
		Spawn: SpawnConfig{
			BaseInterval:    65, // 60 ticks at level 1
			MinInterval:     20,
			DifficultyCoeff: 5,
		},
		Gameplay: Gameplay{
			StartLives:       3,
			LevelUpThreshold: 10,
			HoldTicks:        8,
		},
		Loading: Loading{
			DisplayDelay: 600 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
