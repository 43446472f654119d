package config

import (
	_ "embed"
)

//go:embed defaults/seeker.yaml
var defaultSeekerYAML []byte

// DefaultConfig returns the hard-coded default configuration.
// It mirrors defaults/seeker.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			CellWidth:    10,
			CellHeight:   20,
			Margin:       10,
			BottomMargin: 50,
			MinWidth:     200,
			MinHeight:    200,
		},
		Player: PlayerConfig{
			Radius:       18,
			Speed:        320,
			BottomOffset: 80,
		},
		Obstacles: ObstacleConfig{
			Width:         100,
			Height:        22,
			SpawnInterval: 0.85,
			SpawnOffset:   10,
			BaseSpeed:     210,
			BonusChance:   0.08,
		},
		Economy: EconomyConfig{
			XPPerSecond: 1,
			BonusXP:     25,
		},
		Timing: TimingConfig{
			MaxStep:        0.033,
			ScorePerSecond: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSeekerYAML
}
