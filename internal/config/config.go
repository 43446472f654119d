// Package config provides YAML-based game configuration loading and the
// difficulty curve for Seeker Ball.
package config

// Config contains all tuning for the Seeker Ball simulation.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Economy   EconomyConfig   `yaml:"economy"`
	Timing    TimingConfig    `yaml:"timing"`
}

// PlayfieldConfig maps terminal cells to playfield units and defines the edges.
type PlayfieldConfig struct {
	CellWidth    float64 `yaml:"cell_width"`
	CellHeight   float64 `yaml:"cell_height"`
	Margin       float64 `yaml:"margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	MinWidth     float64 `yaml:"min_width"`
	MinHeight    float64 `yaml:"min_height"`
}

// PlayerConfig defines the player disc.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// ObstacleConfig defines obstacle size, spawn cadence and the base fall speed.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
	BaseSpeed     float64 `yaml:"base_speed"`
	BonusChance   float64 `yaml:"bonus_chance"` // 0.0 - 1.0
}

// EconomyConfig defines XP income.
type EconomyConfig struct {
	XPPerSecond float64 `yaml:"xp_per_second"`
	BonusXP     float64 `yaml:"bonus_xp"`
}

// TimingConfig defines the per-tick clamp and score rate.
type TimingConfig struct {
	MaxStep        float64 `yaml:"max_step"`
	ScorePerSecond float64 `yaml:"score_per_second"`
}

// Validate replaces unusable values with their defaults so a partial or
// hand-edited YAML file still produces a playable game.
func (c *Config) Validate() {
	d := DefaultConfig()

	positive(&c.Playfield.CellWidth, d.Playfield.CellWidth)
	positive(&c.Playfield.CellHeight, d.Playfield.CellHeight)
	nonNegative(&c.Playfield.Margin, d.Playfield.Margin)
	nonNegative(&c.Playfield.BottomMargin, d.Playfield.BottomMargin)
	positive(&c.Playfield.MinWidth, d.Playfield.MinWidth)
	positive(&c.Playfield.MinHeight, d.Playfield.MinHeight)

	positive(&c.Player.Radius, d.Player.Radius)
	positive(&c.Player.Speed, d.Player.Speed)
	nonNegative(&c.Player.BottomOffset, d.Player.BottomOffset)

	positive(&c.Obstacles.Width, d.Obstacles.Width)
	positive(&c.Obstacles.Height, d.Obstacles.Height)
	positive(&c.Obstacles.SpawnInterval, d.Obstacles.SpawnInterval)
	positive(&c.Obstacles.SpawnOffset, d.Obstacles.SpawnOffset)
	positive(&c.Obstacles.BaseSpeed, d.Obstacles.BaseSpeed)
	if !(c.Obstacles.BonusChance >= 0 && c.Obstacles.BonusChance <= 1) {
		c.Obstacles.BonusChance = d.Obstacles.BonusChance
	}

	nonNegative(&c.Economy.XPPerSecond, d.Economy.XPPerSecond)
	nonNegative(&c.Economy.BonusXP, d.Economy.BonusXP)

	positive(&c.Timing.MaxStep, d.Timing.MaxStep)
	nonNegative(&c.Timing.ScorePerSecond, d.Timing.ScorePerSecond)

	// The smallest playfield still fits one bar, or the player, between
	// the side margins, and keeps the player above the bottom edge.
	c.Playfield.MinWidth = max(c.Playfield.MinWidth,
		c.Obstacles.Width+2*c.Playfield.Margin,
		2*(c.Player.Radius+c.Playfield.Margin))
	c.Playfield.MinHeight = max(c.Playfield.MinHeight, c.Player.BottomOffset+c.Player.Radius)
}

// positive resets *v to def unless it is a finite value > 0.
func positive(v *float64, def float64) {
	if !(*v > 0) || isInf(*v) {
		*v = def
	}
}

// nonNegative resets *v to def unless it is a finite value >= 0.
func nonNegative(v *float64, def float64) {
	if !(*v >= 0) || isInf(*v) {
		*v = def
	}
}
