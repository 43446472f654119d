package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  speed: 500\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Player.Speed != 500 {
		t.Errorf("Player.Speed = %f, expected 500", cfg.Player.Speed)
	}
	if cfg.Player.Radius != DefaultConfig().Player.Radius {
		t.Errorf("Player.Radius = %f, expected default", cfg.Player.Radius)
	}
	if cfg.Obstacles.SpawnInterval != 0.85 {
		t.Errorf("SpawnInterval = %f, expected 0.85", cfg.Obstacles.SpawnInterval)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateReplacesBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Radius = -3
	cfg.Obstacles.SpawnInterval = 0
	cfg.Obstacles.BonusChance = 1.5
	cfg.Timing.MaxStep = math.Inf(1)
	cfg.Economy.XPPerSecond = math.NaN()

	cfg.Validate()

	d := DefaultConfig()
	if cfg.Player.Radius != d.Player.Radius {
		t.Errorf("Radius = %f, expected default %f", cfg.Player.Radius, d.Player.Radius)
	}
	if cfg.Obstacles.SpawnInterval != d.Obstacles.SpawnInterval {
		t.Errorf("SpawnInterval = %f, expected default", cfg.Obstacles.SpawnInterval)
	}
	if cfg.Obstacles.BonusChance != d.Obstacles.BonusChance {
		t.Errorf("BonusChance = %f, expected default", cfg.Obstacles.BonusChance)
	}
	if cfg.Timing.MaxStep != d.Timing.MaxStep {
		t.Errorf("MaxStep = %f, expected default", cfg.Timing.MaxStep)
	}
	if cfg.Economy.XPPerSecond != d.Economy.XPPerSecond {
		t.Errorf("XPPerSecond = %f, expected default", cfg.Economy.XPPerSecond)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  base_speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Obstacles.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %f, expected 300", cfg.Obstacles.BaseSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
	if cfg != DefaultConfig() {
		t.Error("missing custom config should still return defaults")
	}
}

func TestCurve(t *testing.T) {
	c := NewCurve(210, 2)
	if c.Speed(0) != 210 {
		t.Errorf("Speed(0) = %f, expected 210", c.Speed(0))
	}
	if c.Speed(10) != 230 {
		t.Errorf("Speed(10) = %f, expected 230", c.Speed(10))
	}

	prev := c.Speed(0)
	for i := 1; i <= 100; i++ {
		s := c.Speed(float64(i) * 0.5)
		if s < prev {
			t.Fatalf("curve decreased at t=%f: %f < %f", float64(i)*0.5, s, prev)
		}
		prev = s
	}
}

func TestCurveRejectsNegativeSlope(t *testing.T) {
	c := NewCurve(100, -5)
	if c.Slope != 0 {
		t.Errorf("Slope = %f, expected 0", c.Slope)
	}
	if c.Speed(1000) != 100 {
		t.Errorf("Speed(1000) = %f, expected 100", c.Speed(1000))
	}
}

func TestSlopeForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		slope  float64
		ok     bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 2, true},
		{DifficultyHard, 4, true},
		{DifficultyFixed, 0, true},
		{"insane", 0, false},
	}

	for _, tc := range tests {
		slope, ok := SlopeForPreset(tc.preset)
		if slope != tc.slope || ok != tc.ok {
			t.Errorf("SlopeForPreset(%q) = (%f, %v), expected (%f, %v)", tc.preset, slope, ok, tc.slope, tc.ok)
		}
	}
}

func TestValidateKeepsGeometryUsable(t *testing.T) {
	tests := []struct {
		name      string
		edit      func(*Config)
		minWidth  float64
		minHeight float64
		offset    float64
	}{
		{"defaults untouched", func(*Config) {}, 200, 200, 10},
		{"zero spawn offset", func(c *Config) { c.Obstacles.SpawnOffset = 0 }, 200, 200, 10},
		{"min width below one bar", func(c *Config) { c.Playfield.MinWidth = 60 }, 120, 200, 10},
		{"wide margins", func(c *Config) {
			c.Playfield.MinWidth = 50
			c.Playfield.Margin = 60
		}, 220, 200, 10},
		{"big player", func(c *Config) {
			c.Player.Radius = 90
			c.Player.BottomOffset = 150
		}, 200, 240, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			cfg.Validate()

			if cfg.Playfield.MinWidth != tt.minWidth {
				t.Errorf("MinWidth = %f, expected %f", cfg.Playfield.MinWidth, tt.minWidth)
			}
			if cfg.Playfield.MinHeight != tt.minHeight {
				t.Errorf("MinHeight = %f, expected %f", cfg.Playfield.MinHeight, tt.minHeight)
			}
			if cfg.Obstacles.SpawnOffset != tt.offset {
				t.Errorf("SpawnOffset = %f, expected %f", cfg.Obstacles.SpawnOffset, tt.offset)
			}
		})
	}
}
