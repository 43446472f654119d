package config

import "math"

// Curve maps elapsed session time to obstacle fall speed:
// speed(t) = Base + Slope*t.
type Curve struct {
	Base  float64
	Slope float64
}

// NewCurve creates a difficulty curve. A negative or non-finite slope is treated
// as 0 so the curve never decreases over time.
func NewCurve(base, slope float64) Curve {
	if !(slope >= 0) || isInf(slope) {
		slope = 0
	}
	return Curve{Base: base, Slope: slope}
}

// Speed returns the fall speed for an obstacle spawned at elapsed seconds t.
func (c Curve) Speed(t float64) float64 {
	if t < 0 {
		t = 0
	}
	return c.Base + c.Slope*t
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SlopeForPreset returns the difficulty slope for a preset.
// ok is false for unknown preset names.
func SlopeForPreset(preset DifficultyPreset) (slope float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 1, true
	case DifficultyNormal:
		return 2, true
	case DifficultyHard:
		return 4, true
	case DifficultyFixed:
		return 0, true
	default:
		return 0, false
	}
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}
