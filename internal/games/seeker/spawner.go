package seeker

import (
	"math/rand"

	"github.com/vovakirdan/seeker-ball/internal/config"
)

// Spawner emits obstacles on a fixed countdown.
type Spawner struct {
	cfg    config.ObstacleConfig
	margin float64
	curve  config.Curve
	rng    *rand.Rand
	timer  float64
}

// NewSpawner creates a spawner seeded for deterministic placement.
func NewSpawner(cfg config.ObstacleConfig, margin float64, curve config.Curve, seed int64) *Spawner {
	s := &Spawner{cfg: cfg, margin: margin, curve: curve}
	s.Reset(seed)
	return s
}

// Reset restarts the countdown and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = s.cfg.SpawnInterval
}

// SetCurve replaces the difficulty curve used for new obstacles.
func (s *Spawner) SetCurve(c config.Curve) {
	s.curve = c
}

// Timer returns the seconds left until the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Tick advances the countdown by dt. When it expires, one obstacle is returned
// and the countdown restarts at the full interval; the overshoot is dropped.
func (s *Spawner) Tick(dt, elapsed, width float64) (Obstacle, bool) {
	s.timer -= dt
	if s.timer > 0 {
		return Obstacle{}, false
	}
	s.timer = s.cfg.SpawnInterval
	return s.spawn(elapsed, width), true
}

func (s *Spawner) spawn(elapsed, width float64) Obstacle {
	w, h := s.cfg.Width, s.cfg.Height

	lo := s.margin
	hi := width - w - s.margin
	var x float64
	if hi < lo {
		// playfield too narrow for the margins: keep as much of the bar inside as possible
		x = max(0, min(s.margin, width-w))
		s.rng.Float64()
	} else {
		x = lo + s.rng.Float64()*(hi-lo)
	}

	kind := KindNormal
	if s.rng.Float64() < s.cfg.BonusChance {
		kind = KindBonus
	}

	return Obstacle{
		X:     x,
		Y:     -h - s.cfg.SpawnOffset,
		W:     w,
		H:     h,
		Speed: s.curve.Speed(elapsed),
		Kind:  kind,
	}
}
