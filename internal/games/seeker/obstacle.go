// Package seeker implements the Seeker Ball simulation: a disc at the bottom of
// the playfield dodges falling bars while the player earns XP for staying alive.
package seeker

import "github.com/vovakirdan/seeker-ball/internal/core"

// Kind tags an obstacle as a hazard or a pickup.
type Kind int

const (
	KindNormal Kind = iota // ends the session on contact
	KindBonus              // grants bonus XP on contact
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == KindBonus {
		return "bonus"
	}
	return "normal"
}

// Obstacle is a falling bar. Speed is fixed when it spawns.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Kind  Kind
}

// Rect returns the obstacle's bounds in playfield units.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
