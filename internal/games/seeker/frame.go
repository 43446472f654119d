package seeker

// Outcome reports what happened during a step.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeBonus             // a bonus bar was collected
	OutcomeCollision         // the session ended
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBonus:
		return "bonus"
	case OutcomeCollision:
		return "collision"
	default:
		return "none"
	}
}

// PlayerView is the read-only player state handed to the renderer.
type PlayerView struct {
	X, Y, R    float64
	CosmeticID string
}

// Frame is an immutable snapshot of everything a renderer needs.
type Frame struct {
	Mode      Mode
	Width     float64
	Height    float64
	Player    PlayerView
	Obstacles []Obstacle
	Elapsed   float64
	Score     int
	XP        float64
	Speed     float64 // fall speed a bar spawned now would get
	Outcome   Outcome
	Bonuses   int
	Highlight string // shop cursor
	Slope     float64
	LastRun   RunSummary // zero until a session has ended
}
