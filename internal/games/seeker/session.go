package seeker

// Session is the state of one play-through. It is discarded on restart and
// never persisted.
type Session struct {
	Elapsed   float64
	Score     float64
	Obstacles []Obstacle
	Bonuses   int
	Over      bool

	startXP float64
}

func newSession(startXP float64) *Session {
	return &Session{
		Obstacles: make([]Obstacle, 0, 16),
		startXP:   startXP,
	}
}

// RunSummary is what gets recorded when a session ends.
type RunSummary struct {
	Score    int
	Elapsed  float64
	XPEarned float64
	Bonuses  int
}

func (s *Session) summary(balance float64) RunSummary {
	earned := balance - s.startXP
	if earned < 0 {
		earned = 0
	}
	return RunSummary{
		Score:    int(s.Score),
		Elapsed:  s.Elapsed,
		XPEarned: earned,
		Bonuses:  s.Bonuses,
	}
}
