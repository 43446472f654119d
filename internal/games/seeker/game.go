package seeker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/economy"
	"github.com/vovakirdan/seeker-ball/internal/progress"
)

// Options configures a new Game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   progress.Store
	Catalog *economy.Catalog
	Logger  *log.Logger

	// Slope overrides the persisted difficulty slope for this process when set.
	Slope *float64
}

// Game owns one player's simulation, screen state and economy.
type Game struct {
	cfg    config.Config
	store  progress.Store
	econ   *economy.Economy
	logger *log.Logger

	machine *Machine
	session *Session
	spawner *Spawner

	width, height float64
	playerX       float64
	direction     core.Direction
	pointerHeld   bool

	slope     float64
	curve     config.Curve
	highlight string

	seed     int64
	sessions int64
	lastRun  RunSummary
	onEnd    func(RunSummary)
}

// New creates a game in the menu. Runtime.ScreenW/ScreenH are terminal cells and
// are converted to playfield units through the configured cell size.
func New(opts Options) *Game {
	cfg := opts.Config
	cfg.Validate()

	store := opts.Store
	if store == nil {
		store = progress.NewMemoryStore()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = economy.DefaultCatalog()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	econ := economy.New(store, catalog, cfg.Economy.XPPerSecond)
	econ.SetLogger(logger)

	slope := progress.LoadSlope(store)
	if opts.Slope != nil && progress.ValidSlope(*opts.Slope) {
		slope = *opts.Slope
	}

	g := &Game{
		cfg:    cfg,
		store:  store,
		econ:   econ,
		logger: logger,
		slope:  slope,
		curve:  config.NewCurve(cfg.Obstacles.BaseSpeed, slope),
		seed:   opts.Runtime.Seed,
	}
	g.machine = NewMachine(g.onEnter)
	g.spawner = NewSpawner(cfg.Obstacles, cfg.Playfield.Margin, g.curve, g.seed)
	g.highlight = econ.Equipped()

	g.ResizeCells(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	g.resetSession()
	return g
}

// Economy returns the player's economy.
func (g *Game) Economy() *economy.Economy { return g.econ }

// Mode returns the active screen.
func (g *Game) Mode() Mode { return g.machine.Mode() }

// Session returns the running or last session.
func (g *Game) Session() *Session { return g.session }

// Direction returns the current movement intent.
func (g *Game) Direction() core.Direction { return g.direction }

// LastRun returns the summary of the most recently ended session.
func (g *Game) LastRun() RunSummary { return g.lastRun }

// OnSessionEnd registers a callback invoked once when a session ends in a collision.
func (g *Game) OnSessionEnd(fn func(RunSummary)) { g.onEnd = fn }

// Size returns the playfield size in units.
func (g *Game) Size() (w, h float64) { return g.width, g.height }

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64) Frame {
	dt = g.clampStep(dt)

	if g.machine.Mode() != ModePlaying {
		return g.frame(OutcomeNone)
	}

	s := g.session
	s.Elapsed += dt
	s.Score += g.cfg.Timing.ScorePerSecond * dt

	g.playerX += float64(g.direction) * g.cfg.Player.Speed * dt
	g.clampPlayer()

	g.econ.AccrueTimeBasedXP(dt)

	if o, ok := g.spawner.Tick(dt, s.Elapsed, g.width); ok {
		s.Obstacles = append(s.Obstacles, o)
	}

	for i := range s.Obstacles {
		s.Obstacles[i].Y += s.Obstacles[i].Speed * dt
	}

	limit := g.height + g.cfg.Playfield.BottomMargin
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.Y <= limit {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept

	return g.frame(g.resolveCollision())
}

// resolveCollision handles at most one hit per step, newest obstacle first.
func (g *Game) resolveCollision() Outcome {
	s := g.session
	player := g.playerCircle()

	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		o := s.Obstacles[i]
		if !core.CircleIntersectsRect(player, o.Rect()) {
			continue
		}

		if o.Kind == KindBonus {
			s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
			s.Bonuses++
			g.econ.AccrueBonusXP(g.cfg.Economy.BonusXP)
			return OutcomeBonus
		}

		s.Over = true
		g.machine.collide()
		g.lastRun = s.summary(g.econ.Balance())
		g.logger.Debug("session ended", "score", g.lastRun.Score, "elapsed", g.lastRun.Elapsed)
		if g.onEnd != nil {
			g.onEnd(g.lastRun)
		}
		return OutcomeCollision
	}
	return OutcomeNone
}

func (g *Game) clampStep(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return min(dt, g.cfg.Timing.MaxStep)
}

func (g *Game) playerY() float64 {
	return g.height - g.cfg.Player.BottomOffset
}

func (g *Game) playerCircle() core.Circle {
	return core.Circle{X: g.playerX, Y: g.playerY(), R: g.cfg.Player.Radius}
}

// playerBounds returns the allowed x range. A playfield narrower than the
// disc plus margins collapses both bounds to the centre.
func (g *Game) playerBounds() (lo, hi float64) {
	lo = g.cfg.Player.Radius + g.cfg.Playfield.Margin
	hi = g.width - g.cfg.Player.Radius - g.cfg.Playfield.Margin
	if hi < lo {
		c := g.width / 2
		return c, c
	}
	return lo, hi
}

func (g *Game) clampPlayer() {
	lo, hi := g.playerBounds()
	g.playerX = core.ClampF(g.playerX, lo, hi)
}

// onEnter is the Machine hook.
func (g *Game) onEnter(to Mode, via core.Action) {
	if to != ModePlaying {
		g.direction = core.DirNone
		g.pointerHeld = false
	}
	if to == ModeShop {
		g.highlight = g.econ.Equipped()
	}
	if via == core.ActionStartGame || via == core.ActionRestart {
		g.resetSession()
	}
}

func (g *Game) resetSession() {
	g.session = newSession(g.econ.Balance())
	g.spawner.Reset(g.seed + g.sessions)
	g.sessions++
	g.playerX = g.width / 2
	g.clampPlayer()
	g.direction = core.DirNone
}

func (g *Game) frame(outcome Outcome) Frame {
	s := g.session
	obstacles := make([]Obstacle, len(s.Obstacles))
	copy(obstacles, s.Obstacles)

	return Frame{
		Mode:   g.machine.Mode(),
		Width:  g.width,
		Height: g.height,
		Player: PlayerView{
			X:          g.playerX,
			Y:          g.playerY(),
			R:          g.cfg.Player.Radius,
			CosmeticID: g.econ.Equipped(),
		},
		Obstacles: obstacles,
		Elapsed:   s.Elapsed,
		Score:     int(s.Score),
		XP:        g.econ.Balance(),
		Speed:     g.curve.Speed(s.Elapsed),
		Outcome:   outcome,
		Bonuses:   s.Bonuses,
		Highlight: g.highlight,
		Slope:     g.slope,
		LastRun:   g.lastRun,
	}
}

// Frame returns the current snapshot without advancing the simulation.
func (g *Game) Frame() Frame {
	return g.frame(OutcomeNone)
}
