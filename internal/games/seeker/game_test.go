package seeker

import (
	"math"
	"testing"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/progress"
)

func newTestGame(seed int64) (*Game, *progress.MemoryStore) {
	store := progress.NewMemoryStore()
	g := New(Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed},
		Store:   store,
	})
	return g, store
}

// obstacleOnPlayer returns a motionless bar centred on the player.
func obstacleOnPlayer(g *Game, kind Kind) Obstacle {
	c := g.playerCircle()
	return Obstacle{X: c.X - 50, Y: c.Y - 11, W: 100, H: 22, Kind: kind}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newTestGame(12345)
	g2, _ := newTestGame(12345)
	g1.StartGame()
	g2.StartGame()

	for i := 0; i < 900; i++ {
		d := core.DirNone
		switch {
		case i%120 < 40:
			d = core.DirLeft
		case i%120 >= 80:
			d = core.DirRight
		}
		g1.SetDirection(d)
		g2.SetDirection(d)

		f1 := g1.Step(1.0 / 60)
		f2 := g2.Step(1.0 / 60)

		if f1.Mode != f2.Mode || f1.Player.X != f2.Player.X || len(f1.Obstacles) != len(f2.Obstacles) {
			t.Fatalf("tick %d: frames diverged: %+v vs %+v", i, f1.Player, f2.Player)
		}
		for j := range f1.Obstacles {
			if f1.Obstacles[j] != f2.Obstacles[j] {
				t.Fatalf("tick %d: obstacle %d differs: %+v vs %+v", i, j, f1.Obstacles[j], f2.Obstacles[j])
			}
		}
	}
}

func TestStepIsNoOpOutsidePlay(t *testing.T) {
	g, _ := newTestGame(1)

	before := g.Frame()
	f := g.Step(0.016)

	if f.Mode != ModeMenu {
		t.Fatalf("Mode = %v, expected menu", f.Mode)
	}
	if f.Elapsed != before.Elapsed || f.XP != before.XP || f.Score != before.Score {
		t.Errorf("state changed in menu: %+v -> %+v", before, f)
	}
	if f.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, expected none", f.Outcome)
	}
}

func TestStepClampsDt(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"hitch clamped", 1.0, 0.033},
		{"negative ignored", -0.5, 0},
		{"nan ignored", math.NaN(), 0},
		{"normal passes", 0.01, 0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(1)
			g.StartGame()
			f := g.Step(tc.dt)
			if math.Abs(f.Elapsed-tc.want) > 1e-12 {
				t.Errorf("Elapsed = %f, expected %f", f.Elapsed, tc.want)
			}
			if math.Abs(f.XP-tc.want) > 1e-12 {
				t.Errorf("XP = %f, expected %f", f.XP, tc.want)
			}
		})
	}
}

func TestPlayerClampedAtBounds(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	lo, hi := g.playerBounds()

	g.playerX = lo
	g.SetDirection(core.DirLeft)
	if f := g.Step(0.02); f.Player.X < lo {
		t.Errorf("player x %f went below %f", f.Player.X, lo)
	}

	g.playerX = hi
	g.SetDirection(core.DirRight)
	if f := g.Step(0.02); f.Player.X > hi {
		t.Errorf("player x %f went above %f", f.Player.X, hi)
	}
}

func TestPlayerStaysInBoundsOverLongRun(t *testing.T) {
	g, _ := newTestGame(99)
	g.SetDifficultySlope(0)
	g.StartGame()
	lo, hi := g.playerBounds()

	for i := 0; i < 2000 && g.Mode() == ModePlaying; i++ {
		if i%300 < 150 {
			g.SetDirection(core.DirLeft)
		} else {
			g.SetDirection(core.DirRight)
		}
		f := g.Step(0.033)
		if f.Player.X < lo || f.Player.X > hi {
			t.Fatalf("tick %d: x = %f outside [%f, %f]", i, f.Player.X, lo, hi)
		}
		if f.Player.Y != f.Height-config.DefaultConfig().Player.BottomOffset {
			t.Fatalf("tick %d: y = %f not anchored", i, f.Player.Y)
		}
	}
}

func TestBonusCollision(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	g.session.Obstacles = append(g.session.Obstacles, obstacleOnPlayer(g, KindBonus))

	f := g.Step(0.01)

	if f.Outcome != OutcomeBonus {
		t.Fatalf("Outcome = %v, expected bonus", f.Outcome)
	}
	if f.Mode != ModePlaying {
		t.Errorf("Mode = %v, expected playing", f.Mode)
	}
	if len(f.Obstacles) != 0 {
		t.Errorf("bonus obstacle should be removed, got %d", len(f.Obstacles))
	}
	want := config.DefaultConfig().Economy.BonusXP + 0.01
	if math.Abs(f.XP-want) > 1e-9 {
		t.Errorf("XP = %f, expected %f", f.XP, want)
	}
	if f.Bonuses != 1 {
		t.Errorf("Bonuses = %d, expected 1", f.Bonuses)
	}
}

func TestNormalCollisionEndsSession(t *testing.T) {
	g, _ := newTestGame(1)
	var ended []RunSummary
	g.OnSessionEnd(func(r RunSummary) { ended = append(ended, r) })

	g.StartGame()
	g.SetDirection(core.DirRight)
	g.session.Obstacles = append(g.session.Obstacles, obstacleOnPlayer(g, KindNormal))

	f := g.Step(0.01)

	if f.Outcome != OutcomeCollision {
		t.Fatalf("Outcome = %v, expected collision", f.Outcome)
	}
	if f.Mode != ModeGameOver {
		t.Errorf("Mode = %v, expected gameover", f.Mode)
	}
	if g.Direction() != core.DirNone {
		t.Errorf("Direction = %v, expected none", g.Direction())
	}
	if len(f.Obstacles) != 1 {
		t.Errorf("hazard should remain, got %d obstacles", len(f.Obstacles))
	}
	if len(ended) != 1 {
		t.Fatalf("OnSessionEnd called %d times, expected 1", len(ended))
	}
	if ended[0].Elapsed != 0.01 {
		t.Errorf("summary elapsed = %f, expected 0.01", ended[0].Elapsed)
	}
	if f.LastRun != ended[0] || g.LastRun() != ended[0] {
		t.Errorf("LastRun = %+v, expected %+v", f.LastRun, ended[0])
	}

	// frozen after game over
	x := f.Player.X
	if f2 := g.Step(0.02); f2.Player.X != x || f2.Elapsed != f.Elapsed {
		t.Error("simulation advanced after game over")
	}
}

func TestFirstHitWinsNewestFirst(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	g.session.Obstacles = append(g.session.Obstacles,
		obstacleOnPlayer(g, KindNormal),
		obstacleOnPlayer(g, KindBonus),
	)

	f := g.Step(0.01)

	if f.Outcome != OutcomeBonus || f.Mode != ModePlaying {
		t.Fatalf("expected newest bonus to win, got %v in %v", f.Outcome, f.Mode)
	}
	if len(f.Obstacles) != 1 || f.Obstacles[0].Kind != KindNormal {
		t.Errorf("expected the hazard to remain, got %+v", f.Obstacles)
	}
}

func TestObstaclesDroppedBelowBottom(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	cfg := config.DefaultConfig()
	_, h := g.Size()

	g.session.Obstacles = append(g.session.Obstacles,
		Obstacle{X: 0, Y: h + cfg.Playfield.BottomMargin - 1, W: 10, H: 10, Speed: 1000},
		Obstacle{X: 0, Y: -50, W: 10, H: 10, Speed: 10},
	)

	f := g.Step(0.01)

	if len(f.Obstacles) != 1 || f.Obstacles[0].Y > 0 {
		t.Errorf("expected only the top obstacle to remain, got %+v", f.Obstacles)
	}
}

func TestRestartResetsSession(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	for i := 0; i < 100; i++ {
		g.Step(0.02)
	}
	g.session.Obstacles = append(g.session.Obstacles, obstacleOnPlayer(g, KindNormal))
	g.Step(0.01)
	if g.Mode() != ModeGameOver {
		t.Fatalf("Mode = %v, expected gameover", g.Mode())
	}

	if !g.Restart() {
		t.Fatal("Restart from gameover should succeed")
	}
	f := g.Frame()
	if f.Mode != ModePlaying {
		t.Errorf("Mode = %v, expected playing", f.Mode)
	}
	if f.Elapsed != 0 || len(f.Obstacles) != 0 || f.Score != 0 || f.Bonuses != 0 {
		t.Errorf("session not reset: %+v", f)
	}
	w, _ := g.Size()
	if f.Player.X != w/2 {
		t.Errorf("player x = %f, expected centre %f", f.Player.X, w/2)
	}
}

func TestDirectionOnlyWhilePlaying(t *testing.T) {
	g, _ := newTestGame(1)

	g.SetDirection(core.DirLeft)
	if g.Direction() != core.DirNone {
		t.Error("direction accepted in menu")
	}

	g.PointerDown(0)
	if g.Direction() != core.DirNone {
		t.Error("pointer accepted in menu")
	}

	g.StartGame()
	g.SetDirection(core.Direction(7))
	if g.Direction() != core.DirRight {
		t.Errorf("Direction = %v, expected normalized Right", g.Direction())
	}
}

func TestPointerSteering(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	w, _ := g.Size()

	g.PointerMove(0)
	if g.Direction() != core.DirNone {
		t.Error("move without a held pointer should be ignored")
	}

	g.PointerDown(w * 0.1)
	if g.Direction() != core.DirLeft {
		t.Errorf("Direction = %v, expected Left", g.Direction())
	}
	g.PointerMove(w * 0.9)
	if g.Direction() != core.DirRight {
		t.Errorf("Direction = %v, expected Right", g.Direction())
	}
	g.PointerUp()
	if g.Direction() != core.DirNone {
		t.Errorf("Direction = %v, expected None", g.Direction())
	}
}

func TestShopHighlightAndPurchase(t *testing.T) {
	g, _ := newTestGame(1)
	g.Economy().AccrueBonusXP(60)

	g.OpenShop()
	if g.Highlight() != "classic" {
		t.Fatalf("Highlight = %q, expected classic", g.Highlight())
	}

	g.ShopCursorNext()
	if g.Highlight() != "ember" {
		t.Fatalf("Highlight = %q, expected ember", g.Highlight())
	}
	if r := g.PurchaseSelected(); !r.OK() {
		t.Fatalf("PurchaseSelected = %v", r)
	}
	if g.Frame().Player.CosmeticID != "ember" {
		t.Error("purchase should equip the cosmetic")
	}

	g.ShopCursorPrev()
	g.ShopCursorPrev()
	if g.Highlight() == "ember" || g.Highlight() == "classic" {
		t.Errorf("cursor should wrap to the end, got %q", g.Highlight())
	}
	if g.EquipSelected() {
		t.Error("equipping an unowned cosmetic should fail")
	}

	// re-entering the shop resets the cursor to the equipped skin
	g.SelectCosmeticInShop("classic")
	g.Back()
	g.OpenShop()
	if g.Highlight() != "ember" {
		t.Errorf("Highlight = %q, expected ember", g.Highlight())
	}

	if g.SelectCosmeticInShop("ghost") {
		t.Error("selecting an unknown cosmetic should fail")
	}
}

func TestDifficultySlope(t *testing.T) {
	g, store := newTestGame(1)

	if g.Slope() != progress.DefaultSlope {
		t.Fatalf("Slope = %f, expected default", g.Slope())
	}
	if g.SetDifficultySlope(-1) || g.SetDifficultySlope(math.Inf(1)) || g.SetDifficultySlope(51) {
		t.Error("invalid slopes should be rejected")
	}
	if !g.SetDifficultySlope(5) {
		t.Fatal("SetDifficultySlope(5) failed")
	}
	if progress.LoadSlope(store) != 5 {
		t.Errorf("persisted slope = %f, expected 5", progress.LoadSlope(store))
	}

	base := config.DefaultConfig().Obstacles.BaseSpeed
	if f := g.Frame(); f.Speed != base {
		t.Errorf("Speed at t=0 = %f, expected %f", f.Speed, base)
	}
}

func TestSlopeOverrideNotPersisted(t *testing.T) {
	store := progress.NewMemoryStore()
	slope := 4.0
	g := New(Options{Config: config.DefaultConfig(), Store: store, Slope: &slope})

	if g.Slope() != 4 {
		t.Errorf("Slope = %f, expected 4", g.Slope())
	}
	if _, ok := store.Get(progress.KeySpeedIncrease); ok {
		t.Error("override should not be persisted")
	}
}

func TestResizeDegenerate(t *testing.T) {
	g, _ := newTestGame(1)
	cfg := config.DefaultConfig()

	g.Resize(-10, 0)
	w, h := g.Size()
	if w != cfg.Playfield.MinWidth || h != cfg.Playfield.MinHeight {
		t.Errorf("Size = (%f, %f), expected minimum", w, h)
	}

	g.StartGame()
	g.Resize(math.NaN(), 1000)
	f := g.Step(0.01)
	lo, hi := g.playerBounds()
	if f.Player.X < lo || f.Player.X > hi || math.IsNaN(f.Player.X) {
		t.Errorf("player x = %f outside [%f, %f]", f.Player.X, lo, hi)
	}
	if f.Player.Y != 1000-cfg.Player.BottomOffset {
		t.Errorf("player y = %f, expected re-anchored", f.Player.Y)
	}
}

func TestNarrowPlayfieldCollapsesBounds(t *testing.T) {
	g, _ := newTestGame(1)
	// narrower than any validated minimum
	g.width = 20

	lo, hi := g.playerBounds()
	if lo != 10 || hi != 10 {
		t.Errorf("bounds = [%f, %f], expected both at centre 10", lo, hi)
	}
}

func TestSpawnsStayInsideSmallestPlayfield(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{"defaults", func(*config.Config) {}},
		{"min width below bar", func(c *config.Config) { c.Playfield.MinWidth = 60 }},
		{"zero spawn offset", func(c *config.Config) { c.Obstacles.SpawnOffset = 0 }},
		{"wide bar and margin", func(c *config.Config) {
			c.Playfield.MinWidth = 1
			c.Playfield.Margin = 40
			c.Obstacles.Width = 300
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.edit(&cfg)
			g := New(Options{Config: cfg, Runtime: core.RuntimeConfig{Seed: 3}})
			g.Resize(0, 0)
			width, _ := g.Size()

			g.StartGame()
			seen := 0
			for i := 0; i < 600 && g.Mode() == ModePlaying; i++ {
				before := len(g.Session().Obstacles)
				f := g.Step(0.03)
				if len(f.Obstacles) <= before || f.Outcome != OutcomeNone {
					continue
				}
				o := f.Obstacles[len(f.Obstacles)-1]
				seen++
				// the new bar has moved one step down from its spawn row
				if top := o.Y - o.Speed*0.03; top+o.H >= 0 {
					t.Fatalf("spawned with y+h = %f, expected above the top edge", top+o.H)
				}
				if o.X < 0 || o.X+o.W > width {
					t.Fatalf("bar [%f, %f] outside playfield width %f", o.X, o.X+o.W, width)
				}
			}
			if seen == 0 {
				t.Fatal("no obstacles spawned")
			}
		})
	}
}
