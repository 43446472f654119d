package seeker

import (
	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/economy"
	"github.com/vovakirdan/seeker-ball/internal/progress"
)

// SetDirection sets the movement intent. Ignored outside of play.
func (g *Game) SetDirection(d core.Direction) {
	if g.machine.Mode() != ModePlaying {
		return
	}
	g.direction = d.Normalize()
}

// StopDirection clears the movement intent.
func (g *Game) StopDirection() {
	g.direction = core.DirNone
}

// PointerDown starts steering toward the half of the playfield containing x.
func (g *Game) PointerDown(x float64) {
	if g.machine.Mode() != ModePlaying {
		return
	}
	g.pointerHeld = true
	g.steerToward(x)
}

// PointerMove updates the steering while a pointer is held.
func (g *Game) PointerMove(x float64) {
	if !g.pointerHeld {
		return
	}
	g.steerToward(x)
}

// PointerUp releases the pointer and stops the player.
func (g *Game) PointerUp() {
	g.pointerHeld = false
	g.StopDirection()
}

func (g *Game) steerToward(x float64) {
	if x < g.width/2 {
		g.SetDirection(core.DirLeft)
	} else {
		g.SetDirection(core.DirRight)
	}
}

// Navigation. Each returns false when the action is not legal from the current mode.

func (g *Game) StartGame() bool    { return g.machine.Apply(core.ActionStartGame) }
func (g *Game) OpenShop() bool     { return g.machine.Apply(core.ActionOpenShop) }
func (g *Game) OpenSettings() bool { return g.machine.Apply(core.ActionOpenSettings) }
func (g *Game) OpenDaily() bool    { return g.machine.Apply(core.ActionOpenDaily) }
func (g *Game) Back() bool         { return g.machine.Apply(core.ActionBack) }
func (g *Game) Restart() bool      { return g.machine.Apply(core.ActionRestart) }
func (g *Game) ToMenu() bool       { return g.machine.Apply(core.ActionToMenu) }

// Apply performs an arbitrary navigation action.
func (g *Game) Apply(a core.Action) bool { return g.machine.Apply(a) }

// Slope returns the active difficulty slope.
func (g *Game) Slope() float64 { return g.slope }

// SetDifficultySlope validates and persists a new slope. Invalid values are
// rejected and leave the current slope in place. Obstacles already falling keep
// their speed.
func (g *Game) SetDifficultySlope(v float64) bool {
	if !progress.ValidSlope(v) {
		return false
	}
	g.slope = v
	g.curve = config.NewCurve(g.cfg.Obstacles.BaseSpeed, v)
	g.spawner.SetCurve(g.curve)
	if err := progress.SaveSlope(g.store, v); err != nil {
		g.logger.Error("failed to save difficulty", "err", err)
	}
	return true
}

// AdjustDifficultySlope nudges the slope by delta, clamped to the valid range.
func (g *Game) AdjustDifficultySlope(delta float64) bool {
	return g.SetDifficultySlope(core.ClampF(g.slope+delta, 0, progress.MaxSlope))
}

// Highlight returns the shop cursor.
func (g *Game) Highlight() string { return g.highlight }

// SelectCosmeticInShop moves the shop cursor to id.
func (g *Game) SelectCosmeticInShop(id string) bool {
	if !g.econ.Catalog().Has(id) {
		return false
	}
	g.highlight = id
	return true
}

// ShopCursorNext moves the shop cursor to the next entry, wrapping around.
func (g *Game) ShopCursorNext() { g.moveCursor(1) }

// ShopCursorPrev moves the shop cursor to the previous entry, wrapping around.
func (g *Game) ShopCursorPrev() { g.moveCursor(-1) }

func (g *Game) moveCursor(delta int) {
	c := g.econ.Catalog()
	i := c.IndexOf(g.highlight)
	if i < 0 {
		i = 0
	}
	g.highlight = c.At(i + delta).ID
}

// PurchaseSelected buys the highlighted cosmetic.
func (g *Game) PurchaseSelected() economy.PurchaseResult {
	return g.econ.Purchase(g.highlight)
}

// EquipSelected equips the highlighted cosmetic if owned.
func (g *Game) EquipSelected() bool {
	return g.econ.Equip(g.highlight)
}

// Resize sets the playfield size in units. Dimensions below the configured
// minimum are raised to it. The player is re-anchored to the bottom and re-clamped.
func (g *Game) Resize(w, h float64) {
	pf := g.cfg.Playfield
	if !(w >= pf.MinWidth) || !core.Finite(w) {
		w = pf.MinWidth
	}
	if !(h >= pf.MinHeight) || !core.Finite(h) {
		h = pf.MinHeight
	}
	g.width, g.height = w, h
	g.clampPlayer()
}

// ResizeCells sizes the playfield from a terminal area in cells.
func (g *Game) ResizeCells(cols, rows int) {
	g.Resize(float64(cols)*g.cfg.Playfield.CellWidth, float64(rows)*g.cfg.Playfield.CellHeight)
}

// CellToUnitsX converts a terminal column into a playfield x at the cell's centre.
func (g *Game) CellToUnitsX(col int) float64 {
	return (float64(col) + 0.5) * g.cfg.Playfield.CellWidth
}
