package render

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/economy"
	"github.com/vovakirdan/seeker-ball/internal/games/seeker"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerDotChar  = '●'
	HazardChar     = '█'
	BonusChar      = '▓'
	EdgeChar       = '│'
	BackgroundChar = ' '
)

// Renderer maps playfield units onto terminal cells.
type Renderer struct {
	cw, ch  float64
	catalog *economy.Catalog
}

// New creates a renderer for the configured cell size.
func New(pf config.PlayfieldConfig, catalog *economy.Catalog) *Renderer {
	if catalog == nil {
		catalog = economy.DefaultCatalog()
	}
	return &Renderer{cw: pf.CellWidth, ch: pf.CellHeight, catalog: catalog}
}

// Draw paints f onto dst: the HUD on the first row and the playfield below it.
func (r *Renderer) Draw(dst *core.Screen, f seeker.Frame) {
	dst.Clear()

	for _, o := range f.Obstacles {
		r.drawObstacle(dst, o)
	}
	r.drawPlayer(dst, f)
	r.drawEdges(dst, f)
	r.drawHUD(dst, f)

	if f.Mode == seeker.ModeGameOver {
		r.drawGameOver(dst, f)
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, f seeker.Frame) {
	hud := fmt.Sprintf(" Time %.1fs  Speed %.0f  Score %s  XP %s",
		f.Elapsed, f.Speed, humanize.Comma(int64(f.Score)), FormatXP(f.XP))
	if f.Bonuses > 0 {
		hud += fmt.Sprintf("  Bonus x%d", f.Bonuses)
	}
	dst.DrawText(0, 0, hud, core.ColorText)
}

func (r *Renderer) drawEdges(dst *core.Screen, f seeker.Frame) {
	right := int(f.Width / r.cw)
	if right >= dst.Width() {
		return
	}
	for y := HUDRows; y < dst.Height(); y++ {
		dst.SetColored(right, y, EdgeChar, core.ColorEdge)
	}
}

func (r *Renderer) drawObstacle(dst *core.Screen, o seeker.Obstacle) {
	ch, color := HazardChar, core.ColorHazard
	if o.Kind == seeker.KindBonus {
		ch, color = BonusChar, core.ColorBonus
	}

	x0 := int(math.Floor(o.X / r.cw))
	x1 := int(math.Ceil((o.X + o.W) / r.cw))
	y0 := max(int(math.Floor(o.Y/r.ch)), 0)
	y1 := int(math.Ceil((o.Y + o.H) / r.ch))
	if y1 <= y0 {
		return
	}

	dst.DrawRect(core.NewRect(x0, y0+HUDRows, x1-x0, y1-y0), ch, color)
}

// drawPlayer fills every cell whose centre lies inside the disc. A disc smaller
// than one cell still gets a dot.
func (r *Renderer) drawPlayer(dst *core.Screen, f seeker.Frame) {
	p := f.Player
	cosmetic, ok := r.catalog.Get(p.CosmeticID)
	if !ok {
		cosmetic, _ = r.catalog.Get(r.catalog.DefaultID())
	}
	paint := PainterFor(cosmetic)

	x0 := int(math.Floor((p.X - p.R) / r.cw))
	x1 := int(math.Floor((p.X + p.R) / r.cw))
	y0 := int(math.Floor((p.Y - p.R) / r.ch))
	y1 := int(math.Floor((p.Y + p.R) / r.ch))

	n := 0
	for y := max(y0, 0); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx := (float64(x) + 0.5) * r.cw
			cy := (float64(y) + 0.5) * r.ch
			if math.Hypot(cx-p.X, cy-p.Y) > p.R {
				continue
			}
			dst.SetColored(x, y+HUDRows, PlayerChar, paint.Color(f.Elapsed, n))
			n++
		}
	}

	if n == 0 {
		x := int(p.X / r.cw)
		y := int(p.Y / r.ch)
		dst.SetColored(x, y+HUDRows, PlayerDotChar, paint.Color(f.Elapsed, 0))
	}
}

// drawGameOver paints a boxed summary over the middle of the playfield.
func (r *Renderer) drawGameOver(dst *core.Screen, f seeker.Frame) {
	summary := fmt.Sprintf("Score %s  Time %.1fs", humanize.Comma(int64(f.Score)), f.Elapsed)
	earned := fmt.Sprintf("+%s XP  %s", FormatXP(f.LastRun.XPEarned), english.Plural(f.LastRun.Bonuses, "bonus", "bonuses"))
	hint := "r restart   m menu   q quit"

	w := core.Clamp(len([]rune(hint))+4, 0, dst.Width())
	h := core.Clamp(7, 0, dst.Height()-HUDRows)
	mid := HUDRows + (dst.Height()-HUDRows)/2
	box := core.NewRect((dst.Width()-w)/2, mid-h/2, w, h)

	dst.DrawRect(box, BackgroundChar, core.ColorDefault)
	dst.DrawBox(box, core.ColorEdge)
	dst.DrawTextCentered(box.Y+1, "GAME OVER", core.ColorHazard)
	dst.DrawTextCentered(box.Y+3, summary, core.ColorText)
	dst.DrawTextCentered(box.Y+4, earned, core.ColorBonus)
	dst.DrawTextCentered(box.Y+5, hint, core.ColorDim)
}

// FormatXP renders an XP balance with thousands separators.
func FormatXP(xp float64) string {
	return humanize.Comma(int64(math.Floor(xp)))
}

// PaintSwatch draws a short preview of a skin, used by the shop.
func PaintSwatch(dst *core.Screen, x, y, width int, c economy.Cosmetic, t float64) {
	paint := PainterFor(c)
	for i := 0; i < width; i++ {
		dst.SetColored(x+i, y, PlayerChar, paint.Color(t, i))
	}
}
