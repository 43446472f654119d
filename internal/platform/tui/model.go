package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/games/seeker"
	"github.com/vovakirdan/seeker-ball/internal/progress"
	"github.com/vovakirdan/seeker-ball/internal/render"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

// Options configures a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // may be nil: progress then lives in memory only
	Profile string
	Slope   *float64
	Logger  *log.Logger

	// ScreenshotDir defaults to ~/.seeker/screenshots.
	ScreenshotDir string

	// Notice is pinned under the menu title for the whole session.
	Notice string
}

// Model is the Bubble Tea model for Seeker Ball.
type Model struct {
	game     *seeker.Game
	renderer *render.Renderer
	screen   *core.Screen
	styles   styleCache
	store    *storage.Store
	profile  string
	logger   *log.Logger
	config   core.RuntimeConfig

	keys       KeyMap
	help       help.Model
	menuCursor int
	scores     *ScoreboardModel
	status     string
	notice     string
	shotDir    string

	width, height int
	lastTick      time.Time
	clock         float64 // seconds since start, drives skin animation on meta screens
	quitting      bool
}

// NewModel creates a model in the main menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	profile := opts.Profile
	if profile == "" {
		profile = storage.DefaultProfile
	}

	var kv progress.Store = progress.NewMemoryStore()
	if opts.Store != nil {
		kv = opts.Store.KV(profile, logger)
	}

	gameCfg := cfg
	gameCfg.ScreenW, gameCfg.ScreenH = playfieldCells(cfg.ScreenW, cfg.ScreenH)

	game := seeker.New(seeker.Options{
		Config:  opts.Config,
		Runtime: gameCfg,
		Store:   kv,
		Logger:  logger,
		Slope:   opts.Slope,
	})

	store := opts.Store
	game.OnSessionEnd(func(r seeker.RunSummary) {
		if store == nil || r.Score <= 0 {
			return
		}
		if _, err := store.SaveRun(storage.Run{
			Profile:  profile,
			Score:    r.Score,
			Elapsed:  r.Elapsed,
			XPEarned: r.XPEarned,
			Bonuses:  r.Bonuses,
		}); err != nil {
			logger.Error("failed to save run", "profile", profile, "err", err)
		}
	})

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".seeker", "screenshots")
		}
	}

	return Model{
		game:     game,
		renderer: render.New(opts.Config.Playfield, game.Economy().Catalog()),
		screen:   core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		styles:   make(styleCache),
		store:    store,
		profile:  profile,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		shotDir:  shotDir,
		notice:   opts.Notice,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// playfieldCells returns the playfield area for a terminal: one column is the
// right edge, one row the HUD and one row the key help.
func playfieldCells(w, h int) (int, int) {
	return w - 1, h - render.HUDRows - 1
}

// screenRows is the cell buffer height: everything but the help row.
func screenRows(h int) int {
	return max(h-1, 0)
}

// Game returns the underlying simulation.
func (m Model) Game() *seeker.Game { return m.game }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.game
	intent := m.keys.MapKey(msg, g.Mode())

	switch intent {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit
	case IntentScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	switch g.Mode() {
	case seeker.ModePlaying:
		switch intent {
		case IntentLeft:
			g.SetDirection(core.DirLeft)
		case IntentRight:
			g.SetDirection(core.DirRight)
		case IntentStop:
			g.StopDirection()
		}

	case seeker.ModeGameOver:
		switch intent {
		case IntentRestart:
			g.Restart()
		case IntentMenu:
			g.ToMenu()
		}

	case seeker.ModeMenu:
		switch intent {
		case IntentUp:
			m.menuCursor = (m.menuCursor - 1 + len(menuItems)) % len(menuItems)
		case IntentDown:
			m.menuCursor = (m.menuCursor + 1) % len(menuItems)
		case IntentSelect:
			return m.selectMenuItem(menuItems[m.menuCursor].Intent)
		default:
			return m.selectMenuItem(intent)
		}

	case seeker.ModeShop:
		switch intent {
		case IntentUp:
			g.ShopCursorPrev()
			m.status = ""
		case IntentDown:
			g.ShopCursorNext()
			m.status = ""
		case IntentSelect:
			m.status = m.buyOrEquip()
		case IntentBack:
			m.status = ""
			g.Back()
		}

	case seeker.ModeSettings:
		switch intent {
		case IntentLeft:
			g.AdjustDifficultySlope(-0.5)
		case IntentRight:
			g.AdjustDifficultySlope(0.5)
		case IntentBack:
			m.status = ""
			g.Back()
		}

	case seeker.ModeDaily:
		if intent == IntentBack {
			g.Back()
		}
	}

	return m, nil
}

// selectMenuItem runs a main menu entry.
func (m Model) selectMenuItem(intent Intent) (tea.Model, tea.Cmd) {
	g := m.game
	switch intent {
	case IntentSelect:
		g.StartGame()
	case IntentShop:
		g.OpenShop()
	case IntentSettings:
		g.OpenSettings()
	case IntentDaily:
		g.OpenDaily()
	case IntentScores:
		sb := NewScoreboardModel(m.store, m.profile, m.width, m.height)
		m.scores = &sb
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// buyOrEquip purchases the highlighted skin, or equips it if already owned.
func (m Model) buyOrEquip() string {
	g := m.game
	if g.Economy().Owned(g.Highlight()) {
		g.EquipSelected()
		return "Equipped."
	}
	r := g.PurchaseSelected()
	if r.OK() {
		return "Purchased and equipped!"
	}
	return "Cannot buy: " + r.String() + "."
}

// updateScores forwards messages to the embedded scoreboard.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		m.lastTick = time.Time(tick)
		return m, tickCmd(m.config.TickRate)
	}
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.applySize(ws.Width, ws.Height)
	}

	updated, cmd := m.scores.Update(msg)
	sb := updated.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// handleMouse maps press, drag and release onto the pointer input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.game
	x := g.CellToUnitsX(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			g.PointerDown(x)
		}
	case tea.MouseActionMotion:
		g.PointerMove(x)
	case tea.MouseActionRelease:
		g.PointerUp()
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.applySize(msg.Width, msg.Height)
	return m, nil
}

func (m *Model) applySize(w, h int) {
	m.width, m.height = w, h
	m.config.ScreenW, m.config.ScreenH = w, h
	m.help.Width = w
	m.screen.Resize(w, screenRows(h))
	m.game.ResizeCells(playfieldCells(w, h))
}

// handleTick advances the simulation by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now
	m.clock += dt

	if f := m.game.Step(dt); f.Outcome == seeker.OutcomeBonus {
		m.logger.Debug("bonus collected", "profile", m.profile, "xp", f.XP)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.renderer.Draw(m.screen, m.game.Frame())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("seeker_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.status = "Screenshot saved to " + path
}

// bestScoreText returns the profile's best score for the menu.
func (m Model) bestScoreText() string {
	if m.store == nil {
		return "-"
	}
	best, err := m.store.BestScore(m.profile)
	if err != nil || best == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	switch m.game.Mode() {
	case seeker.ModeMenu:
		return m.menuView()
	case seeker.ModeShop:
		return m.shopView()
	case seeker.ModeSettings:
		return m.settingsView()
	case seeker.ModeDaily:
		return m.dailyView()
	}

	m.renderer.Draw(m.screen, m.game.Frame())
	helpLine := subtleStyle.Render(m.help.View(modeHelp{keys: m.keys, mode: m.game.Mode()}))
	return RenderScreen(m.screen, m.styles) + "\n" + helpLine
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
