package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/economy"
	"github.com/vovakirdan/seeker-ball/internal/progress"
	"github.com/vovakirdan/seeker-ball/internal/render"
)

// MenuItem is an entry of the main menu.
type MenuItem struct {
	Title  string
	Intent Intent
}

var menuItems = []MenuItem{
	{"Play", IntentSelect},
	{"Shop", IntentShop},
	{"Settings", IntentSettings},
	{"Daily Challenge", IntentDaily},
	{"Best Runs", IntentScores},
	{"Quit", IntentQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// menuView renders the main menu.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("S E E K E R   B A L L"))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("XP %s   best %s   profile %s",
		render.FormatXP(m.game.Economy().Balance()), m.bestScoreText(), m.profile)))
	b.WriteString("\n\n")
	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.Title + "  "
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item.Title + " ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.frameMeta(b.String())
}

// shopView renders the cosmetic shop with a live preview of every skin.
func (m Model) shopView() string {
	econ := m.game.Economy()
	var b strings.Builder

	b.WriteString(titleStyle.Render("SHOP"))
	b.WriteString("   ")
	b.WriteString(subtleStyle.Render("XP " + render.FormatXP(econ.Balance())))
	b.WriteString("\n\n")

	for _, c := range econ.Catalog().All() {
		cursor := "  "
		if c.ID == m.game.Highlight() {
			cursor = "> "
		}

		state := fmt.Sprintf("%s XP", render.FormatXP(c.Cost))
		switch {
		case c.ID == econ.Equipped():
			state = "equipped"
		case econ.Owned(c.ID):
			state = "owned"
		}

		name := fmt.Sprintf("%-14s %-8s", c.Name, c.Variant)
		if c.ID == m.game.Highlight() {
			name = selectedStyle.Render(name)
		}

		b.WriteString(cursor)
		b.WriteString(m.swatch(c))
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(subtleStyle.Render(state))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return m.frameMeta(b.String())
}

// swatch renders a few colored cells of a skin, animated by wall time.
func (m Model) swatch(c economy.Cosmetic) string {
	scr := core.NewScreen(4, 1)
	render.PaintSwatch(scr, 0, 0, 4, c, m.clock)
	return RenderScreen(scr, m.styles)
}

// settingsView renders the difficulty slope editor.
func (m Model) settingsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Difficulty slope   ◀ %4.1f ▶\n", m.game.Slope()))
	b.WriteString(subtleStyle.Render(fmt.Sprintf(
		"bars fall %.1f units/s faster for every second survived (0 - %.0f)",
		m.game.Slope(), progress.MaxSlope)))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return m.frameMeta(b.String())
}

// dailyView renders the daily challenge placeholder.
func (m Model) dailyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("DAILY CHALLENGE"))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("No challenge today. Check back tomorrow."))
	return m.frameMeta(b.String())
}

// frameMeta centers a meta screen and appends the key help.
func (m Model) frameMeta(content string) string {
	body := panelStyle.Render(content)
	helpLine := subtleStyle.Render(m.help.View(modeHelp{keys: m.keys, mode: m.game.Mode()}))

	height := m.height - 1
	if height < 1 {
		height = 1
	}
	placed := lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + helpLine
}
