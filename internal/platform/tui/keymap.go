package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seeker-ball/internal/games/seeker"
)

// KeyMap defines every binding of the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Restart    key.Binding
	Menu       key.Binding
	Shop       key.Binding
	Settings   key.Binding
	Daily      key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "s", "down"),
			key.WithHelp("space", "stop"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m", "menu"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "settings"),
		),
		Daily: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "daily"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// modeHelp adapts the key map to help.KeyMap for one screen.
type modeHelp struct {
	keys KeyMap
	mode seeker.Mode
}

// ShortHelp returns key bindings for the short help view.
func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.mode {
	case seeker.ModePlaying:
		return []key.Binding{k.Left, k.Right, k.Stop, k.Screenshot, k.Quit}
	case seeker.ModeGameOver:
		return []key.Binding{k.Restart, k.Menu, k.Quit}
	case seeker.ModeShop:
		return []key.Binding{k.Up, k.Down, k.Select, k.Back}
	case seeker.ModeSettings:
		return []key.Binding{k.Left, k.Right, k.Back}
	case seeker.ModeDaily:
		return []key.Binding{k.Back}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// Intent is a key press translated for the active screen.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentStop
	IntentUp
	IntentDown
	IntentSelect
	IntentBack
	IntentRestart
	IntentMenu
	IntentShop
	IntentSettings
	IntentDaily
	IntentScores
	IntentScreenshot
	IntentQuit
)

// MapKey translates a key message for the given mode. Bindings overlap across
// screens (esc is both back and menu), so the mode decides.
func (k KeyMap) MapKey(msg tea.KeyMsg, mode seeker.Mode) Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return IntentQuit
	case key.Matches(msg, k.Screenshot):
		return IntentScreenshot
	}

	switch mode {
	case seeker.ModePlaying:
		switch {
		case key.Matches(msg, k.Left):
			return IntentLeft
		case key.Matches(msg, k.Right):
			return IntentRight
		case key.Matches(msg, k.Stop):
			return IntentStop
		}

	case seeker.ModeGameOver:
		switch {
		case key.Matches(msg, k.Restart), key.Matches(msg, k.Select):
			return IntentRestart
		case key.Matches(msg, k.Menu):
			return IntentMenu
		}

	case seeker.ModeMenu:
		switch {
		case key.Matches(msg, k.Up):
			return IntentUp
		case key.Matches(msg, k.Down):
			return IntentDown
		case key.Matches(msg, k.Select):
			return IntentSelect
		case key.Matches(msg, k.Shop):
			return IntentShop
		case key.Matches(msg, k.Settings):
			return IntentSettings
		case key.Matches(msg, k.Daily):
			return IntentDaily
		case key.Matches(msg, k.Scores):
			return IntentScores
		}

	case seeker.ModeShop:
		switch {
		case key.Matches(msg, k.Up):
			return IntentUp
		case key.Matches(msg, k.Down):
			return IntentDown
		case key.Matches(msg, k.Select):
			return IntentSelect
		case key.Matches(msg, k.Back):
			return IntentBack
		}

	case seeker.ModeSettings:
		switch {
		case key.Matches(msg, k.Left):
			return IntentLeft
		case key.Matches(msg, k.Right):
			return IntentRight
		case key.Matches(msg, k.Back):
			return IntentBack
		}

	case seeker.ModeDaily:
		if key.Matches(msg, k.Back) {
			return IntentBack
		}
	}

	return IntentNone
}
