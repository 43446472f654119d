package seeker

import "github.com/vovakirdan/seeker-ball/internal/core"

// Mode is the active top-level screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModeShop
	ModeSettings
	ModeDaily
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeShop:
		return "shop"
	case ModeSettings:
		return "settings"
	case ModeDaily:
		return "daily"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

type transition struct {
	from   Mode
	action core.Action
}

// transitions lists every legal navigation. playing -> gameover is not here:
// only a collision can end a session.
var transitions = map[transition]Mode{
	{ModeMenu, core.ActionStartGame}:    ModePlaying,
	{ModeMenu, core.ActionOpenShop}:     ModeShop,
	{ModeMenu, core.ActionOpenSettings}: ModeSettings,
	{ModeMenu, core.ActionOpenDaily}:    ModeDaily,
	{ModeShop, core.ActionBack}:         ModeMenu,
	{ModeSettings, core.ActionBack}:     ModeMenu,
	{ModeDaily, core.ActionBack}:        ModeMenu,
	{ModeGameOver, core.ActionRestart}:  ModePlaying,
	{ModeGameOver, core.ActionToMenu}:   ModeMenu,
}

// Machine tracks the active mode. onEnter runs after every mode change.
type Machine struct {
	mode    Mode
	onEnter func(to Mode, via core.Action)
}

// NewMachine starts in the menu.
func NewMachine(onEnter func(to Mode, via core.Action)) *Machine {
	return &Machine{mode: ModeMenu, onEnter: onEnter}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Can reports whether action is legal from the active mode.
func (m *Machine) Can(action core.Action) bool {
	_, ok := transitions[transition{m.mode, action}]
	return ok
}

// Apply performs a navigation action. Illegal actions are ignored and return false.
func (m *Machine) Apply(action core.Action) bool {
	if !m.Can(action) {
		return false
	}
	m.enter(transitions[transition{m.mode, action}], action)
	return true
}

// collide ends the running session.
func (m *Machine) collide() bool {
	if m.mode != ModePlaying {
		return false
	}
	m.enter(ModeGameOver, core.ActionNone)
	return true
}

func (m *Machine) enter(to Mode, via core.Action) {
	m.mode = to
	if m.onEnter != nil {
		m.onEnter(to, via)
	}
}
