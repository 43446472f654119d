package seeker

import (
	"testing"

	"github.com/vovakirdan/seeker-ball/internal/core"
)

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		from   Mode
		action core.Action
		to     Mode
		ok     bool
	}{
		{ModeMenu, core.ActionStartGame, ModePlaying, true},
		{ModeMenu, core.ActionOpenShop, ModeShop, true},
		{ModeMenu, core.ActionOpenSettings, ModeSettings, true},
		{ModeMenu, core.ActionOpenDaily, ModeDaily, true},
		{ModeMenu, core.ActionBack, ModeMenu, false},
		{ModeMenu, core.ActionRestart, ModeMenu, false},
		{ModeShop, core.ActionBack, ModeMenu, true},
		{ModeShop, core.ActionStartGame, ModeShop, false},
		{ModeSettings, core.ActionBack, ModeMenu, true},
		{ModeSettings, core.ActionOpenShop, ModeSettings, false},
		{ModeDaily, core.ActionBack, ModeMenu, true},
		{ModePlaying, core.ActionToMenu, ModePlaying, false},
		{ModePlaying, core.ActionBack, ModePlaying, false},
		{ModePlaying, core.ActionRestart, ModePlaying, false},
		{ModeGameOver, core.ActionRestart, ModePlaying, true},
		{ModeGameOver, core.ActionToMenu, ModeMenu, true},
		{ModeGameOver, core.ActionOpenShop, ModeGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.action.String(), func(t *testing.T) {
			m := &Machine{mode: tc.from}
			if got := m.Can(tc.action); got != tc.ok {
				t.Errorf("Can = %v, expected %v", got, tc.ok)
			}
			if m.Mode() != tc.from {
				t.Fatalf("Can changed mode to %v", m.Mode())
			}
			if got := m.Apply(tc.action); got != tc.ok {
				t.Errorf("Apply = %v, expected %v", got, tc.ok)
			}
			if m.Mode() != tc.to {
				t.Errorf("Mode = %v, expected %v", m.Mode(), tc.to)
			}
		})
	}
}

func TestMachineCollide(t *testing.T) {
	var entered []Mode
	m := NewMachine(func(to Mode, _ core.Action) { entered = append(entered, to) })

	if m.collide() {
		t.Error("collide outside play should be ignored")
	}
	m.Apply(core.ActionStartGame)
	if !m.collide() || m.Mode() != ModeGameOver {
		t.Errorf("collide from playing should reach gameover, got %v", m.Mode())
	}
	if len(entered) != 2 || entered[0] != ModePlaying || entered[1] != ModeGameOver {
		t.Errorf("entered = %v", entered)
	}
}

func TestEnteringNonPlayingModeStopsPlayer(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	g.PointerDown(0)
	g.session.Obstacles = append(g.session.Obstacles, obstacleOnPlayer(g, KindNormal))
	g.Step(0.01)

	if g.Direction() != core.DirNone || g.pointerHeld {
		t.Error("entering gameover should clear direction and pointer")
	}

	g.PointerMove(0)
	if g.Direction() != core.DirNone {
		t.Error("stale pointer should not steer after game over")
	}
}
