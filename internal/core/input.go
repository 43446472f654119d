package core

// Direction is the normalized horizontal movement intent of the player.
type Direction int

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// Normalize maps any integer onto -1, 0 or +1.
func (d Direction) Normalize() Direction {
	switch {
	case d < 0:
		return DirLeft
	case d > 0:
		return DirRight
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d.Normalize() {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Action represents a discrete navigation intent, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionStartGame           // Menu: start a session
	ActionOpenShop            // Menu: open the cosmetic shop
	ActionOpenSettings        // Menu: open settings
	ActionOpenDaily           // Menu: open the daily placeholder
	ActionBack                // Leaf screens: back to menu
	ActionRestart             // Game over: start a new session
	ActionToMenu              // Game over: back to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartGame:
		return "StartGame"
	case ActionOpenShop:
		return "OpenShop"
	case ActionOpenSettings:
		return "OpenSettings"
	case ActionOpenDaily:
		return "OpenDaily"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionToMenu:
		return "ToMenu"
	default:
		return "Unknown"
	}
}
