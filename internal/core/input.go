package core

// Action represents a semantic player action, abstracted from physical
// key presses. The platform maps keys to actions; game commands and
// session control both ride on this type.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, H, Left arrow - shift piece left
	ActionRight           // D, L, Right arrow - shift piece right
	ActionRotate          // W, K, Up arrow - rotate clockwise
	ActionSoftDrop        // S, J, Down arrow - drop one row
	ActionHardDrop        // Space - drop and lock immediately
	ActionPause           // P, Escape - pause/unpause
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
