package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockfall/internal/core"
	"github.com/vovakirdan/tui-blockfall/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a semantic action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h": // vim-style h for left
		return core.ActionLeft, false
	case "d", "right", "l": // vim-style l for right
		return core.ActionRight, false
	case "w", "up", "k", "x":
		return core.ActionRotate, false
	case "s", "down", "j":
		return core.ActionSoftDrop, false
	case " ":
		return core.ActionHardDrop, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// ActionCommand translates a semantic action to an engine command.
// Returns false for actions that are session control, not piece control.
func ActionCommand(a core.Action) (engine.Command, bool) {
	switch a {
	case core.ActionLeft:
		return engine.CmdMoveLeft, true
	case core.ActionRight:
		return engine.CmdMoveRight, true
	case core.ActionRotate:
		return engine.CmdRotate, true
	case core.ActionSoftDrop:
		return engine.CmdSoftDrop, true
	case core.ActionHardDrop:
		return engine.CmdHardDrop, true
	}
	return 0, false
}
