package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"winterhouse/internal/core"
)

// KeyMapper translates Bubble Tea key messages to scene actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a scene action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionMoveLeft, false
	case "right", "d", "l":
		return core.ActionMoveRight, false
	case "up", " ", "e", "w":
		return core.ActionInteract, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// IsDirectional reports whether the action is a walk intent that should be
// treated as held across ticks rather than edge-triggered.
func IsDirectional(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}
