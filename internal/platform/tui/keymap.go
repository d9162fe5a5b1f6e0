package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyhop-dev/skyhop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to latched input state.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey updates the input state based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, in *core.Input) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		in.Set(core.ActionQuit)
		return true
	case "a", "left":
		in.ArmLeft()
	case "d", "right":
		in.ArmRight()
	case " ", "enter":
		in.Set(core.ActionStart)
	case "p", "esc":
		in.Set(core.ActionPause)
	case "r":
		in.Set(core.ActionRestart)
	}
	return false
}

// MapMouse latches a pointer steering target from a mouse message.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, in *core.Input) {
	in.SetPointer(float64(msg.X))
}
