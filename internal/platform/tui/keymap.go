package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronkov/runlane/internal/runner"
)

// Action is a discrete command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionPause
	ActionStart
	ActionRestart
	ActionMute
	ActionScreenshot
	ActionBuyMobility
	ActionBuyJump
	ActionBuyShield
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions. This
// centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "ctrl+s":
		return ActionScreenshot
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case " ", "up", "w", "k":
		return ActionJump
	case "p", "esc":
		return ActionPause
	case "enter":
		return ActionStart
	case "r":
		return ActionRestart
	case "m":
		return ActionMute
	case "1":
		return ActionBuyMobility
	case "2":
		return ActionBuyJump
	case "3":
		return ActionBuyShield
	}
	return ActionNone
}

// upgradeForAction maps a purchase action to its upgrade category.
func upgradeForAction(a Action) (runner.UpgradeKind, bool) {
	switch a {
	case ActionBuyMobility:
		return runner.UpgradeMobility, true
	case ActionBuyJump:
		return runner.UpgradeJump, true
	case ActionBuyShield:
		return runner.UpgradeShield, true
	}
	return 0, false
}
