package game

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Action is a player intent, independent of the device that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionTogglePause
	ActionReset
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionSoftDrop:    "soft-drop",
	ActionRotate:      "rotate",
	ActionTogglePause: "toggle-pause",
	ActionReset:       "reset",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action a key can be bound to.
func Actions() []Action {
	return []Action{
		ActionMoveLeft,
		ActionMoveRight,
		ActionSoftDrop,
		ActionRotate,
		ActionTogglePause,
		ActionReset,
		ActionQuit,
	}
}

// Apply performs a on the session at time now. Gameplay actions are ignored
// by the session unless it is running; reset is always honored. Quit is not
// a session concern and is a no-op here.
func Apply(s *tetris.Session, a Action, now time.Duration) (tetris.StepResult, bool) {
	switch a {
	case ActionMoveLeft:
		return tetris.StepResult{}, s.MoveLeft()
	case ActionMoveRight:
		return tetris.StepResult{}, s.MoveRight()
	case ActionSoftDrop:
		res := s.SoftDrop()
		return res, res.Changed()
	case ActionRotate:
		return tetris.StepResult{}, s.Rotate()
	case ActionTogglePause:
		return tetris.StepResult{}, s.TogglePause()
	case ActionReset:
		s.Reset(now)
		return tetris.StepResult{}, true
	default:
		return tetris.StepResult{}, false
	}
}
