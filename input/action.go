package input

import "strings"

// Action is a logical game input
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionPause
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:  "none",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionPause: "pause",
	ActionQuit:  "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a case-insensitive action name
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}
