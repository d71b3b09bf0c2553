package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyState approximates held keys from press events
// Terminals send presses and auto-repeat but no releases, so an action counts
// as held until the hold window passes without a repeat
type KeyState struct {
	mu       sync.RWMutex
	table    *KeyTable
	window   time.Duration
	lastSeen [actionCount]time.Time
}

// NewKeyState creates a key state over table with the given hold window
func NewKeyState(table *KeyTable, window time.Duration) *KeyState {
	return &KeyState{table: table, window: window}
}

// HandleKey records a key event at now and returns its action
func (ks *KeyState) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	action := ks.table.Resolve(ev)
	if action == ActionNone {
		return action
	}
	ks.Press(action, now)
	return action
}

// Press marks action as seen at now
func (ks *KeyState) Press(action Action, now time.Time) {
	if action >= actionCount {
		return
	}
	ks.mu.Lock()
	ks.lastSeen[action] = now
	ks.mu.Unlock()
}

// Held reports whether action was seen within the hold window before now
func (ks *KeyState) Held(action Action, now time.Time) bool {
	if action == ActionNone || action >= actionCount {
		return false
	}
	ks.mu.RLock()
	last := ks.lastSeen[action]
	ks.mu.RUnlock()
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < ks.window
}

// Release forgets every held action
func (ks *KeyState) Release() {
	ks.mu.Lock()
	ks.lastSeen = [actionCount]time.Time{}
	ks.mu.Unlock()
}

// Direction returns right minus left as -1, 0 or 1
func Direction(keys interface {
	Held(Action, time.Time) bool
}, now time.Time) int {
	dir := 0
	if keys.Held(ActionRight, now) {
		dir++
	}
	if keys.Held(ActionLeft, now) {
		dir--
	}
	return dir
}
