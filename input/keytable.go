package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in bindings, lowercase
var specialKeys = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultBindings returns the stock action to key-name bindings
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"left":  {"a", "A", "Left"},
		"right": {"d", "D", "Right"},
		"pause": {"p"},
		"quit":  {"q", "Esc", "Ctrl-C"},
	}
}

// DefaultKeyTable builds the table for DefaultBindings
func DefaultKeyTable() *KeyTable {
	kt, err := ParseBindings(DefaultBindings())
	if err != nil {
		panic(err)
	}
	return kt
}

// ParseBindings builds a KeyTable from action name to key name lists
// A single character binds a rune; longer names bind special keys case-insensitively
func ParseBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	// Deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ActionByName(name)
		if !ok || action == ActionNone {
			return nil, fmt.Errorf("unknown action: %q", name)
		}
		for _, keyStr := range bindings[name] {
			if err := kt.bind(keyStr, action); err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(keyStr string, action Action) error {
	if runes := []rune(keyStr); len(runes) == 1 {
		kt.Runes[runes[0]] = action
		return nil
	}
	lower := strings.ToLower(keyStr)
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = action
		return nil
	}
	if k, ok := specialKeys[lower]; ok {
		kt.Keys[k] = action
		return nil
	}
	return fmt.Errorf("unknown key name: %q", keyStr)
}

// Resolve maps a key event to its action, ActionNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
