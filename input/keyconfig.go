package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML values
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Action names accepted in the [keys] section
var actionNames = map[string]Binding{
	"up":        button(ButtonUp),
	"down":      button(ButtonDown),
	"left":      button(ButtonLeft),
	"right":     button(ButtonRight),
	"a":         button(ButtonA),
	"b":         button(ButtonB),
	"crank_cw":  {Action: ActionCrankCW},
	"crank_ccw": {Action: ActionCrankCCW},
	"dock":      {Action: ActionDock},
}

// keysByName is the lowercase inverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyBindings applies action → key list overrides on top of the defaults
// Each listed action loses its default keys; an empty list unbinds the action
// Returns error on unknown action names or invalid key names
func ParseKeyBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := DefaultKeyTable().Clone()

	// Sorted for deterministic conflict resolution: later actions win a shared key
	actions := make([]string, 0, len(bindings))
	for name := range bindings {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		b, err := resolveAction(name)
		if err != nil {
			return nil, err
		}
		kt.unbind(b)

		for _, keyStr := range bindings[name] {
			if err := kt.bind(keyStr, b); err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", name, err)
			}
		}
	}

	return kt, nil
}

// bind maps a key name or single character to b
func (kt *KeyTable) bind(keyStr string, b Binding) error {
	if r, err := resolveRune(keyStr); err == nil {
		kt.Runes[r] = b
		return nil
	}
	k, ok := keysByName[strings.ToLower(keyStr)]
	if !ok {
		return fmt.Errorf("unknown key name: %q", keyStr)
	}
	kt.Keys[k] = b
	return nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	// Named alias
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	// Single character
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a Binding
func resolveAction(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	b, ok := actionNames[name]
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return b, nil
}
