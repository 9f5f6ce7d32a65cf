package input

import "github.com/gdamore/tcell/v2"

// Action classifies what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionButton
	ActionCrankCW
	ActionCrankCCW
	ActionDock
)

// Binding is the effect of one terminal key
type Binding struct {
	Action Action
	Button Button
}

// KeyTable maps terminal keys to device controls
type KeyTable struct {
	// Special keys (arrows, enter, function keys)
	Keys map[tcell.Key]Binding

	// Printable keys
	Runes map[rune]Binding
}

func button(b Button) Binding { return Binding{Action: ActionButton, Button: b} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:    button(ButtonUp),
			tcell.KeyDown:  button(ButtonDown),
			tcell.KeyLeft:  button(ButtonLeft),
			tcell.KeyRight: button(ButtonRight),
			tcell.KeyEnter: button(ButtonA),
		},
		Runes: map[rune]Binding{
			'w': button(ButtonUp),
			's': button(ButtonDown),
			'a': button(ButtonLeft),
			'd': button(ButtonRight),
			'k': button(ButtonUp),
			'j': button(ButtonDown),
			'h': button(ButtonLeft),
			'l': button(ButtonRight),
			'x': button(ButtonA),
			'z': button(ButtonB),
			'.': {Action: ActionCrankCW},
			',': {Action: ActionCrankCCW},
			'c': {Action: ActionDock},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Binding, len(kt.Keys)),
		Runes: make(map[rune]Binding, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// unbind removes every key mapped to b
func (kt *KeyTable) unbind(b Binding) {
	for k, v := range kt.Keys {
		if v == b {
			delete(kt.Keys, k)
		}
	}
	for r, v := range kt.Runes {
		if v == b {
			delete(kt.Runes, r)
		}
	}
}
