package input

import "strings"

// Button is a bitmask of device buttons
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonB
	ButtonA
)

// ButtonNone is the empty mask
const ButtonNone Button = 0

var buttonNames = []struct {
	b    Button
	name string
}{
	{ButtonLeft, "left"},
	{ButtonRight, "right"},
	{ButtonUp, "up"},
	{ButtonDown, "down"},
	{ButtonB, "b"},
	{ButtonA, "a"},
}

func (b Button) Left() bool  { return b&ButtonLeft != 0 }
func (b Button) Right() bool { return b&ButtonRight != 0 }
func (b Button) Up() bool    { return b&ButtonUp != 0 }
func (b Button) Down() bool  { return b&ButtonDown != 0 }
func (b Button) B() bool     { return b&ButtonB != 0 }
func (b Button) A() bool     { return b&ButtonA != 0 }

// Any reports whether any button in mask is set
func (b Button) Any(mask Button) bool { return b&mask != 0 }

// String lists set buttons separated by '+', or "-" when empty
func (b Button) String() string {
	if b == ButtonNone {
		return "-"
	}
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ButtonByName resolves a lowercase button name
func ButtonByName(name string) (Button, bool) {
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, true
		}
	}
	return ButtonNone, false
}

// ButtonState is the per-frame button snapshot
// Current is the held mask, Pushed and Released are transitions since the previous frame
type ButtonState struct {
	Current  Button
	Pushed   Button
	Released Button
}

// Source is the peripheral reader the device firmware provides
type Source interface {
	Buttons() (current, pushed, released Button)
	CrankAngle() float32
	IsCrankDocked() bool
}

// Buttons is a cached handle to the button reader
// It holds no snapshot; every Get re-queries the source
type Buttons struct {
	src Source
}

// NewButtons caches the source lookup
func NewButtons(src Source) Buttons {
	return Buttons{src: src}
}

// Get returns the snapshot for the current frame
func (b Buttons) Get() ButtonState {
	cur, push, rel := b.src.Buttons()
	return ButtonState{Current: cur, Pushed: push, Released: rel}
}
