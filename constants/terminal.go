package constants

import "time"

// Terminal Frontend
const (
	// HoldTimeout is how long a key counts as held after its last press or repeat
	// Terminals report no key releases; this must exceed the OS key-repeat delay gap
	HoldTimeout = 120 * time.Millisecond

	// PixelScale is the panel pixels per quadrant sub-cell, per axis
	PixelScale = 2

	// WheelStep is crank degrees per mouse wheel notch
	WheelStep = 15

	// KeyStep is crank degrees per crank key press or repeat
	KeyStep = 10

	// EventBufferSize is the tcell event channel depth
	EventBufferSize = 256
)
