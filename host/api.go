package host

import (
	"github.com/lixenwraith/crankspin/gfx"
	"github.com/lixenwraith/crankspin/input"
)

// Screen geometry in pixels
const (
	LCDColumns = 400
	LCDRows    = 240
)

// RefreshUnthrottled asks the display to run as fast as the panel allows
const RefreshUnthrottled float32 = 0

// System is the firmware service table: callback registration and raw peripherals
type System interface {
	input.Source
	SetUpdateCallback(fn UpdateFunc)
}

// Display controls panel timing
type Display interface {
	SetRefreshRate(rate float32)
	RefreshRate() float32
	Width() int
	Height() int
}

// API is the table passed to the event handler on every call
// It is the context handle the application keeps between callbacks
type API struct {
	System   System
	Display  Display
	Graphics gfx.Graphics
}
