package device

import (
	"time"

	"github.com/lixenwraith/crankspin/gfx"
	"github.com/lixenwraith/crankspin/input"
)

// Controls is the raw peripheral reading for one frame
type Controls struct {
	Held       input.Button
	Crank      float32 // degrees turned since the previous poll, clockwise positive
	ToggleDock bool
	Quit       bool
}

// FrameInfo summarizes the frame just run, for status display
type FrameInfo struct {
	Frame      uint32
	FPS        float64
	Crank      float32
	Docked     bool
	Held       input.Button
	UpdateTime time.Duration
}

// Frontend is the device's physical side: buttons, crank and panel
type Frontend interface {
	Poll(now time.Time) Controls
	Present(fb *gfx.Framebuffer, info FrameInfo)
}
