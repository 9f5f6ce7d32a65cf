package host

import "fmt"

// SystemEvent is a lifecycle notification delivered to the event handler
// Values follow the firmware numbering
type SystemEvent uint32

const (
	EventInit SystemEvent = iota
	EventInitLua
	EventLock
	EventUnlock
	EventPause
	EventResume
	EventTerminate
	EventKeyPressed
	EventKeyReleased
	EventLowPower
)

var eventNames = [...]string{
	EventInit:        "Init",
	EventInitLua:     "InitLua",
	EventLock:        "Lock",
	EventUnlock:      "Unlock",
	EventPause:       "Pause",
	EventResume:      "Resume",
	EventTerminate:   "Terminate",
	EventKeyPressed:  "KeyPressed",
	EventKeyReleased: "KeyReleased",
	EventLowPower:    "LowPower",
}

func (e SystemEvent) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("SystemEvent(%d)", uint32(e))
}

// LoopControl is returned by the event handler
type LoopControl int32

const (
	LoopContinue LoopControl = iota
	LoopStop
)

// UpdateControl is returned by the per-frame update callback
type UpdateControl int32

const (
	UpdateContinue UpdateControl = iota
	UpdateStop
)

// EventHandler is the single registered application entry point
// arg carries the frame number for frame-scoped events, zero otherwise
type EventHandler func(api *API, event SystemEvent, arg uint32) LoopControl

// UpdateFunc is invoked once per display refresh after registration
type UpdateFunc func() UpdateControl
