// Package app is the rotating-bitmap application: its state, its per-frame
// update and the dispatcher the firmware drives through two callbacks.
package app

import (
	"errors"
	"log"

	"github.com/lixenwraith/crankspin/host"
)

// ErrNotInitialized is the panic value when an update arrives before Init
var ErrNotInitialized = errors.New("app: update before init")

// Dispatcher owns the single State instance
// The host calls it from one thread, strictly in sequence
type Dispatcher struct {
	state *State
}

// NewDispatcher returns a dispatcher with no state
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// State returns the owned state, nil before the first Init
func (d *Dispatcher) State() *State {
	return d.state
}

// HandleEvent is the host entry point
// Init unthrottles the display and constructs state once; other events are ignored
func (d *Dispatcher) HandleEvent(api *host.API, event host.SystemEvent, arg uint32) host.LoopControl {
	if event != host.EventInit {
		return host.LoopContinue
	}

	api.Display.SetRefreshRate(host.RefreshUnthrottled)

	if d.state != nil {
		log.Printf("app: repeated init ignored")
		return host.LoopContinue
	}

	state, err := NewState(api)
	if err != nil {
		// No state to render from
		panic(err)
	}
	d.state = state
	api.System.SetUpdateCallback(d.HandleUpdate)

	log.Printf("app: initialized at %v", state.pos)
	return host.LoopContinue
}

// HandleUpdate is the per-frame callback installed on Init
func (d *Dispatcher) HandleUpdate() host.UpdateControl {
	if d.state == nil {
		panic(ErrNotInitialized)
	}
	return d.state.Update()
}
