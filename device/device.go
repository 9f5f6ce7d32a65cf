// Package device simulates the handheld host: it owns the framebuffer and
// peripherals, delivers lifecycle events to the application's event handler
// and calls the registered update callback once per display refresh.
package device

import (
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/crankspin/constants"
	"github.com/lixenwraith/crankspin/gfx"
	"github.com/lixenwraith/crankspin/host"
	"github.com/lixenwraith/crankspin/input"
	"github.com/lixenwraith/crankspin/status"
)

// Config holds device behavior knobs
type Config struct {
	// MaxFPS paces unthrottled refresh and caps explicit rates
	MaxFPS float32
	// DetentDegrees spaces crank detent notifications; 0 disables them
	DetentDegrees float32
}

// DefaultConfig returns panel defaults
func DefaultConfig() Config {
	return Config{
		MaxFPS:        constants.PanelMaxFPS,
		DetentDegrees: constants.DetentDegrees,
	}
}

// Device implements host.System and host.Display over a gfx.Framebuffer
type Device struct {
	cfg   Config
	fb    *gfx.Framebuffer
	api   *host.API
	clock TimeProvider

	handler host.EventHandler
	update  host.UpdateFunc
	rate    float32
	frame   uint32

	tracker input.Tracker
	buttons input.ButtonState
	crank   float32
	docked  bool

	// Unwrapped crank travel for detent counting
	travel   float64
	onDetent func(steps int)

	// FPS window
	windowStart  time.Time
	windowFrames int
	fps          float64
	lastUpdate   time.Duration

	stopChan chan struct{}
	stopOnce sync.Once

	// Cached metric pointers
	statFrames   *atomic.Int64
	statUpdateNs *atomic.Int64
	statFPS      *status.AtomicFloat
	statCrank    *status.AtomicFloat
	statDocked   *atomic.Bool
}

// New creates a device with a cleared panel
func New(cfg Config, clock TimeProvider, reg *status.Registry) *Device {
	if cfg.MaxFPS <= 0 {
		cfg.MaxFPS = constants.PanelMaxFPS
	}
	d := &Device{
		cfg:      cfg,
		fb:       gfx.NewFramebuffer(host.LCDColumns, host.LCDRows),
		clock:    clock,
		rate:     constants.DefaultRefreshRate,
		stopChan: make(chan struct{}),

		statFrames:   reg.Ints.Get("device.frames"),
		statUpdateNs: reg.Ints.Get("device.update_ns"),
		statFPS:      reg.Floats.Get("device.fps"),
		statCrank:    reg.Floats.Get("device.crank_deg"),
		statDocked:   reg.Bools.Get("device.docked"),
	}
	d.api = &host.API{System: d, Display: d, Graphics: d.fb}
	return d
}

// API returns the table passed to the event handler
func (d *Device) API() *host.API {
	return d.api
}

// Framebuffer returns the panel surface
func (d *Device) Framebuffer() *gfx.Framebuffer {
	return d.fb
}

// Frame returns the number of update callbacks run
func (d *Device) Frame() uint32 {
	return d.frame
}

// OnCrankDetent registers fn for detent crossings; steps is always positive
func (d *Device) OnCrankDetent(fn func(steps int)) {
	d.onDetent = fn
}

// ===== host.System =====

func (d *Device) Buttons() (current, pushed, released input.Button) {
	return d.buttons.Current, d.buttons.Pushed, d.buttons.Released
}

func (d *Device) CrankAngle() float32 { return d.crank }

func (d *Device) IsCrankDocked() bool { return d.docked }

// SetUpdateCallback installs the per-frame callback; nil detaches it
func (d *Device) SetUpdateCallback(fn host.UpdateFunc) {
	d.update = fn
}

// ===== host.Display =====

func (d *Device) SetRefreshRate(rate float32) {
	if rate < 0 {
		rate = 0
	}
	d.rate = rate
}

func (d *Device) RefreshRate() float32 { return d.rate }

func (d *Device) Width() int { return host.LCDColumns }

func (d *Device) Height() int { return host.LCDRows }

// FrameInterval is the pacing period for the current refresh rate
// Rate 0 runs at the panel ceiling; higher rates are capped to it
func (d *Device) FrameInterval() time.Duration {
	rate := d.rate
	if rate == host.RefreshUnthrottled || rate > d.cfg.MaxFPS {
		rate = d.cfg.MaxFPS
	}
	return time.Duration(float64(time.Second) / float64(rate))
}

// ===== Lifecycle =====

// Boot delivers Init to handler and keeps it for later events
func (d *Device) Boot(handler host.EventHandler) host.LoopControl {
	d.handler = handler
	d.windowStart = d.clock.Now()
	log.Printf("device: boot")
	return handler(d.api, host.EventInit, 0)
}

// Send delivers an arbitrary event to the booted handler
func (d *Device) Send(event host.SystemEvent) host.LoopControl {
	if d.handler == nil {
		return host.LoopContinue
	}
	return d.handler(d.api, event, d.frame)
}

// Step applies controls and runs one update callback
// Without a registered callback the frame is skipped
func (d *Device) Step(c Controls) host.UpdateControl {
	d.buttons = d.tracker.Next(c.Held)

	if c.ToggleDock {
		d.docked = !d.docked
		d.statDocked.Store(d.docked)
	}
	if !d.docked && c.Crank != 0 {
		d.turn(c.Crank)
	}

	if d.update == nil {
		return host.UpdateContinue
	}

	d.frame++
	start := d.clock.Now()
	ctl := d.update()
	now := d.clock.Now()
	d.lastUpdate = now.Sub(start)

	d.statFrames.Store(int64(d.frame))
	d.statUpdateNs.Store(d.lastUpdate.Nanoseconds())
	d.sampleFPS(now)

	return ctl
}

// turn moves the crank and emits detent crossings
func (d *Device) turn(delta float32) {
	d.crank = input.WrapAngle(d.crank + delta)
	d.statCrank.Set(float64(d.crank))

	prev := d.travel
	d.travel += float64(delta)
	if d.cfg.DetentDegrees <= 0 || d.onDetent == nil {
		return
	}
	step := float64(d.cfg.DetentDegrees)
	crossed := int(math.Abs(math.Floor(d.travel/step) - math.Floor(prev/step)))
	if crossed > 0 {
		d.onDetent(crossed)
	}
}

func (d *Device) sampleFPS(now time.Time) {
	d.windowFrames++
	elapsed := now.Sub(d.windowStart)
	if elapsed < constants.FPSWindow {
		return
	}
	d.fps = float64(d.windowFrames) / elapsed.Seconds()
	d.statFPS.Set(d.fps)
	d.windowFrames = 0
	d.windowStart = now
}

// Info describes the last frame
func (d *Device) Info() FrameInfo {
	return FrameInfo{
		Frame:      d.frame,
		FPS:        d.fps,
		Crank:      d.crank,
		Docked:     d.docked,
		Held:       d.buttons.Current,
		UpdateTime: d.lastUpdate,
	}
}

// Stop ends Run at the next frame boundary; safe from any goroutine
func (d *Device) Stop() {
	d.stopOnce.Do(func() { close(d.stopChan) })
}

// Run boots handler and drives frames until the app, the frontend or Stop ends the loop
// The handler receives EventTerminate before Run returns
func (d *Device) Run(handler host.EventHandler, fe Frontend) {
	defer d.terminate()

	if d.Boot(handler) == host.LoopStop {
		log.Printf("device: app stopped during init")
		return
	}

	next := d.clock.Now()
	for {
		select {
		case <-d.stopChan:
			return
		default:
		}

		c := fe.Poll(d.clock.Now())
		if c.Quit {
			log.Printf("device: quit requested at frame %d", d.frame)
			return
		}
		if d.Step(c) == host.UpdateStop {
			log.Printf("device: app stopped at frame %d", d.frame)
			return
		}
		fe.Present(d.fb, d.Info())

		// Drift correction: schedule from the previous deadline, resync when behind
		interval := d.FrameInterval()
		next = next.Add(interval)
		wait := next.Sub(d.clock.Now())
		if wait <= 0 {
			if -wait > interval {
				next = d.clock.Now()
			}
			continue
		}

		select {
		case <-d.stopChan:
			return
		case <-d.clock.After(wait):
		}
	}
}

func (d *Device) terminate() {
	d.Send(host.EventTerminate)
	log.Printf("device: terminated after %d frames", d.frame)
}
