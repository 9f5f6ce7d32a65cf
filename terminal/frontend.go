package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crankspin/constants"
	"github.com/lixenwraith/crankspin/core"
	"github.com/lixenwraith/crankspin/device"
	"github.com/lixenwraith/crankspin/gfx"
	"github.com/lixenwraith/crankspin/input"
)

// Options configures input emulation and rendering
type Options struct {
	// Scale is panel pixels per sub-pixel, per axis
	Scale int
	// HoldTimeout keeps a key held after its last press or repeat
	HoldTimeout time.Duration
	// WheelStep is crank degrees per wheel notch
	WheelStep float32
	// KeyStep is crank degrees per crank key event
	KeyStep float32
}

// DefaultOptions returns the terminal defaults
func DefaultOptions() Options {
	return Options{
		Scale:       constants.PixelScale,
		HoldTimeout: constants.HoldTimeout,
		WheelStep:   constants.WheelStep,
		KeyStep:     constants.KeyStep,
	}
}

var (
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Frontend implements device.Frontend over a tcell screen
type Frontend struct {
	screen tcell.Screen
	keys   *input.KeyTable
	opts   Options
	events chan tcell.Event

	// Last press or repeat per button bit
	lastPress map[input.Button]time.Time

	// Accumulated since the previous Poll
	crank  float32
	toggle bool
	quit   bool

	width, height int
	dirty         bool
}

// New creates a frontend; the screen must already be initialized
func New(screen tcell.Screen, keys *input.KeyTable, opts Options) *Frontend {
	def := DefaultOptions()
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = def.HoldTimeout
	}
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	f := &Frontend{
		screen:    screen,
		keys:      keys,
		opts:      opts,
		events:    make(chan tcell.Event, constants.EventBufferSize),
		lastPress: make(map[input.Button]time.Time),
		dirty:     true,
	}
	f.width, f.height = screen.Size()
	return f
}

// Start enables mouse reporting and launches the event pump
// The pump exits when the screen is finalized
func (f *Frontend) Start() {
	f.screen.EnableMouse()
	core.Go(func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			f.events <- ev
		}
	})
}

// Poll drains pending events and reports controls for the frame at now
func (f *Frontend) Poll(now time.Time) device.Controls {
drain:
	for {
		select {
		case ev := <-f.events:
			f.HandleEvent(ev, now)
		default:
			break drain
		}
	}

	c := device.Controls{
		Held:       f.held(now),
		Crank:      f.crank,
		ToggleDock: f.toggle,
		Quit:       f.quit,
	}
	f.crank = 0
	f.toggle = false
	return c
}

// held returns buttons whose last press is within the hold timeout
func (f *Frontend) held(now time.Time) input.Button {
	var mask input.Button
	for b, at := range f.lastPress {
		if now.Sub(at) < f.opts.HoldTimeout {
			mask |= b
		} else {
			delete(f.lastPress, b)
		}
	}
	return mask
}

// HandleEvent applies one tcell event as of now
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev, now)

	case *tcell.EventMouse:
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			f.crank -= f.opts.WheelStep
		}
		if btn&tcell.WheelDown != 0 {
			f.crank += f.opts.WheelStep
		}

	case *tcell.EventResize:
		f.width, f.height = f.screen.Size()
		f.dirty = true
		log.Printf("terminal: resize %dx%d", f.width, f.height)
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey, now time.Time) {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
		f.quit = true
		return
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers() == tcell.ModNone:
		f.quit = true
		return
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
		// Some terminals report Ctrl+C as a modified rune
		f.quit = true
		return
	}

	b, ok := f.keys.Lookup(ev)
	if !ok {
		return
	}
	switch b.Action {
	case input.ActionButton:
		f.lastPress[b.Button] = now
	case input.ActionCrankCW:
		f.crank += f.opts.KeyStep
	case input.ActionCrankCCW:
		f.crank -= f.opts.KeyStep
	case input.ActionDock:
		f.toggle = !f.toggle
	}
}

// Present draws the panel and status line, clipped to the screen
func (f *Frontend) Present(fb *gfx.Framebuffer, info device.FrameInfo) {
	if f.dirty {
		f.screen.Clear()
		f.dirty = false
	}

	w, h := fb.Bounds()
	cols, rows := CellGrid(w, h, f.opts.Scale)
	for cy := 0; cy < rows && cy < f.height; cy++ {
		for cx := 0; cx < cols && cx < f.width; cx++ {
			f.screen.SetContent(cx, cy, QuadrantAt(fb, cx, cy, f.opts.Scale), nil, panelStyle)
		}
	}

	if rows < f.height {
		f.drawStatus(rows, StatusLine(info))
	}
	f.screen.Show()
}

// drawStatus writes text on row y and blanks the rest of the row
func (f *Frontend) drawStatus(y int, text string) {
	x := 0
	for _, r := range text {
		if x >= f.width {
			return
		}
		f.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < f.width; x++ {
		f.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// StatusLine formats frame info for the row below the panel
func StatusLine(info device.FrameInfo) string {
	crank := "undocked"
	if info.Docked {
		crank = "docked"
	}
	return fmt.Sprintf(" frame %d | %.1f fps | crank %5.1f° %s | held %s | update %s ",
		info.Frame, info.FPS, info.Crank, crank, info.Held, info.UpdateTime.Round(time.Microsecond))
}
