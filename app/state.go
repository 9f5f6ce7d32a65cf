package app

import (
	"fmt"

	"github.com/lixenwraith/crankspin/gfx"
	"github.com/lixenwraith/crankspin/host"
	"github.com/lixenwraith/crankspin/input"
)

const (
	// Speed is the per-frame step for each held direction
	Speed = 4
	// TextTop is the label's vertical offset
	TextTop = 16
	// ImageSize is the side of the square bitmap
	ImageSize = 100
	// Label is drawn centred above the bitmap
	Label = "Just rotating bitmap:"

	labelEncoding = gfx.EncodingASCII
	imageColor    = gfx.ColorBlack
	background    = gfx.ColorWhite
)

// Point is a screen-space coordinate
type Point struct {
	X, Y int
}

// State is the application state, owned by the Dispatcher
type State struct {
	image   *gfx.Bitmap
	crank   *input.Crank
	buttons input.Buttons
	gfx     gfx.Graphics
	pos     Point

	screenW, screenH int
}

// NewState creates the bitmap and caches the peripheral handles
// The entity starts at the screen centre
func NewState(api *host.API) (*State, error) {
	image, err := api.Graphics.NewBitmap(ImageSize, ImageSize, imageColor)
	if err != nil {
		return nil, fmt.Errorf("create bitmap: %w", err)
	}

	w, h := api.Display.Width(), api.Display.Height()
	return &State{
		image:   image,
		crank:   input.NewCrank(api.System),
		buttons: input.NewButtons(api.System),
		gfx:     api.Graphics,
		pos:     Point{X: w / 2, Y: h / 2},
		screenW: w,
		screenH: h,
	}, nil
}

// Position returns the entity position
func (s *State) Position() Point {
	return s.pos
}

// SetPosition places the entity; the next Update clamps it
func (s *State) SetPosition(p Point) {
	s.pos = p
}

// Image returns the bitmap handle
func (s *State) Image() *gfx.Bitmap {
	return s.image
}

// Update runs one frame: clear, label, input, move, clamp, draw
// Order is fixed; the surface is immediate-mode and the host presents on return
func (s *State) Update() host.UpdateControl {
	s.gfx.Clear(background)

	textWidth := s.gfx.TextWidth(Label, labelEncoding, nil, 0)
	s.gfx.DrawText(Label, labelEncoding, s.screenW/2-textWidth/2, TextTop)

	rotation := s.crank.Angle()
	s.move(s.buttons.Get().Current)
	s.clamp()

	s.gfx.DrawRotatedBitmap(s.image, s.pos.X, s.pos.Y, rotation, 0.5, 0.5, 1, 1)

	return host.UpdateContinue
}

// move applies each held direction independently; diagonals are not normalized
func (s *State) move(held input.Button) {
	if held.Right() {
		s.pos.X += Speed
	}
	if held.Left() {
		s.pos.X -= Speed
	}
	if held.Up() {
		s.pos.Y -= Speed
	}
	if held.Down() {
		s.pos.Y += Speed
	}
}

// clamp keeps the bitmap's bounding box on screen
// Half sizes use integer division; odd sizes shift the range, not widen it
func (s *State) clamp() {
	d := s.image.Data()
	halfW, halfH := d.Width/2, d.Height/2

	if s.pos.X < halfW {
		s.pos.X = halfW
	} else if s.pos.X > s.screenW-halfW {
		s.pos.X = s.screenW - halfW
	}
	if s.pos.Y < halfH {
		s.pos.Y = halfH
	} else if s.pos.Y > s.screenH-halfH {
		s.pos.Y = s.screenH - halfH
	}
}
