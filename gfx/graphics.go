// Package gfx is the immediate-mode drawing surface the device exposes to
// applications: clear, text, and rotated bitmap blits onto a 1-bit panel.
package gfx

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StringEncoding selects how DrawText interprets its input
type StringEncoding uint8

const (
	EncodingASCII StringEncoding = iota
	EncodingUTF8
	Encoding16BitLE
)

// Font is a loaded typeface; nil selects the system font
type Font struct {
	face font.Face
}

// SystemFont is the face used when no font is given
var SystemFont = &Font{face: basicfont.Face7x13}

func (f *Font) resolve() font.Face {
	if f == nil || f.face == nil {
		return SystemFont.face
	}
	return f.face
}

// Graphics is the renderer facade
// Draw calls layer in call order within a frame
type Graphics interface {
	Clear(c Color)
	TextWidth(text string, enc StringEncoding, f *Font, tracking int) int
	DrawText(text string, enc StringEncoding, x, y int) int
	DrawRotatedBitmap(b *Bitmap, x, y int, degrees, cx, cy, xscale, yscale float32)
	NewBitmap(w, h int, bg Color) (*Bitmap, error)
}
