package gfx

import (
	"fmt"
	"image/color"
)

// Color is a 1-bit panel color
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
	ColorClear
	ColorXOR
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorClear:
		return "clear"
	case ColorXOR:
		return "xor"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Ink and paper levels in the framebuffer
const (
	Ink   uint8 = 0x00
	Paper uint8 = 0xFF
)

// nrgba maps a fill color to a bitmap pixel
// ColorClear is fully transparent so it leaves the destination untouched
func (c Color) nrgba() (color.NRGBA, bool) {
	switch c {
	case ColorBlack:
		return color.NRGBA{Ink, Ink, Ink, 0xFF}, true
	case ColorWhite:
		return color.NRGBA{Paper, Paper, Paper, 0xFF}, true
	case ColorClear:
		return color.NRGBA{}, true
	}
	return color.NRGBA{}, false
}
