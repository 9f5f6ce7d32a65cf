package terminal

import "github.com/lixenwraith/crankspin/gfx"

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = ink)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// Sub-pixel offsets in bit order: UL, UR, LL, LR
var quadrantOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// CellGrid returns the cell dimensions covering a w x h panel at scale
func CellGrid(w, h, scale int) (cols, rows int) {
	span := 2 * scale
	return (w + span - 1) / span, (h + span - 1) / span
}

// QuadrantAt samples the 2x2 sub-pixels of cell (cx, cy)
// Each sub-pixel covers a scale x scale block and is ink when at least half of it is black
func QuadrantAt(fb *gfx.Framebuffer, cx, cy, scale int) rune {
	pattern := 0
	for bit, off := range quadrantOffsets {
		x0 := (cx*2 + off[0]) * scale
		y0 := (cy*2 + off[1]) * scale
		if inkBlock(fb, x0, y0, scale) {
			pattern |= 1 << bit
		}
	}
	return QuadrantChars[pattern]
}

// inkBlock reports whether black holds at least half of the block
// Pixels past the panel edge read as paper
func inkBlock(fb *gfx.Framebuffer, x0, y0, scale int) bool {
	ink := 0
	for y := y0; y < y0+scale; y++ {
		for x := x0; x < x0+scale; x++ {
			if fb.Pixel(x, y) == gfx.ColorBlack {
				ink++
			}
		}
	}
	return ink*2 >= scale*scale
}
