package gfx

import (
	"image"
	"image/color"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is a Graphics implementation over an 8-bit gray image
// Only Ink and Paper levels are ever written
type Framebuffer struct {
	img  *image.Gray
	font *Font
}

// NewFramebuffer creates a w×h surface cleared to paper
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{img: image.NewGray(image.Rect(0, 0, w, h))}
	fb.Clear(ColorWhite)
	return fb
}

// Image exposes the frame for presentation
func (fb *Framebuffer) Image() *image.Gray {
	return fb.img
}

// Bounds returns frame dimensions
func (fb *Framebuffer) Bounds() (int, int) {
	s := fb.img.Bounds().Size()
	return s.X, s.Y
}

// Pixel returns ColorBlack or ColorWhite; out of bounds reads as white
func (fb *Framebuffer) Pixel(x, y int) Color {
	if !(image.Point{x, y}.In(fb.img.Bounds())) {
		return ColorWhite
	}
	if fb.img.GrayAt(x, y).Y < 0x80 {
		return ColorBlack
	}
	return ColorWhite
}

// SetFont selects the face used by DrawText; nil restores the system font
func (fb *Framebuffer) SetFont(f *Font) {
	fb.font = f
}

// NewBitmap allocates a bitmap; the framebuffer holds no reference to it
func (fb *Framebuffer) NewBitmap(w, h int, bg Color) (*Bitmap, error) {
	return NewBitmap(w, h, bg)
}

// Clear fills the frame; ColorClear leaves it untouched, ColorXOR inverts it
func (fb *Framebuffer) Clear(c Color) {
	pix := fb.img.Pix
	switch c {
	case ColorBlack:
		fill(pix, Ink)
	case ColorWhite:
		fill(pix, Paper)
	case ColorXOR:
		for i := range pix {
			if pix[i] < 0x80 {
				pix[i] = Paper
			} else {
				pix[i] = Ink
			}
		}
	}
}

// fill sets all bytes using exponential copy
func fill(pix []uint8, v uint8) {
	if len(pix) == 0 {
		return
	}
	pix[0] = v
	for filled := 1; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// TextWidth measures text in pixels; tracking is added between glyphs
func (fb *Framebuffer) TextWidth(text string, enc StringEncoding, f *Font, tracking int) int {
	face := f.resolve()
	runes := decode(text, enc)

	var w fixed.Int26_6
	for _, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance(utf8.RuneError)
		}
		w += adv
	}
	if n := len(runes); n > 1 {
		w += fixed.I(tracking * (n - 1))
	}
	return w.Round()
}

// DrawText draws text with its top-left corner at (x, y) and returns the drawn width
func (fb *Framebuffer) DrawText(text string, enc StringEncoding, x, y int) int {
	face := fb.font.resolve()
	d := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(color.Gray{Y: Ink}),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Round()),
	}
	for _, r := range decode(text, enc) {
		d.DrawString(string(r))
	}
	return (d.Dot.X - fixed.I(x)).Round()
}

// DrawRotatedBitmap draws b rotated clockwise by degrees about its
// normalized anchor (cx, cy), which lands on (x, y)
func (fb *Framebuffer) DrawRotatedBitmap(b *Bitmap, x, y int, degrees, cx, cy, xscale, yscale float32) {
	w, h := b.Size()
	draw.NearestNeighbor.Transform(fb.img, rotation(w, h, x, y, degrees, cx, cy, xscale, yscale), b.img, b.img.Bounds(), draw.Over, nil)
}

// rotation builds the source-to-destination transform
// dst = T(x,y) · R(θ) · S(sx,sy) · T(-cx·w, -cy·h) · src
func rotation(w, h, x, y int, degrees, cx, cy, xscale, yscale float32) f64.Aff3 {
	theta := float64(degrees) * math.Pi / 180
	sin, cos := math.Sincos(theta)
	sx, sy := float64(xscale), float64(yscale)
	ox, oy := float64(cx)*float64(w), float64(cy)*float64(h)

	a, b := cos*sx, -sin*sy
	d, e := sin*sx, cos*sy
	return f64.Aff3{
		a, b, float64(x) - (a*ox + b*oy),
		d, e, float64(y) - (d*ox + e*oy),
	}
}

// decode splits text into runes per encoding
// Bytes outside 7-bit ASCII become utf8.RuneError under EncodingASCII
func decode(text string, enc StringEncoding) []rune {
	switch enc {
	case EncodingUTF8:
		return []rune(text)
	case Encoding16BitLE:
		units := make([]uint16, 0, len(text)/2)
		for i := 0; i+1 < len(text); i += 2 {
			units = append(units, uint16(text[i])|uint16(text[i+1])<<8)
		}
		return utf16.Decode(units)
	default:
		runes := make([]rune, len(text))
		for i := 0; i < len(text); i++ {
			if text[i] < utf8.RuneSelf {
				runes[i] = rune(text[i])
			} else {
				runes[i] = utf8.RuneError
			}
		}
		return runes
	}
}
