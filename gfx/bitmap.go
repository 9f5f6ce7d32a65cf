package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// MaxBitmapPixels bounds a single allocation
const MaxBitmapPixels = 4096 * 4096

var (
	ErrInvalidSize  = errors.New("gfx: invalid bitmap size")
	ErrInvalidColor = errors.New("gfx: invalid bitmap color")
)

// Bitmap is an immutable image resource
type Bitmap struct {
	img *image.NRGBA
}

// BitmapData describes a bitmap's fixed dimensions
type BitmapData struct {
	Width, Height int
}

// NewBitmap allocates a w×h bitmap filled with bg
func NewBitmap(w, h int, bg Color) (*Bitmap, error) {
	if w <= 0 || h <= 0 || w > MaxBitmapPixels/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	fill, ok := bg.nrgba()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidColor, bg)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return &Bitmap{img: img}, nil
}

// Size returns width and height in pixels
func (b *Bitmap) Size() (int, int) {
	s := b.img.Bounds().Size()
	return s.X, s.Y
}

// Data returns the bitmap dimensions
func (b *Bitmap) Data() BitmapData {
	w, h := b.Size()
	return BitmapData{Width: w, Height: h}
}

// Image exposes pixels for blitting
func (b *Bitmap) Image() image.Image {
	return b.img
}
