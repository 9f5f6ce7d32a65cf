package input

import "math"

// FullTurn is one crank revolution in degrees
const FullTurn = 360

// Crank is a cached handle to the crank reader
type Crank struct {
	src  Source
	last float32
	seen bool
}

// NewCrank caches the source lookup
func NewCrank(src Source) *Crank {
	return &Crank{src: src}
}

// Angle returns the crank angle in degrees, [0, 360), clockwise from up
func (c *Crank) Angle() float32 {
	return c.src.CrankAngle()
}

// Docked reports whether the crank is folded into the body
func (c *Crank) Docked() bool {
	return c.src.IsCrankDocked()
}

// Change returns the signed movement since the previous call on this handle
// Movement is unwrapped across the 0/360 seam; the first call returns 0
func (c *Crank) Change() float32 {
	a := c.src.CrankAngle()
	if !c.seen {
		c.seen = true
		c.last = a
		return 0
	}
	d := AngleDelta(c.last, a)
	c.last = a
	return d
}

// AngleDelta returns the shortest signed rotation from a to b in degrees, (-180, 180]
func AngleDelta(a, b float32) float32 {
	d := math.Mod(float64(b-a), FullTurn)
	if d > FullTurn/2 {
		d -= FullTurn
	} else if d <= -FullTurn/2 {
		d += FullTurn
	}
	return float32(d)
}

// WrapAngle normalizes degrees into [0, 360)
func WrapAngle(a float32) float32 {
	w := math.Mod(float64(a), FullTurn)
	if w < 0 {
		w += FullTurn
	}
	// -0.00001 mod 360 rounds up to 360 in float32
	if float32(w) >= FullTurn {
		return 0
	}
	return float32(w)
}
