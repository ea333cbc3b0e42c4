package geom

import "image"

// AlphaThreshold is the minimum alpha (0-255) for a pixel to count as solid
const AlphaThreshold = 127

// Mask is a per-pixel solidity bitmap used for pixel-accurate overlap tests.
type Mask struct {
	w, h int
	bits []uint64
}

// NewMask creates an empty w x h mask
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]uint64, (w*h+63)/64)}
}

// MaskFromImage builds a mask from the alpha channel of img
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Size returns the mask dimensions
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// Set marks the pixel at (x, y) as solid
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.w + x
	m.bits[i/64] |= 1 << (i % 64)
}

// Get reports whether the pixel at (x, y) is solid
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	i := y*m.w + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of solid pixels
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any solid pixel of m coincides with a solid pixel
// of other when other's origin is placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
