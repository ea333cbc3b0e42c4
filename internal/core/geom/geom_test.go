package geom

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZeroVectorIsNoop(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	n := Vec2{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}), 1e-9)
	assert.Zero(t, Distance(Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}))
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 30}
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 50.0, r.Bottom())
	assert.Equal(t, Vec2{X: 30, Y: 35}, r.Center())
	assert.Equal(t, Vec2{X: 30, Y: 50}, r.MidBottom())

	r.SetCenter(Vec2{X: 0, Y: 0})
	assert.Equal(t, Rect{X: -20, Y: -15, W: 40, H: 30}, r)

	r.SetMidBottom(Vec2{X: 100, Y: 100})
	assert.Equal(t, Rect{X: 80, Y: 70, W: 40, H: 30}, r)

	r.SetRight(0)
	r.SetBottom(0)
	assert.Equal(t, Rect{X: -40, Y: -30, W: 40, H: 30}, r)
}

func TestIntersectsIgnoresTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 0, Y: 10, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 30, Y: 30, W: 1, H: 1}))
}

func TestCollisionDirection(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, W: 32, H: 32}

	tests := []struct {
		name    string
		subject Rect
		want    Vec2
	}{
		{"from left", Rect{X: 80, Y: 100, W: 32, H: 32}, Vec2{X: 1}},
		{"from right", Rect{X: 120, Y: 102, W: 32, H: 32}, Vec2{X: -1}},
		{"from above", Rect{X: 101, Y: 80, W: 32, H: 32}, Vec2{Y: 1}},
		{"from below", Rect{X: 99, Y: 125, W: 32, H: 32}, Vec2{Y: -1}},
		{"exact diagonal tie", Rect{X: 90, Y: 90, W: 32, H: 32}, Vec2{}},
		{"same center", obstacle, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollisionDirection(tt.subject, obstacle))
		})
	}
}

func TestSnapOutClearsResolvedAxis(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, W: 32, H: 32}
	subjects := []Rect{
		{X: 75, Y: 101, W: 30, H: 30},
		{X: 128, Y: 99, W: 30, H: 30},
		{X: 102, Y: 75, W: 30, H: 30},
		{X: 98, Y: 128, W: 30, H: 30},
	}

	for _, s := range subjects {
		dir := CollisionDirection(s, obstacle)
		require.False(t, dir.IsZero())
		SnapOut(&s, obstacle, dir)
		if dir.X != 0 {
			assert.False(t, s.Left() < obstacle.Right() && s.Right() > obstacle.Left(), "x overlap left for %+v", s)
		} else {
			assert.False(t, s.Top() < obstacle.Bottom() && s.Bottom() > obstacle.Top(), "y overlap left for %+v", s)
		}
	}
}

func TestSnapOutAlongPositiveX(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, W: 32, H: 32}
	subject := Rect{X: 72, Y: 100, W: 32, H: 32}

	SnapOut(&subject, obstacle, CollisionDirection(subject, obstacle))

	assert.Equal(t, obstacle.Left(), subject.Right())
	assert.Equal(t, 100.0, subject.Y)
}

func solidImage(w, h int, solid func(x, y int) bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if solid(x, y) {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func TestMaskFromImage(t *testing.T) {
	img := solidImage(4, 4, func(x, y int) bool { return x == y })
	m := MaskFromImage(img)

	w, h := m.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 4, m.Count())
	assert.True(t, m.Get(2, 2))
	assert.False(t, m.Get(2, 1))
	assert.False(t, m.Get(-1, 0))
}

func TestMaskFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 127})
	img.Set(1, 0, color.NRGBA{0, 0, 0, 128})

	m := MaskFromImage(img)
	assert.False(t, m.Get(0, 0))
	assert.True(t, m.Get(1, 0))
}

func TestMaskOverlaps(t *testing.T) {
	// Ring with a transparent hole in the middle.
	ring := MaskFromImage(solidImage(10, 10, func(x, y int) bool {
		return x == 0 || y == 0 || x == 9 || y == 9
	}))
	dot := MaskFromImage(solidImage(2, 2, func(x, y int) bool { return true }))

	assert.False(t, ring.Overlaps(dot, 4, 4), "dot inside the hole")
	assert.True(t, ring.Overlaps(dot, 8, 4), "dot on the right border")
	assert.True(t, ring.Overlaps(dot, -1, -1), "dot across the corner")
	assert.False(t, ring.Overlaps(dot, 10, 0), "dot beyond the right edge")
	assert.False(t, ring.Overlaps(nil, 0, 0))
}

func TestLargeMaskSpansWords(t *testing.T) {
	m := NewMask(100, 3)
	m.Set(99, 2)
	assert.True(t, m.Get(99, 2))
	assert.False(t, m.Get(98, 2))
	assert.Equal(t, 1, m.Count())
}
