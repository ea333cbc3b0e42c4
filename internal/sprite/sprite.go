// Package sprite holds the renderable record shared by tiles, triggers,
// shadows and actors, and the camera that composites them.
package sprite

import (
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/render"
)

// DefaultZIndex is the draw layer of a sprite that was not given one
const DefaultZIndex = 1

// Sprite is an image placed in world space.
// Higher ZIndex values are drawn later, on top.
type Sprite struct {
	Image  render.Image
	Rect   geom.Rect
	ZIndex int
	Alpha  float64 // 0 hides the sprite, 1 is fully opaque

	dead bool
}

// NewSprite creates an opaque sprite on the default layer
func NewSprite(img render.Image, rect geom.Rect) *Sprite {
	return &Sprite{
		Image:  img,
		Rect:   rect,
		ZIndex: DefaultZIndex,
		Alpha:  1,
	}
}

// NewSpriteAt creates a sprite sized to its image with its top-left at pos
func NewSpriteAt(img render.Image, pos geom.Vec2, z int) *Sprite {
	w, h := img.Size()
	s := NewSprite(img, geom.Rect{X: pos.X, Y: pos.Y, W: float64(w), H: float64(h)})
	s.ZIndex = z
	return s
}

// Kill marks the sprite for removal on the next Prune
func (s *Sprite) Kill() {
	s.dead = true
}

// Alive reports whether Kill has not been called
func (s *Sprite) Alive() bool {
	return !s.dead
}

// Visible reports whether the sprite would produce any pixels
func (s *Sprite) Visible() bool {
	return !s.dead && s.Image != nil && s.Alpha > 0
}
