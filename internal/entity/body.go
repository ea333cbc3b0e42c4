package entity

import (
	"math"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/sprite"
)

// Body is the state shared by every actor: a sprite with health, a shadow,
// an animation cursor and a damage countdown.
type Body struct {
	Sprite *sprite.Sprite
	Shadow *Shadow
	Health int

	// Direction is the movement applied during the last tick
	Direction geom.Vec2
	// Countdown is the invulnerability window for the player and the
	// hit flash for enemies, in ticks
	Countdown int

	triggers []*Trigger
	frames   []assets.Frame
	frame    float64
	dying    bool
	removed  bool
}

// Rect returns the body's bounding box in world space
func (b *Body) Rect() geom.Rect {
	return b.Sprite.Rect
}

// Dying reports whether the body has started dying. It never reverts.
func (b *Body) Dying() bool {
	return b.dying
}

// Removed reports whether the body has left the simulation
func (b *Body) Removed() bool {
	return b.removed
}

// Frame returns the current animation cursor
func (b *Body) Frame() float64 {
	return b.frame
}

// Mask returns the collision mask of the displayed frame
func (b *Body) Mask() *geom.Mask {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[b.frameIndex()].Mask
}

func (b *Body) frameIndex() int {
	idx := int(b.frame)
	if idx >= len(b.frames) {
		idx = len(b.frames) - 1
	}
	return max(0, idx)
}

// resolveTriggers applies every trigger the body overlapped at the start
// of the tick. Obstacles are snapped out one at a time in list order.
func (b *Body) resolveTriggers() {
	var hits []*Trigger
	for _, t := range b.triggers {
		if b.Sprite.Rect.Intersects(t.Rect) {
			hits = append(hits, t)
		}
	}

	for _, t := range hits {
		switch t.Kind {
		case TriggerHazard:
			b.dying = true
		case TriggerObstacle:
			dir := geom.CollisionDirection(b.Sprite.Rect, t.Rect)
			geom.SnapOut(&b.Sprite.Rect, t.Rect, dir)
		}
	}
}

func (b *Body) updateDying() {
	if b.Health <= 0 {
		b.dying = true
	}
}

// tickCountdown flashes the sprite while the countdown runs and restores
// full opacity once it reaches zero
func (b *Body) tickCountdown(period int) {
	if b.Countdown <= 0 {
		return
	}
	if period > 0 && (b.Countdown/period)%2 == 0 {
		b.Sprite.Alpha = 0
	} else {
		b.Sprite.Alpha = 1
	}
	b.Countdown--
	if b.Countdown == 0 {
		b.Sprite.Alpha = 1
	}
}

// applyFrame shows the current frame, keeping the top-left corner fixed
func (b *Body) applyFrame() {
	f := b.frames[b.frameIndex()]
	b.Sprite.Image = f.Image
	b.Sprite.Rect.W = float64(f.W)
	b.Sprite.Rect.H = float64(f.H)
}

// overlaps tests pixel masks of two bodies at their current positions
func (b *Body) overlaps(other *Body) bool {
	if !b.Sprite.Rect.Intersects(other.Sprite.Rect) {
		return false
	}
	m, om := b.Mask(), other.Mask()
	if m == nil || om == nil {
		return true
	}
	dx := int(math.Round(other.Sprite.Rect.X - b.Sprite.Rect.X))
	dy := int(math.Round(other.Sprite.Rect.Y - b.Sprite.Rect.Y))
	return m.Overlaps(om, dx, dy)
}

// remove takes the body and its shadow out of the simulation
func (b *Body) remove() {
	b.removed = true
	b.Sprite.Kill()
	if b.Shadow != nil {
		b.Shadow.Kill()
	}
}

// Sprites returns the shadow and body sprites for the draw list
func (b *Body) Sprites() []*sprite.Sprite {
	if b.Shadow == nil {
		return []*sprite.Sprite{b.Sprite}
	}
	return []*sprite.Sprite{b.Shadow.Sprite, b.Sprite}
}
