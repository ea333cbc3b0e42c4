package entity

import (
	"fmt"
	"image/color"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/sprite"
)

// Anchor selects which point of the parent a shadow is pinned to
type Anchor int

const (
	AnchorMidBottom Anchor = iota
	AnchorCenter
)

// Shadow is an ellipse that follows its parent sprite. It is owned by the
// entity that created it and killed together with it.
type Shadow struct {
	Sprite *sprite.Sprite

	parent *sprite.Sprite
	anchor Anchor
}

// NewShadow builds an ellipse sized to the parent divided by the given divisors
func NewShadow(cache *assets.Cache, parent *sprite.Sprite, anchor Anchor, widthDiv, heightDiv int, clr color.Color, z int) *Shadow {
	w := int(parent.Rect.W) / max(1, widthDiv)
	h := int(parent.Rect.H) / max(1, heightDiv)

	s := &Shadow{
		Sprite: sprite.NewSpriteAt(cache.Ellipse(w, h, clr), parent.Rect.TopLeft(), z),
		parent: parent,
		anchor: anchor,
	}
	s.Update()
	return s
}

// Update moves the shadow to the parent's anchor point
func (s *Shadow) Update() {
	switch s.anchor {
	case AnchorMidBottom:
		s.Sprite.Rect.SetMidBottom(s.parent.Rect.MidBottom())
	case AnchorCenter:
		s.Sprite.Rect.SetCenter(s.parent.Rect.Center())
	default:
		panic(fmt.Sprintf("entity: unknown shadow anchor %d", s.anchor))
	}
}

// Kill removes the shadow from the draw list
func (s *Shadow) Kill() {
	s.Sprite.Kill()
}
