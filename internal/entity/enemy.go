package entity

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/sprite"
)

// ErrUnknownVariant is returned for enemy variants missing from the config
var ErrUnknownVariant = errors.New("unknown enemy variant")

// Enemy is a watcher that chases the player inside its alert radius
type Enemy struct {
	Body

	cfg     *simulation.Config
	variant string
	anims   map[Facing][]assets.Frame
	facing  Facing

	pursuing    bool
	distance    float64
	dirToPlayer geom.Vec2
}

// NewEnemy creates an enemy of the given variant centered on center
func NewEnemy(cache *assets.Cache, cfg *simulation.Config, variant string, center geom.Vec2, triggers []*Trigger) (*Enemy, error) {
	if !cfg.Enemy.HasVariant(variant) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	anims := make(map[Facing][]assets.Frame, 2)
	for _, facing := range []Facing{FacingRight, FacingLeft} {
		frames, err := cache.EnemySequence(variant, facing.String())
		if err != nil {
			return nil, fmt.Errorf("failed to build %s enemy: %w", variant, err)
		}
		anims[facing] = frames
	}

	e := &Enemy{
		cfg:     cfg,
		variant: variant,
		anims:   anims,
		facing:  FacingRight,
	}
	e.frames = anims[FacingRight]
	first := e.frames[0]
	e.Sprite = sprite.NewSprite(first.Image, geom.NewRectCentered(center, float64(first.W), float64(first.H)))
	e.Sprite.ZIndex = cfg.Enemy.ZIndex
	e.Health = cfg.Enemy.MaxHealth
	e.triggers = triggers
	e.Shadow = NewShadow(cache, e.Sprite, AnchorMidBottom,
		cfg.Enemy.ShadowWidthDivisor, cfg.Enemy.ShadowHeightDivisor, cfg.Shadow.Color, cfg.Enemy.ShadowZIndex)

	return e, nil
}

// Variant returns the watcher variant name
func (e *Enemy) Variant() string {
	return e.variant
}

// Pursuing reports whether the player was inside the alert radius last tick
func (e *Enemy) Pursuing() bool {
	return e.pursuing
}

// Distance returns the distance to the player measured last tick
func (e *Enemy) Distance() float64 {
	return e.distance
}

// Facing returns the horizontal facing
func (e *Enemy) Facing() Facing {
	return e.facing
}

// Update advances the enemy by one tick. A nil or removed player is ignored.
func (e *Enemy) Update(player *Player) {
	if e.removed {
		return
	}

	e.resolveTriggers()
	e.updateDying()
	if e.dying {
		e.remove()
		return
	}

	if player != nil && !player.Removed() {
		e.track(player)
		if e.pursuing {
			e.Direction = e.dirToPlayer
			e.Sprite.Rect.Translate(e.Direction.Scale(e.cfg.Enemy.Velocity))
		} else {
			e.Direction = geom.Vec2{}
		}
		e.handleContact(player)
	} else {
		e.pursuing = false
		e.Direction = geom.Vec2{}
	}

	e.tickCountdown(e.cfg.Enemy.FlashPeriod)
	e.animate()
	e.Shadow.Update()
}

// track measures the distance to the player and updates the pursuit state.
// There is no hysteresis at the radius boundary.
func (e *Enemy) track(player *Player) {
	from := e.Rect().Center()
	to := player.Rect().Center()

	e.distance = geom.Distance(to, from)
	wasPursuing := e.pursuing
	e.pursuing = e.distance <= e.cfg.Enemy.AlertRadius
	e.dirToPlayer = to.Sub(from).Normalize()

	if e.cfg.Debug.Enabled && e.pursuing && !wasPursuing {
		log.Printf("[entity] %s entered the alert radius at (%.0f, %.0f)", e.variant, from.X, from.Y)
	}
}

// handleContact resolves a pixel overlap with the player: a sword hit if the
// player is swinging, contact damage otherwise. The enemy's countdown only
// drives the hit flash, so every overlapping swing tick lands.
func (e *Enemy) handleContact(player *Player) {
	if !e.overlaps(&player.Body) {
		return
	}

	combat := e.cfg.Combat
	if player.AnimState() == AnimAttack {
		e.Sprite.Rect.Translate(e.dirToPlayer.Scale(-combat.EnemyKnockback))
		e.Health -= combat.SwordDamage
		e.Countdown = e.cfg.Enemy.HitFlashFrames
		e.updateDying()
		return
	}

	if player.Dying() || player.Countdown > 0 {
		return
	}
	player.Sprite.Rect.Translate(e.dirToPlayer.Scale(combat.PlayerKnockback))
	player.Health -= combat.ContactDamage
	player.Countdown = e.cfg.Player.InvulnerabilityFrames
}

func (e *Enemy) animate() {
	if e.dirToPlayer.X > 0 {
		e.facing = FacingRight
	} else {
		e.facing = FacingLeft
	}
	e.frames = e.anims[e.facing]

	e.frame += e.cfg.Animation.NormalSpeed
	if e.frame >= float64(len(e.frames)) {
		e.frame = 0
	}
	e.applyFrame()
}
