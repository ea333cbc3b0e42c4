package entity

import (
	"fmt"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/sprite"
)

// Player is the controllable actor
type Player struct {
	Body

	cfg   *simulation.Config
	anims map[AnimState]map[Facing][]assets.Frame

	state     AnimState
	lastState AnimState
	facing    Facing
	attacking bool
	// swingStarted restarts the attack sequence on the next animation step
	swingStarted bool
}

// NewPlayer creates the player centered on center. Every state and facing
// must have a sequence in the cache.
func NewPlayer(cache *assets.Cache, cfg *simulation.Config, center geom.Vec2, triggers []*Trigger) (*Player, error) {
	anims := make(map[AnimState]map[Facing][]assets.Frame, len(animStates))
	for _, state := range animStates {
		anims[state] = make(map[Facing][]assets.Frame, len(playerFacings))
		for _, facing := range playerFacings {
			frames, err := cache.PlayerSequence(state.String(), facing.String())
			if err != nil {
				return nil, fmt.Errorf("failed to build player: %w", err)
			}
			anims[state][facing] = frames
		}
	}

	p := &Player{
		cfg:       cfg,
		anims:     anims,
		state:     AnimIdle,
		lastState: AnimIdle,
		facing:    FacingDown,
	}
	p.frames = anims[AnimIdle][FacingDown]
	first := p.frames[0]
	p.Sprite = sprite.NewSprite(first.Image, geom.NewRectCentered(center, float64(first.W), float64(first.H)))
	p.Sprite.ZIndex = cfg.Player.ZIndex
	p.Health = cfg.Player.MaxHealth
	p.triggers = triggers
	p.Shadow = NewShadow(cache, p.Sprite, AnchorMidBottom,
		cfg.Player.ShadowWidthDivisor, cfg.Player.ShadowHeightDivisor, cfg.Shadow.Color, cfg.Player.ShadowZIndex)

	return p, nil
}

// AnimState returns the animation selected during the last tick
func (p *Player) AnimState() AnimState {
	return p.state
}

// Facing returns the latched facing direction
func (p *Player) Facing() Facing {
	return p.facing
}

// Attacking reports whether a swing is in progress
func (p *Player) Attacking() bool {
	return p.attacking
}

// FireAttack starts a swing. It does nothing while a swing is already
// playing or the player is dying.
func (p *Player) FireAttack() {
	if p.attacking || p.dying || p.removed {
		return
	}
	p.attacking = true
	p.swingStarted = true
}

// Update advances the player by one tick
func (p *Player) Update(ctl Controls) {
	if p.removed {
		return
	}

	p.resolveTriggers()
	p.updateDying()
	if p.dying {
		p.attacking = false
		p.swingStarted = false
	}

	p.tickCountdown(p.cfg.Player.FlashPeriod)
	p.move(ctl)
	p.face(ctl)
	p.animate()

	if !p.removed {
		p.Shadow.Update()
	}
}

func (p *Player) move(ctl Controls) {
	var dir geom.Vec2
	if !p.attacking && !p.dying {
		if ctl.Up {
			dir.Y = -1
		} else if ctl.Down {
			dir.Y = 1
		}
		if ctl.Left {
			dir.X = -1
		} else if ctl.Right {
			dir.X = 1
		}
	}

	p.Direction = dir
	if !dir.IsZero() {
		p.Sprite.Rect.Translate(dir.Normalize().Scale(p.cfg.Player.Velocity))
	}
}

// face latches the facing from held keys. Horizontal keys win over
// vertical ones when both are held.
func (p *Player) face(ctl Controls) {
	if p.attacking || p.dying {
		return
	}
	if ctl.Up {
		p.facing = FacingUp
	} else if ctl.Down {
		p.facing = FacingDown
	}
	if ctl.Left {
		p.facing = FacingLeft
	} else if ctl.Right {
		p.facing = FacingRight
	}
}

func (p *Player) selectState() AnimState {
	switch {
	case p.dying:
		return AnimDeath
	case p.attacking:
		return AnimAttack
	case !p.Direction.IsZero():
		return AnimRun
	default:
		return AnimIdle
	}
}

// animate picks the state, advances the frame cursor and handles the end
// of the attack and death sequences
func (p *Player) animate() {
	p.state = p.selectState()
	frames := p.anims[p.state][p.facing]
	count := float64(len(frames))

	if p.state != p.lastState || p.swingStarted {
		p.frame = 0
		p.swingStarted = false
	} else {
		if p.attacking {
			p.frame += p.cfg.Animation.SwingSpeed
			if p.frame >= count {
				p.attacking = false
			}
		} else {
			p.frame += p.cfg.Animation.NormalSpeed
		}

		if p.dying && p.frame >= count {
			p.remove()
			return
		}
		if p.frame >= count {
			p.frame = 0
		}
	}

	p.lastState = p.state
	p.frames = frames
	p.applyFrame()
}
