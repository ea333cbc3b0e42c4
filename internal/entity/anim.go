package entity

import "fmt"

// AnimState is the player animation being played
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimAttack
	AnimDeath
)

// String returns the spritesheet directory name of the state
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimAttack:
		return "attack"
	case AnimDeath:
		return "death"
	default:
		panic(fmt.Sprintf("entity: unknown animation state %d", int(s)))
	}
}

var animStates = []AnimState{AnimIdle, AnimRun, AnimAttack, AnimDeath}

// Facing is the direction a sprite is drawn looking at
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the direction suffix used in sequence keys
func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		panic(fmt.Sprintf("entity: unknown facing %d", int(f)))
	}
}

var playerFacings = []Facing{FacingDown, FacingUp, FacingLeft, FacingRight}

// Controls is the per-tick movement input read by the player
type Controls struct {
	Up, Down, Left, Right bool
}
