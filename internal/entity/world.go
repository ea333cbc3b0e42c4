// Package entity implements the per-tick simulation: triggers, shadows,
// the player and enemy state machines, and the world that steps them.
package entity

import (
	"fmt"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/sprite"
)

// ActorKind tags which variant an Actor holds
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
)

// Actor is one simulated entity. Exactly the field matching Kind is set.
type Actor struct {
	Kind   ActorKind
	Player *Player
	Enemy  *Enemy
}

func (a Actor) removed() bool {
	switch a.Kind {
	case ActorPlayer:
		return a.Player.Removed()
	case ActorEnemy:
		return a.Enemy.Removed()
	default:
		panic(fmt.Sprintf("entity: unknown actor kind %d", int(a.Kind)))
	}
}

// Stage receives the sprites of newly created actors
type Stage interface {
	Add(sprites ...*sprite.Sprite)
}

// World owns the live actors and the trigger registry shared by all of them
type World struct {
	cfg      *simulation.Config
	cache    *assets.Cache
	stage    Stage
	triggers []*Trigger

	player *Player
	actors []Actor
}

// NewWorld creates the world and spawns the player centered on spawn
func NewWorld(cfg *simulation.Config, cache *assets.Cache, stage Stage, triggers []*Trigger, spawn geom.Vec2) (*World, error) {
	w := &World{
		cfg:      cfg,
		cache:    cache,
		stage:    stage,
		triggers: triggers,
	}

	player, err := NewPlayer(cache, cfg, spawn, triggers)
	if err != nil {
		return nil, err
	}
	w.player = player
	w.actors = append(w.actors, Actor{Kind: ActorPlayer, Player: player})
	w.show(player.Sprites())

	return w, nil
}

// AddEnemy spawns an enemy of the given variant centered on center
func (w *World) AddEnemy(variant string, center geom.Vec2) (*Enemy, error) {
	enemy, err := NewEnemy(w.cache, w.cfg, variant, center, w.triggers)
	if err != nil {
		return nil, err
	}
	w.actors = append(w.actors, Actor{Kind: ActorEnemy, Enemy: enemy})
	w.show(enemy.Sprites())
	return enemy, nil
}

func (w *World) show(sprites []*sprite.Sprite) {
	if w.stage != nil {
		w.stage.Add(sprites...)
	}
}

// FireAttack forwards a click to the player
func (w *World) FireAttack() {
	w.player.FireAttack()
}

// Tick steps every live actor once in insertion order, then drops the
// actors that were removed during the tick
func (w *World) Tick(ctl Controls) {
	for _, a := range w.actors {
		switch a.Kind {
		case ActorPlayer:
			a.Player.Update(ctl)
		case ActorEnemy:
			a.Enemy.Update(w.player)
		default:
			panic(fmt.Sprintf("entity: unknown actor kind %d", int(a.Kind)))
		}
	}

	live := w.actors[:0]
	for _, a := range w.actors {
		if !a.removed() {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(w.actors); i++ {
		w.actors[i] = Actor{}
	}
	w.actors = live
}

// Player returns the player, which stays reachable after removal
func (w *World) Player() *Player {
	return w.player
}

// Enemies returns the enemies still in the simulation
func (w *World) Enemies() []*Enemy {
	var out []*Enemy
	for _, a := range w.actors {
		if a.Kind == ActorEnemy {
			out = append(out, a.Enemy)
		}
	}
	return out
}

// Actors returns the live actors in update order
func (w *World) Actors() []Actor {
	return w.actors
}

// Triggers returns the trigger registry
func (w *World) Triggers() []*Trigger {
	return w.triggers
}
