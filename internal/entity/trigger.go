package entity

import (
	"image/color"

	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/simulation"
)

// TriggerKind labels what a trigger does to an entity that touches it
type TriggerKind int

const (
	TriggerUnknown TriggerKind = iota
	TriggerHazard
	TriggerObstacle
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerHazard:
		return "hazard"
	case TriggerObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ParseTriggerKind maps a map object name to a trigger kind.
// Names that are neither the hazard nor the obstacle name report false.
func ParseTriggerKind(name string, cfg simulation.MapConfig) (TriggerKind, bool) {
	switch name {
	case cfg.HazardName:
		return TriggerHazard, true
	case cfg.ObstacleName:
		return TriggerObstacle, true
	default:
		return TriggerUnknown, false
	}
}

// Trigger is a static labeled collision volume. It never changes after
// construction and lives as long as the map that spawned it.
type Trigger struct {
	Rect       geom.Rect
	Kind       TriggerKind
	DebugColor color.Color
}

// NewTrigger creates a trigger with its top-left corner at pos
func NewTrigger(pos geom.Vec2, width, height float64, kind TriggerKind, debug color.Color) *Trigger {
	return &Trigger{
		Rect:       geom.Rect{X: pos.X, Y: pos.Y, W: width, H: height},
		Kind:       kind,
		DebugColor: debug,
	}
}
