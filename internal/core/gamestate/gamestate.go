// Package gamestate keeps the session tallies that outlive a single scene:
// how many watchers fell, how often the player died and restarted.
package gamestate

import (
	"fmt"
	"sort"
	"strings"
)

// Counter names recorded by the game
const (
	WatchersSlain   = "watchers_slain"
	WatchersDrowned = "watchers_drowned"
	Deaths          = "deaths"
	Restarts        = "restarts"
	Ticks           = "ticks"
)

// GameState holds the session counters. It is only touched from the game
// loop and needs no locking.
type GameState struct {
	// Counters are integer tallies (e.g. "watchers_slain")
	Counters map[string]int
}

// New creates an empty GameState
func New() *GameState {
	return &GameState{
		Counters: make(map[string]int),
	}
}

// Counter returns the value of a counter (0 if not set)
func (gs *GameState) Counter(name string) int {
	return gs.Counters[name]
}

// Increment adds delta to a counter and returns the new value
func (gs *GameState) Increment(name string, delta int) int {
	gs.Counters[name] += delta
	return gs.Counters[name]
}

// Names returns every counter name in sorted order
func (gs *GameState) Names() []string {
	names := make([]string, 0, len(gs.Counters))
	for name := range gs.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String lists every recorded counter as name=value, sorted by name
func (gs *GameState) String() string {
	names := gs.Names()
	if len(names) == 0 {
		return "no activity"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, gs.Counters[name])
	}
	return strings.Join(parts, " ")
}
