// Package assetstest builds asset caches from solid in-memory frames so
// simulation tests do not need image files.
package assetstest

import (
	"fmt"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/render/rendertest"
)

// Frame counts used by NewCache
const (
	IdleFrames    = 4
	RunFrames     = 6
	AttackFrames  = 4
	DeathFrames   = 3
	WatcherFrames = 4
)

// Frame sizes used by NewCache
const (
	PlayerSize  = 40
	WatcherSize = 32
)

// SolidFrames returns n fully opaque w x h frames with fake images
func SolidFrames(name string, n, w, h int) []assets.Frame {
	frames := make([]assets.Frame, n)
	for i := range frames {
		m := geom.NewMask(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.Set(x, y)
			}
		}
		frames[i] = assets.Frame{
			Image: rendertest.NewImage(fmt.Sprintf("%s_%d", name, i), w, h),
			Mask:  m,
			W:     w,
			H:     h,
		}
	}
	return frames
}

// NewCache returns a cache with every player state and facing and the
// given watcher variants
func NewCache(r *rendertest.Renderer, variants ...string) *assets.Cache {
	counts := map[string]int{"idle": IdleFrames, "run": RunFrames, "attack": AttackFrames, "death": DeathFrames}
	player := make(map[string]assets.Sheet, len(counts))
	for state, n := range counts {
		sheet := assets.Sheet{}
		for _, dir := range []string{"up", "down", "left", "right"} {
			key := state + "_" + dir
			sheet[key] = SolidFrames(key, n, PlayerSize, PlayerSize)
		}
		player[state] = sheet
	}

	enemies := assets.Sheet{}
	for _, variant := range variants {
		for _, dir := range []string{"left", "right"} {
			key := variant + "_" + dir
			enemies[key] = SolidFrames(key, WatcherFrames, WatcherSize, WatcherSize)
		}
	}
	return assets.NewCacheWith(r, player, enemies)
}
