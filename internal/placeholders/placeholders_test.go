package placeholders

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/render/rendertest"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/world/maploader"
)

func TestPlayerStripSize(t *testing.T) {
	strip := PlayerStrip("run", "left", 40, 40)
	assert.Equal(t, image.Rect(0, 0, 6*40, 40), strip.Bounds())

	// Each frame has opaque pixels and transparent corners
	for i := 0; i < 6; i++ {
		assert.Equal(t, uint8(0), strip.RGBAAt(i*40, 0).A)
		assert.Equal(t, uint8(255), strip.RGBAAt(i*40+20, 22).A)
	}
}

func TestWatcherStripSize(t *testing.T) {
	strip := WatcherStrip("ocular", 32, 32)
	assert.Equal(t, image.Rect(0, 0, WatcherFrames*32, 32), strip.Bounds())
}

func TestIslandMapLayout(t *testing.T) {
	cfg := DefaultIslandConfig()
	data, err := IslandMap(cfg)
	require.NoError(t, err)

	m := &maploader.Map{Data: data}
	objects := m.Objects()

	var hazards, obstacles, enemies int
	for _, o := range objects {
		switch {
		case o.Name == cfg.HazardName:
			hazards++
		case o.Name == cfg.ObstacleName:
			obstacles++
			assert.Equal(t, o.Width, o.Height, "obstacles are square")
		case o.Kind() == cfg.EnemyType:
			enemies++
		}
	}
	assert.Greater(t, hazards, 0)
	assert.Equal(t, len(cfg.Rocks), obstacles)
	assert.Equal(t, len(cfg.Watchers), enemies)

	spawn, err := m.GetObjectByName(cfg.SpawnName)
	require.NoError(t, err)

	// The spawn is on grass and every watcher starts outside the alert radius
	assert.Equal(t, uint32(GIDGrass), groundAt(cfg, int(spawn.X)/TileSize, int(spawn.Y)/TileSize))
	radius := simulation.DefaultConfig().Enemy.AlertRadius
	for _, o := range objects {
		if o.Kind() == cfg.EnemyType {
			assert.Greater(t, math.Hypot(o.X-spawn.X, o.Y-spawn.Y), radius, o.Name)
		}
	}
}

func TestIslandMapRejectsWatcherInWater(t *testing.T) {
	cfg := DefaultIslandConfig()
	cfg.Watchers = []WatcherSpawn{{"bloodshot", image.Point{0, 0}}}
	_, err := IslandMap(cfg)
	assert.Error(t, err)
}

func TestGenerateAndSaveLoadsBack(t *testing.T) {
	root := t.TempDir()
	cfg := simulation.DefaultConfig()
	opts := OptionsFromConfig(cfg)
	opts.AssetsDir = filepath.Join(root, "assets")
	opts.MapsDir = filepath.Join(root, "maps")

	require.NoError(t, GenerateAndSave(opts))

	cache, err := assets.NewCache(&rendertest.Renderer{}, os.DirFS(opts.AssetsDir), cfg)
	require.NoError(t, err)
	for state, n := range PlayerFrames {
		frames, err := cache.PlayerSequence(state, "up")
		require.NoError(t, err)
		assert.Len(t, frames, n, state)
	}
	for _, variant := range cfg.Enemy.Variants {
		frames, err := cache.EnemySequence(variant, "left")
		require.NoError(t, err)
		assert.Len(t, frames, WatcherFrames)
	}

	data, err := os.ReadFile(filepath.Join(opts.MapsDir, "open_island.tmj"))
	require.NoError(t, err)
	mapData, err := maploader.ParseMap(data)
	require.NoError(t, err)
	assert.Equal(t, 40, mapData.Width)

	_, err = os.Stat(filepath.Join(opts.MapsDir, IslandTilesetImage))
	assert.NoError(t, err)
}
