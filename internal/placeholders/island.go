package placeholders

import (
	"encoding/json"
	"fmt"
	"image"

	"chosenoffset.com/islewatch/internal/world/atlas"
	"chosenoffset.com/islewatch/internal/world/maploader"
)

// Tileset gids of the island tiles
const (
	GIDWater = iota + 1
	GIDSand
	GIDGrass
	GIDRock
)

// IslandTilesetImage is the tileset file name, relative to the map
const IslandTilesetImage = "island_tiles.png"

// IslandConfig controls the generated map
type IslandConfig struct {
	Width, Height int // Map size in tiles
	Rocks         []image.Point
	Watchers      []WatcherSpawn
	HazardName    string
	ObstacleName  string
	SpawnName     string
	EnemyType     string
}

// WatcherSpawn places one enemy on the map, in tiles
type WatcherSpawn struct {
	Variant string
	At      image.Point
}

// DefaultIslandConfig returns the layout of open_island
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		Width:  40,
		Height: 30,
		Rocks: []image.Point{
			{14, 10}, {15, 10}, {25, 18}, {10, 17}, {28, 11},
		},
		Watchers: []WatcherSpawn{
			{"bloodshot", image.Point{9, 11}},
			{"ocular", image.Point{30, 15}},
			{"bloodshot", image.Point{20, 22}},
			{"ocular", image.Point{22, 7}},
		},
		HazardName:   "hazard",
		ObstacleName: "obstacle",
		SpawnName:    "player_spawn",
		EnemyType:    "enemy",
	}
}

// IslandTileset draws the four island tiles in gid order
func IslandTileset() *image.RGBA {
	p := ColorPalette
	tiles := []*image.RGBA{
		CreatePatternedTile(p.Water, p.Foam, "waves"),
		CreatePatternedTile(p.Sand, Darken(p.Sand, 0.85), "dots"),
		CreatePatternedTile(p.Grass, Darken(p.Grass, 0.75), "tufts"),
		CreatePatternedTile(p.Grass, p.Rock, "boulder"),
	}
	return CreateAtlas(tiles, len(tiles), TileSize, TileSize)
}

// groundAt classifies a cell by its distance from the island center
func groundAt(cfg IslandConfig, x, y int) uint32 {
	cx := float64(cfg.Width-1) / 2
	cy := float64(cfg.Height-1) / 2
	rx := float64(cfg.Width)/2 - 4
	ry := float64(cfg.Height)/2 - 4

	dx := (float64(x) - cx) / rx
	dy := (float64(y) - cy) / ry
	d := dx*dx + dy*dy
	switch {
	case d > 1:
		return GIDWater
	case d > 0.7:
		return GIDSand
	default:
		return GIDGrass
	}
}

// IslandMap builds the Tiled map data for the island layout
func IslandMap(cfg IslandConfig) (*maploader.MapData, error) {
	ground := make([]uint32, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			ground[y*cfg.Width+x] = groundAt(cfg, x, y)
		}
	}

	props := make([]uint32, cfg.Width*cfg.Height)
	for _, r := range cfg.Rocks {
		props[r.Y*cfg.Width+r.X] = GIDRock
	}

	groundData, err := json.Marshal(ground)
	if err != nil {
		return nil, err
	}
	propsData, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}

	var objects []maploader.Object
	nextID := 1
	add := func(o maploader.Object) {
		o.ID = nextID
		nextID++
		objects = append(objects, o)
	}

	// One hazard per horizontal run of water
	for y := 0; y < cfg.Height; y++ {
		start := -1
		for x := 0; x <= cfg.Width; x++ {
			water := x < cfg.Width && ground[y*cfg.Width+x] == GIDWater
			if water && start < 0 {
				start = x
			}
			if !water && start >= 0 {
				add(maploader.Object{
					Name:   cfg.HazardName,
					X:      float64(start * TileSize),
					Y:      float64(y * TileSize),
					Width:  float64((x - start) * TileSize),
					Height: TileSize,
				})
				start = -1
			}
		}
	}

	for _, r := range cfg.Rocks {
		add(maploader.Object{
			Name:   cfg.ObstacleName,
			X:      float64(r.X * TileSize),
			Y:      float64(r.Y * TileSize),
			Width:  TileSize,
			Height: TileSize,
		})
	}

	center := image.Point{cfg.Width / 2, cfg.Height / 2}
	add(maploader.Object{
		Name: cfg.SpawnName,
		X:    float64(center.X * TileSize),
		Y:    float64(center.Y * TileSize),
	})

	for _, w := range cfg.Watchers {
		if ground[w.At.Y*cfg.Width+w.At.X] == GIDWater {
			return nil, fmt.Errorf("watcher %s at %v spawns in water", w.Variant, w.At)
		}
		add(maploader.Object{
			Name: w.Variant,
			Type: cfg.EnemyType,
			X:    float64(w.At.X*TileSize + TileSize/2),
			Y:    float64(w.At.Y*TileSize + TileSize/2),
		})
	}

	tileset := IslandTileset()
	b := tileset.Bounds()
	return &maploader.MapData{
		Width:      cfg.Width,
		Height:     cfg.Height,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Layers: []maploader.Layer{
			{ID: 1, Name: "ground", Type: maploader.LayerTiles, Width: cfg.Width, Height: cfg.Height, Data: groundData},
			{ID: 2, Name: "props", Type: maploader.LayerTiles, Width: cfg.Width, Height: cfg.Height, Data: propsData},
			{ID: 3, Name: "triggers", Type: maploader.LayerObjects, Objects: objects},
		},
		Tilesets: []atlas.TilesetConfig{{
			FirstGID:    1,
			Name:        "island",
			Image:       IslandTilesetImage,
			ImageWidth:  b.Dx(),
			ImageHeight: b.Dy(),
			TileWidth:   TileSize,
			TileHeight:  TileSize,
			Columns:     b.Dx() / TileSize,
			TileCount:   (b.Dx() / TileSize) * (b.Dy() / TileSize),
		}},
	}, nil
}
