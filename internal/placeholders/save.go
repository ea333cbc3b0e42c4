package placeholders

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/islewatch/internal/simulation"
)

// Options says where the generated files go and how big the frames are
type Options struct {
	AssetsDir  string
	MapsDir    string
	PlayerDir  string // Relative to AssetsDir
	EnemiesDir string // Relative to AssetsDir
	MapName    string

	PlayerWidth, PlayerHeight int
	EnemyWidth, EnemyHeight   int
	Variants                  []string

	Island IslandConfig
}

// OptionsFromConfig lays the files out where the game will look for them
func OptionsFromConfig(cfg *simulation.Config) Options {
	island := DefaultIslandConfig()
	island.HazardName = cfg.Map.HazardName
	island.ObstacleName = cfg.Map.ObstacleName
	island.SpawnName = cfg.Map.PlayerSpawn
	island.EnemyType = cfg.Map.EnemyType

	return Options{
		AssetsDir:    cfg.Assets.Root,
		MapsDir:      filepath.Join(cfg.Assets.Root, cfg.Map.Dir),
		PlayerDir:    cfg.Assets.PlayerDir,
		EnemiesDir:   cfg.Assets.EnemiesDir,
		MapName:      cfg.Map.Default,
		PlayerWidth:  cfg.Player.SpriteWidth,
		PlayerHeight: cfg.Player.SpriteHeight,
		EnemyWidth:   cfg.Enemy.SpriteWidth,
		EnemyHeight:  cfg.Enemy.SpriteHeight,
		Variants:     cfg.Enemy.Variants,
		Island:       island,
	}
}

// GenerateAndSave writes every player strip, every watcher strip, the
// island tileset and the island map
func GenerateAndSave(opts Options) error {
	for state := range PlayerFrames {
		dir := filepath.Join(opts.AssetsDir, opts.PlayerDir, state)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		for _, facing := range PlayerDirections {
			path := filepath.Join(dir, state+"_"+facing+".png")
			if err := SavePNG(PlayerStrip(state, facing, opts.PlayerWidth, opts.PlayerHeight), path); err != nil {
				return fmt.Errorf("failed to save %s: %w", path, err)
			}
		}
		log.Printf("[placeholders] Wrote %d %s strips to %s", len(PlayerDirections), state, dir)
	}

	enemiesDir := filepath.Join(opts.AssetsDir, opts.EnemiesDir)
	if err := os.MkdirAll(enemiesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", enemiesDir, err)
	}
	for _, variant := range opts.Variants {
		path := filepath.Join(enemiesDir, variant+".png")
		if err := SavePNG(WatcherStrip(variant, opts.EnemyWidth, opts.EnemyHeight), path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
	}
	log.Printf("[placeholders] Wrote %d watcher strips to %s", len(opts.Variants), enemiesDir)

	if err := os.MkdirAll(opts.MapsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.MapsDir, err)
	}
	tilesetPath := filepath.Join(opts.MapsDir, IslandTilesetImage)
	if err := SavePNG(IslandTileset(), tilesetPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", tilesetPath, err)
	}

	mapData, err := IslandMap(opts.Island)
	if err != nil {
		return fmt.Errorf("failed to build island map: %w", err)
	}
	data, err := json.MarshalIndent(mapData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode island map: %w", err)
	}
	mapPath := filepath.Join(opts.MapsDir, opts.MapName+".tmj")
	if err := os.WriteFile(mapPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mapPath, err)
	}
	log.Printf("[placeholders] Wrote %s", mapPath)

	return nil
}
