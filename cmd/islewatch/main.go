package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/game"
	"chosenoffset.com/islewatch/internal/gamescanner"
	"chosenoffset.com/islewatch/internal/render"
	ebitenrender "chosenoffset.com/islewatch/internal/render/ebiten"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/world/maploader"
)

func main() {
	configPath := flag.String("config", "configs/islewatch.yaml", "YAML tuning file; defaults apply when it is missing")
	mapName := flag.String("map", "", "map to load from the maps directory (default from config)")
	assetsRoot := flag.String("assets", "", "asset root directory (default from config)")
	debug := flag.Bool("debug", false, "draw trigger volumes and pursuit lines")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapName != "" {
		cfg.Map.Default = *mapName
	}
	if *assetsRoot != "" {
		cfg.Assets.Root = *assetsRoot
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	// Find the map
	mapsDir := filepath.Join(cfg.Assets.Root, cfg.Map.Dir)
	log.Printf("Scanning %s for maps...", mapsDir)
	maps, err := gamescanner.ScanMaps(mapsDir)
	if err != nil {
		log.Fatalf("Failed to scan maps: %v", err)
	}
	entry, ok := gamescanner.Find(maps, cfg.Map.Default)
	if !ok {
		log.Fatalf("Map %q not found, available: %v", cfg.Map.Default, gamescanner.Names(maps))
	}

	gameMap, err := maploader.LoadMap(entry.Path, loader)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	log.Printf("Loaded map: %s (%dx%d)", entry.Name, gameMap.Data.Width, gameMap.Data.Height)

	cache, err := assets.NewCache(renderer, os.DirFS(cfg.Assets.Root), cfg)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	g, err := game.NewGame(game.Options{
		Config:   cfg,
		Renderer: renderer,
		Input:    inputMgr,
		Map:      gameMap,
		Assets:   cache,
	})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)
	engine.SetCursorVisible(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil && !errors.Is(err, render.ErrTerminate) {
		log.Fatal(err)
	}

	log.Printf("Session: %s", g.Session)
}
