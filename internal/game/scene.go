package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/entity"
	"chosenoffset.com/islewatch/internal/sprite"
)

// LoadScene builds a fresh camera group and world from the loaded map.
// The map and asset cache are reused, so a restart never touches disk.
func (g *Game) LoadScene() error {
	cfg := g.Config
	camera := sprite.NewCameraGroup(g.Renderer, cfg.Camera, g.ScreenWidth, g.ScreenHeight)

	// Ground tiles
	tw, th := g.GameMap.TileSize()
	tiles := g.GameMap.Tiles()
	for _, t := range tiles {
		pos := geom.Vec2{X: float64(t.GridX * tw), Y: float64(t.GridY * th)}
		camera.Add(sprite.NewSpriteAt(t.Image, pos, cfg.Map.TileZIndex))
	}

	triggers := g.buildTriggers(camera)

	spawn, err := g.GameMap.GetObjectByName(cfg.Map.PlayerSpawn)
	if err != nil {
		return fmt.Errorf("failed to place player: %w", err)
	}

	world, err := entity.NewWorld(cfg, g.Assets, camera, triggers, geom.Vec2{X: spawn.X, Y: spawn.Y})
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	enemies := 0
	for _, obj := range g.GameMap.Objects() {
		if obj.Kind() != cfg.Map.EnemyType {
			continue
		}
		if _, err := world.AddEnemy(obj.Name, geom.Vec2{X: obj.X, Y: obj.Y}); err != nil {
			if errors.Is(err, entity.ErrUnknownVariant) {
				return fmt.Errorf("map object %d: %w", obj.ID, err)
			}
			return fmt.Errorf("failed to spawn enemy %q: %w", obj.Name, err)
		}
		enemies++
	}

	g.Camera = camera
	g.World = world
	g.Triggers = triggers

	log.Printf("[game] Scene ready: %d tiles, %d triggers, %d enemies", len(tiles), len(triggers), enemies)
	return nil
}

// buildTriggers turns hazard and obstacle objects into triggers. In debug
// mode each trigger also gets a translucent sprite in its debug color.
func (g *Game) buildTriggers(camera *sprite.CameraGroup) []*entity.Trigger {
	cfg := g.Config
	var triggers []*entity.Trigger
	for _, obj := range g.GameMap.Objects() {
		kind, ok := entity.ParseTriggerKind(obj.Name, cfg.Map)
		if !ok {
			continue
		}

		debugColor := cfg.Debug.HazardColor.NRGBA
		if kind == entity.TriggerObstacle {
			debugColor = cfg.Debug.ObstacleColor.NRGBA
		}

		pos := geom.Vec2{X: obj.X, Y: obj.Y}
		t := entity.NewTrigger(pos, obj.Width, obj.Height, kind, debugColor)
		triggers = append(triggers, t)

		if cfg.Debug.Enabled && obj.Width >= 1 && obj.Height >= 1 {
			img := g.Assets.Solid(int(obj.Width), int(obj.Height), debugColor)
			s := sprite.NewSprite(img, t.Rect)
			s.ZIndex = cfg.Map.TriggerZ
			camera.Add(s)
		}
	}
	return triggers
}
