package assets

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path"

	"chosenoffset.com/islewatch/internal/render"
	"chosenoffset.com/islewatch/internal/simulation"
)

// PlayerStates lists the per-state sub-directories of the player spritesheets
var PlayerStates = []string{"idle", "run", "attack", "death"}

// Cache owns every image loaded at startup. It is built once before the
// first tick and passed to the entity constructors; nothing reloads it.
type Cache struct {
	renderer render.Renderer

	// Player holds one sheet per animation state, keyed "<state>_<direction>"
	Player map[string]Sheet
	// Enemies holds "<variant>_right" and "<variant>_left" sequences
	Enemies Sheet

	ellipses map[shapeKey]render.Image
	solids   map[shapeKey]render.Image
}

type shapeKey struct {
	w, h int
	c    color.NRGBA
}

// NewCache loads the player and enemy spritesheets from fsys
func NewCache(r render.Renderer, fsys fs.FS, cfg *simulation.Config) (*Cache, error) {
	player := make(map[string]Sheet, len(PlayerStates))
	for _, state := range PlayerStates {
		dir := path.Join(cfg.Assets.PlayerDir, state)
		sheet, err := LoadSpritesheet(r, fsys, dir, cfg.Player.SpriteWidth, cfg.Player.SpriteHeight, 1.0, false)
		if err != nil {
			return nil, fmt.Errorf("failed to load player %s sheets: %w", state, err)
		}
		log.Printf("[assets] Loaded %d player %s sequences from %s", len(sheet), state, dir)
		player[state] = sheet
	}

	enemies, err := LoadSpritesheet(r, fsys, cfg.Assets.EnemiesDir, cfg.Enemy.SpriteWidth, cfg.Enemy.SpriteHeight, cfg.Enemy.ScaleFactor, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy sheets: %w", err)
	}
	log.Printf("[assets] Loaded %d enemy sequences from %s", len(enemies), cfg.Assets.EnemiesDir)

	return NewCacheWith(r, player, enemies), nil
}

// NewCacheWith builds a cache around sheets that were prepared elsewhere
func NewCacheWith(r render.Renderer, player map[string]Sheet, enemies Sheet) *Cache {
	return &Cache{
		renderer: r,
		Player:   player,
		Enemies:  enemies,
		ellipses: make(map[shapeKey]render.Image),
		solids:   make(map[shapeKey]render.Image),
	}
}

// Renderer returns the renderer the cache uploads images with
func (c *Cache) Renderer() render.Renderer {
	return c.renderer
}

// PlayerSequence returns the frames for a player state facing dir
func (c *Cache) PlayerSequence(state, dir string) ([]Frame, error) {
	sheet, ok := c.Player[state]
	if !ok {
		return nil, fmt.Errorf("%w: no %q sheet", ErrMissingSequence, state)
	}
	return sheet.Sequence(state + "_" + dir)
}

// EnemySequence returns the frames for an enemy variant facing dir
func (c *Cache) EnemySequence(variant, dir string) ([]Frame, error) {
	return c.Enemies.Sequence(variant + "_" + dir)
}

// Ellipse returns a w x h image with a filled ellipse touching its edges
func (c *Cache) Ellipse(w, h int, clr color.Color) render.Image {
	key := shapeKey{w: w, h: h, c: color.NRGBAModel.Convert(clr).(color.NRGBA)}
	if img, ok := c.ellipses[key]; ok {
		return img
	}
	w, h = max(1, w), max(1, h)
	img := c.renderer.NewImage(w, h)
	c.renderer.FillEllipse(img, float32(w)/2, float32(h)/2, float32(w)/2, float32(h)/2, key.c)
	c.ellipses[key] = img
	return img
}

// Solid returns a w x h image filled with clr
func (c *Cache) Solid(w, h int, clr color.Color) render.Image {
	key := shapeKey{w: w, h: h, c: color.NRGBAModel.Convert(clr).(color.NRGBA)}
	if img, ok := c.solids[key]; ok {
		return img
	}
	img := c.renderer.NewImage(max(1, w), max(1, h))
	img.Fill(key.c)
	c.solids[key] = img
	return img
}
