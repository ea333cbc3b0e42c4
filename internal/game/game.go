package game

import (
	"fmt"
	"log"

	"chosenoffset.com/islewatch/internal/assets"
	"chosenoffset.com/islewatch/internal/core/gamestate"
	"chosenoffset.com/islewatch/internal/entity"
	"chosenoffset.com/islewatch/internal/render"
	"chosenoffset.com/islewatch/internal/simulation"
	"chosenoffset.com/islewatch/internal/sprite"
	"chosenoffset.com/islewatch/internal/ui/hud"
	"chosenoffset.com/islewatch/internal/world/maploader"
)

// Options holds everything a Game needs from main
type Options struct {
	Config   *simulation.Config
	Renderer render.Renderer
	Input    render.InputManager
	Map      *maploader.Map
	Assets   *assets.Cache
	HUD      *hud.HUDConfig       // nil uses hud.DefaultConfig
	Session  *gamestate.GameState // nil starts a fresh session
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	GameMap      *maploader.Map
	Assets       *assets.Cache
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Scene, rebuilt on restart
	Camera   *sprite.CameraGroup
	World    *entity.World
	Triggers []*entity.Trigger

	// Session tallies, kept across restarts
	Session *gamestate.GameState

	// HUD
	GameHUD *hud.HUD

	// Debug
	FrameCount int
}

// NewGame creates a game and builds its first scene
func NewGame(opts Options) (*Game, error) {
	if opts.Config == nil || opts.Renderer == nil || opts.Input == nil {
		return nil, fmt.Errorf("game needs a config, a renderer and an input manager")
	}
	if opts.Map == nil || opts.Assets == nil {
		return nil, fmt.Errorf("game needs a loaded map and asset cache")
	}

	g := &Game{
		ScreenWidth:  opts.Config.Window.Width,
		ScreenHeight: opts.Config.Window.Height,
		Config:       opts.Config,
		GameMap:      opts.Map,
		Assets:       opts.Assets,
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Session:      opts.Session,
	}
	if g.Session == nil {
		g.Session = gamestate.New()
	}
	g.GameHUD = hud.New(opts.HUD, opts.Renderer, g.ScreenWidth, g.ScreenHeight)

	if err := g.LoadScene(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update handles game logic updates, one simulation tick per call.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminate
	}

	g.Camera.HandleZoom(g.InputMgr.IsKeyPressed(render.KeyQ), g.InputMgr.IsKeyPressed(render.KeyE))

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.World.FireAttack()
	}

	enemies := g.World.Enemies()
	wasRemoved := g.World.Player().Removed()
	g.World.Tick(g.controls())
	g.tally(enemies, wasRemoved)
	g.Camera.Prune()

	// Restart once the death animation has finished
	if g.World.Player().Removed() && g.InputMgr.IsKeyJustPressed(render.KeyR) {
		if err := g.LoadScene(); err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
		g.Session.Increment(gamestate.Restarts, 1)
	}

	g.FrameCount++
	g.Session.Increment(gamestate.Ticks, 1)
	return nil
}

// tally records the enemies and the player removed during the last tick.
// An enemy removed with health left was lost to a hazard.
func (g *Game) tally(enemies []*entity.Enemy, playerWasRemoved bool) {
	for _, e := range enemies {
		if !e.Removed() {
			continue
		}
		if e.Health <= 0 {
			g.Session.Increment(gamestate.WatchersSlain, 1)
		} else {
			g.Session.Increment(gamestate.WatchersDrowned, 1)
		}
	}
	if !playerWasRemoved && g.World.Player().Removed() {
		g.Session.Increment(gamestate.Deaths, 1)
		log.Printf("[game] Player lost (%s)", g.Session)
	}
}

// controls samples the movement keys
func (g *Game) controls() entity.Controls {
	return entity.Controls{
		Up:    g.InputMgr.IsKeyPressed(render.KeyW),
		Down:  g.InputMgr.IsKeyPressed(render.KeyS),
		Left:  g.InputMgr.IsKeyPressed(render.KeyA),
		Right: g.InputMgr.IsKeyPressed(render.KeyD),
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
