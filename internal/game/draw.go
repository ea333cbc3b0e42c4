package game

import (
	"chosenoffset.com/islewatch/internal/core/gamestate"
	"chosenoffset.com/islewatch/internal/render"
	"chosenoffset.com/islewatch/internal/ui/hud"
)

// Debug overlay stroke width in buffer pixels
const debugStroke = 4

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Config.Camera.Background)

	player := g.World.Player()
	g.Camera.Follow(player.Rect())
	g.Camera.Draw(screen, g.drawDebug)

	g.GameHUD.SetStatus(g.status())
	g.GameHUD.Draw(screen)
}

// drawDebug outlines the alert radius around the player and links every
// pursuing enemy to it
func (g *Game) drawDebug(buffer render.Image) {
	if !g.Config.Debug.Enabled {
		return
	}

	player := g.World.Player()
	if player.Removed() {
		return
	}
	center := g.Camera.ToBuffer(player.Rect().Center())

	for _, e := range g.World.Enemies() {
		if !e.Pursuing() {
			continue
		}
		g.Renderer.StrokeCircle(buffer, float32(center.X), float32(center.Y),
			float32(g.Config.Enemy.AlertRadius), debugStroke, g.Config.Debug.RadiusColor)
		target := g.Camera.ToBuffer(e.Rect().Center())
		g.Renderer.StrokeLine(buffer, float32(center.X), float32(center.Y),
			float32(target.X), float32(target.Y), debugStroke, g.Config.Debug.LineColor)
	}
}

// status snapshots the simulation for the HUD
func (g *Game) status() hud.Status {
	player := g.World.Player()
	pos := player.Rect().Center()
	return hud.Status{
		Health:    player.Health,
		MaxHealth: g.Config.Player.MaxHealth,
		Zoom:      g.Camera.Zoom(),
		Enemies:   len(g.World.Enemies()),
		Slain:     g.Session.Counter(gamestate.WatchersSlain),
		X:         pos.X,
		Y:         pos.Y,
		Dead:      player.Removed(),
	}
}
