// Package hud draws the heads-up display over the scaled game view: the
// player's health bar, the zoom factor, and the death notice.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/islewatch/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowHP       bool    `yaml:"show_hp"`       // Show HP bar
	ShowZoom     bool    `yaml:"show_zoom"`     // Show camera zoom
	ShowEnemies  bool    `yaml:"show_enemies"`  // Show live enemy count
	ShowPosition bool    `yaml:"show_position"` // Show world position
	Position     string  `yaml:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `yaml:"opacity"`       // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowHP:      true,
		ShowZoom:    true,
		ShowEnemies: true,
		Position:    "top-left",
		Opacity:     0.7,
	}
}

// Status is the snapshot of simulation state shown for one frame
type Status struct {
	Health    int
	MaxHealth int
	Zoom      float64
	Enemies   int
	Slain     int // Watchers killed this session
	X, Y      float64
	Dead      bool // Player has finished dying
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	status Status

	// Cached layout
	panelWidth  int
	panelHeight int
	panel       render.Image
	fills       map[color.NRGBA]render.Image
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   180,
		fills:        make(map[color.NRGBA]render.Image),
	}
}

// SetStatus updates the values shown on the next Draw
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + 8

	if h.config.ShowHP {
		currentY = h.drawHPBar(screen, x+8, currentY)
		currentY += 8
	}

	if h.config.ShowZoom {
		h.drawText(screen, fmt.Sprintf("Zoom: %.2fx", h.status.Zoom), x+8, currentY)
		currentY += 16
	}

	if h.config.ShowEnemies {
		h.drawText(screen, fmt.Sprintf("Watchers: %d", h.status.Enemies), x+8, currentY)
		currentY += 16
		h.drawText(screen, fmt.Sprintf("Slain: %d", h.status.Slain), x+8, currentY)
		currentY += 16
	}

	if h.config.ShowPosition {
		h.drawText(screen, fmt.Sprintf("Pos: %.0f, %.0f", h.status.X, h.status.Y), x+8, currentY)
	}

	if h.status.Dead {
		h.drawDeathNotice(screen)
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10
	h.panelHeight = h.calculatePanelHeight()

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

// calculatePanelHeight calculates the height needed for all HUD elements
func (h *HUD) calculatePanelHeight() int {
	height := 8

	if h.config.ShowHP {
		height += 24
	}
	if h.config.ShowZoom {
		height += 16
	}
	if h.config.ShowEnemies {
		height += 32
	}
	if h.config.ShowPosition {
		height += 16
	}

	return height + 8 // Bottom padding
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	if h.panel == nil || h.panel.Bounds().Dy() != h.panelHeight {
		if h.panel != nil {
			h.panel.Dispose()
		}
		alpha := uint8(h.config.Opacity * 255)
		h.panel = h.renderer.NewImage(h.panelWidth, h.panelHeight)
		h.panel.Fill(color.NRGBA{20, 20, 30, alpha})
	}

	op := &render.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, op)
}

// healthColor picks the bar color for the remaining health fraction
func healthColor(pct float64) color.NRGBA {
	switch {
	case pct > 0.6:
		return color.NRGBA{50, 180, 50, 255} // Green
	case pct > 0.3:
		return color.NRGBA{200, 180, 50, 255} // Yellow
	default:
		return color.NRGBA{200, 50, 50, 255} // Red
	}
}

// drawHPBar draws the player's HP bar
func (h *HUD) drawHPBar(screen render.Image, x, y int) int {
	barWidth := h.panelWidth - 24
	barHeight := 12

	h.drawRect(screen, x, y, barWidth, barHeight, color.NRGBA{60, 20, 20, 255})

	if h.status.MaxHealth > 0 && h.status.Health > 0 {
		pct := float64(h.status.Health) / float64(h.status.MaxHealth)
		fillWidth := max(1, int(float64(barWidth)*min(pct, 1)))
		h.drawRect(screen, x+1, y+1, fillWidth, barHeight-2, healthColor(pct))
	}

	hpText := fmt.Sprintf("%d/%d", max(0, h.status.Health), h.status.MaxHealth)
	textX := x + barWidth/2 - len(hpText)*3
	h.drawText(screen, hpText, textX, y)

	return y + barHeight + 4
}

// drawRect scales a cached 1x1 image of clr to the requested size
func (h *HUD) drawRect(screen render.Image, x, y, w, hgt int, clr color.NRGBA) {
	img, ok := h.fills[clr]
	if !ok {
		img = h.renderer.NewImage(1, 1)
		img.Fill(clr)
		h.fills[clr] = img
	}
	op := &render.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (h *HUD) drawDeathNotice(screen render.Image) {
	lines := []string{"You were lost to the island.", "Press R to try again"}
	y := h.screenHeight/2 - len(lines)*16/2
	for _, line := range lines {
		w, _ := h.renderer.MeasureText(line, 1)
		h.drawText(screen, line, h.screenWidth/2-w/2, y)
		y += 16
	}
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.Black, 1)
	h.renderer.DrawText(screen, text, x, y, color.White, 1)
}
