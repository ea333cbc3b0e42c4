package sprite

import (
	"sort"

	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/render"
	"chosenoffset.com/islewatch/internal/simulation"
)

// CameraGroup owns the draw list and composites it around the followed
// target. Sprites are drawn into a fixed-size internal buffer which is then
// scaled by the zoom factor and centered on the screen.
type CameraGroup struct {
	renderer render.Renderer
	cfg      simulation.CameraConfig

	screenW, screenH int
	sprites          []*Sprite

	offset         geom.Vec2
	internalOffset geom.Vec2
	zoom           float64

	buffer render.Image
}

// NewCameraGroup creates an empty camera for a screen of the given size
func NewCameraGroup(r render.Renderer, cfg simulation.CameraConfig, screenW, screenH int) *CameraGroup {
	c := &CameraGroup{
		renderer: r,
		cfg:      cfg,
		screenW:  screenW,
		screenH:  screenH,
		zoom:     cfg.DefaultZoom,
	}
	c.internalOffset = geom.Vec2{
		X: float64(cfg.InternalWidth)/2 - float64(screenW)/2,
		Y: float64(cfg.InternalHeight)/2 - float64(screenH)/2,
	}
	c.clampZoom()
	return c
}

// Add appends sprites to the draw list
func (c *CameraGroup) Add(sprites ...*Sprite) {
	for _, s := range sprites {
		if s != nil {
			c.sprites = append(c.sprites, s)
		}
	}
}

// Sprites returns the draw list in insertion order
func (c *CameraGroup) Sprites() []*Sprite {
	return c.sprites
}

// Len returns the number of sprites in the draw list
func (c *CameraGroup) Len() int {
	return len(c.sprites)
}

// Prune drops killed sprites, keeping the order of the rest
func (c *CameraGroup) Prune() {
	live := c.sprites[:0]
	for _, s := range c.sprites {
		if s.Alive() {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(c.sprites); i++ {
		c.sprites[i] = nil
	}
	c.sprites = live
}

// Clear empties the draw list
func (c *CameraGroup) Clear() {
	c.sprites = nil
}

// Follow centers the view on target. There is no smoothing and no
// clamping to the map bounds.
func (c *CameraGroup) Follow(target geom.Rect) {
	center := target.Center()
	c.offset = geom.Vec2{
		X: center.X - float64(c.screenW)/2,
		Y: center.Y - float64(c.screenH)/2,
	}
}

// HandleZoom steps the zoom factor while a zoom key is held
func (c *CameraGroup) HandleZoom(in, out bool) {
	if in {
		c.zoom += c.cfg.ZoomStep
	}
	if out {
		c.zoom -= c.cfg.ZoomStep
	}
	c.clampZoom()
}

func (c *CameraGroup) clampZoom() {
	if c.zoom < c.cfg.MinZoom {
		c.zoom = c.cfg.MinZoom
	}
	if c.zoom > c.cfg.MaxZoom {
		c.zoom = c.cfg.MaxZoom
	}
}

// Zoom returns the current zoom factor
func (c *CameraGroup) Zoom() float64 {
	return c.zoom
}

// Offset returns the world position mapped to the screen's top-left corner
func (c *CameraGroup) Offset() geom.Vec2 {
	return c.offset
}

// ToBuffer converts a world position into internal buffer coordinates
func (c *CameraGroup) ToBuffer(world geom.Vec2) geom.Vec2 {
	return world.Sub(c.offset).Add(c.internalOffset)
}

// Draw composites every visible sprite in ascending ZIndex order, runs
// overlay on the internal buffer, then blits the scaled buffer onto screen.
func (c *CameraGroup) Draw(screen render.Image, overlay func(buffer render.Image)) {
	if c.buffer == nil {
		c.buffer = c.renderer.NewImage(c.cfg.InternalWidth, c.cfg.InternalHeight)
	}
	c.buffer.Clear()

	ordered := make([]*Sprite, len(c.sprites))
	copy(ordered, c.sprites)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	for _, s := range ordered {
		if !s.Visible() {
			continue
		}
		pos := c.ToBuffer(s.Rect.TopLeft())
		opts := &render.DrawImageOptions{}
		opts.GeoM.Translate(pos.X, pos.Y)
		if s.Alpha < 1 {
			opts.Alpha = float32(s.Alpha)
		}
		c.buffer.DrawImage(s.Image, opts)
	}

	if overlay != nil {
		overlay(c.buffer)
	}

	sw, sh := screen.Size()
	scaledW := float64(c.cfg.InternalWidth) * c.zoom
	scaledH := float64(c.cfg.InternalHeight) * c.zoom
	opts := &render.DrawImageOptions{}
	opts.GeoM.Scale(c.zoom, c.zoom)
	opts.GeoM.Translate((float64(sw)-scaledW)/2, (float64(sh)-scaledH)/2)
	screen.DrawImage(c.buffer, opts)
}
