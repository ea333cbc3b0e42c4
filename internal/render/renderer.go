// Package render is the seam between the simulation and the graphics
// backend. Game code draws through these contracts only, so the scene can
// be composed and tested without a window.
package render

import (
	"image"
	"image/color"
)

// Renderer creates images and draws primitives that have no image source
type Renderer interface {
	// NewImage returns a transparent offscreen surface.
	NewImage(width, height int) Image
	// NewImageFromImage uploads a decoded or generated picture.
	NewImageFromImage(src image.Image) Image

	// FillEllipse paints a solid ellipse centred on (cx, cy).
	FillEllipse(dst Image, cx, cy, rx, ry float32, clr color.Color)

	// Debug overlays
	StrokeCircle(dst Image, x, y, radius, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)

	// HUD text
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a drawable surface: a sprite frame, a tile, the internal camera
// buffer or the screen itself
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// SubImage shares pixels with the parent, used for tileset slicing.
	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
	Clear()
	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions positions and fades a blit
type DrawImageOptions struct {
	GeoM GeoM

	// Alpha scales the source opacity. The zero value leaves it unchanged,
	// the same way a zero ebiten.ColorScale is the identity.
	Alpha float32
}
