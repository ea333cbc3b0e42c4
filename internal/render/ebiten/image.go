// Package ebiten implements the render contracts on top of Ebitengine.
package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/islewatch/internal/render"
)

// The debug font is a fixed 6x13 bitmap font
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 13
)

// EbitenRenderer implements render.Renderer.
type EbitenRenderer struct {
	// white is the 1x1 source for filled paths
	white *ebiten.Image
}

// NewRenderer creates the Ebitengine renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return wrap(ebiten.NewImage(width, height))
}

func (r *EbitenRenderer) NewImageFromImage(src image.Image) render.Image {
	return wrap(ebiten.NewImageFromImage(src))
}

// FillEllipse tessellates a circular arc of the larger radius and squashes
// its vertices onto the other axis, then draws the triangles in clr.
func (r *EbitenRenderer) FillEllipse(dst render.Image, cx, cy, rx, ry float32, clr color.Color) {
	radius := max(rx, ry)
	if radius <= 0 {
		return
	}

	var path vector.Path
	path.Arc(0, 0, radius, 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vertices {
		vertices[i].DstX = cx + vertices[i].DstX*rx/radius
		vertices[i].DstY = cy + vertices[i].DstY*ry/radius
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(c.R) / 255
		vertices[i].ColorG = float32(c.G) / 255
		vertices[i].ColorB = float32(c.B) / 255
		vertices[i].ColorA = float32(c.A) / 255
	}

	if r.white == nil {
		r.white = ebiten.NewImage(3, 3)
		r.white.Fill(color.White)
	}
	src := r.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	unwrap(dst).DrawTriangles(vertices, indices, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeCircle outlines the alert radius in debug mode.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

// StrokeLine links a pursuing enemy to the player in debug mode.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText prints with the debug font, which is always white at scale 1;
// clr and scale only matter to MeasureText callers.
func (r *EbitenRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	if clr != color.White {
		return // the debug font cannot draw drop shadows
	}
	ebitenutil.DebugPrintAt(unwrap(dst), text, x, y)
}

func (r *EbitenRenderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)*debugGlyphWidth) * scale), int(debugGlyphHeight * scale)
}

// Image wraps an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

func wrap(img *ebiten.Image) *Image {
	return &Image{img: img}
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*Image).img
}

// Ebiten returns the wrapped image.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return wrap(i.img.SubImage(r).(*ebiten.Image))
}

func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *Image) Clear() {
	i.img.Clear()
}

func (i *Image) Dispose() {
	i.img.Deallocate()
}

// DrawImage blits src with the option's transform. Alpha is applied
// through the color scale so faded sprites keep their hue.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if opts != nil {
		for row := 0; row < 2; row++ {
			for col := 0; col < 3; col++ {
				op.GeoM.SetElement(row, col, opts.GeoM.Element(row, col))
			}
		}
		if opts.Alpha != 0 {
			op.ColorScale.ScaleAlpha(opts.Alpha)
		}
	}
	i.img.DrawImage(unwrap(src), op)
}
