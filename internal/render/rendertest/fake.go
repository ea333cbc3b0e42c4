// Package rendertest provides in-memory implementations of the render
// interfaces for tests that must not open a window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/islewatch/internal/render"
)

// DrawCall records a single Image.DrawImage invocation.
type DrawCall struct {
	Src   *Image
	GeoM  render.GeoM
	Alpha float32
}

// Position returns where the source origin lands on the destination.
func (c DrawCall) Position() (float64, float64) {
	return c.GeoM.Apply(0, 0)
}

// Image is a fake render.Image that remembers what was drawn onto it.
type Image struct {
	Name   string
	W, H   int
	Filled color.Color
	Calls  []DrawCall
	// Clears counts Clear and Fill calls.
	Clears   int
	Disposed bool
	// Source is the decoded image this fake was created from, if any.
	Source image.Image
}

// NewImage returns a named fake image.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Name: i.Name, W: r.Dx(), H: r.Dy()}
}

func (i *Image) Fill(clr color.Color) {
	i.Filled = clr
	i.Calls = nil
	i.Clears++
}

func (i *Image) Clear() {
	i.Filled = nil
	i.Calls = nil
	i.Clears++
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src.(*Image)}
	if opts != nil {
		call.GeoM = opts.GeoM
		call.Alpha = opts.Alpha
	}
	i.Calls = append(i.Calls, call)
}

func (i *Image) Dispose() { i.Disposed = true }

// Shape records a vector or text primitive drawn through Renderer.
type Shape struct {
	Kind   string
	Dst    *Image
	Points []float32
	Text   string
	Color  color.Color
}

// Renderer is a fake render.Renderer.
type Renderer struct {
	Images []*Image
	Shapes []Shape
}

func (r *Renderer) NewImage(w, h int) render.Image {
	img := NewImage("blank", w, h)
	r.Images = append(r.Images, img)
	return img
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	img := NewImage("decoded", b.Dx(), b.Dy())
	img.Source = src
	r.Images = append(r.Images, img)
	return img
}

func (r *Renderer) FillEllipse(dst render.Image, cx, cy, rx, ry float32, clr color.Color) {
	r.Shapes = append(r.Shapes, Shape{Kind: "fill_ellipse", Dst: dst.(*Image), Points: []float32{cx, cy, rx, ry}, Color: clr})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	r.Shapes = append(r.Shapes, Shape{Kind: "stroke_circle", Dst: dst.(*Image), Points: []float32{x, y, radius}, Color: clr})
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.Shapes = append(r.Shapes, Shape{Kind: "stroke_line", Dst: dst.(*Image), Points: []float32{x0, y0, x1, y1}, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Shapes = append(r.Shapes, Shape{Kind: "text", Dst: dst.(*Image), Points: []float32{float32(x), float32(y)}, Text: text, Color: clr})
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// ShapesOf returns the recorded shapes of the given kind.
func (r *Renderer) ShapesOf(kind string) []Shape {
	var out []Shape
	for _, s := range r.Shapes {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Input is a scripted render.InputManager. Tests set Held and Clicked
// before each Update.
type Input struct {
	Held        map[render.Key]bool
	JustPressed map[render.Key]bool
	Clicked     map[render.MouseButton]bool
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Held:        map[render.Key]bool{},
		JustPressed: map[render.Key]bool{},
		Clicked:     map[render.MouseButton]bool{},
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

func (in *Input) IsMouseButtonJustPressed(b render.MouseButton) bool { return in.Clicked[b] }

// Release clears every key and button.
func (in *Input) Release() {
	in.Held = map[render.Key]bool{}
	in.JustPressed = map[render.Key]bool{}
	in.Clicked = map[render.MouseButton]bool{}
}

// Loader is a fake render.ResourceLoader serving fixed-size images.
type Loader struct {
	Sizes  map[string]image.Point
	Loaded []string
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.Loaded = append(l.Loaded, path)
	size, ok := l.Sizes[path]
	if !ok {
		return nil, &missingError{path: path}
	}
	return NewImage(path, size.X, size.Y), nil
}

type missingError struct{ path string }

func (e *missingError) Error() string { return "rendertest: no image at " + e.path }
