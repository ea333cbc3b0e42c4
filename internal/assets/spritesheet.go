// Package assets loads spritesheets once at startup and hands the sliced
// frames to entity constructors through an explicit Cache.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	xdraw "golang.org/x/image/draw"

	"chosenoffset.com/islewatch/internal/core/geom"
	"chosenoffset.com/islewatch/internal/render"
)

// ErrMissingSequence is returned when a state+direction key has no frames
var ErrMissingSequence = errors.New("missing animation sequence")

// Frame is one equally-sized image of an animation with its collision mask
type Frame struct {
	Image render.Image
	Mask  *geom.Mask
	W, H  int
}

// Sheet maps a sequence key such as "run_left" to its ordered frames
type Sheet map[string][]Frame

// Keys returns the sequence keys in sorted order
func (s Sheet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sequence returns the frames stored under key
func (s Sheet) Sequence(key string) ([]Frame, error) {
	frames, ok := s[key]
	if !ok || len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingSequence, key)
	}
	return frames, nil
}

// LoadSpritesheet cuts every PNG strip in dir into width x height frames.
//
// The key of each sequence is the file name without extension. When flipped
// is set the strip is treated as facing right and stored as "<name>_right",
// with a mirrored copy stored as "<name>_left". Frames are scaled by scale.
func LoadSpritesheet(r render.Renderer, fsys fs.FS, dir string, width, height int, scale float64, flipped bool) (Sheet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size: %dx%d", width, height)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale factor: %v", scale)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read spritesheet dir %s: %w", dir, err)
	}

	sheet := make(Sheet)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(path.Ext(name), ".png") {
			continue
		}

		strip, err := decodePNG(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}

		frames := SliceStrip(strip, width, height, scale)
		if len(frames) == 0 {
			return nil, fmt.Errorf("spritesheet %s is narrower than one %dpx frame", path.Join(dir, name), width)
		}

		key := strings.TrimSuffix(name, path.Ext(name))
		if flipped {
			sheet[key+"_right"] = upload(r, frames)
			sheet[key+"_left"] = upload(r, FlipAll(frames))
		} else {
			sheet[key] = upload(r, frames)
		}
	}

	return sheet, nil
}

func decodePNG(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open spritesheet %s: %w", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode spritesheet %s: %w", name, err)
	}
	return img, nil
}

// SliceStrip cuts a horizontal strip into frames left to right, dropping any
// partial frame at the end, and scales each by scale.
func SliceStrip(strip image.Image, width, height int, scale float64) []*image.RGBA {
	b := strip.Bounds()
	count := b.Dx() / width

	frames := make([]*image.RGBA, 0, count)
	for i := 0; i < count; i++ {
		frame := image.NewRGBA(image.Rect(0, 0, width, height))
		src := image.Rect(b.Min.X+i*width, b.Min.Y, b.Min.X+(i+1)*width, b.Min.Y+height)
		xdraw.Copy(frame, image.Point{}, strip, src, xdraw.Src, nil)
		frames = append(frames, ScaleFrame(frame, scale))
	}
	return frames
}

// ScaleFrame resizes a frame with nearest-neighbour sampling to keep pixel art crisp
func ScaleFrame(frame *image.RGBA, scale float64) *image.RGBA {
	if scale == 1 {
		return frame
	}
	b := frame.Bounds()
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), frame, b, xdraw.Src, nil)
	return dst
}

// Flip returns a horizontally mirrored copy of img
func Flip(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetRGBA(b.Dx()-1-x, y, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// FlipAll mirrors every frame in the sequence
func FlipAll(frames []*image.RGBA) []*image.RGBA {
	out := make([]*image.RGBA, len(frames))
	for i, f := range frames {
		out[i] = Flip(f)
	}
	return out
}

// upload builds masks from the decoded pixels and hands them to the renderer
func upload(r render.Renderer, frames []*image.RGBA) []Frame {
	out := make([]Frame, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		out[i] = Frame{
			Image: r.NewImageFromImage(f),
			Mask:  geom.MaskFromImage(f),
			W:     b.Dx(),
			H:     b.Dy(),
		}
	}
	return out
}

// NewFrame wraps an already decoded image as a single frame
func NewFrame(r render.Renderer, img *image.RGBA) Frame {
	return upload(r, []*image.RGBA{img})[0]
}
