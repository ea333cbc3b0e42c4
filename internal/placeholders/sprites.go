package placeholders

import (
	"image"
	"image/color"
)

// PlayerFrames is the frame count of each player animation state
var PlayerFrames = map[string]int{
	"idle":   4,
	"run":    6,
	"attack": 4,
	"death":  5,
}

// PlayerDirections are the facings drawn for every player state
var PlayerDirections = []string{"up", "down", "left", "right"}

// WatcherFrames is the frame count of each watcher strip
const WatcherFrames = 4

// directionVector maps a facing name to a unit grid step
func directionVector(dir string) image.Point {
	switch dir {
	case "up":
		return image.Point{0, -1}
	case "down":
		return image.Point{0, 1}
	case "left":
		return image.Point{-1, 0}
	default:
		return image.Point{1, 0}
	}
}

// PlayerStrip draws a horizontal strip of w x h frames for one state and facing
func PlayerStrip(state, dir string, w, h int) *image.RGBA {
	count := PlayerFrames[state]
	frames := make([]*image.RGBA, count)
	for i := range frames {
		frames[i] = playerFrame(state, dir, i, count, w, h)
	}
	return CreateAtlas(frames, count, w, h)
}

func playerFrame(state, dir string, i, count, w, h int) *image.RGBA {
	body := ColorPalette.Player
	radius := w / 3
	cx, cy := w/2, h/2+2

	switch state {
	case "idle":
		cy += i % 2
	case "run":
		cy += []int{0, -2, -3, 0, -2, -3}[i%6]
	case "death":
		radius = max(2, radius-i*radius/count)
		body = Fade(body, 1-float64(i)/float64(count))
	}

	img := CreateCircleAt(w, h, cx, cy, radius, body, Darken(body, 0.5))

	// Eye marks the facing
	d := directionVector(dir)
	eye := image.Point{cx + d.X*radius/2, cy + d.Y*radius/2}
	if state != "death" {
		FillCircle(img, eye.X, eye.Y, 2, ColorPalette.Pupil, ColorPalette.Pupil)
	}

	if state == "attack" {
		// Blade grows over the swing
		length := radius/2 + (i+1)*(w/2-radius/2)/count
		for s := radius; s < radius+length; s++ {
			x, y := cx+d.X*s, cy+d.Y*s
			if d.X == 0 {
				x += 1
			} else {
				y += 1
			}
			setIn(img, x, y, ColorPalette.Sword)
			setIn(img, x+d.Y, y+d.X, ColorPalette.Sword)
		}
	}

	return img
}

// WatcherStrip draws a right-facing strip for a watcher variant
func WatcherStrip(variant string, w, h int) *image.RGBA {
	iris := ColorPalette.Bloodshot
	if variant == "ocular" {
		iris = ColorPalette.Ocular
	}

	frames := make([]*image.RGBA, WatcherFrames)
	for i := range frames {
		hover := []int{0, -1, -2, -1}[i]
		cx, cy := w/2, h/2+hover
		img := CreateCircleAt(w, h, cx, cy, w/2-3, color.RGBA{240, 235, 230, 255}, Darken(iris, 0.6))
		FillCircle(img, cx+w/6, cy, w/6, iris, Darken(iris, 0.6))
		FillCircle(img, cx+w/6+1, cy, max(1, w/14), ColorPalette.Pupil, ColorPalette.Pupil)
		frames[i] = img
	}
	return CreateAtlas(frames, WatcherFrames, w, h)
}

func setIn(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
