// Package placeholders draws stand-in art for the island: animation strips
// for the player and watchers, a tileset, and a sample Tiled map.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// ColorPalette defines colors for the island theme
var ColorPalette = struct {
	// Tiles
	Water color.RGBA
	Foam  color.RGBA
	Sand  color.RGBA
	Grass color.RGBA
	Rock  color.RGBA

	// Actors
	Player    color.RGBA
	Sword     color.RGBA
	Bloodshot color.RGBA
	Ocular    color.RGBA
	Pupil     color.RGBA
}{
	Water: color.RGBA{40, 90, 160, 255},  // Deep blue
	Foam:  color.RGBA{90, 150, 210, 255}, // Wave highlight
	Sand:  color.RGBA{220, 200, 140, 255},
	Grass: color.RGBA{80, 150, 70, 255},
	Rock:  color.RGBA{120, 115, 110, 255},

	Player:    color.RGBA{0, 200, 120, 255}, // Bright teal
	Sword:     color.RGBA{230, 230, 240, 255},
	Bloodshot: color.RGBA{230, 60, 60, 255},  // Bright red
	Ocular:    color.RGBA{170, 90, 220, 255}, // Violet
	Pupil:     color.RGBA{20, 20, 30, 255},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "waves":
		// Short horizontal crests on alternating rows
		for row := 4; row < TileSize; row += 8 {
			shift := (row / 8 % 2) * 8
			for x := shift; x < TileSize; x += 16 {
				for dx := 0; dx < 6 && x+dx < TileSize; dx++ {
					img.Set(x+dx, row, patternColor)
				}
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "tufts":
		// Small vertical blades
		for _, p := range []image.Point{{5, 8}, {20, 5}, {12, 20}, {26, 24}} {
			for dy := 0; dy < 3; dy++ {
				img.Set(p.X, p.Y+dy, patternColor)
				img.Set(p.X+2, p.Y+dy+1, patternColor)
			}
		}
	case "boulder":
		// Round stone on the base color
		boulder := CreateCircle(TileSize, TileSize/2-3, patternColor, Darken(patternColor, 0.6))
		draw.Draw(img, img.Bounds(), boulder, image.Point{}, draw.Over)
	}

	return img
}

// CreateCircle creates a size x size sprite with a centered outlined circle
func CreateCircle(size, radius int, fillColor, outlineColor color.RGBA) *image.RGBA {
	return CreateCircleAt(size, size, size/2, size/2, radius, fillColor, outlineColor)
}

// CreateCircleAt draws an outlined circle centered on (cx, cy) in a w x h image
func CreateCircleAt(w, h, cx, cy, radius int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillCircle(img, cx, cy, radius, fillColor, outlineColor)
	return img
}

// FillCircle draws an outlined circle onto img
func FillCircle(img *image.RGBA, cx, cy, radius int, fillColor, outlineColor color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.SetRGBA(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.SetRGBA(x, y, outlineColor)
			}
		}
	}
}

// CreateAtlas lays tiles of size w x h out in a grid with the given column count
func CreateAtlas(tiles []*image.RGBA, columns, w, h int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*w, rows*h))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * w
		y := (i / columns) * h
		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Fade returns c with its alpha scaled by factor
func Fade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: uint8(float64(c.A) * factor),
	}
}
