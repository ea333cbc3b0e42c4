package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/islewatch/internal/render/rendertest"
	"chosenoffset.com/islewatch/internal/simulation"
)

var opaque = color.RGBA{R: 200, G: 40, B: 40, A: 255}

// stripPNG encodes a strip of n frames. Frame i has a single opaque column at x=i.
func stripPNG(t *testing.T, n, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, n*w, h))
	for i := 0; i < n; i++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(i*w+i, y, opaque)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadSpritesheetSlicesFrames(t *testing.T) {
	fsys := fstest.MapFS{
		"player/run/run_down.png": {Data: stripPNG(t, 3, 4, 4)},
		"player/run/notes.txt":    {Data: []byte("ignored")},
	}
	r := &rendertest.Renderer{}

	sheet, err := LoadSpritesheet(r, fsys, "player/run", 4, 4, 1, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"run_down"}, sheet.Keys())
	frames, err := sheet.Sequence("run_down")
	require.NoError(t, err)
	require.Len(t, frames, 3)

	for i, f := range frames {
		assert.Equal(t, 4, f.W)
		assert.Equal(t, 4, f.H)
		assert.Equal(t, 4, f.Mask.Count(), "frame %d", i)
		assert.True(t, f.Mask.Get(i, 0), "frame %d should be solid at column %d", i, i)
	}
	assert.Len(t, r.Images, 3)
}

func TestLoadSpritesheetDropsPartialFrame(t *testing.T) {
	// 10px wide strip with 4px frames holds two whole frames
	img := image.NewRGBA(image.Rect(0, 0, 10, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	sheet, err := LoadSpritesheet(&rendertest.Renderer{}, fstest.MapFS{"s/idle.png": {Data: buf.Bytes()}}, "s", 4, 4, 1, false)
	require.NoError(t, err)
	assert.Len(t, sheet["idle"], 2)
}

func TestLoadSpritesheetFlipped(t *testing.T) {
	fsys := fstest.MapFS{
		"enemies/bloodshot.png": {Data: stripPNG(t, 2, 4, 4)},
	}

	sheet, err := LoadSpritesheet(&rendertest.Renderer{}, fsys, "enemies", 4, 4, 1, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"bloodshot_left", "bloodshot_right"}, sheet.Keys())
	right := sheet["bloodshot_right"]
	left := sheet["bloodshot_left"]
	require.Len(t, left, 2)

	assert.True(t, right[1].Mask.Get(1, 2))
	assert.True(t, left[1].Mask.Get(2, 2), "mirrored column should move to w-1-x")
	assert.False(t, left[1].Mask.Get(1, 2))
}

func TestLoadSpritesheetScales(t *testing.T) {
	fsys := fstest.MapFS{"e/ocular.png": {Data: stripPNG(t, 1, 4, 4)}}

	sheet, err := LoadSpritesheet(&rendertest.Renderer{}, fsys, "e", 4, 4, 2, true)
	require.NoError(t, err)

	f := sheet["ocular_right"][0]
	assert.Equal(t, 8, f.W)
	assert.Equal(t, 8, f.H)
	// One opaque column doubles to two
	assert.Equal(t, 16, f.Mask.Count())
}

func TestLoadSpritesheetErrors(t *testing.T) {
	r := &rendertest.Renderer{}

	_, err := LoadSpritesheet(r, fstest.MapFS{}, "missing", 4, 4, 1, false)
	assert.Error(t, err)

	_, err = LoadSpritesheet(r, fstest.MapFS{"d/x.png": {Data: []byte("not a png")}}, "d", 4, 4, 1, false)
	assert.Error(t, err)

	_, err = LoadSpritesheet(r, fstest.MapFS{"d/x.png": {Data: stripPNG(t, 1, 2, 2)}}, "d", 4, 4, 1, false)
	assert.Error(t, err, "strip narrower than a frame")

	_, err = LoadSpritesheet(r, fstest.MapFS{}, "d", 0, 4, 1, false)
	assert.Error(t, err)

	_, err = LoadSpritesheet(r, fstest.MapFS{}, "d", 4, 4, 0, false)
	assert.Error(t, err)
}

func TestSheetMissingSequence(t *testing.T) {
	_, err := Sheet{}.Sequence("idle_up")
	assert.True(t, errors.Is(err, ErrMissingSequence))
}

func TestNewCache(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Player.SpriteWidth, cfg.Player.SpriteHeight = 4, 4
	cfg.Enemy.SpriteWidth, cfg.Enemy.SpriteHeight = 4, 4
	cfg.Enemy.ScaleFactor = 1

	fsys := fstest.MapFS{}
	for _, state := range PlayerStates {
		for _, dir := range []string{"up", "down", "left", "right"} {
			fsys["player/"+state+"/"+state+"_"+dir+".png"] = &fstest.MapFile{Data: stripPNG(t, 2, 4, 4)}
		}
	}
	fsys["enemies/watchers/bloodshot.png"] = &fstest.MapFile{Data: stripPNG(t, 2, 4, 4)}

	cache, err := NewCache(&rendertest.Renderer{}, fsys, cfg)
	require.NoError(t, err)

	frames, err := cache.PlayerSequence("attack", "left")
	require.NoError(t, err)
	assert.Len(t, frames, 2)

	_, err = cache.EnemySequence("bloodshot", "left")
	assert.NoError(t, err)

	_, err = cache.EnemySequence("ocular", "left")
	assert.ErrorIs(t, err, ErrMissingSequence)

	_, err = cache.PlayerSequence("swim", "up")
	assert.ErrorIs(t, err, ErrMissingSequence)
}

func TestNewCacheMissingPlayerState(t *testing.T) {
	fsys := fstest.MapFS{"player/idle/idle_down.png": {Data: stripPNG(t, 1, 40, 40)}}
	_, err := NewCache(&rendertest.Renderer{}, fsys, simulation.DefaultConfig())
	assert.Error(t, err)
}

func TestCacheMemoizesShapes(t *testing.T) {
	r := &rendertest.Renderer{}
	cache := NewCacheWith(r, nil, nil)
	shadow := color.NRGBA{A: 80}

	a := cache.Ellipse(20, 10, shadow)
	b := cache.Ellipse(20, 10, shadow)
	c := cache.Ellipse(20, 12, shadow)
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)

	s1 := cache.Solid(8, 8, color.NRGBA{R: 255, A: 120})
	s2 := cache.Solid(8, 8, color.NRGBA{R: 255, A: 120})
	assert.Same(t, s1, s2)
	assert.Equal(t, color.NRGBA{R: 255, A: 120}, s1.(*rendertest.Image).Filled)

	assert.Len(t, r.Images, 3)
}

func TestEllipseFillsThroughRenderer(t *testing.T) {
	r := &rendertest.Renderer{}
	cache := NewCacheWith(r, nil, nil)
	shadow := color.NRGBA{A: 80}

	img := cache.Ellipse(10, 6, shadow)
	w, h := img.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h)

	fills := r.ShapesOf("fill_ellipse")
	require.Len(t, fills, 1)
	assert.Same(t, img, fills[0].Dst)
	assert.Equal(t, []float32{5, 3, 5, 3}, fills[0].Points)
	assert.Equal(t, shadow, fills[0].Color)

	cache.Ellipse(10, 6, shadow)
	assert.Len(t, r.ShapesOf("fill_ellipse"), 1, "cached shapes are not repainted")
}
