package maploader

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/islewatch/internal/render/rendertest"
)

const islandMap = `{
  "width": 3, "height": 2, "tilewidth": 16, "tileheight": 16, "infinite": false,
  "tilesets": [
    {"firstgid": 1, "name": "ground", "image": "ground.png", "tilewidth": 16, "tileheight": 16, "columns": 2, "tilecount": 4},
    {"firstgid": 5, "name": "props", "image": "props.png", "tilewidth": 16, "tileheight": 16, "columns": 1, "tilecount": 2}
  ],
  "layers": [
    {"id": 1, "name": "ground", "type": "tilelayer", "visible": true, "width": 3, "height": 2, "data": [1, 2, 0, 3, 2147483652, 5]},
    {"id": 2, "name": "hidden", "type": "tilelayer", "visible": false, "width": 3, "height": 2, "data": [1, 1, 1, 1, 1, 1]},
    {"id": 3, "name": "deco", "type": "group", "layers": [
      {"id": 4, "name": "props", "type": "tilelayer", "width": 3, "height": 2, "data": [0, 0, 6, 0, 0, 0]}
    ]},
    {"id": 5, "name": "objects", "type": "objectgroup", "objects": [
      {"id": 1, "name": "player_spawn", "x": 24, "y": 16},
      {"id": 2, "name": "hazard", "x": 0, "y": 16, "width": 16, "height": 16},
      {"id": 3, "name": "bloodshot", "type": "enemy", "x": 40, "y": 8},
      {"id": 4, "name": "ocular", "class": "enemy", "x": 8, "y": 8}
    ]}
  ]
}`

func writeMap(t *testing.T, contents string) (string, *rendertest.Loader) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "island.tmj")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	loader := &rendertest.Loader{Sizes: map[string]image.Point{
		filepath.Join(dir, "ground.png"): {X: 32, Y: 32},
		filepath.Join(dir, "props.png"):  {X: 16, Y: 32},
	}}
	return path, loader
}

func TestLoadMapTiles(t *testing.T) {
	path, loader := writeMap(t, islandMap)

	m, err := LoadMap(path, loader)
	require.NoError(t, err)
	require.Len(t, m.Atlases, 2)

	w, h := m.TileSize()
	assert.Equal(t, 16, w)
	assert.Equal(t, 16, h)

	layers := m.TileLayers()
	require.Len(t, layers, 2, "hidden layer is skipped, group is flattened")
	assert.Equal(t, "ground", layers[0].Name)
	assert.Equal(t, "props", layers[1].Name)

	tiles := m.Tiles()
	var cells []string
	for _, tile := range tiles {
		cells = append(cells, fmt.Sprintf("%s:%d,%d:%s", tile.Layer, tile.GridX, tile.GridY, tile.Image.(*rendertest.Image).Name))
	}
	assert.Equal(t, []string{
		"ground:0,0:" + filepath.Join(filepath.Dir(path), "ground.png"),
		"ground:1,0:" + filepath.Join(filepath.Dir(path), "ground.png"),
		"ground:0,1:" + filepath.Join(filepath.Dir(path), "ground.png"),
		"ground:1,1:" + filepath.Join(filepath.Dir(path), "ground.png"),
		"ground:2,1:" + filepath.Join(filepath.Dir(path), "props.png"),
		"props:2,0:" + filepath.Join(filepath.Dir(path), "props.png"),
	}, cells)
}

func TestGIDAtStripsFlipFlags(t *testing.T) {
	data, err := ParseMap([]byte(islandMap))
	require.NoError(t, err)

	gid, err := data.Layers[0].GIDAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, gid)

	_, err = data.Layers[0].GIDAt(3, 0)
	assert.Error(t, err)
}

func TestObjects(t *testing.T) {
	path, loader := writeMap(t, islandMap)
	m, err := LoadMap(path, loader)
	require.NoError(t, err)

	objs := m.Objects()
	require.Len(t, objs, 4)
	assert.Equal(t, "enemy", objs[2].Kind())
	assert.Equal(t, "enemy", objs[3].Kind(), "class is used when type is empty")

	spawn, err := m.GetObjectByName("player_spawn")
	require.NoError(t, err)
	assert.Equal(t, 24.0, spawn.X)
	assert.Equal(t, 16.0, spawn.Y)

	_, err = m.GetObjectByName("treasure")
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestParseMapBase64Zlib(t *testing.T) {
	var raw bytes.Buffer
	for _, gid := range []uint32{1, 0, 2, 3} {
		require.NoError(t, binary.Write(&raw, binary.LittleEndian, gid))
	}
	var packed bytes.Buffer
	zw := zlib.NewWriter(&packed)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	doc := fmt.Sprintf(`{"width":2,"height":2,"tilewidth":8,"tileheight":8,"layers":[
	  {"name":"l","type":"tilelayer","width":2,"height":2,"encoding":"base64","compression":"zlib","data":%q}]}`,
		base64.StdEncoding.EncodeToString(packed.Bytes()))

	data, err := ParseMap([]byte(doc))
	require.NoError(t, err)

	gid, err := data.Layers[0].GIDAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, gid)
}

func TestParseMapRejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"infinite", `{"width":1,"height":1,"tilewidth":8,"tileheight":8,"infinite":true}`},
		{"zero size", `{"width":0,"height":1,"tilewidth":8,"tileheight":8}`},
		{"zero tile size", `{"width":1,"height":1,"tilewidth":0,"tileheight":8}`},
		{"short data", `{"width":1,"height":1,"tilewidth":8,"tileheight":8,"layers":[{"name":"l","type":"tilelayer","width":2,"height":1,"data":[1]}]}`},
		{"bad encoding", `{"width":1,"height":1,"tilewidth":8,"tileheight":8,"layers":[{"name":"l","type":"tilelayer","width":1,"height":1,"encoding":"xml","data":"x"}]}`},
		{"bad compression", `{"width":1,"height":1,"tilewidth":8,"tileheight":8,"layers":[{"name":"l","type":"tilelayer","width":1,"height":1,"encoding":"base64","compression":"zstd","data":"AQAAAA=="}]}`},
		{"not json", `{"width":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMapMissingTilesetImage(t *testing.T) {
	path, _ := writeMap(t, islandMap)
	_, err := LoadMap(path, &rendertest.Loader{})
	assert.Error(t, err)
}
