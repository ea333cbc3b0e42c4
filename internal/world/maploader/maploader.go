// Package maploader reads maps exported by the Tiled editor in its JSON
// format (.tmj) and exposes them as tile placements plus a list of objects.
package maploader

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"chosenoffset.com/islewatch/internal/render"
	"chosenoffset.com/islewatch/internal/world/atlas"
)

// ErrObjectNotFound is returned when a named map object does not exist
var ErrObjectNotFound = errors.New("map object not found")

// Tiled stores flip flags in the top bits of every gid
const (
	flippedHorizontally = 0x80000000
	flippedVertically   = 0x40000000
	flippedDiagonally   = 0x20000000
	rotatedHexagonal    = 0x10000000
	gidMask             = ^uint32(flippedHorizontally | flippedVertically | flippedDiagonally | rotatedHexagonal)
)

// Layer types used by Tiled
const (
	LayerTiles   = "tilelayer"
	LayerObjects = "objectgroup"
	LayerGroup   = "group"
)

// Object is a rectangle placed in an object layer
type Object struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`  // Tiled <= 1.8
	Class  string  `json:"class"` // Tiled >= 1.9 renamed type to class
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Kind returns the object's type, whichever Tiled version wrote it
func (o Object) Kind() string {
	if o.Type != "" {
		return o.Type
	}
	return o.Class
}

// Layer is a tile layer, object group, or group of layers
type Layer struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Visible     *bool           `json:"visible"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Encoding    string          `json:"encoding"`    // "csv" (array) or "base64"
	Compression string          `json:"compression"` // "", "zlib" or "gzip"
	Data        json.RawMessage `json:"data"`
	Objects     []Object        `json:"objects"`
	Layers      []Layer         `json:"layers"`

	gids []uint32
}

// IsVisible reports whether the layer should be drawn; absent means visible
func (l *Layer) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

// MapData represents the map file contents
type MapData struct {
	Width      int                   `json:"width"`      // Map width in tiles
	Height     int                   `json:"height"`     // Map height in tiles
	TileWidth  int                   `json:"tilewidth"`  // Grid cell width in pixels
	TileHeight int                   `json:"tileheight"` // Grid cell height in pixels
	Infinite   bool                  `json:"infinite"`
	Layers     []Layer               `json:"layers"`
	Tilesets   []atlas.TilesetConfig `json:"tilesets"`
}

// Map represents a loaded map with its tilesets
type Map struct {
	Path    string
	Data    *MapData
	Atlases []*atlas.Atlas
}

// TilePlacement is one non-empty grid cell of a tile layer
type TilePlacement struct {
	Layer        string
	GridX, GridY int
	Image        render.Image
}

// LoadMap loads a map from a Tiled JSON file and its tilesets
func LoadMap(mapPath string, loader render.ResourceLoader) (*Map, error) {
	// Read the map JSON file
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	mapData, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	// Load the tilesets
	baseDir := filepath.Dir(mapPath)
	atlases := make([]*atlas.Atlas, 0, len(mapData.Tilesets))
	for _, ts := range mapData.Tilesets {
		a, err := atlas.LoadAtlas(ts, baseDir, loader)
		if err != nil {
			return nil, fmt.Errorf("failed to load tileset for %s: %w", mapPath, err)
		}
		atlases = append(atlases, a)
	}

	return &Map{
		Path:    mapPath,
		Data:    mapData,
		Atlases: atlases,
	}, nil
}

// ParseMap decodes and validates map JSON without touching tileset images
func ParseMap(data []byte) (*MapData, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, err
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	return &mapData, nil
}

// validateMapData checks if the map data is valid and decodes layer data
func validateMapData(data *MapData) error {
	if data.Infinite {
		return fmt.Errorf("infinite maps are not supported")
	}

	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileWidth <= 0 || data.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %dx%d", data.TileWidth, data.TileHeight)
	}

	return decodeLayers(data.Layers)
}

func decodeLayers(layers []Layer) error {
	for i := range layers {
		layer := &layers[i]
		switch layer.Type {
		case LayerTiles:
			gids, err := decodeTileData(layer)
			if err != nil {
				return fmt.Errorf("layer %q: %w", layer.Name, err)
			}
			if len(gids) != layer.Width*layer.Height {
				return fmt.Errorf("layer %q: expected %d tiles, got %d", layer.Name, layer.Width*layer.Height, len(gids))
			}
			layer.gids = gids
		case LayerGroup:
			if err := decodeLayers(layer.Layers); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeTileData turns the CSV array or base64 payload into gids
func decodeTileData(layer *Layer) ([]uint32, error) {
	switch layer.Encoding {
	case "", "csv":
		var gids []uint32
		if err := json.Unmarshal(layer.Data, &gids); err != nil {
			return nil, fmt.Errorf("failed to decode tile array: %w", err)
		}
		return gids, nil
	case "base64":
		var encoded string
		if err := json.Unmarshal(layer.Data, &encoded); err != nil {
			return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
		}
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
		}
		raw, err = decompress(raw, layer.Compression)
		if err != nil {
			return nil, err
		}
		if len(raw)%4 != 0 {
			return nil, fmt.Errorf("tile payload length %d is not a multiple of 4", len(raw))
		}
		gids := make([]uint32, len(raw)/4)
		for i := range gids {
			gids[i] = binary.LittleEndian.Uint32(raw[i*4:])
		}
		return gids, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", layer.Encoding)
	}
}

func decompress(raw []byte, compression string) ([]byte, error) {
	var r io.ReadCloser
	var err error
	switch compression {
	case "":
		return raw, nil
	case "zlib":
		r, err = zlib.NewReader(bytes.NewReader(raw))
	case "gzip":
		r, err = gzip.NewReader(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s payload: %w", compression, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate %s payload: %w", compression, err)
	}
	return out, nil
}

// TileSize returns the grid cell size in pixels
func (m *Map) TileSize() (int, int) {
	return m.Data.TileWidth, m.Data.TileHeight
}

// GIDAt returns the global tile id (flip flags removed) of a tile layer cell
func (l *Layer) GIDAt(x, y int) (int, error) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return int(l.gids[y*l.Width+x] & gidMask), nil
}

// TileLayers returns every visible tile layer in draw order, flattening groups
func (m *Map) TileLayers() []*Layer {
	var out []*Layer
	var walk func(layers []Layer)
	walk = func(layers []Layer) {
		for i := range layers {
			layer := &layers[i]
			if !layer.IsVisible() {
				continue
			}
			switch layer.Type {
			case LayerTiles:
				out = append(out, layer)
			case LayerGroup:
				walk(layer.Layers)
			}
		}
	}
	walk(m.Data.Layers)
	return out
}

// Tiles returns the non-empty cells of every visible tile layer, layer by
// layer in row-major order. Cells whose gid matches no tileset are skipped.
func (m *Map) Tiles() []TilePlacement {
	var out []TilePlacement
	for _, layer := range m.TileLayers() {
		for y := 0; y < layer.Height; y++ {
			for x := 0; x < layer.Width; x++ {
				gid, _ := layer.GIDAt(x, y)
				if gid == 0 {
					continue
				}
				img, err := m.tileImage(gid)
				if err != nil {
					continue
				}
				out = append(out, TilePlacement{Layer: layer.Name, GridX: x, GridY: y, Image: img})
			}
		}
	}
	return out
}

// tileImage finds the tileset owning gid, searching from the highest firstgid
func (m *Map) tileImage(gid int) (render.Image, error) {
	var owner *atlas.Atlas
	for _, a := range m.Atlases {
		if a.Config.FirstGID <= gid && (owner == nil || a.Config.FirstGID > owner.Config.FirstGID) {
			owner = a
		}
	}
	if owner == nil {
		return nil, fmt.Errorf("no tileset for gid %d", gid)
	}
	return owner.GetTileSubImageByGID(gid)
}

// Objects returns the objects of every object layer in file order
func (m *Map) Objects() []Object {
	var out []Object
	var walk func(layers []Layer)
	walk = func(layers []Layer) {
		for i := range layers {
			switch layers[i].Type {
			case LayerObjects:
				out = append(out, layers[i].Objects...)
			case LayerGroup:
				walk(layers[i].Layers)
			}
		}
	}
	walk(m.Data.Layers)
	return out
}

// GetObjectByName returns the first object with the given name
func (m *Map) GetObjectByName(name string) (Object, error) {
	for _, obj := range m.Objects() {
		if obj.Name == name {
			return obj, nil
		}
	}
	return Object{}, fmt.Errorf("%w: %q", ErrObjectNotFound, name)
}
