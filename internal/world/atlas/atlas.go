package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/islewatch/internal/render"
)

// TilesetConfig defines a tileset as written by the Tiled editor, either
// embedded in a map or in an external .tsj file referenced by Source
type TilesetConfig struct {
	FirstGID    int    `json:"firstgid"`    // First global tile id of this tileset in the map
	Source      string `json:"source"`      // External tileset file, relative to the map
	Name        string `json:"name"`        // Tileset name
	Image       string `json:"image"`       // Path to the tileset image, relative to the tileset file
	ImageWidth  int    `json:"imagewidth"`  // Image width in pixels
	ImageHeight int    `json:"imageheight"` // Image height in pixels
	TileWidth   int    `json:"tilewidth"`   // Width of each tile in pixels
	TileHeight  int    `json:"tileheight"`  // Height of each tile in pixels
	Columns     int    `json:"columns"`     // Tiles per row in the image
	TileCount   int    `json:"tilecount"`   // Number of tiles in the image
	Margin      int    `json:"margin"`      // Border around the whole image
	Spacing     int    `json:"spacing"`     // Gap between tiles
}

// Atlas represents a loaded tileset image
type Atlas struct {
	Config *TilesetConfig
	Image  render.Image
}

// LoadAtlas resolves an external tileset if needed, then loads its image.
// baseDir is the directory of the map that references the tileset.
func LoadAtlas(config TilesetConfig, baseDir string, loader render.ResourceLoader) (*Atlas, error) {
	imageDir := baseDir
	if config.Source != "" {
		sourcePath := filepath.Join(baseDir, config.Source)
		external, err := readTilesetFile(sourcePath)
		if err != nil {
			return nil, err
		}
		external.FirstGID = config.FirstGID
		external.Source = config.Source
		config = *external
		imageDir = filepath.Dir(sourcePath)
	}

	if err := validateTileset(&config); err != nil {
		return nil, fmt.Errorf("invalid tileset %q: %w", config.Name, err)
	}

	imagePath := filepath.Join(imageDir, config.Image)
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset image %s: %w", imagePath, err)
	}

	return &Atlas{
		Config: &config,
		Image:  img,
	}, nil
}

// readTilesetFile reads an external Tiled tileset
func readTilesetFile(path string) (*TilesetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset %s: %w", path, err)
	}

	var config TilesetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tileset %s: %w", path, err)
	}
	return &config, nil
}

func validateTileset(config *TilesetConfig) error {
	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.Image == "" {
		return fmt.Errorf("image is required in tileset")
	}
	if config.FirstGID <= 0 {
		return fmt.Errorf("firstgid must be positive, got %d", config.FirstGID)
	}
	if config.Columns <= 0 {
		// Older exports omit columns; derive it from the image width
		if config.ImageWidth <= 0 {
			return fmt.Errorf("columns or imagewidth is required")
		}
		config.Columns = (config.ImageWidth - 2*config.Margin + config.Spacing) / (config.TileWidth + config.Spacing)
	}
	if config.TileCount <= 0 && config.ImageHeight > 0 {
		rows := (config.ImageHeight - 2*config.Margin + config.Spacing) / (config.TileHeight + config.Spacing)
		config.TileCount = rows * config.Columns
	}
	return nil
}

// Contains reports whether the global tile id belongs to this tileset
func (a *Atlas) Contains(gid int) bool {
	if gid < a.Config.FirstGID {
		return false
	}
	if a.Config.TileCount <= 0 {
		return true
	}
	return gid < a.Config.FirstGID+a.Config.TileCount
}

// TileRect returns the pixel rectangle of a tile by its local id
func (a *Atlas) TileRect(localID int) image.Rectangle {
	c := a.Config
	col := localID % c.Columns
	row := localID / c.Columns
	x := c.Margin + col*(c.TileWidth+c.Spacing)
	y := c.Margin + row*(c.TileHeight+c.Spacing)
	return image.Rect(x, y, x+c.TileWidth, y+c.TileHeight)
}

// GetTileSubImage returns the sub-image for a tile by its local id
func (a *Atlas) GetTileSubImage(localID int) (render.Image, error) {
	if localID < 0 || (a.Config.TileCount > 0 && localID >= a.Config.TileCount) {
		return nil, fmt.Errorf("tile %d out of range in tileset %q", localID, a.Config.Name)
	}
	return a.Image.SubImage(a.TileRect(localID)), nil
}

// GetTileSubImageByGID returns the sub-image for a global tile id
func (a *Atlas) GetTileSubImageByGID(gid int) (render.Image, error) {
	if !a.Contains(gid) {
		return nil, fmt.Errorf("gid %d not in tileset %q", gid, a.Config.Name)
	}
	return a.GetTileSubImage(gid - a.Config.FirstGID)
}
