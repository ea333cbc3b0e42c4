// Package simulation provides configuration for the game simulation rules.
// Every tuning constant of the tick loop lives here so a game can be
// rebalanced from a YAML file without recompiling.
package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all simulation rules for a game
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combat    CombatConfig    `yaml:"combat"`
	Animation AnimationConfig `yaml:"animation"`
	Shadow    ShadowConfig    `yaml:"shadow"`
	Map       MapConfig       `yaml:"map"`
	Assets    AssetsConfig    `yaml:"assets"`
	Debug     DebugConfig     `yaml:"debug"`
}

// WindowConfig defines the visible output surface and tick rate
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Ticks per second, one tick per rendered frame
}

// CameraConfig defines the internal buffer and zoom limits
type CameraConfig struct {
	InternalWidth  int     `yaml:"internal_width"`
	InternalHeight int     `yaml:"internal_height"`
	DefaultZoom    float64 `yaml:"default_zoom"`
	MinZoom        float64 `yaml:"min_zoom"`
	MaxZoom        float64 `yaml:"max_zoom"`
	ZoomStep       float64 `yaml:"zoom_step"` // Added or removed per tick while a zoom key is held
	Background     Color   `yaml:"background"`
}

// PlayerConfig defines the player character
type PlayerConfig struct {
	MaxHealth             int     `yaml:"max_health"`
	Velocity              float64 `yaml:"velocity"` // Pixels per tick
	SpriteWidth           int     `yaml:"sprite_width"`
	SpriteHeight          int     `yaml:"sprite_height"`
	InvulnerabilityFrames int     `yaml:"invulnerability_frames"`
	FlashPeriod           int     `yaml:"flash_period"` // Ticks per opacity toggle while invulnerable
	ZIndex                int     `yaml:"z_index"`
	ShadowZIndex          int     `yaml:"shadow_z_index"`
	ShadowWidthDivisor    int     `yaml:"shadow_width_divisor"`
	ShadowHeightDivisor   int     `yaml:"shadow_height_divisor"`
}

// EnemyConfig defines the pursuing enemies
type EnemyConfig struct {
	MaxHealth           int      `yaml:"max_health"`
	Velocity            float64  `yaml:"velocity"`
	AlertRadius         float64  `yaml:"alert_radius"`
	HitFlashFrames      int      `yaml:"hit_flash_frames"`
	FlashPeriod         int      `yaml:"flash_period"`
	SpriteWidth         int      `yaml:"sprite_width"`
	SpriteHeight        int      `yaml:"sprite_height"`
	ScaleFactor         float64  `yaml:"scale_factor"`
	Variants            []string `yaml:"variants"`
	ZIndex              int      `yaml:"z_index"`
	ShadowZIndex        int      `yaml:"shadow_z_index"`
	ShadowWidthDivisor  int      `yaml:"shadow_width_divisor"`
	ShadowHeightDivisor int      `yaml:"shadow_height_divisor"`
}

// CombatConfig defines damage and knockback
type CombatConfig struct {
	SwordDamage     int     `yaml:"sword_damage"`
	ContactDamage   int     `yaml:"contact_damage"`
	PlayerKnockback float64 `yaml:"player_knockback"` // Distance the player is pushed on contact
	EnemyKnockback  float64 `yaml:"enemy_knockback"`  // Distance an enemy is pushed by a sword hit
}

// AnimationConfig defines frame advance speeds (frames per tick)
type AnimationConfig struct {
	NormalSpeed float64 `yaml:"normal_speed"`
	SwingSpeed  float64 `yaml:"swing_speed"`
}

// ShadowConfig defines the ellipse drawn under entities
type ShadowConfig struct {
	Color Color `yaml:"color"`
}

// MapConfig defines map locations and the names used by map objects
type MapConfig struct {
	Dir          string `yaml:"dir"`
	Default      string `yaml:"default"`
	PlayerSpawn  string `yaml:"player_spawn"`
	HazardName   string `yaml:"hazard_name"`
	ObstacleName string `yaml:"obstacle_name"`
	EnemyType    string `yaml:"enemy_type"`
	TileZIndex   int    `yaml:"tile_z_index"`
	TriggerZ     int    `yaml:"trigger_z_index"`
}

// AssetsConfig defines where spritesheets live, relative to the asset root
type AssetsConfig struct {
	Root       string `yaml:"root"`
	PlayerDir  string `yaml:"player_dir"`
	EnemiesDir string `yaml:"enemies_dir"`
}

// DebugConfig controls the debug overlays
type DebugConfig struct {
	Enabled       bool  `yaml:"enabled"`
	HazardColor   Color `yaml:"hazard_color"`
	ObstacleColor Color `yaml:"obstacle_color"`
	RadiusColor   Color `yaml:"radius_color"`
	LineColor     Color `yaml:"line_color"`
}

// DefaultConfig returns the tuning the game ships with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Islewatch",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Camera: CameraConfig{
			InternalWidth:  640,
			InternalHeight: 360,
			DefaultZoom:    2.0,
			MinZoom:        2.0,
			MaxZoom:        4.0,
			ZoomStep:       0.02,
			Background:     Color{NRGBA: color.NRGBA{R: 24, G: 20, B: 37, A: 255}},
		},
		Player: PlayerConfig{
			MaxHealth:             100,
			Velocity:              2,
			SpriteWidth:           40,
			SpriteHeight:          40,
			InvulnerabilityFrames: 60,
			FlashPeriod:           5,
			ZIndex:                3,
			ShadowZIndex:          2,
			ShadowWidthDivisor:    2,
			ShadowHeightDivisor:   3,
		},
		Enemy: EnemyConfig{
			MaxHealth:           30,
			Velocity:            1,
			AlertRadius:         150,
			HitFlashFrames:      10,
			FlashPeriod:         2,
			SpriteWidth:         32,
			SpriteHeight:        32,
			ScaleFactor:         1.0,
			Variants:            []string{"bloodshot", "ocular"},
			ZIndex:              3,
			ShadowZIndex:        2,
			ShadowWidthDivisor:  2,
			ShadowHeightDivisor: 4,
		},
		Combat: CombatConfig{
			SwordDamage:     10,
			ContactDamage:   10,
			PlayerKnockback: 24,
			EnemyKnockback:  32,
		},
		Animation: AnimationConfig{
			NormalSpeed: 0.15,
			SwingSpeed:  0.25,
		},
		Shadow: ShadowConfig{
			Color: Color{NRGBA: color.NRGBA{R: 0, G: 0, B: 0, A: 80}},
		},
		Map: MapConfig{
			Dir:          "maps",
			Default:      "open_island",
			PlayerSpawn:  "player_spawn",
			HazardName:   "hazard",
			ObstacleName: "obstacle",
			EnemyType:    "enemy",
			TileZIndex:   1,
			TriggerZ:     1,
		},
		Assets: AssetsConfig{
			Root:       "assets",
			PlayerDir:  "player",
			EnemiesDir: "enemies/watchers",
		},
		Debug: DebugConfig{
			Enabled:       false,
			HazardColor:   Color{NRGBA: color.NRGBA{R: 255, G: 0, B: 0, A: 120}},
			ObstacleColor: Color{NRGBA: color.NRGBA{R: 0, G: 0, B: 255, A: 120}},
			RadiusColor:   Color{NRGBA: color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
			LineColor:     Color{NRGBA: color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		},
	}
}

// LoadConfig loads simulation config from a YAML file.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config %s: %w", path, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}
	return config, nil
}

// ParseConfig decodes YAML over the defaults and validates the result
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the rules can drive a simulation
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if c.Camera.InternalWidth <= 0 || c.Camera.InternalHeight <= 0 {
		return fmt.Errorf("invalid internal buffer size: %dx%d", c.Camera.InternalWidth, c.Camera.InternalHeight)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom {
		return fmt.Errorf("invalid zoom range: [%v, %v]", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Camera.DefaultZoom < c.Camera.MinZoom || c.Camera.DefaultZoom > c.Camera.MaxZoom {
		return fmt.Errorf("default zoom %v outside [%v, %v]", c.Camera.DefaultZoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player max_health must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.SpriteWidth <= 0 || c.Player.SpriteHeight <= 0 {
		return fmt.Errorf("invalid player sprite size: %dx%d", c.Player.SpriteWidth, c.Player.SpriteHeight)
	}
	if c.Player.FlashPeriod <= 0 || c.Enemy.FlashPeriod <= 0 {
		return fmt.Errorf("flash periods must be positive")
	}
	if c.Player.ShadowWidthDivisor <= 0 || c.Player.ShadowHeightDivisor <= 0 ||
		c.Enemy.ShadowWidthDivisor <= 0 || c.Enemy.ShadowHeightDivisor <= 0 {
		return fmt.Errorf("shadow divisors must be positive")
	}
	if c.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("enemy max_health must be positive, got %d", c.Enemy.MaxHealth)
	}
	if c.Enemy.SpriteWidth <= 0 || c.Enemy.SpriteHeight <= 0 {
		return fmt.Errorf("invalid enemy sprite size: %dx%d", c.Enemy.SpriteWidth, c.Enemy.SpriteHeight)
	}
	if c.Enemy.ScaleFactor <= 0 {
		return fmt.Errorf("enemy scale_factor must be positive, got %v", c.Enemy.ScaleFactor)
	}
	if len(c.Enemy.Variants) == 0 {
		return fmt.Errorf("at least one enemy variant is required")
	}
	if c.Animation.NormalSpeed <= 0 || c.Animation.SwingSpeed <= 0 {
		return fmt.Errorf("animation speeds must be positive")
	}
	if c.Combat.SwordDamage < 0 || c.Combat.ContactDamage < 0 {
		return fmt.Errorf("damage cannot be negative")
	}
	return nil
}

// HasVariant reports whether name is a configured enemy variant
func (c *EnemyConfig) HasVariant(name string) bool {
	for _, v := range c.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// Color is a non-premultiplied color written as "#RRGGBB" or "#RRGGBBAA" in YAML
type Color struct {
	color.NRGBA
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", node.Line, err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{NRGBA: color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}}, nil
}
