package simulation

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfigOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
enemy:
  alert_radius: 200
  variants: [ocular]
combat:
  sword_damage: 15
debug:
  enabled: true
  hazard_color: "#ff000080"
`))
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.Enemy.AlertRadius)
	assert.Equal(t, []string{"ocular"}, cfg.Enemy.Variants)
	assert.Equal(t, 15, cfg.Combat.SwordDamage)
	assert.True(t, cfg.Debug.Enabled)
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, cfg.Debug.HazardColor.NRGBA)

	// Untouched sections keep defaults
	assert.Equal(t, 30, cfg.Enemy.MaxHealth)
	assert.Equal(t, 10, cfg.Combat.ContactDamage)
	assert.Equal(t, 2.0, cfg.Player.Velocity)
}

func TestParseConfigRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted zoom range", "camera: {min_zoom: 3, max_zoom: 2, default_zoom: 2.5}"},
		{"default zoom outside range", "camera: {default_zoom: 9}"},
		{"no variants", "enemy: {variants: []}"},
		{"zero swing speed", "animation: {swing_speed: 0}"},
		{"bad color", "shadow: {color: \"blue\"}"},
		{"zero flash period", "player: {flash_period: 0}"},
		{"not yaml", "window: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Test\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c.NRGBA)

	c, err = ParseColor("  #10203040 ")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x40), c.A)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestColorRoundTripsThroughYAML(t *testing.T) {
	out, err := yaml.Marshal(DefaultConfig().Shadow)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#00000050")
}

func TestHasVariant(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Enemy.HasVariant("bloodshot"))
	assert.False(t, cfg.Enemy.HasVariant("gazer"))
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "configs", "islewatch.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
