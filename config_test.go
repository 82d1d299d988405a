package signalscope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scope.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
window_title = "My Game Signals"
cards_per_column = 4
zoom_max = 5.0
pan_button = "right"
edge_color = "#ff8800"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "My Game Signals", cfg.WindowTitle)
	assert.Equal(t, 4, cfg.CardsPerColumn)
	assert.Equal(t, 5.0, cfg.ZoomMax)
	assert.Equal(t, "right", cfg.PanButton)
	assert.InDelta(t, 1.0, cfg.EdgeColor.R, 0.01)
	assert.InDelta(t, 0x88/255.0, cfg.EdgeColor.G, 0.01)

	// Unmentioned options keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.CardWidth, cfg.CardWidth)
	assert.Equal(t, def.ZoomMin, cfg.ZoomMin)
	assert.Equal(t, def.BackgroundColor, cfg.BackgroundColor)
}

func TestLoadConfigRejectsUnknownOption(t *testing.T) {
	path := writeConfigFile(t, `cards_per_colunm = 4`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zoom bounds":      "zoom_min = -1.0",
		"inverted zoom":    "zoom_min = 2.0\nzoom_max = 0.5",
		"cards per column": "cards_per_column = 0",
		"edge samples":     "edge_samples = 0",
		"pan button":       `pan_button = "thumb"`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#336699")))
	assert.InDelta(t, 0x33/255.0, c.R, 1e-9)
	assert.InDelta(t, 0x66/255.0, c.G, 1e-9)
	assert.InDelta(t, 0x99/255.0, c.B, 1e-9)
	assert.Equal(t, 1.0, c.A)

	// Short form expands each nibble.
	require.NoError(t, c.UnmarshalText([]byte("#f0c")))
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0xcc/255.0, c.B, 1e-9)

	// Eight digits carry alpha.
	require.NoError(t, c.UnmarshalText([]byte("#00000080")))
	assert.InDelta(t, 0x80/255.0, c.A, 1e-9)

	for _, bad := range []string{"", "336699", "#12", "#12345", "#gggggg"} {
		assert.Error(t, c.UnmarshalText([]byte(bad)), "input %q", bad)
	}
}

func TestColorMarshalRoundtrip(t *testing.T) {
	orig := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	text, err := orig.MarshalText()
	require.NoError(t, err)

	var back Color
	require.NoError(t, back.UnmarshalText(text))
	assert.InDelta(t, orig.R, back.R, 1.0/255)
	assert.InDelta(t, orig.G, back.G, 1.0/255)
	assert.InDelta(t, orig.B, back.B, 1.0/255)
}

func TestDefaultOffsetToolbar(t *testing.T) {
	cfg := DefaultConfig()
	withBar := cfg.DefaultOffset()

	cfg.ShowToolbar = false
	without := cfg.DefaultOffset()
	assert.Equal(t, withBar.Y-DefaultConfig().ToolbarHeight, without.Y)
	assert.Equal(t, withBar.X, without.X)
}
