package signalscope

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the inspector's complete, immutable tunable surface. It is
// passed at construction; nothing reads ambient globals. Load a TOML file
// over the defaults with LoadConfig, or start from DefaultConfig and adjust
// fields before handing it to New.
type Config struct {
	// Window
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	WindowTitle  string `toml:"window_title"`

	// ScanRoot is the tree path the scan starts from. Empty or unresolvable
	// paths fall back to the whole tree.
	ScanRoot string `toml:"scan_root"`

	// Card geometry
	CardsPerColumn int     `toml:"cards_per_column"`
	CardWidth      float64 `toml:"card_width"`
	CardBaseHeight float64 `toml:"card_base_height"`
	RowHeight      float64 `toml:"row_height"`
	CardPaddingY   float64 `toml:"card_padding_y"`
	ColumnGap      float64 `toml:"column_gap"`
	RowGap         float64 `toml:"row_gap"`

	// Colors
	BackgroundColor     Color `toml:"background_color"`
	CardColor           Color `toml:"card_color"`
	CardHeaderColor     Color `toml:"card_header_color"`
	CardBorderColor     Color `toml:"card_border_color"`
	HoverBorderColor    Color `toml:"hover_border_color"`
	SelectedBorderColor Color `toml:"selected_border_color"`
	TextColor           Color `toml:"text_color"`
	TypeTextColor       Color `toml:"type_text_color"`
	EmittedColor        Color `toml:"emitted_color"`
	ReceivedColor       Color `toml:"received_color"`
	EdgeColor           Color `toml:"edge_color"`
	EdgeHoverColor      Color `toml:"edge_hover_color"`
	EdgeHighlightColor  Color `toml:"edge_highlight_color"`

	// Text
	FontSize float64 `toml:"font_size"`
	// MinTextSize is the smallest effective size (font size x zoom) still
	// worth rasterizing; below it all card text is skipped.
	MinTextSize float64 `toml:"min_text_size"`

	// Edges
	EdgeWidth      float64 `toml:"edge_width"`
	EdgeHoverWidth float64 `toml:"edge_hover_width"`
	// CurveFraction scales the horizontal control-point offset by the ports'
	// horizontal distance; CurveMax caps it.
	CurveFraction    float64 `toml:"curve_fraction"`
	CurveMax         float64 `toml:"curve_max"`
	EdgeSamples      int     `toml:"edge_samples"`
	EdgeHitThreshold float64 `toml:"edge_hit_threshold"`

	// Zoom and pan
	ZoomMin        float64 `toml:"zoom_min"`
	ZoomMax        float64 `toml:"zoom_max"`
	ZoomStep       float64 `toml:"zoom_step"`
	PanButton      string  `toml:"pan_button"` // "left", "middle", or "right"
	PanSensitivity float64 `toml:"pan_sensitivity"`

	// DimOpacity multiplies the alpha of cards and edges outside the
	// selection's highlight set.
	DimOpacity float64 `toml:"dim_opacity"`

	// Toolbar
	ShowToolbar   bool    `toml:"show_toolbar"`
	ToolbarHeight float64 `toml:"toolbar_height"`
	RefreshLabel  string  `toml:"refresh_label"`
	ResetLabel    string  `toml:"reset_label"`

	// View reset animation
	AnimateReset  bool    `toml:"animate_reset"`
	ResetDuration float64 `toml:"reset_duration"`

	// DebugSummary enables structured scan and draw statistics logging.
	DebugSummary bool `toml:"debug_summary"`
}

// DefaultConfig returns the baseline configuration the inspector ships with.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  1100,
		WindowHeight: 720,
		WindowTitle:  "Signal Scope",

		CardsPerColumn: 6,
		CardWidth:      210,
		CardBaseHeight: 38,
		RowHeight:      18,
		CardPaddingY:   6,
		ColumnGap:      110,
		RowGap:         24,

		BackgroundColor:     Color{R: 0.11, G: 0.11, B: 0.14, A: 1},
		CardColor:           Color{R: 0.18, G: 0.19, B: 0.23, A: 1},
		CardHeaderColor:     Color{R: 0.24, G: 0.26, B: 0.32, A: 1},
		CardBorderColor:     Color{R: 0.38, G: 0.40, B: 0.47, A: 1},
		HoverBorderColor:    Color{R: 0.62, G: 0.66, B: 0.76, A: 1},
		SelectedBorderColor: Color{R: 0.96, G: 0.76, B: 0.28, A: 1},
		TextColor:           Color{R: 0.92, G: 0.93, B: 0.95, A: 1},
		TypeTextColor:       Color{R: 0.58, G: 0.61, B: 0.68, A: 1},
		EmittedColor:        Color{R: 0.48, G: 0.78, B: 0.53, A: 1},
		ReceivedColor:       Color{R: 0.44, G: 0.68, B: 0.92, A: 1},
		EdgeColor:           Color{R: 0.52, G: 0.55, B: 0.62, A: 1},
		EdgeHoverColor:      Color{R: 0.96, G: 0.96, B: 0.70, A: 1},
		EdgeHighlightColor:  Color{R: 0.96, G: 0.76, B: 0.28, A: 1},

		FontSize:    13,
		MinTextSize: 6,

		EdgeWidth:        1.5,
		EdgeHoverWidth:   3,
		CurveFraction:    0.5,
		CurveMax:         140,
		EdgeSamples:      24,
		EdgeHitThreshold: 6,

		ZoomMin:        0.2,
		ZoomMax:        3.0,
		ZoomStep:       0.1,
		PanButton:      "middle",
		PanSensitivity: 1.0,

		DimOpacity: 0.25,

		ShowToolbar:   true,
		ToolbarHeight: 34,
		RefreshLabel:  "Refresh",
		ResetLabel:    "Reset View",

		AnimateReset:  false,
		ResetDuration: 0.25,

		DebugSummary: false,
	}
}

// DefaultOffset is the canvas-to-screen translation a freshly reset viewport
// uses: a small margin, pushed below the toolbar when one is shown.
func (c Config) DefaultOffset() Vec2 {
	y := 40.0
	if c.ShowToolbar {
		y += c.ToolbarHeight
	}
	return Vec2{X: 40, Y: y}
}

// LoadConfig reads a TOML config file over the defaults, so files only need
// to name the options they change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown option %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects configs the engine cannot operate under.
func (c Config) validate() error {
	if c.ZoomMin <= 0 || c.ZoomMax < c.ZoomMin {
		return fmt.Errorf("zoom bounds [%g, %g] invalid", c.ZoomMin, c.ZoomMax)
	}
	if c.CardsPerColumn < 1 {
		return fmt.Errorf("cards_per_column must be >= 1, got %d", c.CardsPerColumn)
	}
	if c.EdgeSamples < 1 {
		return fmt.Errorf("edge_samples must be >= 1, got %d", c.EdgeSamples)
	}
	switch c.PanButton {
	case "left", "middle", "right":
	default:
		return fmt.Errorf("pan_button %q: want left, middle, or right", c.PanButton)
	}
	return nil
}
