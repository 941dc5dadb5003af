package polyui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/polyfrost/polyui/tw"
)

// Config represents the polyui.toml configuration file
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Text   TextConfig   `toml:"text"`
	Theme  ThemeConfig  `toml:"theme"`

	// Debug enables solver tracing through the standard logger
	Debug bool `toml:"debug"`
}

// LayoutConfig holds the defaults applied to containers whose classes do not
// set them.
type LayoutConfig struct {
	// Gap between items and between rows, in pixels
	Gap float32 `toml:"gap"`
	// Wrap is the default wrap mode: "wrap", "nowrap" or "wrap-reverse"
	Wrap string `toml:"wrap"`
	// Scale multiplies every pixel length (HiDPI)
	Scale float32 `toml:"scale"`
}

type TextConfig struct {
	// Font size in pixels used to measure Text widgets
	FontSize float32 `toml:"font_size"`
	// Optional path to a TTF/OTF file; Go Regular when empty
	FontFile string `toml:"font_file"`
}

// ThemeConfig mirrors tw.ThemeConfig for the config file.
type ThemeConfig struct {
	Spacing     float32             `toml:"spacing"`
	Breakpoints tw.BreakpointConfig `toml:"breakpoints"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	theme := tw.DefaultTheme()
	return Config{
		Layout: LayoutConfig{
			Gap:   0,
			Wrap:  "wrap",
			Scale: 1,
		},
		Text: TextConfig{
			FontSize: 16,
		},
		Theme: ThemeConfig{
			Spacing:     theme.Spacing,
			Breakpoints: theme.Breakpoints,
		},
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses TOML configuration data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}

	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return config, err
	}

	return config, nil
}

// validate rejects values no default can repair.
func (c Config) validate() error {
	if _, ok := wrapModes[c.Layout.Wrap]; !ok {
		return fmt.Errorf("invalid layout.wrap %q", c.Layout.Wrap)
	}
	if c.Layout.Gap < 0 {
		return fmt.Errorf("invalid layout.gap %v: must not be negative", c.Layout.Gap)
	}
	return nil
}

// withDefaults fills zero values with their defaults.
func (c Config) withDefaults() Config {
	if c.Layout.Scale <= 0 {
		c.Layout.Scale = 1
	}
	if c.Layout.Wrap == "" {
		c.Layout.Wrap = "wrap"
	}
	if c.Text.FontSize <= 0 {
		c.Text.FontSize = DefaultConfig().Text.FontSize
	}
	if c.Theme.Spacing <= 0 {
		c.Theme.Spacing = tw.DefaultTheme().Spacing
	}
	if c.Theme.Breakpoints == (tw.BreakpointConfig{}) {
		c.Theme.Breakpoints = tw.DefaultBreakpoints()
	}
	return c
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// themeConfig converts the theme section for the tw package.
func (c Config) themeConfig() tw.ThemeConfig {
	return tw.ThemeConfig{
		Spacing:     c.Theme.Spacing,
		Breakpoints: c.Theme.Breakpoints,
	}
}
