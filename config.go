package torch

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the surface options.
//
//	click_threshold = 3.0
//	input_focus = true
//	auto_blur = false
//	blur_on_outside_press = true
//	pass_through = false
//	pixel_density = 2.0
//
//	[display]
//	width = 400
//	height = 300
type Config struct {
	ClickThreshold     float64       `toml:"click_threshold"`
	InputFocus         bool          `toml:"input_focus"`
	AutoBlur           bool          `toml:"auto_blur"`
	BlurOnOutsidePress bool          `toml:"blur_on_outside_press"`
	PassThrough        bool          `toml:"pass_through"`
	PixelDensity       float64       `toml:"pixel_density"`
	Display            DisplayConfig `toml:"display"`
}

// DisplayConfig is the displayed size of a surface in page units.
// Zero means "same as the backing store".
type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DefaultConfig returns the configuration matching NewSurface's defaults.
func DefaultConfig() Config {
	return Config{
		ClickThreshold:     DefaultClickThreshold,
		BlurOnOutsidePress: true,
		PixelDensity:       1,
	}
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("torch: load config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// DecodeConfig parses TOML configuration text.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("torch: decode config: %w", err)
	}
	return cfg, cfg.validate()
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("torch: write config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.ClickThreshold < 0 {
		return fmt.Errorf("torch: click_threshold must not be negative, got %g", c.ClickThreshold)
	}
	if c.PixelDensity < 0 {
		return fmt.Errorf("torch: pixel_density must not be negative, got %g", c.PixelDensity)
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return fmt.Errorf("torch: display size must not be negative, got %dx%d", c.Display.Width, c.Display.Height)
	}
	return nil
}

// Options converts the configuration into surface options. PixelDensity is
// not an option because it changes the surface transform; apply it with
// Surface.SetPixelDensity after creation.
func (c Config) Options() []SurfaceOption {
	opts := []SurfaceOption{
		WithClickThreshold(c.ClickThreshold),
		WithInputFocus(c.InputFocus),
		WithAutoBlur(c.AutoBlur),
		WithBlurOnOutsidePress(c.BlurOnOutsidePress),
		WithPassThrough(c.PassThrough),
	}
	if c.Display.Width > 0 && c.Display.Height > 0 {
		opts = append(opts, WithDisplaySize(c.Display.Width, c.Display.Height))
	}
	return opts
}
