package flag3d

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

const (
	ClockFixed = "fixed" // Every tick lasts 1 / TPS seconds
	ClockWall  = "wall"  // Ticks last as long as they actually took
)

// Config holds everything needed to set up a Host: which image to wave, how finely to subdivide it, how strongly to animate it,
// and how to look at it. Configs can be loaded from YAML files with LoadConfigFile(); unset fields keep their DefaultConfig() values.
type Config struct {
	ImagePath string `yaml:"image"` // Path to the image to use; if empty, the caller supplies the Texture

	Columns       int     `yaml:"columns"`         // Grid columns
	Rows          int     `yaml:"rows"`            // Grid rows
	Amplitude     float64 `yaml:"amplitude"`       // Height of the wave's crests
	EaseInSeconds float64 `yaml:"ease_in_seconds"` // If greater than 0, the amplitude eases in from 0 over this many seconds

	PadToPowerOfTwo bool   `yaml:"pad_to_power_of_two"` // If the texture should be padded to power-of-two dimensions
	TextureFilter   string `yaml:"texture_filter"`      // "nearest" or "linear"

	FieldOfView float32    `yaml:"field_of_view"` // Vertical field of view, in degrees
	Near        float32    `yaml:"near"`          // Near clipping plane
	Far         float32    `yaml:"far"`           // Far clipping plane
	Offset      [3]float32 `yaml:"offset"`        // Translation applied to the mesh before projection
	AutoCenter  bool       `yaml:"auto_center"`   // If true, Offset's X and Y are replaced to center the image on screen

	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	TPS          int    `yaml:"tps"`   // Ticks per second; 0 keeps Ebitengine's default
	Clock        string `yaml:"clock"` // ClockFixed or ClockWall
}

// DefaultConfig returns a Config with some sensible defaults: a 20x20 grid, an amplitude of 32, a 90 degree field of view
// looking at a 640x480 window, and the mesh pushed 320 units away from the camera.
func DefaultConfig() *Config {
	return &Config{
		Columns:         20,
		Rows:            20,
		Amplitude:       DefaultAmplitude,
		PadToPowerOfTwo: true,
		TextureFilter:   "linear",
		FieldOfView:     90,
		Near:            0.1,
		Far:             400,
		Offset:          [3]float32{-320, -240, -320},
		AutoCenter:      true,
		WindowWidth:     640,
		WindowHeight:    480,
		WindowTitle:     "flag3d",
		Clock:           ClockFixed,
	}
}

// LoadConfigFile loads a YAML Config from the filepath given. Fields missing from the file keep their default values.
func LoadConfigFile(path string) (*Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flag3d: read config %s: %w", path, err)
	}

	cfg, err := LoadConfigData(data)
	if err != nil {
		return nil, fmt.Errorf("flag3d: config %s: %w", path, err)
	}

	return cfg, nil

}

// LoadConfigData parses a YAML Config from the data given and validates it. Fields missing from the data keep their default values.
func LoadConfigData(data []byte) (*Config, error) {

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil

}

// Validate returns an error describing every problem with the Config, or nil if there are none.
func (cfg *Config) Validate() error {

	var errs []error

	if cfg.Columns < 1 || cfg.Rows < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", cfg.Columns, cfg.Rows))
	} else if n := (cfg.Columns + 1) * (cfg.Rows + 1); n > MaxGridVertexCount {
		errs = append(errs, fmt.Errorf("grid %dx%d has %d vertices, more than the maximum of %d", cfg.Columns, cfg.Rows, n, MaxGridVertexCount))
	}

	if cfg.Amplitude < 0 {
		errs = append(errs, fmt.Errorf("amplitude must not be negative, got %f", cfg.Amplitude))
	}

	if cfg.EaseInSeconds < 0 {
		errs = append(errs, fmt.Errorf("ease_in_seconds must not be negative, got %f", cfg.EaseInSeconds))
	}

	if _, err := parseFilter(cfg.TextureFilter); err != nil {
		errs = append(errs, err)
	}

	if cfg.FieldOfView <= 0 || cfg.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field_of_view must be between 0 and 180 degrees, got %f", cfg.FieldOfView))
	}

	if cfg.Near <= 0 || cfg.Far <= cfg.Near {
		errs = append(errs, fmt.Errorf("clipping planes must satisfy 0 < near < far, got near %f and far %f", cfg.Near, cfg.Far))
	}

	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight))
	}

	if cfg.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must not be negative, got %d", cfg.TPS))
	}

	if cfg.Clock != ClockFixed && cfg.Clock != ClockWall {
		errs = append(errs, fmt.Errorf("clock must be %q or %q, got %q", ClockFixed, ClockWall, cfg.Clock))
	}

	return errors.Join(errs...)

}

// Grid returns the Grid described by the Config.
func (cfg *Config) Grid() Grid {
	return NewGrid(cfg.Columns, cfg.Rows)
}

// TextureOptions returns the TextureOptions described by the Config.
func (cfg *Config) TextureOptions() *TextureOptions {
	opt := DefaultTextureOptions()
	opt.PadToPowerOfTwo = cfg.PadToPowerOfTwo
	if filter, err := parseFilter(cfg.TextureFilter); err == nil {
		opt.Filter = filter
	}
	return opt
}

// FrameClock returns a new FrameClock of the kind the Config asks for.
func (cfg *Config) FrameClock() FrameClock {
	if cfg.Clock == ClockWall {
		return NewWallClock()
	}
	return FixedClock{TPS: cfg.TPS}
}

func parseFilter(name string) (ebiten.Filter, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return ebiten.FilterNearest, nil
	case "linear", "":
		return ebiten.FilterLinear, nil
	}
	return ebiten.FilterLinear, fmt.Errorf("texture_filter must be \"nearest\" or \"linear\", got %q", name)
}
