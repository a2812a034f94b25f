package thicket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures a window, its scene, and the village the demo
// programs build. Zero values are not meaningful; start from DefaultRunConfig.
type RunConfig struct {
	Title      string `toml:"title" yaml:"title" json:"title"`
	Width      int    `toml:"width" yaml:"width" json:"width"`
	Height     int    `toml:"height" yaml:"height" json:"height"`
	ClearColor Color  `toml:"clear_color" yaml:"clear_color" json:"clear_color"`

	// PanSpeed is the pan distance per second of held direction key.
	PanSpeed float32 `toml:"pan_speed" yaml:"pan_speed" json:"pan_speed"`
	// RecenterDuration is how long, in seconds, KeyHome takes to return the
	// pan to the origin.
	RecenterDuration float32 `toml:"recenter_duration" yaml:"recenter_duration" json:"recenter_duration"`

	// TPS is the target update rate of backends that have one. 0 keeps the
	// backend default.
	TPS     int  `toml:"tps" yaml:"tps" json:"tps"`
	ShowFPS bool `toml:"show_fps" yaml:"show_fps" json:"show_fps"`
	Debug   bool `toml:"debug" yaml:"debug" json:"debug"`

	ScreenshotDir string `toml:"screenshot_dir" yaml:"screenshot_dir" json:"screenshot_dir"`

	// Trees, Houses and Seed control Populate in the demo programs. Seed 0 picks a
	// random seed.
	Trees  int    `toml:"trees" yaml:"trees" json:"trees"`
	Houses int    `toml:"houses" yaml:"houses" json:"houses"`
	Seed   uint64 `toml:"seed" yaml:"seed" json:"seed"`
}

// DefaultRunConfig returns an 800x600 window with a teal background and the
// default pan speed.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:            "thicket",
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		ClearColor:       DefaultClearColor,
		PanSpeed:         DefaultPanSpeed,
		RecenterDuration: 0.5,
		ScreenshotDir:    DefaultScreenshotDir,
		Trees:            DefaultTrees,
		Houses:           DefaultHouses,
	}
}

// LoadRunConfig reads a config file over DefaultRunConfig. The format is
// chosen by extension: .toml, .yaml, .yml or .json. A missing file yields
// the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := decodeRunConfig(filepath.Ext(path), data, &cfg); err != nil {
		return DefaultRunConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultRunConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeRunConfig(ext string, data []byte, cfg *RunConfig) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate checks the window size and pan settings.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.PanSpeed < 0 {
		return fmt.Errorf("pan speed %v must not be negative", c.PanSpeed)
	}
	if c.RecenterDuration < 0 {
		return fmt.Errorf("recenter duration %v must not be negative", c.RecenterDuration)
	}
	if c.Trees < 0 || c.Houses < 0 {
		return fmt.Errorf("village counts must not be negative")
	}
	return nil
}

// SceneOptions converts the scene-related settings to options for NewScene.
func (c RunConfig) SceneOptions() []SceneOption {
	return []SceneOption{
		WithViewport(c.Width, c.Height),
		WithClearColor(c.ClearColor),
		WithPanSpeed(c.PanSpeed),
		WithRecenterDuration(c.RecenterDuration),
	}
}
