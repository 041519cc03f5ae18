package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go"
	"github.com/san-kum/gradviz/internal/surface"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFunction  = "paraboloid"
	DefaultTheme     = "viridis"
	DefaultWidth     = 64
	DefaultHeight    = 24
	DefaultAzimuth   = -0.6
	DefaultElevation = 0.5
	DefaultZoom      = 1.0
)

type Config struct {
	Function string       `yaml:"function" json:"function"`
	X        float64      `yaml:"x" json:"x"`
	Y        float64      `yaml:"y" json:"y"`
	Theme    string       `yaml:"theme" json:"theme"`
	View     ViewConfig   `yaml:"view" json:"view"`
	Camera   CameraConfig `yaml:"camera" json:"camera"`
}

// ViewConfig sizes the braille canvas in terminal cells.
type ViewConfig struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

type CameraConfig struct {
	Azimuth   float64 `yaml:"azimuth" json:"azimuth"`
	Elevation float64 `yaml:"elevation" json:"elevation"`
	Zoom      float64 `yaml:"zoom" json:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		Function: DefaultFunction,
		X:        surface.DefaultX,
		Y:        surface.DefaultY,
		Theme:    DefaultTheme,
		View: ViewConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Camera: CameraConfig{
			Azimuth:   DefaultAzimuth,
			Elevation: DefaultElevation,
			Zoom:      DefaultZoom,
		},
	}
}

// Load reads a YAML config, or HJSON when the file ends in .hjson. Fields
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".hjson") {
		err = decodeHJSON(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// decodeHJSON goes through a generic map and encoding/json so the struct's
// json tags apply.
func decodeHJSON(data []byte, cfg *Config) error {
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return err
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Variant parses the configured function label.
func (c *Config) Variant() (surface.Variant, error) {
	return surface.ParseVariant(c.Function)
}

// Point returns P snapped to the slider step.
func (c *Config) Point() surface.Point {
	return surface.Point{X: c.X, Y: c.Y}.Snap()
}

// Validate checks the function label and that P is inside the slider range.
func (c *Config) Validate() error {
	if _, err := c.Variant(); err != nil {
		return err
	}
	p := c.Point()
	if !p.Valid() {
		return &surface.InputError{Input: fmt.Sprintf("(%g, %g)", c.X, c.Y), Wrapped: surface.ErrOutOfRange}
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("config: view size must be positive, got %dx%d", c.View.Width, c.View.Height)
	}
	return nil
}

// Apply copies the input fields of a preset onto c, leaving the view and
// theme alone.
func (c *Config) Apply(p *Config) {
	c.Function = p.Function
	c.X, c.Y = p.X, p.Y
	if p.Camera != (CameraConfig{}) {
		c.Camera = p.Camera
	}
}
