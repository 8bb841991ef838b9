// Package config loads the game configuration from YAML.
//
// Every field has a default, so a config file only needs the values it
// changes. Durations are written as Go duration strings ("5s", "200ms").
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"farmstead/pkg/engine/input"
	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config is the full game configuration
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Farm     FarmConfig   `yaml:"farm"`
	Farmer   FarmerConfig `yaml:"farmer"`
	Renderer string       `yaml:"renderer"`
	Language string       `yaml:"language"`
	SaveSlot string       `yaml:"saveSlot"`

	// Keys rebinds actions to keyboard keys, e.g. hoe: j
	Keys map[string]string `yaml:"keys,omitempty"`
}

// WindowConfig controls the graphical front end
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"` // #RRGGBB
	TileSize   int     `yaml:"tileSize"`
	Zoom       float64 `yaml:"zoom"`
}

// FarmConfig controls the farm grid
type FarmConfig struct {
	Width  int                      `yaml:"width"`
	Height int                      `yaml:"height"`
	Growth map[string]time.Duration `yaml:"growth"`
}

// FarmerConfig controls the farmer
type FarmerConfig struct {
	// Start defaults to the grid center when unset
	Start        *world.GridPosition `yaml:"start,omitempty"`
	MoveDuration time.Duration       `yaml:"moveDuration"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Farmstead",
			Width:      1024,
			Height:     768,
			Background: "#4A5D3A",
			TileSize:   32,
			Zoom:       1.5,
		},
		Farm: FarmConfig{
			Width:  farm.DefaultWidth,
			Height: farm.DefaultHeight,
			Growth: map[string]time.Duration{
				string(farm.Wheat): farm.WheatGrowthTime,
			},
		},
		Farmer: FarmerConfig{
			MoveDuration: farmer.DefaultMoveDuration,
		},
		Renderer: RendererEbiten,
		Language: "en",
		SaveSlot: "farm",
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the config for values the game cannot run with
func (c *Config) Validate() error {
	if c.Farm.Width <= 0 || c.Farm.Height <= 0 {
		return fmt.Errorf("%w: farm size %dx%d must be positive", ErrInvalid, c.Farm.Width, c.Farm.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TileSize <= 0 {
		return fmt.Errorf("%w: tileSize %d must be positive", ErrInvalid, c.Window.TileSize)
	}
	if c.Window.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %v must be positive", ErrInvalid, c.Window.Zoom)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	if c.Farmer.MoveDuration < 0 {
		return fmt.Errorf("%w: moveDuration %v is negative", ErrInvalid, c.Farmer.MoveDuration)
	}
	for crop, d := range c.Farm.Growth {
		if d < 0 {
			return fmt.Errorf("%w: growth for %s is negative", ErrInvalid, crop)
		}
	}
	if c.Farmer.Start != nil && !c.Dimensions().IsValidPosition(*c.Farmer.Start) {
		return fmt.Errorf("%w: farmer start %v is outside the %dx%d farm", ErrInvalid, *c.Farmer.Start, c.Farm.Width, c.Farm.Height)
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Renderer)
	}
	return c.validateKeys()
}

func (c *Config) validateKeys() error {
	used := make(map[string]string, len(c.Keys))
	for name, code := range c.Keys {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("%w: keys: unknown action %q", ErrInvalid, name)
		}
		if !input.IsKeyCode(code) || input.IsReserved(code) {
			return fmt.Errorf("%w: keys: %q cannot be bound to %s", ErrInvalid, code, name)
		}
		if other, ok := used[code]; ok {
			return fmt.Errorf("%w: keys: %q bound to both %s and %s", ErrInvalid, code, other, name)
		}
		used[code] = name
	}
	return nil
}

// ApplyKeys installs the configured key bindings. Call after Validate.
func (c *Config) ApplyKeys() {
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if action, ok := input.ParseAction(name); ok {
			input.SetSingleBinding(action, c.Keys[name])
		}
	}
}

// Dimensions returns the farm size
func (c *Config) Dimensions() world.Dimensions {
	return world.Dimensions{Width: c.Farm.Width, Height: c.Farm.Height}
}

// GrowthTable converts the configured durations to a farm growth table
func (c *Config) GrowthTable() farm.Growth {
	g := make(farm.Growth, len(c.Farm.Growth))
	for crop, d := range c.Farm.Growth {
		g[farm.CropType(crop)] = d
	}
	return g
}

// StartPosition returns where the farmer spawns
func (c *Config) StartPosition() world.GridPosition {
	if c.Farmer.Start != nil {
		return *c.Farmer.Start
	}
	return c.Dimensions().Center()
}

// BackgroundColor returns the parsed background, falling back to black
func (c *Config) BackgroundColor() color.RGBA {
	col, err := ParseHexColor(c.Window.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return col
}

// ParseHexColor parses "#RRGGBB" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
