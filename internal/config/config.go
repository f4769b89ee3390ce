// Package config loads the sketchpad settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/BurntSushi/toml"

	"LocalSketchpad/internal/state"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalid      = errors.New("invalid config")
)

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type Marker struct {
	Thin    float64  `toml:"thin"`
	Thick   float64  `toml:"thick"`
	Min     float64  `toml:"min"`
	Max     float64  `toml:"max"`
	Color   string   `toml:"color"`
	Palette []string `toml:"palette"`
}

type Stickers struct {
	Glyphs   []string `toml:"glyphs"`
	FontSize float64  `toml:"font_size"`
}

type Export struct {
	Scale float64 `toml:"scale"`
}

type Config struct {
	Canvas   Canvas   `toml:"canvas"`
	Marker   Marker   `toml:"marker"`
	Stickers Stickers `toml:"stickers"`
	Export   Export   `toml:"export"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{Width: 256, Height: 256, Background: "#ffffff"},
		Marker: Marker{
			Thin:    2,
			Thick:   6,
			Min:     1,
			Max:     20,
			Color:   "#000000",
			Palette: []string{"#000000", "#e53935", "#1e88e5", "#43a047", "#fdd835"},
		},
		Stickers: Stickers{
			Glyphs:   []string{"🐸", "⭐", "🍕"},
			FontSize: 32,
		},
		Export: Export{Scale: 4},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("[CONFIG] Ignoring unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// Validate checks ranges and colours.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Marker.Min <= 0 || c.Marker.Max < c.Marker.Min {
		return fmt.Errorf("%w: marker range %g..%g", ErrInvalid, c.Marker.Min, c.Marker.Max)
	}
	if c.Stickers.FontSize <= 0 {
		return fmt.Errorf("%w: sticker font size %g", ErrInvalid, c.Stickers.FontSize)
	}
	if c.Export.Scale <= 0 {
		return fmt.Errorf("%w: export scale %g", ErrInvalid, c.Export.Scale)
	}
	hexes := append([]string{c.Canvas.Background, c.Marker.Color}, c.Marker.Palette...)
	for _, s := range hexes {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// ToolOptions converts the marker and sticker sections for state.NewTools.
func (c Config) ToolOptions() state.ToolOptions {
	var clr color.Color = color.Black
	if parsed, err := ParseColor(c.Marker.Color); err == nil {
		clr = parsed
	}
	return state.ToolOptions{
		Thickness:    c.Marker.Thin,
		MinThickness: c.Marker.Min,
		MaxThickness: c.Marker.Max,
		Color:        clr,
		Stickers:     c.Stickers.Glyphs,
		FontSize:     c.Stickers.FontSize,
	}
}

// Palette returns the parsed marker palette, skipping invalid entries.
func (c Config) Palette() []color.Color {
	out := make([]color.Color, 0, len(c.Marker.Palette))
	for _, s := range c.Marker.Palette {
		if clr, err := ParseColor(s); err == nil {
			out = append(out, clr)
		}
	}
	return out
}

func (c Config) BackgroundColor() color.Color {
	clr, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return color.White
	}
	return clr
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the "#" is
// optional) into an alpha-premultiplied colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	// colors.FromHex zeroes channels it cannot scan instead of failing.
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colors.FromHex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return c, nil
}
