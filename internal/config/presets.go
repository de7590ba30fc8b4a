package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/plotlab/internal/input"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets build fresh configs so callers can mutate the result.
var Presets = map[string]func() *Config{
	// 2560x1440, drag to pan, scroll to zoom, labelled step grid.
	"default": DefaultConfig,
	// 1920x1080, arrow keys pan 100px per press, fixed 20-cell grid.
	"classic": func() *Config {
		cfg := DefaultConfig()
		cfg.Window.Width, cfg.Window.Height = 1920, 1080
		cfg.Input = string(input.ModeKeys)
		cfg.Grid.Policy = GridCount
		cfg.Grid.Labels = false
		return cfg
	},
	// Both input schemes plus the HUD overlay.
	"explore": func() *Config {
		cfg := DefaultConfig()
		cfg.Input = string(input.ModeBoth)
		cfg.HUD = true
		return cfg
	},
	// Low resolution with thin strokes, for quick exports.
	"small": func() *Config {
		cfg := DefaultConfig()
		cfg.Window.Width, cfg.Window.Height = 800, 600
		cfg.View.ScaleX, cfg.View.ScaleY = 50, 50
		cfg.Plot.Thickness = 3
		return cfg
	},
}

func GetPreset(name string) (*Config, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return build(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
