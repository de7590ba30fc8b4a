package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plotlab/internal/input"
	"github.com/san-kum/plotlab/internal/plot"
)

const (
	DefaultTitle      = "plotlab"
	DefaultWidth      = 2560
	DefaultHeight     = 1440
	DefaultFPS        = 60
	DefaultScale      = 100.0
	DefaultFontPath   = "assets/fonts/spaceMono.ttf"
	DefaultFontSize   = 512
	DefaultAlpha      = 0.3
	DefaultTUIPanStep = 10.0
	DefaultTUIScale   = 10.0

	GridStep  = "step"
	GridCount = "count"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Window WindowConfig `yaml:"window"`
	View   ViewConfig   `yaml:"view"`
	Input  string       `yaml:"input"`
	Grid   GridConfig   `yaml:"grid"`
	Plot   PlotConfig   `yaml:"plot"`
	Font   FontConfig   `yaml:"font"`
	HUD    bool         `yaml:"hud"`
	TUI    TUIConfig    `yaml:"tui"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

type ViewConfig struct {
	ScaleX     float64 `yaml:"scale_x"`
	ScaleY     float64 `yaml:"scale_y"`
	MinScale   float64 `yaml:"min_scale"`
	ScrollMult float64 `yaml:"scroll_mult"`
	PanStep    float64 `yaml:"pan_step"`
}

type GridConfig struct {
	Policy  string `yaml:"policy"`
	Cells   int    `yaml:"cells"`
	MinStep int    `yaml:"min_step"`
	Labels  bool   `yaml:"labels"`
}

type CurveConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type PlotConfig struct {
	Background string        `yaml:"background"`
	Curves     []CurveConfig `yaml:"curves"`
	Relations  []CurveConfig `yaml:"relations"`
	Thickness  float64       `yaml:"thickness"`
	Alpha      float64       `yaml:"alpha"`
	Tolerance  float64       `yaml:"tolerance"`
}

type FontConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

type TUIConfig struct {
	PanStep float64 `yaml:"pan_step"`
	Scale   float64 `yaml:"scale"`
	Theme   string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		View: ViewConfig{
			ScaleX:     DefaultScale,
			ScaleY:     DefaultScale,
			MinScale:   plot.DefaultMinScale,
			ScrollMult: input.DefaultScrollMult,
			PanStep:    input.DefaultPanStep,
		},
		Input: string(input.ModeDrag),
		Grid: GridConfig{
			Policy:  GridStep,
			Cells:   plot.DefaultGridCells,
			MinStep: plot.DefaultMinStep,
			Labels:  true,
		},
		Plot: PlotConfig{
			Background: "dark0",
			Curves: []CurveConfig{
				{Name: "crazy", Color: "blue"},
				{Name: "xcos", Color: "green"},
			},
			Relations: []CurveConfig{
				{Name: "circle", Color: "red"},
			},
			Thickness: plot.DefaultThickness,
			Alpha:     DefaultAlpha,
			Tolerance: plot.DefaultTolerance,
		},
		Font: FontConfig{
			Path: DefaultFontPath,
			Size: DefaultFontSize,
		},
		TUI: TUIConfig{
			PanStep: DefaultTUIPanStep,
			Scale:   DefaultTUIScale,
			Theme:   "gruvbox",
		},
	}
}

// Load reads a YAML file over the defaults, so a partial file only overrides
// the keys it names.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, typically a preset.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if !(c.View.MinScale > 0) {
		errs = append(errs, fmt.Errorf("view.min_scale %v must be positive", c.View.MinScale))
	}
	if !(c.View.ScaleX > 0) || !(c.View.ScaleY > 0) {
		errs = append(errs, fmt.Errorf("view scale (%v, %v) must be positive", c.View.ScaleX, c.View.ScaleY))
	}
	if _, err := input.ParseMode(c.Input); err != nil {
		errs = append(errs, err)
	}
	if c.Grid.Policy != GridStep && c.Grid.Policy != GridCount {
		errs = append(errs, fmt.Errorf("grid.policy %q (want %s or %s)", c.Grid.Policy, GridStep, GridCount))
	}
	positive := []struct {
		key   string
		value float64
	}{
		{"window.fps", float64(c.Window.FPS)},
		{"grid.cells", float64(c.Grid.Cells)},
		{"grid.min_step", float64(c.Grid.MinStep)},
		{"plot.thickness", c.Plot.Thickness},
		{"plot.tolerance", c.Plot.Tolerance},
		{"font.size", float64(c.Font.Size)},
		{"tui.scale", c.TUI.Scale},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			errs = append(errs, fmt.Errorf("%s %v must be positive", p.key, p.value))
		}
	}
	if c.Plot.Alpha < 0 || c.Plot.Alpha > 1 {
		errs = append(errs, fmt.Errorf("plot.alpha %v outside [0, 1]", c.Plot.Alpha))
	}
	if _, err := plot.ParseColor(c.Plot.Background); err != nil {
		errs = append(errs, err)
	}
	for _, cc := range append(append([]CurveConfig{}, c.Plot.Curves...), c.Plot.Relations...) {
		if _, err := plot.ParseColor(cc.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cc.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Viewport builds the starting viewport, origin centred on the canvas.
func (c *Config) Viewport() plot.Viewport {
	return plot.NewViewport(c.Window.Width, c.Window.Height, c.View.ScaleX, c.View.ScaleY, c.View.MinScale)
}

// NewGrid builds the configured grid policy.
func (c *Config) NewGrid() plot.Grid {
	if c.Grid.Policy == GridCount {
		return plot.NewCountGrid(c.Grid.Cells)
	}
	g := plot.NewStepGrid()
	g.MinStep = c.Grid.MinStep
	g.Labels = c.Grid.Labels
	return g
}

// Controller builds the input controller for the configured mode.
func (c *Config) Controller() (input.Controller, error) {
	mode, err := input.ParseMode(c.Input)
	if err != nil {
		return nil, err
	}
	return input.New(mode, c.View.ScrollMult, c.View.PanStep)
}
