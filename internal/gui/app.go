// Package gui runs the plot in a raylib window.
package gui

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/input"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/world"
)

// ColBars fills the window around the letterboxed canvas.
var ColBars = rl.NewColor(0, 0, 0, 255)

// App owns the window resources and the viewport for one session.
type App struct {
	cfg    *config.Config
	scene  plot.Scene
	view   plot.Viewport
	ctrl   input.Controller
	world  *world.World
	log    *slog.Logger
	target rl.RenderTexture2D
	font   rl.Font
	canvas *canvas
}

// NewApp prepares a session. No window is opened until Run.
func NewApp(cfg *config.Config, scene plot.Scene, w *world.World, log *slog.Logger) (*App, error) {
	ctrl, err := cfg.Controller()
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = world.New()
	}
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		cfg:   cfg,
		scene: scene,
		view:  cfg.Viewport(),
		ctrl:  ctrl,
		world: w,
		log:   log,
	}
	if err := a.view.Validate(); err != nil {
		return nil, err
	}
	if cfg.HUD {
		hud := &world.HUD{View: func() plot.Viewport { return a.view }, Color: plot.GruvLight1}
		a.world.AddUpdater(hud)
		a.world.AddDrawer(hud)
	}
	return a, nil
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	if _, err := os.Stat(a.cfg.Font.Path); err != nil {
		return fmt.Errorf("gui: font: %w", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), a.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.cfg.Window.FPS))
	a.log.Info("window opened", "width", a.cfg.Window.Width, "height", a.cfg.Window.Height)

	a.target = rl.LoadRenderTexture(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height))
	defer rl.UnloadRenderTexture(a.target)
	rl.SetTextureFilter(a.target.Texture, rl.FilterPoint)

	a.font = rl.LoadFontEx(a.cfg.Font.Path, int32(a.cfg.Font.Size), nil, 0)
	defer rl.UnloadFont(a.font)
	rl.SetTextureFilter(a.font.Texture, rl.FilterBilinear)
	a.log.Debug("font loaded", "path", a.cfg.Font.Path, "size", a.cfg.Font.Size)

	a.canvas = &canvas{width: a.cfg.Window.Width, height: a.cfg.Window.Height, font: a.font}

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
	a.log.Info("window closed", "frames", a.world.Frame())
	return nil
}

// fit returns the current letterbox of the canvas in the window.
func (a *App) fit() (plot.Fit, error) {
	return plot.Letterbox(rl.GetScreenWidth(), rl.GetScreenHeight(), a.cfg.Window.Width, a.cfg.Window.Height)
}

// Update reads input for this frame, applies it to the viewport and
// progresses the world.
func (a *App) Update() {
	dt := float64(rl.GetFrameTime())
	fit, err := a.fit()
	if err != nil {
		// minimised windows report a zero size
		a.world.Progress(dt)
		return
	}
	m := rl.GetMousePosition()
	s := input.State{
		Mouse:   fit.VirtualMouse(plot.Vec2{X: float64(m.X), Y: float64(m.Y)}),
		Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Down:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Wheel:   float64(rl.GetMouseWheelMove()),
		Keys:    pressedKeys(),
	}
	a.ctrl.Apply(&a.view, s)
	a.world.Progress(dt)
}

// Draw renders the scene into the render texture and blits it letterboxed.
func (a *App) Draw() {
	rl.BeginTextureMode(a.target)
	a.scene.Render(a.canvas, a.view)
	a.world.Draw(a.canvas)
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(ColBars)
	if fit, err := a.fit(); err == nil {
		w, h := float32(a.target.Texture.Width), float32(a.target.Texture.Height)
		// render textures are stored upside down
		src := rl.NewRectangle(0, 0, w, -h)
		dst := rl.NewRectangle(float32(fit.Offset.X), float32(fit.Offset.Y), float32(fit.Width), float32(fit.Height))
		rl.DrawTexturePro(a.target.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}
	rl.EndDrawing()
}

func pressedKeys() input.Keys {
	var k input.Keys
	if rl.IsKeyPressed(rl.KeyLeft) {
		k |= input.KeyLeft
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		k |= input.KeyRight
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		k |= input.KeyUp
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		k |= input.KeyDown
	}
	return k
}
