package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/plotlab/internal/plot"
)

// canvas draws into whatever raylib target is active, normally the App's
// render texture between BeginTextureMode and EndTextureMode.
type canvas struct {
	width, height int
	font          rl.Font
}

func (c *canvas) Size() (int, int) { return c.width, c.height }

func (c *canvas) Clear(col color.NRGBA) { rl.ClearBackground(toColor(col)) }

func (c *canvas) DrawLine(from, to plot.Vec2, thick float64, col color.NRGBA) {
	if !from.IsFinite() || !to.IsFinite() {
		return
	}
	rl.DrawLineEx(toVector(from), toVector(to), float32(thick), toColor(col))
}

func (c *canvas) DrawPixel(x, y int, col color.NRGBA) {
	rl.DrawPixel(int32(x), int32(y), toColor(col))
}

func (c *canvas) DrawText(text string, at plot.Vec2, size float64, col color.NRGBA) {
	rl.DrawTextEx(c.font, text, toVector(at), float32(size), 1, toColor(col))
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toVector converts to float32, saturating values that would overflow
// instead of producing infinities.
func toVector(p plot.Vec2) rl.Vector2 {
	const lim = 1 << 24
	clamp := func(v float64) float32 {
		if v > lim {
			return lim
		}
		if v < -lim {
			return -lim
		}
		return float32(v)
	}
	return rl.NewVector2(clamp(p.X), clamp(p.Y))
}
