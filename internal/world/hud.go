package world

import (
	"fmt"
	"image/color"

	"github.com/san-kum/plotlab/internal/plot"
)

// HUD prints the current viewport in the top-left corner. View is read every
// frame so the owner can keep mutating its viewport.
type HUD struct {
	View  func() plot.Viewport
	Color color.NRGBA
	Size  float64
	fps   float64
}

func (h *HUD) Update(w *World, dt float64) {
	if dt > 0 {
		// exponential smoothing keeps the readout steady
		h.fps = 0.9*h.fps + 0.1*(1/dt)
	}
}

func (h *HUD) Lines() []string {
	v := h.View()
	return []string{
		fmt.Sprintf("origin %.0f, %.0f", v.Origin.X, v.Origin.Y),
		fmt.Sprintf("scale  %.1f x %.1f", v.ScaleX, v.ScaleY),
		fmt.Sprintf("fps    %.0f", h.fps),
	}
}

func (h *HUD) Draw(w *World, c plot.Canvas) {
	size := h.Size
	if size <= 0 {
		size = plot.DefaultLabelSize
	}
	for i, line := range h.Lines() {
		c.DrawText(line, plot.Vec2{X: 10, Y: 10 + float64(i)*(size+4)}, size, h.Color)
	}
}
