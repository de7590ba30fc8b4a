package plot

import (
	"fmt"
	"math"
)

// Fit describes where a fixed-resolution canvas lands inside a window when
// scaled uniformly and centred.
type Fit struct {
	Scale         float64
	Offset        Vec2
	Width, Height float64 // destination size in window pixels
	SrcW, SrcH    int
}

// Letterbox fits a w×h canvas into a winW×winH window, preserving aspect
// ratio. Leftover space is split evenly on both sides.
func Letterbox(winW, winH, w, h int) (Fit, error) {
	if winW <= 0 || winH <= 0 || w <= 0 || h <= 0 {
		return Fit{}, fmt.Errorf("%w: window %dx%d, canvas %dx%d", ErrInvalidSize, winW, winH, w, h)
	}
	scale := math.Min(float64(winW)/float64(w), float64(winH)/float64(h))
	dw, dh := float64(w)*scale, float64(h)*scale
	return Fit{
		Scale:  scale,
		Offset: Vec2{(float64(winW) - dw) / 2, (float64(winH) - dh) / 2},
		Width:  dw,
		Height: dh,
		SrcW:   w,
		SrcH:   h,
	}, nil
}

// VirtualMouse converts a window-space pointer position into canvas pixels,
// clamped to the canvas.
func (f Fit) VirtualMouse(p Vec2) Vec2 {
	if f.Scale == 0 {
		return Vec2{}
	}
	x := (p.X - f.Offset.X) / f.Scale
	y := (p.Y - f.Offset.Y) / f.Scale
	return Vec2{
		X: math.Max(0, math.Min(float64(f.SrcW), x)),
		Y: math.Max(0, math.Min(float64(f.SrcH), y)),
	}
}
