package plot

import (
	"fmt"
	"math"
)

// DefaultMinScale keeps zooming out from collapsing an axis or inverting it.
const DefaultMinScale = 0.1

// Viewport places world (0,0) at Origin on the canvas and stretches each axis
// by its scale, in pixels per world unit.
type Viewport struct {
	Origin   Vec2
	ScaleX   float64
	ScaleY   float64
	MinScale float64
}

// NewViewport centres the origin on a width×height canvas.
func NewViewport(width, height int, scaleX, scaleY, minScale float64) Viewport {
	v := Viewport{
		Origin:   Vec2{float64(width) / 2, float64(height) / 2},
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		MinScale: minScale,
	}
	v.Clamp()
	return v
}

// Validate reports a viewport whose mapping would divide by zero or flip.
func (v Viewport) Validate() error {
	if !(v.MinScale > 0) || math.IsInf(v.MinScale, 0) {
		return fmt.Errorf("%w: min scale %v", ErrInvalidScale, v.MinScale)
	}
	for _, s := range []float64{v.ScaleX, v.ScaleY} {
		if !(s >= v.MinScale) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: scale %v (min %v)", ErrInvalidScale, s, v.MinScale)
		}
	}
	if !v.Origin.IsFinite() {
		return fmt.Errorf("plot: origin %v is not finite", v.Origin)
	}
	return nil
}

func (v Viewport) WorldX(screenX float64) float64 { return (screenX - v.Origin.X) / v.ScaleX }
func (v Viewport) WorldY(screenY float64) float64 { return (v.Origin.Y - screenY) / v.ScaleY }
func (v Viewport) ScreenX(worldX float64) float64 { return v.Origin.X + worldX*v.ScaleX }
func (v Viewport) ScreenY(worldY float64) float64 { return v.Origin.Y - worldY*v.ScaleY }

// ScreenToWorld maps a canvas pixel to world coordinates. Screen Y grows
// downward, world Y upward.
func (v Viewport) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{v.WorldX(p.X), v.WorldY(p.Y)}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (v Viewport) WorldToScreen(p Vec2) Vec2 {
	return Vec2{v.ScreenX(p.X), v.ScreenY(p.Y)}
}

// Pan moves the origin by delta pixels. Non-finite deltas are ignored.
func (v *Viewport) Pan(delta Vec2) {
	if !delta.IsFinite() {
		return
	}
	v.Origin = v.Origin.Add(delta)
}

// Zoom adds amount to both scales and clamps them to MinScale.
func (v *Viewport) Zoom(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	v.ScaleX += amount
	v.ScaleY += amount
	v.Clamp()
}

// Clamp raises each scale to at least MinScale. A NaN scale becomes MinScale.
func (v *Viewport) Clamp() {
	v.ScaleX = clampScale(v.ScaleX, v.MinScale)
	v.ScaleY = clampScale(v.ScaleY, v.MinScale)
}

func clampScale(s, floor float64) float64 {
	if !(s >= floor) {
		return floor
	}
	return s
}
