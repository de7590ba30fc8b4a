package plot

import (
	"image/color"
	"math"
)

// Func is an explicit function y = f(x).
type Func func(x float64) float64

// Relation is an implicit equation, true where (x, y) lies on it.
type Relation func(x, y float64) bool

// DefaultTolerance is the band half-width LooseEquals allows.
const DefaultTolerance = 0.3

// LooseEquals reports |a-b| < 0.3. Pixel sampling almost never lands exactly on
// a curve like x²+y² = r, so relations compare with a band instead.
func LooseEquals(a, b float64) bool {
	return math.Abs(a-b) < DefaultTolerance
}

// Tolerance returns a LooseEquals with a custom band.
func Tolerance(eps float64) func(a, b float64) bool {
	return func(a, b float64) bool { return math.Abs(a-b) < eps }
}

// DrawFunction draws f as one segment per canvas column, joining the values at
// column x and x+1. Non-finite values are passed through to the canvas.
func DrawFunction(c Canvas, v Viewport, f Func, col color.NRGBA, thick float64) {
	w, _ := c.Size()
	for x := 0; x < w; x++ {
		x1, x2 := float64(x), float64(x+1)
		y1 := v.ScreenY(f(v.WorldX(x1)))
		y2 := v.ScreenY(f(v.WorldX(x2)))
		c.DrawLine(Vec2{x1, y1}, Vec2{x2, y2}, thick, col)
	}
}

// DrawEquation evaluates r at every canvas pixel and plots the ones where it
// holds. Cost is width×height evaluations per call.
func DrawEquation(c Canvas, v Viewport, r Relation, col color.NRGBA) {
	w, h := c.Size()
	for sx := 0; sx < w; sx++ {
		wx := v.WorldX(float64(sx))
		for sy := 0; sy < h; sy++ {
			if r(wx, v.WorldY(float64(sy))) {
				c.DrawPixel(sx, sy, col)
			}
		}
	}
}
