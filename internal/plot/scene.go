package plot

import "image/color"

// DefaultThickness is the stroke width of function curves, in pixels.
const DefaultThickness = 10

type Curve struct {
	Name  string
	F     Func
	Color color.NRGBA
}

type Equation struct {
	Name  string
	R     Relation
	Color color.NRGBA
}

// Scene is everything drawn in one frame, in order: background, grid,
// curves, equations.
type Scene struct {
	Background color.NRGBA
	Grid       Grid
	Curves     []Curve
	Equations  []Equation
	Thickness  float64
}

// Render clears c and redraws every layer for v.
func (s *Scene) Render(c Canvas, v Viewport) {
	c.Clear(s.Background)
	if s.Grid != nil {
		s.Grid.Draw(c, v)
	}
	thick := s.Thickness
	if thick <= 0 {
		thick = DefaultThickness
	}
	for _, curve := range s.Curves {
		DrawFunction(c, v, curve.F, curve.Color, thick)
	}
	for _, eq := range s.Equations {
		DrawEquation(c, v, eq.R, eq.Color)
	}
}
