package plot

import (
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultLabelSize = 16
	DefaultGridCells = 20
	DefaultMinStep   = 8
)

// Grid draws background lines for a viewport.
type Grid interface {
	Lines(width, height int, v Viewport) []GridLine
	Draw(c Canvas, v Viewport)
}

// GridLine is one vertical or horizontal line at canvas position Pos.
// Axis marks the line through the origin.
type GridLine struct {
	Vertical bool
	Pos      float64
	Axis     bool
	Label    string
}

// GridStyle holds the colours shared by both grid policies.
type GridStyle struct {
	Line      color.NRGBA
	Axis      color.NRGBA
	Label     color.NRGBA
	LabelSize float64
}

func DefaultGridStyle() GridStyle {
	return GridStyle{
		Line:      GruvDark3,
		Axis:      GruvLight1,
		Label:     GruvLight2,
		LabelSize: DefaultLabelSize,
	}
}

func (s GridStyle) color(l GridLine) color.NRGBA {
	if l.Axis {
		return s.Axis
	}
	return s.Line
}

// StepGrid puts a line every scale pixels, anchored on the origin, so lines
// sit on whole world units and follow zoom. Non-origin lines carry their
// world value.
type StepGrid struct {
	Style GridStyle
	// MinStep doubles the step until lines are at least this many pixels
	// apart. Zero keeps the raw scale.
	MinStep int
	Labels  bool
}

func NewStepGrid() *StepGrid {
	return &StepGrid{Style: DefaultGridStyle(), MinStep: DefaultMinStep, Labels: true}
}

// maxStep caps the line spacing at huge scales, where at most the origin
// line can be on any realistic canvas.
const maxStep = 1 << 30

func (g *StepGrid) step(scale float64) int {
	s := 1
	switch {
	case scale >= maxStep:
		s = maxStep
	case scale >= 1:
		s = int(scale)
	}
	for s < g.MinStep {
		s *= 2
	}
	return s
}

func (g *StepGrid) Lines(width, height int, v Viewport) []GridLine {
	stepX, stepY := g.step(v.ScaleX), g.step(v.ScaleY)
	cx, cy := int(v.Origin.X), int(v.Origin.Y)

	lines := make([]GridLine, 0, width/stepX+height/stepY+2)
	for i := floorMod(cx, stepX); i <= width; i += stepX {
		l := GridLine{Vertical: true, Pos: float64(i), Axis: i == cx}
		if g.Labels && !l.Axis {
			l.Label = formatTick(v.WorldX(float64(i)))
		}
		lines = append(lines, l)
	}
	for i := floorMod(cy, stepY); i <= height; i += stepY {
		l := GridLine{Pos: float64(i), Axis: i == cy}
		if g.Labels && !l.Axis {
			l.Label = formatTick(v.WorldY(float64(i)))
		}
		lines = append(lines, l)
	}
	return lines
}

func (g *StepGrid) Draw(c Canvas, v Viewport) {
	w, h := c.Size()
	cx, cy := float64(int(v.Origin.X)), float64(int(v.Origin.Y))
	size := g.Style.LabelSize

	for _, l := range g.Lines(w, h, v) {
		drawGridLine(c, l, w, h, g.Style.color(l))
		if l.Label == "" {
			continue
		}
		if l.Vertical {
			c.DrawText(l.Label, Vec2{l.Pos + 2, cy + 5}, size, g.Style.Label)
		} else {
			c.DrawText(l.Label, Vec2{cx + 5, l.Pos + 2}, size, g.Style.Label)
		}
	}
	if g.Labels {
		c.DrawText("0", Vec2{cx + 5, cy + 5}, size, g.Style.Label)
	}
}

// CountGrid splits the canvas into a fixed number of cells regardless of
// zoom and highlights the line nearest the origin on each axis.
type CountGrid struct {
	Style GridStyle
	Cells int
}

func NewCountGrid(cells int) *CountGrid {
	if cells <= 0 {
		cells = DefaultGridCells
	}
	return &CountGrid{Style: DefaultGridStyle(), Cells: cells}
}

func (g *CountGrid) Lines(width, height int, v Viewport) []GridLine {
	cells := g.Cells
	if cells <= 0 {
		cells = DefaultGridCells
	}
	stepX := float64(width) / float64(cells)
	stepY := float64(height) / float64(cells)
	nearX := math.Round(v.Origin.X / stepX)
	nearY := math.Round(v.Origin.Y / stepY)

	lines := make([]GridLine, 0, 2*(cells+1))
	for k := 0; k <= cells; k++ {
		lines = append(lines, GridLine{Vertical: true, Pos: float64(k) * stepX, Axis: float64(k) == nearX})
	}
	for k := 0; k <= cells; k++ {
		lines = append(lines, GridLine{Pos: float64(k) * stepY, Axis: float64(k) == nearY})
	}
	return lines
}

func (g *CountGrid) Draw(c Canvas, v Viewport) {
	w, h := c.Size()
	for _, l := range g.Lines(w, h, v) {
		drawGridLine(c, l, w, h, g.Style.color(l))
	}
}

func drawGridLine(c Canvas, l GridLine, w, h int, col color.NRGBA) {
	if l.Vertical {
		c.DrawLine(Vec2{l.Pos, 0}, Vec2{l.Pos, float64(h)}, 1, col)
	} else {
		c.DrawLine(Vec2{0, l.Pos}, Vec2{float64(w), l.Pos}, 1, col)
	}
}

// formatTick prints a tick value to one decimal place. Values that round to
// zero print as "0.0" rather than "-0.0".
func formatTick(value float64) string {
	s := fmt.Sprintf("%.1f", value)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
