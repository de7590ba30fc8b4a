package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/plotlab/internal/plot"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a plot.Canvas over a grid of terminal cells. Each cell holds
// 2x4 dots, so Size reports dot resolution: (Width*2) x (Height*4).
// A cell has a single foreground colour, the last one drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
	Background    color.NRGBA
	text          map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.NRGBA, h),
		text:   make(map[[2]int]rune),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
	}
	c.Clear(plot.GruvDark0)
	return c
}

func (c *Canvas) Size() (int, int) { return c.Width * 2, c.Height * 4 }

// Clear empties every cell and sets the background the cell colours blend
// against.
func (c *Canvas) Clear(bg color.NRGBA) {
	bg.A = 0xff
	c.Background = bg
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = bg
		}
	}
	clear(c.text)
}

// Set turns on the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, row := x/2, y/4
	if cx >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = c.blend(col)
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) DrawPixel(x, y int, col color.NRGBA) { c.Set(x, y, col) }

// DrawLine draws a one dot wide segment using Bresenham's algorithm after
// clipping to the canvas. Thickness is ignored at this resolution.
func (c *Canvas) DrawLine(from, to plot.Vec2, _ float64, col color.NRGBA) {
	w, h := c.Size()
	a, b, ok := clip(from, to, float64(w-1), float64(h-1))
	if !ok {
		return
	}
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawText writes text into the cells starting at the one holding dot
// `at`. Text replaces the dots of the cells it covers.
func (c *Canvas) DrawText(text string, at plot.Vec2, _ float64, col color.NRGBA) {
	if !at.IsFinite() || at.X < 0 || at.Y < 0 {
		return
	}
	row, x := int(at.Y)/4, int(at.X)/2
	if row >= c.Height {
		return
	}
	for _, r := range text {
		if x >= c.Width {
			break
		}
		c.text[[2]int{row, x}] = r
		c.Colors[row][x] = c.blend(col)
		x++
	}
}

// Rune returns what the cell at (row, col) displays.
func (c *Canvas) Rune(row, col int) rune {
	if r, ok := c.text[[2]int{row, col}]; ok {
		return r
	}
	return c.Grid[row][col]
}

// String returns the plain cell contents without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.Rune(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the canvas with colours applied, one lipgloss span per
// run of equally coloured cells.
func (c *Canvas) Render() string {
	bg := lipgloss.Color(plot.Hex(c.Background))
	var b strings.Builder
	for row := range c.Grid {
		var run strings.Builder
		runCol := c.Colors[row][0]
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(plot.Hex(runCol))).Background(bg)
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := range c.Grid[row] {
			if c.Colors[row][col] != runCol {
				flush()
				runCol = c.Colors[row][col]
			}
			run.WriteRune(c.Rune(row, col))
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blend flattens a translucent colour onto the background. Terminals have
// no alpha.
func (c *Canvas) blend(col color.NRGBA) color.NRGBA {
	if col.A == 0xff {
		return col
	}
	a := float64(col.A) / 255
	mix := func(fg, bg uint8) uint8 {
		return uint8(math.Round(float64(bg) + (float64(fg)-float64(bg))*a))
	}
	return color.NRGBA{
		R: mix(col.R, c.Background.R),
		G: mix(col.G, c.Background.G),
		B: mix(col.B, c.Background.B),
		A: 0xff,
	}
}

// clip trims the segment to [0,maxX]x[0,maxY] (Liang-Barsky). It reports
// false when nothing is left or an end is not finite.
func clip(a, b plot.Vec2, maxX, maxY float64) (plot.Vec2, plot.Vec2, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}
	a, b = limit(a), limit(b)
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X},
		{dx, maxX - a.X},
		{-dy, a.Y},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return plot.Vec2{X: a.X + t0*dx, Y: a.Y + t0*dy},
		plot.Vec2{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

const coordLimit = 1 << 20

func limit(p plot.Vec2) plot.Vec2 {
	return plot.Vec2{
		X: math.Max(-coordLimit, math.Min(coordLimit, p.X)),
		Y: math.Max(-coordLimit, math.Min(coordLimit, p.Y)),
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
