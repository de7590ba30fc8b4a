// Package raster implements plot.Canvas over an in-memory image, for
// headless rendering and PNG export.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/plotlab/internal/plot"
)

// coordLimit bounds vertices handed to the rasteriser. Curves that shoot off
// to huge values are still drawn as steep segments leaving the canvas.
const coordLimit = 1 << 20

type Canvas struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
	z     vector.Rasterizer
}

// New returns a w×h canvas that draws labels with the embedded Go Regular
// font.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", plot.ErrInvalidSize, w, h)
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse embedded font: %w", err)
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// LoadFont replaces the label font with a TrueType/OpenType file.
func (c *Canvas) LoadFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("raster: load font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parse font %s: %w", path, err)
	}
	c.closeFaces()
	c.font = f
	return nil
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.NRGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawLine fills the quad around the segment. Segments with a non-finite end
// are skipped.
func (c *Canvas) DrawLine(from, to plot.Vec2, thick float64, col color.NRGBA) {
	if !from.IsFinite() || !to.IsFinite() {
		return
	}
	from, to = limit(from), limit(to)
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	if thick <= 0 {
		thick = 1
	}
	// half-width normal
	nx, ny := -dy/length*thick/2, dx/length*thick/2

	quad := [4]plot.Vec2{
		{X: from.X + nx, Y: from.Y + ny},
		{X: to.X + nx, Y: to.Y + ny},
		{X: to.X - nx, Y: to.Y - ny},
		{X: from.X - nx, Y: from.Y - ny},
	}
	// rasterise only the part of the canvas the quad covers
	bbox := bounds(quad).Intersect(c.img.Bounds())
	if bbox.Empty() {
		return
	}
	c.z.Reset(bbox.Dx(), bbox.Dy())
	c.z.DrawOp = draw.Over
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	c.z.MoveTo(float32(quad[0].X-ox), float32(quad[0].Y-oy))
	for _, p := range quad[1:] {
		c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, bbox, image.NewUniform(col), image.Point{})
}

func (c *Canvas) DrawPixel(x, y int, col color.NRGBA) {
	r := image.Rect(x, y, x+1, y+1)
	if !r.In(c.img.Bounds()) {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawText places the top-left corner of the text at `at`.
func (c *Canvas) DrawText(text string, at plot.Vec2, size float64, col color.NRGBA) {
	if !at.IsFinite() {
		return
	}
	face, err := c.face(size)
	if err != nil {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(at.X), int(at.Y)+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func (c *Canvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[size] = f
	return f, nil
}

func (c *Canvas) closeFaces() {
	for size, f := range c.faces {
		f.Close()
		delete(c.faces, size)
	}
}

func (c *Canvas) Close() error {
	c.closeFaces()
	return nil
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// bounds returns the pixel rectangle covering every vertex.
func bounds(pts [4]plot.Vec2) image.Rectangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
}

func limit(p plot.Vec2) plot.Vec2 {
	return plot.Vec2{
		X: math.Max(-coordLimit, math.Min(coordLimit, p.X)),
		Y: math.Max(-coordLimit, math.Min(coordLimit, p.Y)),
	}
}
