// Package export writes plot scenes to files: SVG drawings and CSV samples.
package export

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/san-kum/plotlab/internal/plot"
)

// SVG is a plot.Canvas that records drawing calls as SVG elements.
type SVG struct {
	width, height int
	background    string
	sb            strings.Builder
}

func NewSVG(w, h int) (*SVG, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", plot.ErrInvalidSize, w, h)
	}
	return &SVG{width: w, height: h, background: "#000000"}, nil
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

// Clear drops everything drawn so far.
func (s *SVG) Clear(col color.NRGBA) {
	s.sb.Reset()
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" fill="%s"%s/>`+"\n", plot.Hex(opaque(col)), opacity("fill", col))
}

func (s *SVG) DrawLine(from, to plot.Vec2, thick float64, col color.NRGBA) {
	if !from.IsFinite() || !to.IsFinite() {
		return
	}
	fmt.Fprintf(&s.sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		bound(from.X), bound(from.Y), bound(to.X), bound(to.Y),
		plot.Hex(opaque(col)), thick, opacity("stroke", col))
}

func (s *SVG) DrawPixel(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	fmt.Fprintf(&s.sb, `<rect x="%d" y="%d" width="1" height="1" fill="%s"%s/>`+"\n",
		x, y, plot.Hex(opaque(col)), opacity("fill", col))
}

// DrawText anchors the text at its top-left corner like the raster canvases.
func (s *SVG) DrawText(text string, at plot.Vec2, size float64, col color.NRGBA) {
	if !at.IsFinite() {
		return
	}
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.0f" dominant-baseline="hanging" fill="%s"%s>%s</text>`+"\n",
		at.X, at.Y, size, plot.Hex(opaque(col)), opacity("fill", col), html.EscapeString(text))
}

// WriteTo writes the complete document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var doc strings.Builder
	fmt.Fprintf(&doc, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height)
	doc.WriteString(s.sb.String())
	doc.WriteString("</svg>\n")
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

func (s *SVG) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

// Save writes the document to path.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func opaque(col color.NRGBA) color.NRGBA {
	col.A = 0xff
	return col
}

func opacity(attr string, col color.NRGBA) string {
	if col.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(col.A)/255)
}

// bound keeps near-vertical segments representable in viewers that choke on
// huge coordinates.
func bound(v float64) float64 {
	return math.Max(-1e6, math.Min(1e6, v))
}
