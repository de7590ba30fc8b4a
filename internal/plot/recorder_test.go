package plot_test

import (
	"image/color"

	"github.com/san-kum/plotlab/internal/plot"
)

type line struct {
	from, to plot.Vec2
	thick    float64
	col      color.NRGBA
}

type text struct {
	s   string
	at  plot.Vec2
	col color.NRGBA
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	w, h   int
	clears []color.NRGBA
	lines  []line
	pixels []plot.Vec2
	texts  []text
	ops    []string
}

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(col color.NRGBA) {
	r.clears = append(r.clears, col)
	r.ops = append(r.ops, "clear")
}

func (r *recorder) DrawLine(from, to plot.Vec2, thick float64, col color.NRGBA) {
	r.lines = append(r.lines, line{from, to, thick, col})
	r.ops = append(r.ops, "line")
}

func (r *recorder) DrawPixel(x, y int, col color.NRGBA) {
	r.pixels = append(r.pixels, plot.Vec2{X: float64(x), Y: float64(y)})
	r.ops = append(r.ops, "pixel")
}

func (r *recorder) DrawText(s string, at plot.Vec2, size float64, col color.NRGBA) {
	r.texts = append(r.texts, text{s, at, col})
	r.ops = append(r.ops, "text")
}

func (r *recorder) label(s string) (text, bool) {
	for _, t := range r.texts {
		if t.s == s {
			return t, true
		}
	}
	return text{}, false
}
