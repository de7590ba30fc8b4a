package plot_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/plot"
)

var _ = Describe("StepGrid", func() {
	var (
		g   *plot.StepGrid
		rec *recorder
	)

	BeforeEach(func() {
		g = plot.NewStepGrid()
		rec = newRecorder(1920, 1080)
	})

	highlighted := func() []line {
		var out []line
		for _, l := range rec.lines {
			if l.col == g.Style.Axis {
				out = append(out, l)
			}
		}
		return out
	}

	It("highlights exactly the lines through the origin", func() {
		v := plot.NewViewport(1920, 1080, 100, 100, 0.1)
		g.Draw(rec, v)

		axes := highlighted()
		Expect(axes).To(HaveLen(2))
		Expect(axes[0].from).To(Equal(plot.Vec2{X: 960, Y: 0}))
		Expect(axes[1].from).To(Equal(plot.Vec2{X: 0, Y: 540}))
		for _, l := range rec.lines {
			Expect(l.col).To(BeElementOf(g.Style.Axis, g.Style.Line))
		}
	})

	DescribeTable("keeps the origin line highlighted wherever the origin is",
		func(origin plot.Vec2, scale float64) {
			v := plot.Viewport{Origin: origin, ScaleX: scale, ScaleY: scale, MinScale: 0.1}
			for _, l := range g.Lines(1920, 1080, v) {
				onOrigin := (l.Vertical && l.Pos == float64(int(origin.X))) ||
					(!l.Vertical && l.Pos == float64(int(origin.Y)))
				Expect(l.Axis).To(Equal(onOrigin), "line %+v", l)
			}
		},
		Entry("fractional origin", plot.Vec2{X: 333.7, Y: 200.2}, 100.0),
		Entry("origin left of the canvas", plot.Vec2{X: -50, Y: 540}, 100.0),
		Entry("origin below the canvas", plot.Vec2{X: 10, Y: 5000}, 37.0),
		Entry("tiny scale", plot.Vec2{X: 700, Y: 300}, 0.1),
	)

	It("spaces lines one scale apart", func() {
		v := plot.Viewport{Origin: plot.Vec2{X: 960, Y: 540}, ScaleX: 100, ScaleY: 50, MinScale: 0.1}
		var xs, ys []float64
		for _, l := range g.Lines(1920, 1080, v) {
			if l.Vertical {
				xs = append(xs, l.Pos)
			} else {
				ys = append(ys, l.Pos)
			}
		}
		Expect(xs[0]).To(Equal(60.0))
		Expect(xs[1] - xs[0]).To(Equal(100.0))
		Expect(ys[0]).To(Equal(40.0))
		Expect(ys[1] - ys[0]).To(Equal(50.0))
	})

	It("draws only the origin lines when zoomed in extremely far", func() {
		v := plot.Viewport{Origin: plot.Vec2{X: 400, Y: 300}, ScaleX: 1e12, ScaleY: 1e12, MinScale: 0.1}
		lines := g.Lines(800, 600, v)
		Expect(lines).To(HaveLen(2))
		for _, l := range lines {
			Expect(l.Axis).To(BeTrue(), "line %+v", l)
		}
	})

	It("widens the step at small scales", func() {
		v := plot.Viewport{Origin: plot.Vec2{X: 0, Y: 0}, ScaleX: 0.1, ScaleY: 0.1, MinScale: 0.1}
		lines := g.Lines(64, 64, v)
		Expect(lines[1].Pos - lines[0].Pos).To(BeNumerically(">=", float64(g.MinStep)))
	})

	It("labels non-origin lines with their world value", func() {
		v := plot.NewViewport(1920, 1080, 100, 100, 0.1)
		g.Draw(rec, v)

		t, ok := rec.label("1.0")
		Expect(ok).To(BeTrue())
		Expect(t.at).To(Equal(plot.Vec2{X: 1062, Y: 545}))

		_, ok = rec.label("-9.0")
		Expect(ok).To(BeTrue())

		zero, ok := rec.label("0")
		Expect(ok).To(BeTrue())
		Expect(zero.at).To(Equal(plot.Vec2{X: 965, Y: 545}))

		_, ok = rec.label("0.0")
		Expect(ok).To(BeFalse())
	})

	It("labels y values upward positive", func() {
		v := plot.NewViewport(1920, 1080, 100, 100, 0.1)
		g.Draw(rec, v)
		t, ok := rec.label("2.0")
		Expect(ok).To(BeTrue())
		// vertical label at x=1160 first, then horizontal at y=340
		Expect([]plot.Vec2{{X: 1162, Y: 545}, {X: 965, Y: 342}}).To(ContainElement(t.at))
	})

	It("skips labels when disabled", func() {
		g.Labels = false
		g.Draw(rec, plot.NewViewport(1920, 1080, 100, 100, 0.1))
		Expect(rec.texts).To(BeEmpty())
	})
})

var _ = Describe("CountGrid", func() {
	It("draws a fixed number of lines independent of scale", func() {
		g := plot.NewCountGrid(20)
		for _, scale := range []float64{0.1, 1, 100, 5000} {
			v := plot.Viewport{Origin: plot.Vec2{X: 1000, Y: 500}, ScaleX: scale, ScaleY: scale, MinScale: 0.1}
			Expect(g.Lines(2000, 1000, v)).To(HaveLen(42))
		}
	})

	It("highlights only the line nearest the origin", func() {
		g := plot.NewCountGrid(20)
		v := plot.Viewport{Origin: plot.Vec2{X: 1020, Y: 470}, ScaleX: 100, ScaleY: 100, MinScale: 0.1}
		var axes []plot.GridLine
		for _, l := range g.Lines(2000, 1000, v) {
			if l.Axis {
				axes = append(axes, l)
			}
		}
		Expect(axes).To(ConsistOf(
			plot.GridLine{Vertical: true, Pos: 1000, Axis: true},
			plot.GridLine{Vertical: false, Pos: 450, Axis: true},
		))
	})

	It("highlights nothing when the origin is far off canvas", func() {
		g := plot.NewCountGrid(10)
		v := plot.Viewport{Origin: plot.Vec2{X: -5000, Y: 9000}, ScaleX: 100, ScaleY: 100, MinScale: 0.1}
		for _, l := range g.Lines(1000, 1000, v) {
			Expect(l.Axis).To(BeFalse())
		}
	})
})
