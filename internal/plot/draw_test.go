package plot_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/plot"
)

var _ = Describe("LooseEquals", func() {
	DescribeTable("compares within 0.3",
		func(a, b float64, want bool) {
			Expect(plot.LooseEquals(a, b)).To(Equal(want))
		},
		Entry("equal", 10.0, 10.0, true),
		Entry("inside the band", 10.29, 10.0, true),
		Entry("inside below", 9.75, 10.0, true),
		Entry("on the boundary", 0.3, 0.0, false),
		Entry("on the boundary, reversed", 0.0, 0.3, false),
		Entry("outside", 10.31, 10.0, false),
		Entry("NaN", math.NaN(), 0.0, false),
	)

	It("builds custom bands", func() {
		eq := plot.Tolerance(1)
		Expect(eq(0, 0.99)).To(BeTrue())
		Expect(eq(0, 1)).To(BeFalse())
	})
})

var _ = Describe("DrawFunction", func() {
	It("draws one segment per column joining x and x+1", func() {
		rec := newRecorder(8, 6)
		v := plot.Viewport{Origin: plot.Vec2{X: 4, Y: 3}, ScaleX: 1, ScaleY: 1, MinScale: 0.1}
		plot.DrawFunction(rec, v, func(x float64) float64 { return x }, plot.GruvGreen, 10)

		Expect(rec.lines).To(HaveLen(8))
		for i, l := range rec.lines {
			Expect(l.from.X).To(Equal(float64(i)))
			Expect(l.to.X).To(Equal(float64(i + 1)))
			Expect(l.thick).To(Equal(10.0))
		}
		// y = x passes through the origin pixel
		Expect(rec.lines[4].from).To(Equal(plot.Vec2{X: 4, Y: 3}))
		Expect(rec.lines[4].to).To(Equal(plot.Vec2{X: 5, Y: 2}))
	})

	It("passes non-finite values through without panicking", func() {
		rec := newRecorder(4, 4)
		v := plot.NewViewport(4, 4, 1, 1, 0.1)
		Expect(func() {
			plot.DrawFunction(rec, v, func(x float64) float64 { return 1 / x }, plot.GruvBlue, 1)
			plot.DrawFunction(rec, v, func(x float64) float64 { return math.Log(-1) }, plot.GruvBlue, 1)
		}).NotTo(Panic())
		Expect(rec.lines).To(HaveLen(8))
	})
})

var _ = Describe("DrawEquation", func() {
	v := plot.NewViewport(40, 30, 10, 10, 0.1)

	It("draws nothing for a relation that never holds", func() {
		rec := newRecorder(40, 30)
		plot.DrawEquation(rec, v, func(x, y float64) bool { return false }, plot.GruvRed)
		Expect(rec.pixels).To(BeEmpty())
	})

	It("draws every pixel for a relation that always holds", func() {
		rec := newRecorder(40, 30)
		plot.DrawEquation(rec, v, func(x, y float64) bool { return true }, plot.GruvRed)
		Expect(rec.pixels).To(HaveLen(40 * 30))
	})

	It("evaluates at the world coordinates of each pixel", func() {
		rec := newRecorder(40, 30)
		plot.DrawEquation(rec, v, func(x, y float64) bool { return x == 1 && y == 1 }, plot.GruvRed)
		Expect(rec.pixels).To(ConsistOf(plot.Vec2{X: 30, Y: 5}))
	})
})

var _ = Describe("Scene", func() {
	It("clears first, then grid, curves and equations", func() {
		rec := newRecorder(16, 8)
		grid := plot.NewStepGrid()
		grid.Labels = false
		s := plot.Scene{
			Background: plot.GruvDark0,
			Grid:       grid,
			Curves:     []plot.Curve{{Name: "zero", F: func(float64) float64 { return 0 }, Color: plot.GruvBlue}},
			Equations:  []plot.Equation{{Name: "all", R: func(x, y float64) bool { return true }, Color: plot.GruvRed}},
		}
		s.Render(rec, plot.NewViewport(16, 8, 4, 4, 0.1))

		Expect(rec.ops[0]).To(Equal("clear"))
		Expect(rec.clears).To(ConsistOf(plot.GruvDark0))
		Expect(rec.ops[len(rec.ops)-1]).To(Equal("pixel"))

		var curveLines int
		for _, l := range rec.lines {
			if l.col == plot.GruvBlue {
				curveLines++
				Expect(l.thick).To(Equal(float64(plot.DefaultThickness)))
			}
		}
		Expect(curveLines).To(Equal(16))
	})
})
